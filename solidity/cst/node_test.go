package cst

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/sol/solidity/kinds"
)

func TestUnparse(t *testing.T) {
	root := sampleTree()
	if got := Unparse(root); got != "a + b;" {
		t.Errorf("Unparse = %q, want %q", got, "a + b;")
	}
}

func TestCount(t *testing.T) {
	if got := Count(sampleTree()); got != 9 {
		t.Errorf("Count = %d, want 9", got)
	}
}

func TestRuleNodeChild(t *testing.T) {
	root := sampleTree()

	semi, ok := root.Child(kinds.FieldSemicolon).(*TokenNode)
	if !ok || semi.Text != ";" {
		t.Errorf("Child(Semicolon) = %v", root.Child(kinds.FieldSemicolon))
	}
	if root.Child(kinds.FieldBody) != nil {
		t.Error("Child(Body) should be nil")
	}
	if root.FirstRuleOfKind(kinds.Expression) == nil {
		t.Error("FirstRuleOfKind(Expression) should find the expression")
	}
}

func TestTokenSignificantRange(t *testing.T) {
	tok := &TokenNode{
		Kind:     kinds.Identifier,
		Range:    TextRange{0, 7},
		Text:     "abc",
		Leading:  []Trivia{{Kind: kinds.Whitespace, Range: TextRange{0, 2}, Text: "  "}},
		Trailing: []Trivia{{Kind: kinds.EndOfLine, Range: TextRange{5, 7}, Text: "\r\n"}},
	}
	if got := tok.SignificantRange(); got != (TextRange{2, 5}) {
		t.Errorf("SignificantRange = %v, want 2..5", got)
	}
	if got := tok.FullText(); got != "  abc\r\n" {
		t.Errorf("FullText = %q", got)
	}
}

func TestRuleNodeString(t *testing.T) {
	s := sampleTree().String()
	for _, want := range []string{
		"ExpressionStatement [0..6]",
		"  Expression: Expression [0..5]",
		"        Variant: Identifier [0..2] a",
		"  Semicolon: Semicolon [5..6] ;",
	} {
		if !strings.Contains(s, want+"\n") {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(sampleTree(), "a + b;"); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	tests := []struct {
		name string
		src  string
		tree func() Node
	}{
		{"short source", "a + b", func() Node { return sampleTree() }},
		{"wrong text", "a - b;", func() Node { return sampleTree() }},
		{"gap", "a  + b;", func() Node {
			root := sampleTree()
			root.Range.End = 7
			root.Edges[1].Node = token(kinds.Semicolon, 6, ";")
			return root
		}},
		{"empty rule with range", "x", func() Node {
			return &RuleNode{Kind: kinds.SourceUnit, Range: TextRange{0, 1}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.tree(), tt.src)
			if !errors.Is(err, ErrInvariant) {
				t.Errorf("Validate = %v, want ErrInvariant", err)
			}
		})
	}
}
