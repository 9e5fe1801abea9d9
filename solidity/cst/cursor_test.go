package cst

import (
	"testing"

	"github.com/dhamidi/sol/solidity/kinds"
)

func token(kind kinds.TokenKind, start int, text string, trailing ...string) *TokenNode {
	t := &TokenNode{Kind: kind, Text: text, Range: TextRange{Start: start}}
	pos := start + len(text)
	for _, tr := range trailing {
		t.Trailing = append(t.Trailing, Trivia{Kind: kinds.Whitespace, Range: TextRange{pos, pos + len(tr)}, Text: tr})
		pos += len(tr)
	}
	t.Range.End = pos
	return t
}

func rule(kind kinds.RuleKind, edges ...Edge) *RuleNode {
	r := &RuleNode{Kind: kind, Edges: edges}
	if len(edges) > 0 {
		r.Range = TextRange{edges[0].Node.TextRange().Start, edges[len(edges)-1].Node.TextRange().End}
	}
	return r
}

func expr(n Node) *RuleNode {
	return rule(kinds.Expression, Edge{Name: kinds.FieldVariant, Node: n})
}

// sampleTree builds the tree of "a + b;".
func sampleTree() *RuleNode {
	sum := rule(kinds.AdditiveExpression,
		Edge{Name: kinds.FieldLeftOperand, Node: expr(token(kinds.Identifier, 0, "a", " "))},
		Edge{Name: kinds.FieldOperator, Node: token(kinds.Plus, 2, "+", " ")},
		Edge{Name: kinds.FieldRightOperand, Node: expr(token(kinds.Identifier, 4, "b"))},
	)
	return rule(kinds.ExpressionStatement,
		Edge{Name: kinds.FieldExpression, Node: expr(sum)},
		Edge{Name: kinds.FieldSemicolon, Node: token(kinds.Semicolon, 5, ";")},
	)
}

func TestCursorWalksInPreOrder(t *testing.T) {
	c := NewCursor(sampleTree())

	var got []string
	for {
		switch n := c.Node().(type) {
		case *RuleNode:
			got = append(got, n.Kind.String())
		case *TokenNode:
			got = append(got, n.Kind.String()+":"+n.Text)
		}
		if !c.GoToNext() {
			break
		}
	}

	want := []string{
		"ExpressionStatement",
		"Expression",
		"AdditiveExpression",
		"Expression",
		"Identifier:a",
		"Plus:+",
		"Expression",
		"Identifier:b",
		"Semicolon:;",
	}
	if len(got) != len(want) {
		t.Fatalf("visited %d nodes, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("node %d = %q, want %q", i, got[i], want[i])
		}
	}
	if !c.IsCompleted() {
		t.Error("cursor should be completed")
	}
	if c.GoToNext() {
		t.Error("GoToNext after completion should return false")
	}
}

func TestCursorAdvancesCountMinusOne(t *testing.T) {
	root := sampleTree()
	c := NewCursor(root)

	advances := 0
	for c.GoToNext() {
		advances++
	}
	if want := Count(root) - 1; advances != want {
		t.Errorf("advances = %d, want %d", advances, want)
	}
}

func TestCursorChildrenDoesNotMove(t *testing.T) {
	c := NewCursor(sampleTree())

	n := 0
	for range c.Children() {
		n++
	}
	if n != 2 {
		t.Errorf("children = %d, want 2", n)
	}
	if c.Depth() != 0 {
		t.Errorf("depth = %d, want 0", c.Depth())
	}
	if _, ok := c.Node().(*RuleNode); !ok {
		t.Errorf("cursor moved to %T", c.Node())
	}
}

func TestCursorGoToNextNonDescendant(t *testing.T) {
	c := NewCursor(sampleTree())
	c.GoToNext() // Expression

	if !c.GoToNextNonDescendant() {
		t.Fatal("expected a sibling")
	}
	tok, ok := c.Node().(*TokenNode)
	if !ok || tok.Kind != kinds.Semicolon {
		t.Fatalf("node = %v, want Semicolon", c.Node())
	}
	if c.GoToNextNonDescendant() {
		t.Error("expected the walk to end")
	}
}

func TestCursorCloneIsIndependent(t *testing.T) {
	c := NewCursor(sampleTree())
	c.GoToNext()
	c.GoToNext()

	clone := c.Clone()
	for c.GoToNext() {
	}

	if clone.IsCompleted() {
		t.Error("clone should not be completed")
	}
	r, ok := clone.Node().(*RuleNode)
	if !ok || r.Kind != kinds.AdditiveExpression {
		t.Errorf("clone node = %v, want AdditiveExpression", clone.Node())
	}

	c.Reset()
	if c.IsCompleted() || c.Depth() != 0 {
		t.Error("Reset should return to the root")
	}
}

func TestCursorWithNames(t *testing.T) {
	c := NewCursorWithNames(sampleTree())

	if _, ok := c.NodeName(); ok {
		t.Error("root should have no name")
	}

	var names []string
	for c.GoToNext() {
		if name, ok := c.NodeName(); ok {
			names = append(names, name.String())
		} else {
			names = append(names, "-")
		}
	}

	want := []string{"Expression", "Variant", "LeftOperand", "Variant", "Operator", "RightOperand", "Variant", "Semicolon"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestCursorOnToken(t *testing.T) {
	c := NewCursor(token(kinds.Identifier, 0, "x"))
	if c.GoToNext() {
		t.Error("a single token has no next node")
	}
	if !c.IsCompleted() {
		t.Error("cursor should be completed")
	}
}

func TestCursorParent(t *testing.T) {
	root := sampleTree()
	c := NewCursor(root)
	if c.Parent() != nil {
		t.Error("root should have no parent")
	}

	for c.GoToNext() {
		parent := c.Parent()
		if parent == nil {
			t.Fatalf("node at depth %d has no parent", c.Depth())
		}
		found := false
		for child := range parent.Children() {
			if child == c.Node() {
				found = true
			}
		}
		if !found {
			t.Errorf("%v is not a child of its parent %s", c.Node(), parent.Kind)
		}
	}
}

func TestRuleNodeNamed(t *testing.T) {
	var fields []kinds.Field
	for name, child := range sampleTree().Named() {
		fields = append(fields, name)
		if child == nil {
			t.Error("nil child")
		}
	}
	if len(fields) != 2 || fields[0] != kinds.FieldExpression || fields[1] != kinds.FieldSemicolon {
		t.Errorf("fields = %v", fields)
	}
}
