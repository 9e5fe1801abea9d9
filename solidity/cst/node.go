// Package cst is the lossless concrete syntax tree produced by the Solidity
// parser. Every byte of the source belongs to exactly one token, either as
// significant text or as trivia attached to it.
package cst

import (
	"iter"
	"strings"

	"github.com/dhamidi/sol/solidity/kinds"
)

// Node is either a *RuleNode or a *TokenNode.
type Node interface {
	TextRange() TextRange
	Children() iter.Seq[Node]
	node()
}

// Edge binds a child to the field of its parent that produced it.
type Edge struct {
	Name kinds.Field
	Node Node
}

type RuleNode struct {
	Kind  kinds.RuleKind
	Range TextRange
	Edges []Edge
}

// Trivia is a piece of whitespace or a comment owned by a token.
type Trivia struct {
	Kind  kinds.TokenKind
	Range TextRange
	Text  string
}

// TokenNode covers its leading trivia, its significant text and its trailing
// trivia, in that order. Range spans all three.
type TokenNode struct {
	Kind     kinds.TokenKind
	Range    TextRange
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

func (*RuleNode) node()  {}
func (*TokenNode) node() {}

func (n *RuleNode) TextRange() TextRange {
	return n.Range
}

// Children yields the immediate children in source order. The sequence can
// be ranged over any number of times.
func (n *RuleNode) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, e := range n.Edges {
			if !yield(e.Node) {
				return
			}
		}
	}
}

// Named yields each child with the field it is bound to.
func (n *RuleNode) Named() iter.Seq2[kinds.Field, Node] {
	return func(yield func(kinds.Field, Node) bool) {
		for _, e := range n.Edges {
			if !yield(e.Name, e.Node) {
				return
			}
		}
	}
}

func (n *RuleNode) ChildCount() int {
	return len(n.Edges)
}

// Child returns the first child bound to name, or nil.
func (n *RuleNode) Child(name kinds.Field) Node {
	for _, e := range n.Edges {
		if e.Name == name {
			return e.Node
		}
	}
	return nil
}

// FirstRuleOfKind returns the first direct child rule of the given kind.
func (n *RuleNode) FirstRuleOfKind(kind kinds.RuleKind) *RuleNode {
	for _, e := range n.Edges {
		if r, ok := e.Node.(*RuleNode); ok && r.Kind == kind {
			return r
		}
	}
	return nil
}

func (n *RuleNode) String() string {
	var sb strings.Builder
	writeNode(&sb, kinds.FieldNone, n, 0)
	return sb.String()
}

func (t *TokenNode) TextRange() TextRange {
	return t.Range
}

func (t *TokenNode) Children() iter.Seq[Node] {
	return func(func(Node) bool) {}
}

// SignificantRange is the part of Range holding Text.
func (t *TokenNode) SignificantRange() TextRange {
	start := t.Range.Start
	for _, tr := range t.Leading {
		start += len(tr.Text)
	}
	return TextRange{Start: start, End: start + len(t.Text)}
}

// FullText is the source text covered by the token, trivia included.
func (t *TokenNode) FullText() string {
	var sb strings.Builder
	t.writeTo(&sb)
	return sb.String()
}

func (t *TokenNode) writeTo(sb *strings.Builder) {
	for _, tr := range t.Leading {
		sb.WriteString(tr.Text)
	}
	sb.WriteString(t.Text)
	for _, tr := range t.Trailing {
		sb.WriteString(tr.Text)
	}
}

func (t *TokenNode) IsSkipped() bool {
	return t.Kind == kinds.Skipped
}

func (t *TokenNode) String() string {
	var sb strings.Builder
	writeNode(&sb, kinds.FieldNone, t, 0)
	return sb.String()
}

// Unparse concatenates the full text of every token under n.
func Unparse(n Node) string {
	var sb strings.Builder
	for t := range Tokens(n) {
		t.writeTo(&sb)
	}
	return sb.String()
}

// Tokens yields the tokens under n in source order.
func Tokens(n Node) iter.Seq[*TokenNode] {
	return func(yield func(*TokenNode) bool) {
		walkTokens(n, yield)
	}
}

func walkTokens(n Node, yield func(*TokenNode) bool) bool {
	switch n := n.(type) {
	case *TokenNode:
		return yield(n)
	case *RuleNode:
		for _, e := range n.Edges {
			if !walkTokens(e.Node, yield) {
				return false
			}
		}
	}
	return true
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	total := 1
	for child := range n.Children() {
		total += Count(child)
	}
	return total
}

func writeNode(sb *strings.Builder, name kinds.Field, n Node, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	if name != kinds.FieldNone {
		sb.WriteString(name.String())
		sb.WriteString(": ")
	}
	switch n := n.(type) {
	case *RuleNode:
		sb.WriteString(n.Kind.String())
		sb.WriteString(" [" + n.Range.String() + "]\n")
		for _, e := range n.Edges {
			writeNode(sb, e.Name, e.Node, indent+1)
		}
	case *TokenNode:
		sb.WriteString(n.Kind.String())
		sb.WriteString(" [" + n.Range.String() + "] ")
		sb.WriteString(n.Text)
		sb.WriteString("\n")
	}
}
