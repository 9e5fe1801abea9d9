package cst

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a tree that breaks its own structure. It always means a
// bug in the parser, never bad input.
var ErrInvariant = errors.New("syntax tree invariant violated")

// Validate checks that root covers src exactly, that every rule's children
// tile its range without gaps or overlaps, and that every token's text
// matches the source it claims to cover.
func Validate(root Node, src string) error {
	if r := root.TextRange(); r.Start != 0 || r.End != len(src) {
		return fmt.Errorf("%w: root covers %s, source has %d bytes", ErrInvariant, r, len(src))
	}
	if err := validateNode(root, src); err != nil {
		return err
	}
	if text := Unparse(root); text != src {
		return fmt.Errorf("%w: unparsed text differs from source", ErrInvariant)
	}
	return nil
}

func validateNode(n Node, src string) error {
	switch n := n.(type) {
	case *TokenNode:
		return validateToken(n, src)
	case *RuleNode:
		pos := n.Range.Start
		for _, e := range n.Edges {
			r := e.Node.TextRange()
			if r.Start != pos {
				return fmt.Errorf("%w: %s child %s starts at %d, expected %d", ErrInvariant, n.Kind, r, r.Start, pos)
			}
			if err := validateNode(e.Node, src); err != nil {
				return err
			}
			pos = r.End
		}
		if pos != n.Range.End {
			return fmt.Errorf("%w: %s %s children end at %d", ErrInvariant, n.Kind, n.Range, pos)
		}
	}
	return nil
}

func validateToken(t *TokenNode, src string) error {
	if t.Range.Start < 0 || t.Range.End > len(src) || t.Range.Start > t.Range.End {
		return fmt.Errorf("%w: %s range %s out of bounds", ErrInvariant, t.Kind, t.Range)
	}
	pos := t.Range.Start
	check := func(what string, text string) error {
		if pos+len(text) > len(src) || src[pos:pos+len(text)] != text {
			return fmt.Errorf("%w: %s %s at %d does not match source", ErrInvariant, t.Kind, what, pos)
		}
		pos += len(text)
		return nil
	}
	for _, tr := range t.Leading {
		if err := check("leading trivia", tr.Text); err != nil {
			return err
		}
	}
	if err := check("text", t.Text); err != nil {
		return err
	}
	for _, tr := range t.Trailing {
		if err := check("trailing trivia", tr.Text); err != nil {
			return err
		}
	}
	if pos != t.Range.End {
		return fmt.Errorf("%w: %s %s holds %d bytes", ErrInvariant, t.Kind, t.Range, pos-t.Range.Start)
	}
	return nil
}
