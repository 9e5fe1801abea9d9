package cst

import (
	"iter"

	"github.com/dhamidi/sol/solidity/kinds"
)

// Cursor walks a tree once, in pre-order. It never mutates the tree, so any
// number of cursors may walk the same tree concurrently; a single cursor must
// not be shared between goroutines.
type Cursor struct {
	root      Node
	current   Node
	ancestors []frame
	completed bool
}

// frame is an ancestor of the current node and the index of the edge the
// walk went down.
type frame struct {
	rule  *RuleNode
	index int
}

func NewCursor(root Node) *Cursor {
	return &Cursor{root: root, current: root}
}

func (c *Cursor) Node() Node {
	return c.current
}

func (c *Cursor) TextRange() TextRange {
	return c.current.TextRange()
}

// Depth is the number of ancestors of the current node.
func (c *Cursor) Depth() int {
	return len(c.ancestors)
}

// IsCompleted reports whether GoToNext has run past the last node.
func (c *Cursor) IsCompleted() bool {
	return c.completed
}

// Parent returns the parent of the current node, or nil at the root.
func (c *Cursor) Parent() *RuleNode {
	if len(c.ancestors) == 0 {
		return nil
	}
	return c.ancestors[len(c.ancestors)-1].rule
}

// Children yields the children of the current node without moving the
// cursor.
func (c *Cursor) Children() iter.Seq[Node] {
	return c.current.Children()
}

// Clone returns an independent cursor at the same position.
func (c *Cursor) Clone() *Cursor {
	clone := *c
	clone.ancestors = append([]frame(nil), c.ancestors...)
	return &clone
}

// Reset moves the cursor back to the root.
func (c *Cursor) Reset() {
	c.current = c.root
	c.ancestors = c.ancestors[:0]
	c.completed = false
}

// GoToNext moves to the next node in pre-order: the first child if there is
// one, otherwise the next sibling of the nearest ancestor that has one.
func (c *Cursor) GoToNext() bool {
	if c.completed {
		return false
	}
	if r, ok := c.current.(*RuleNode); ok && len(r.Edges) > 0 {
		c.ancestors = append(c.ancestors, frame{rule: r})
		c.current = r.Edges[0].Node
		return true
	}
	return c.GoToNextNonDescendant()
}

// GoToNextNonDescendant skips the subtree of the current node.
func (c *Cursor) GoToNextNonDescendant() bool {
	if c.completed {
		return false
	}
	for len(c.ancestors) > 0 {
		top := &c.ancestors[len(c.ancestors)-1]
		if top.index+1 < len(top.rule.Edges) {
			top.index++
			c.current = top.rule.Edges[top.index].Node
			return true
		}
		c.current = top.rule
		c.ancestors = c.ancestors[:len(c.ancestors)-1]
	}
	c.completed = true
	return false
}

// CursorWithNames is a Cursor that also reports the field each node is bound
// to in its parent.
type CursorWithNames struct {
	Cursor
}

func NewCursorWithNames(root Node) *CursorWithNames {
	return &CursorWithNames{Cursor: Cursor{root: root, current: root}}
}

// NodeName returns the field the current node is bound to. It reports false
// for the root and for list elements.
func (c *CursorWithNames) NodeName() (kinds.Field, bool) {
	if len(c.ancestors) == 0 {
		return kinds.FieldNone, false
	}
	top := c.ancestors[len(c.ancestors)-1]
	name := top.rule.Edges[top.index].Name
	return name, name != kinds.FieldNone
}

func (c *CursorWithNames) Clone() *CursorWithNames {
	return &CursorWithNames{Cursor: *c.Cursor.Clone()}
}
