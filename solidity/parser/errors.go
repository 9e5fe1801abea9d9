package parser

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/dhamidi/sol/solidity/cst"
)

// ParseError is a place where the parser could not continue, and what it
// would have accepted there. Reason is set for lexical problems that were
// recovered from, such as an unterminated string.
type ParseError struct {
	Offset   int
	Expected []string
	Reason   string
}

func (e *ParseError) Error() string {
	msg := "Expected " + orList(e.Expected) + "."
	if e.Reason != "" {
		msg = e.Reason + ". " + msg
	}
	return msg
}

// Report renders the error with its location and the offending line.
func (e *ParseError) Report(file, source string) string {
	li := cst.NewLineIndex(source)
	pos := li.Position(e.Offset)
	line := li.Line(pos.Line)
	if file == "" {
		file = "<input>"
	}

	num := fmt.Sprint(pos.Line)
	gutter := strings.Repeat(" ", len(num))

	var caret strings.Builder
	for _, r := range line[:min(pos.Column-1, len(line))] {
		if r == '\t' {
			caret.WriteRune('\t')
		} else {
			caret.WriteRune(' ')
		}
	}
	caret.WriteRune('^')

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", e.Error())
	fmt.Fprintf(&sb, "%s--> %s:%s\n", gutter, file, pos)
	fmt.Fprintf(&sb, "%s |\n", gutter)
	fmt.Fprintf(&sb, "%s | %s\n", num, line)
	fmt.Fprintf(&sb, "%s | %s\n", gutter, caret.String())
	return sb.String()
}

func orList(items []string) string {
	switch len(items) {
	case 0:
		return "nothing"
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}

func expected(offset int, what ...string) *ParseError {
	return &ParseError{Offset: offset, Expected: what}
}

// furthest keeps the error that got further into the input. Errors at the
// same offset are merged.
func furthest(errs ...*ParseError) *ParseError {
	var best *ParseError
	for _, e := range errs {
		switch {
		case e == nil:
		case best == nil || e.Offset > best.Offset:
			best = e
		case e.Offset == best.Offset && e != best:
			best = merge(best, e)
		}
	}
	return best
}

func merge(a, b *ParseError) *ParseError {
	union := slices.Clone(a.Expected)
	for _, x := range b.Expected {
		if !slices.Contains(union, x) {
			union = append(union, x)
		}
	}
	if len(union) == len(a.Expected) && (a.Reason != "" || b.Reason == "") {
		return a
	}
	sort.Strings(union)
	reason := a.Reason
	if reason == "" {
		reason = b.Reason
	}
	return &ParseError{Offset: a.Offset, Expected: union, Reason: reason}
}

// normalize orders diagnostics by offset and merges each run at the same
// offset into one. The first of a run keeps its reason.
func normalize(errs []*ParseError) []*ParseError {
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Offset < errs[j].Offset })
	out := errs[:0]
	for _, e := range errs {
		if len(out) > 0 && out[len(out)-1].Offset == e.Offset {
			out[len(out)-1] = merge(out[len(out)-1], e)
			continue
		}
		out = append(out, e)
	}
	return out
}
