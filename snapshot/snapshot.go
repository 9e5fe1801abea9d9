// Package snapshot renders a parse as a YAML document for regression tests.
//
// A snapshot has three sections: the source with the byte range of every
// line, the error reports, and the tree. Any change to a node's kind, field,
// range or text changes the rendered document.
package snapshot

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"

	"github.com/dhamidi/sol/solidity/cst"
	"github.com/dhamidi/sol/solidity/definition"
	"github.com/dhamidi/sol/solidity/parser"
)

// ErrInvariant is returned when the cursor does not walk the tree the way
// its shape promises.
var ErrInvariant = errors.New("snapshot invariant violated")

const (
	minSourceWidth = 80
	maxPreview     = 50
)

// Render writes the snapshot of a finished parse.
func Render(out *parser.Output) (string, error) {
	return RenderCursor(out.Source(), out.ErrorReports(), out.CreateTreeCursor())
}

// RenderCursor writes the snapshot of the tree under cursor. reports are
// rendered parse errors, one per entry.
func RenderCursor(source string, reports []string, cursor *cst.CursorWithNames) (string, error) {
	var sb strings.Builder

	writeSource(&sb, source)
	sb.WriteByte('\n')

	writeErrors(&sb, reports)
	sb.WriteByte('\n')

	if err := writeTree(&sb, cursor, source); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type sourceLine struct {
	text       string
	start, end int
}

// sourceLines splits src at line breaks. A final line break does not start
// a new line and a CR before LF is not part of the line text.
func sourceLines(src string) []sourceLine {
	var lines []sourceLine
	offset := 0
	for offset < len(src) {
		end := strings.IndexByte(src[offset:], '\n')
		next := len(src)
		if end < 0 {
			end = len(src)
		} else {
			end += offset
			next = end + 1
		}
		text := strings.TrimSuffix(src[offset:end], "\r")
		lines = append(lines, sourceLine{text: text, start: offset, end: offset + len(text)})
		offset = next
	}
	return lines
}

func writeSource(sb *strings.Builder, src string) {
	if src == "" {
		sb.WriteString("Source: \"\"\n")
		return
	}

	lines := sourceLines(src)
	width := minSourceWidth
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l.text))
	}

	sb.WriteString("Source: >\n")
	for i, l := range lines {
		padding := strings.Repeat(" ", width-utf8.RuneCountInString(l.text))
		fmt.Fprintf(sb, "  %-2d │ %s%s │ %d..%d\n", i+1, l.text, padding, l.start, l.end)
	}
}

func writeErrors(sb *strings.Builder, reports []string) {
	if len(reports) == 0 {
		sb.WriteString("Errors: []\n")
		return
	}

	fmt.Fprintf(sb, "Errors: # %d total\n", len(reports))
	for _, report := range reports {
		sb.WriteString("  - >\n")
		for _, line := range strings.Split(strings.TrimRight(report, "\n"), "\n") {
			fmt.Fprintf(sb, "    %s\n", line)
		}
	}
}

func writeTree(sb *strings.Builder, cursor *cst.CursorWithNames, src string) error {
	sb.WriteString("Tree:\n")
	if err := writeNode(sb, cursor, src, 0); err != nil {
		return err
	}
	if cursor.GoToNext() {
		return fmt.Errorf("%w: nodes left after the root at %s", ErrInvariant, cursor.TextRange())
	}
	return nil
}

func writeNode(sb *strings.Builder, cursor *cst.CursorWithNames, src string, depth int) error {
	sb.WriteString(strings.Repeat(" ", 4*depth))
	sb.WriteString("  - ")

	for {
		sb.WriteString(key(cursor))

		rule, ok := cursor.Node().(*cst.RuleNode)
		if !ok || len(rule.Edges) != 1 || !definition.Create().IsInlinable(rule.Kind.String()) {
			break
		}

		parent := cursor.TextRange()
		if !cursor.GoToNext() {
			return fmt.Errorf("%w: %s has a child the cursor cannot reach", ErrInvariant, rule.Kind)
		}
		if child := cursor.TextRange(); child != parent {
			return fmt.Errorf("%w: only child of %s covers %s, parent covers %s", ErrInvariant, rule.Kind, child, parent)
		}
		sb.WriteString(" ► ")
	}

	fmt.Fprintf(sb, ": %s\n", value(cursor, src))

	n := 0
	for range cursor.Children() {
		n++
	}
	for range n {
		if !cursor.GoToNext() {
			return fmt.Errorf("%w: cursor ended inside %s", ErrInvariant, cursor.TextRange())
		}
		if err := writeNode(sb, cursor, src, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func key(cursor *cst.CursorWithNames) string {
	var kind string
	switch n := cursor.Node().(type) {
	case *cst.RuleNode:
		kind = n.Kind.String()
	case *cst.TokenNode:
		kind = n.Kind.String()
	}

	if name, ok := cursor.NodeName(); ok {
		return fmt.Sprintf("(%s꞉ %s)", strcase.ToSnake(name.String()), kind)
	}
	return fmt.Sprintf("(%s)", kind)
}

func value(cursor *cst.CursorWithNames, src string) string {
	r := cursor.TextRange()
	span := fmt.Sprintf("(%d..%d)", r.Start, r.End)

	switch n := cursor.Node().(type) {
	case *cst.RuleNode:
		if len(n.Edges) == 0 {
			return "[] # " + span
		}
		return "# " + Preview(src, r) + " " + span
	default:
		return Preview(src, r) + " # " + span
	}
}

// Preview quotes at most 50 bytes of the text under r for use as a YAML
// scalar. Longer text is cut on a rune boundary and marked with an ellipsis.
func Preview(src string, r cst.TextRange) string {
	text := src[r.Start:r.End]
	if len(text) > maxPreview {
		cut := maxPreview
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + "..."
	}

	text = strings.NewReplacer("\t", `\t`, "\r", `\r`, "\n", `\n`).Replace(text)

	if strings.Contains(text, `"`) {
		return "'" + strings.ReplaceAll(text, "'", "''") + "'"
	}
	return `"` + text + `"`
}
