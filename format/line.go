package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/sol/solidity/cst"
	"github.com/dhamidi/sol/solidity/parser"
)

// LineEncoder writes one tab separated line per token and per trivia piece,
// in source order:
//
//	token	Identifier	9..13	1:10	"Foo"
//	trivia	Whitespace	13..14	1:14	" "
type LineEncoder struct {
	w     io.Writer
	lines *cst.LineIndex
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(out *parser.Output) error {
	return write(e.w, e, out)
}

func (e *LineEncoder) MarshalText(out *parser.Output) ([]byte, error) {
	var sb strings.Builder
	e.lines = cst.NewLineIndex(out.Source())

	for tok := range cst.Tokens(out.Tree()) {
		for _, tr := range tok.Leading {
			e.writeLine(&sb, "trivia", tr.Kind.String(), tr.Range, tr.Text)
		}
		e.writeLine(&sb, e.tokenTag(tok), tok.Kind.String(), tok.SignificantRange(), tok.Text)
		for _, tr := range tok.Trailing {
			e.writeLine(&sb, "trivia", tr.Kind.String(), tr.Range, tr.Text)
		}
	}

	for _, err := range out.Errors() {
		fmt.Fprintf(&sb, "error\t%d\t%s\t%s\n", err.Offset, e.lines.Position(err.Offset), strconv.Quote(err.Error()))
	}

	return []byte(sb.String()), nil
}

func (e *LineEncoder) tokenTag(tok *cst.TokenNode) string {
	if tok.IsSkipped() {
		return "skipped"
	}
	return "token"
}

func (e *LineEncoder) writeLine(sb *strings.Builder, tag, kind string, r cst.TextRange, text string) {
	fmt.Fprintf(sb, "%s\t%s\t%s\t%s\t%s\n", tag, kind, r, e.lines.Position(r.Start), strconv.Quote(text))
}
