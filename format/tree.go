package format

import (
	"io"
	"strings"

	"github.com/dhamidi/sol/solidity/parser"
)

// TreeEncoder writes the tree indented by depth, one node per line, followed
// by the error reports.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(out *parser.Output) error {
	return write(e.w, e, out)
}

func (e *TreeEncoder) MarshalText(out *parser.Output) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(out.Tree().String())
	for _, report := range out.ErrorReports() {
		sb.WriteByte('\n')
		sb.WriteString(report)
	}
	return []byte(sb.String()), nil
}
