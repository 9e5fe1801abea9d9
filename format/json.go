package format

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/dhamidi/sol/solidity/cst"
	"github.com/dhamidi/sol/solidity/kinds"
	"github.com/dhamidi/sol/solidity/parser"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONEncoder writes the whole parse as one JSON document: the file name,
// the errors with their positions, and the tree.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(out *parser.Output) error {
	return write(e.w, e, out)
}

func (e *JSONEncoder) MarshalText(out *parser.Output) ([]byte, error) {
	text, err := json.MarshalIndent(outputToJSON(out), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}

type jsonOutput struct {
	File   string       `json:"file,omitempty"`
	Valid  bool         `json:"valid"`
	Errors []jsonError  `json:"errors"`
	Tree   *astJSONNode `json:"tree"`
}

type jsonError struct {
	Offset   int      `json:"offset"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Message  string   `json:"message"`
	Expected []string `json:"expected,omitempty"`
	Reason   string   `json:"reason,omitempty"`
}

func outputToJSON(out *parser.Output) jsonOutput {
	data := jsonOutput{
		File:   out.File(),
		Valid:  out.IsValid(),
		Errors: []jsonError{},
		Tree:   nodeToJSON(kinds.FieldNone, out.Tree()),
	}

	lines := cst.NewLineIndex(out.Source())
	for _, err := range out.Errors() {
		pos := lines.Position(err.Offset)
		data.Errors = append(data.Errors, jsonError{
			Offset:   err.Offset,
			Line:     pos.Line,
			Column:   pos.Column,
			Message:  err.Error(),
			Expected: err.Expected,
			Reason:   err.Reason,
		})
	}

	return data
}
