package format

import (
	"io"

	"github.com/dhamidi/sol/snapshot"
	"github.com/dhamidi/sol/solidity/parser"
)

type SnapshotEncoder struct {
	w io.Writer
}

func NewSnapshotEncoder(w io.Writer) *SnapshotEncoder {
	return &SnapshotEncoder{w: w}
}

func (e *SnapshotEncoder) Encode(out *parser.Output) error {
	return write(e.w, e, out)
}

func (e *SnapshotEncoder) MarshalText(out *parser.Output) ([]byte, error) {
	text, err := snapshot.Render(out)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}
