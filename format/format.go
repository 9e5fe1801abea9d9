// Package format writes parse results in the formats offered by `sol parse`.
package format

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dhamidi/sol/solidity/parser"
)

// ErrUnknownFormat is returned by New for a name not in Names.
var ErrUnknownFormat = errors.New("unknown format")

type Encoder interface {
	Encode(out *parser.Output) error
}

// TextEncoder is an Encoder that can also render to memory.
type TextEncoder interface {
	Encoder
	MarshalText(out *parser.Output) ([]byte, error)
}

var encoders = map[string]func(io.Writer) TextEncoder{
	"json":     func(w io.Writer) TextEncoder { return NewJSONEncoder(w) },
	"tokens":   func(w io.Writer) TextEncoder { return NewLineEncoder(w) },
	"tree":     func(w io.Writer) TextEncoder { return NewTreeEncoder(w) },
	"snapshot": func(w io.Writer) TextEncoder { return NewSnapshotEncoder(w) },
}

// Names lists the formats New accepts.
func Names() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func New(name string, w io.Writer) (TextEncoder, error) {
	mk, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %v", ErrUnknownFormat, name, Names())
	}
	return mk(w), nil
}

// write renders out with e and copies the result to w.
func write(w io.Writer, e TextEncoder, out *parser.Output) error {
	text, err := e.MarshalText(out)
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
