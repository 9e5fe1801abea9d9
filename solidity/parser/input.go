package parser

import (
	"unicode/utf8"

	"github.com/dhamidi/sol/solidity/cst"
	"github.com/dhamidi/sol/solidity/kinds"
)

// result is what a matcher produced at one position. A successful result
// may still carry err, the furthest failure seen among alternatives it did
// not take. diags are errors the matcher recovered from.
type result struct {
	ok    bool
	end   int
	edges []cst.Edge
	err   *ParseError
	diags []*ParseError
}

func failure(err *ParseError) result {
	return result{err: err}
}

type matcher interface {
	match(in *input, pos int) result
}

type memoKey struct {
	id  int
	pos int
}

type triviaRun struct {
	end    int
	pieces []cst.Trivia
}

// input is the state of one parse. It is never shared between goroutines.
type input struct {
	src      string
	reg      *registry
	memo     map[memoKey]result
	leading  map[int]triviaRun
	trailing map[int]triviaRun
}

func newInput(src string, reg *registry) *input {
	return &input{
		src:      src,
		reg:      reg,
		memo:     make(map[memoKey]result),
		leading:  make(map[int]triviaRun),
		trailing: make(map[int]triviaRun),
	}
}

func (in *input) leadingTrivia(pos int) triviaRun {
	if run, ok := in.leading[pos]; ok {
		return run
	}
	end, pieces, _ := in.reg.leading(in.src, pos)
	run := triviaRun{end: end, pieces: pieces}
	in.leading[pos] = run
	return run
}

func (in *input) trailingTrivia(pos int) triviaRun {
	if run, ok := in.trailing[pos]; ok {
		return run
	}
	end, pieces, _ := in.reg.trailing(in.src, pos)
	run := triviaRun{end: end, pieces: pieces}
	in.trailing[pos] = run
	return run
}

// lexeme finds the next rough unit of text after pos for error skipping: a
// quoted string up to its closing quote or the end of the line, a run of
// word characters, or a single rune. It returns where the unit starts and
// ends; both are len(src) at the end of input.
func (in *input) lexeme(pos int) (start, end int) {
	src := in.src
	start = in.leadingTrivia(pos).end
	if start >= len(src) {
		return len(src), len(src)
	}
	c := src[start]
	switch {
	case c == '"' || c == '\'':
		end = start + 1
		for end < len(src) && src[end] != c && src[end] != '\n' && src[end] != '\r' {
			if src[end] == '\\' && end+1 < len(src) {
				end++
			}
			end++
		}
		if end < len(src) && src[end] == c {
			end++
		}
	case isIdentifierPart(c):
		end = start + 1
		for end < len(src) && isIdentifierPart(src[end]) {
			end++
		}
	default:
		_, size := utf8.DecodeRuneInString(src[start:])
		end = start + size
	}
	return start, end
}

// atKeyword reports whether the lexeme after pos is a keyword.
func (in *input) atKeyword(pos int) bool {
	start, end := in.lexeme(pos)
	if start >= end || !isIdentifierPart(in.src[start]) {
		return false
	}
	return in.reg.keyword(in.src[start:end])
}

// skipped builds the token covering the unparsed text from pos to end, or
// returns nil when there is nothing but trivia in between.
func (in *input) skipped(pos, end int) *cst.TokenNode {
	if end <= pos {
		return nil
	}
	lead := in.leadingTrivia(pos)
	if lead.end >= end {
		return nil
	}
	return &cst.TokenNode{
		Kind:    kinds.Skipped,
		Range:   cst.TextRange{Start: pos, End: end},
		Text:    in.src[lead.end:end],
		Leading: lead.pieces,
	}
}

// concat joins slices into a fresh one. Memoized results share their slices,
// so they are never appended to in place.
func concat[T any](parts ...[]T) []T {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func label(edges []cst.Edge, name kinds.Field) []cst.Edge {
	out := make([]cst.Edge, len(edges))
	for i, e := range edges {
		out[i] = cst.Edge{Name: name, Node: e.Node}
	}
	return out
}
