package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/sol/grammar"
	"github.com/dhamidi/sol/solidity/cst"
	"github.com/dhamidi/sol/solidity/kinds"
)

// scanFunc matches raw text at pos and returns where the match ends.
type scanFunc func(src string, pos int) (int, bool)

// triviaFunc is a scanFunc that also splits what it matched into pieces.
type triviaFunc func(src string, pos int) (int, []cst.Trivia, bool)

// compiler turns scanner expressions into closures. Named fragments are
// compiled once and may refer to each other.
type compiler struct {
	def   *grammar.Definition
	named map[string]*scanFunc
}

func newCompiler(def *grammar.Definition) *compiler {
	return &compiler{def: def, named: make(map[string]*scanFunc)}
}

func (c *compiler) compile(s grammar.Scanner) scanFunc {
	switch s := s.(type) {
	case grammar.Atom:
		text := string(s)
		return func(src string, pos int) (int, bool) {
			if strings.HasPrefix(src[pos:], text) {
				return pos + len(text), true
			}
			return pos, false
		}
	case grammar.Range:
		return func(src string, pos int) (int, bool) {
			if pos >= len(src) {
				return pos, false
			}
			r, size := utf8.DecodeRuneInString(src[pos:])
			if r == utf8.RuneError && size <= 1 {
				return pos, false
			}
			if r < s.From || r > s.To {
				return pos, false
			}
			return pos + size, true
		}
	case grammar.NotIn:
		chars := string(s)
		return func(src string, pos int) (int, bool) {
			if pos >= len(src) {
				return pos, false
			}
			r, size := utf8.DecodeRuneInString(src[pos:])
			if size == 1 && r == utf8.RuneError {
				return pos + 1, true
			}
			if strings.ContainsRune(chars, r) {
				return pos, false
			}
			return pos + size, true
		}
	case grammar.Seq:
		parts := c.compileAll(s)
		return func(src string, pos int) (int, bool) {
			p := pos
			for _, part := range parts {
				e, ok := part(src, p)
				if !ok {
					return pos, false
				}
				p = e
			}
			return p, true
		}
	case grammar.Choice:
		alts := c.compileAll(s)
		return func(src string, pos int) (int, bool) {
			best, found := pos, false
			for _, alt := range alts {
				if e, ok := alt(src, pos); ok && (!found || e > best) {
					best, found = e, true
				}
			}
			return best, found
		}
	case grammar.Opt:
		body := c.compile(s.Body)
		return func(src string, pos int) (int, bool) {
			if e, ok := body(src, pos); ok {
				return e, true
			}
			return pos, true
		}
	case grammar.Many:
		body := c.compile(s.Body)
		return func(src string, pos int) (int, bool) {
			return repeat(body, src, pos), true
		}
	case grammar.Some:
		body := c.compile(s.Body)
		return func(src string, pos int) (int, bool) {
			e, ok := body(src, pos)
			if !ok || e == pos {
				return pos, false
			}
			return repeat(body, src, e), true
		}
	case grammar.NotFollowedBy:
		body, not := c.compile(s.Body), c.compile(s.Not)
		return func(src string, pos int) (int, bool) {
			e, ok := body(src, pos)
			if !ok {
				return pos, false
			}
			if _, bad := not(src, e); bad {
				return pos, false
			}
			return e, true
		}
	case grammar.Ref:
		return c.ref(string(s))
	}
	return func(src string, pos int) (int, bool) { return pos, false }
}

func (c *compiler) compileAll(parts []grammar.Scanner) []scanFunc {
	out := make([]scanFunc, len(parts))
	for i, p := range parts {
		out[i] = c.compile(p)
	}
	return out
}

func (c *compiler) ref(name string) scanFunc {
	f, ok := c.named[name]
	if !ok {
		f = new(scanFunc)
		c.named[name] = f
		*f = c.compile(c.def.MustLookup(name).Scanner)
	}
	return func(src string, pos int) (int, bool) {
		return (*f)(src, pos)
	}
}

func repeat(body scanFunc, src string, pos int) int {
	for {
		e, ok := body(src, pos)
		if !ok || e == pos {
			return pos
		}
		pos = e
	}
}

// trivia compiles a trivia expression. Every Ref it reaches becomes one piece
// of the result, named after the referenced item.
func (c *compiler) trivia(s grammar.Scanner) triviaFunc {
	switch s := s.(type) {
	case grammar.Ref:
		name := string(s)
		kind, ok := kinds.ParseTokenKind(name)
		if !ok {
			panic("parser: no token kind for trivia " + name)
		}
		scan := c.ref(name)
		return func(src string, pos int) (int, []cst.Trivia, bool) {
			e, ok := scan(src, pos)
			if !ok || e == pos {
				return pos, nil, false
			}
			return e, []cst.Trivia{{Kind: kind, Range: cst.TextRange{Start: pos, End: e}, Text: src[pos:e]}}, true
		}
	case grammar.Seq:
		parts := c.triviaAll(s)
		return func(src string, pos int) (int, []cst.Trivia, bool) {
			p := pos
			var pieces []cst.Trivia
			for _, part := range parts {
				e, got, ok := part(src, p)
				if !ok {
					return pos, nil, false
				}
				pieces = append(pieces, got...)
				p = e
			}
			return p, pieces, true
		}
	case grammar.Choice:
		alts := c.triviaAll(s)
		return func(src string, pos int) (int, []cst.Trivia, bool) {
			best, found := pos, false
			var pieces []cst.Trivia
			for _, alt := range alts {
				if e, got, ok := alt(src, pos); ok && (!found || e > best) {
					best, pieces, found = e, got, true
				}
			}
			return best, pieces, found
		}
	case grammar.Opt:
		body := c.trivia(s.Body)
		return func(src string, pos int) (int, []cst.Trivia, bool) {
			if e, pieces, ok := body(src, pos); ok {
				return e, pieces, true
			}
			return pos, nil, true
		}
	case grammar.Many:
		body := c.trivia(s.Body)
		return func(src string, pos int) (int, []cst.Trivia, bool) {
			var pieces []cst.Trivia
			for {
				e, got, ok := body(src, pos)
				if !ok || e == pos {
					return pos, pieces, true
				}
				pieces = append(pieces, got...)
				pos = e
			}
		}
	}
	panic("parser: unsupported trivia expression")
}

func (c *compiler) triviaAll(parts []grammar.Scanner) []triviaFunc {
	out := make([]triviaFunc, len(parts))
	for i, p := range parts {
		out[i] = c.trivia(p)
	}
	return out
}

// reservedWords reports whether a word is a keyword reserved in scope. Each
// candidate keyword must match the whole word.
func (c *compiler) reservedWords(scope grammar.Scope) func(word string) bool {
	return c.keywords(func(it *grammar.Item) bool { return it.Reserved&scope != 0 })
}

// anyKeyword reports whether a word is a keyword, reserved or contextual.
func (c *compiler) anyKeyword() func(word string) bool {
	return c.keywords(func(*grammar.Item) bool { return true })
}

func (c *compiler) keywords(include func(*grammar.Item) bool) func(word string) bool {
	var scans []scanFunc
	for _, it := range c.def.Items() {
		if it.Kind == grammar.KindKeyword && include(it) {
			scans = append(scans, c.compile(it.Scanner))
		}
	}
	return func(word string) bool {
		for _, scan := range scans {
			if e, ok := scan(word, 0); ok && e == len(word) {
				return true
			}
		}
		return false
	}
}

func isIdentifierPart(c byte) bool {
	return c == '_' || c == '$' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
