package parser

import (
	"slices"

	"github.com/dhamidi/sol/solidity/cst"
	"github.com/dhamidi/sol/solidity/kinds"
	"github.com/tliron/commonlog"
)

// Option configures a parse.
type Option func(*options)

type options struct {
	file   string
	logger commonlog.Logger
}

// WithFile names the file being parsed. It only affects error reports.
func WithFile(name string) Option {
	return func(o *options) {
		o.file = name
	}
}

// WithLogger sends per-parse debug output to logger.
func WithLogger(logger commonlog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Output is the result of one parse: a tree that always covers the whole
// input, and the errors found on the way.
type Output struct {
	file   string
	source string
	tree   *cst.RuleNode
	errors []*ParseError
}

func (o *Output) Tree() *cst.RuleNode {
	return o.tree
}

func (o *Output) Errors() []*ParseError {
	return o.errors
}

func (o *Output) IsValid() bool {
	return len(o.errors) == 0
}

func (o *Output) Source() string {
	return o.source
}

func (o *Output) File() string {
	return o.file
}

// CreateTreeCursor returns a cursor positioned at the root of the tree.
func (o *Output) CreateTreeCursor() *cst.CursorWithNames {
	return cst.NewCursorWithNames(o.tree)
}

// ErrorReports renders every error with its source location.
func (o *Output) ErrorReports() []string {
	reports := make([]string, len(o.errors))
	for i, e := range o.errors {
		reports[i] = e.Report(o.file, o.source)
	}
	return reports
}

// Parse parses a complete Solidity source file.
func Parse(src string, opts ...Option) *Output {
	return ParseRule(kinds.SourceUnit, src, opts...)
}

// ParseRule parses src as a single node of the given kind. Operator kinds
// such as AdditiveExpression parse as the expression ladder they belong to.
func ParseRule(kind kinds.RuleKind, src string, opts ...Option) *Output {
	o := options{logger: log}
	for _, opt := range opts {
		opt(&o)
	}

	reg := solidityRegistry()
	out := &Output{file: o.file, source: src}
	m, ok := reg.matcherFor(kind)
	if !ok {
		out.tree = unparsed(kind, src)
		out.errors = []*ParseError{expected(0, kind.String())}
		return out
	}

	in := newInput(src, reg)
	r := m.match(in, 0)
	if !r.ok {
		err := r.err
		if err == nil {
			err = expected(0, kind.String())
		}
		out.tree = unparsed(kind, src)
		out.errors = []*ParseError{err}
	} else {
		out.tree, out.errors = finish(in, r)
	}
	out.errors = normalize(out.errors)

	o.logger.Debugf("parsed %s as %s: %d bytes, %d errors, %d memo entries",
		displayName(o.file), kind, len(src), len(out.errors), len(in.memo))
	return out
}

// finish attaches whatever follows the root match: end-of-file trivia, or a
// skipped token for input the root could not consume.
func finish(in *input, r result) (*cst.RuleNode, []*ParseError) {
	root := r.edges[0].Node.(*cst.RuleNode)
	errs := slices.Clone(r.diags)
	src := in.src

	var tail *cst.TokenNode
	end, pieces, _ := in.reg.endOfFile(src, r.end)
	switch {
	case end == len(src) && end > r.end:
		tail = &cst.TokenNode{
			Kind:    kinds.EndOfFileTrivia,
			Range:   cst.TextRange{Start: r.end, End: end},
			Leading: pieces,
		}
	case end < len(src):
		start := in.leadingTrivia(r.end).end
		errs = append(errs, furthest(r.err, expected(start, "EndOfFile")))
		tail = in.skipped(r.end, len(src))
	}
	if tail == nil {
		return root, errs
	}

	return &cst.RuleNode{
		Kind:  root.Kind,
		Range: cst.TextRange{Start: 0, End: len(src)},
		Edges: concat(root.Edges, []cst.Edge{{Node: tail}}),
	}, errs
}

// unparsed is the tree for input the root rule could not match at all.
func unparsed(kind kinds.RuleKind, src string) *cst.RuleNode {
	root := &cst.RuleNode{Kind: kind, Range: cst.TextRange{End: len(src)}}
	if src != "" {
		root.Edges = []cst.Edge{{Node: &cst.TokenNode{
			Kind:  kinds.Skipped,
			Range: cst.TextRange{End: len(src)},
			Text:  src,
		}}}
	}
	return root
}

func displayName(file string) string {
	if file == "" {
		return "<input>"
	}
	return file
}
