package parser

import (
	"bytes"

	"github.com/dhamidi/sol/grammar"
	"github.com/dhamidi/sol/solidity/cst"
	"github.com/dhamidi/sol/solidity/kinds"
)

// ref is a forward reference to an item's matcher, resolved once every
// item has been built.
type ref struct {
	name string
	m    matcher
}

func (r *ref) match(in *input, pos int) result {
	return r.m.match(in, pos)
}

// tokenMatcher matches one terminal with its surrounding trivia.
type tokenMatcher struct {
	id      int
	kind    kinds.TokenKind
	name    string
	scan    scanFunc
	keyword bool
	exclude func(word string) bool

	unterminated scanFunc
	closing      string
}

func (t *tokenMatcher) match(in *input, pos int) result {
	key := memoKey{t.id, pos}
	if r, ok := in.memo[key]; ok {
		return r
	}
	r := t.scanAt(in, pos)
	in.memo[key] = r
	return r
}

func (t *tokenMatcher) scanAt(in *input, pos int) result {
	src := in.src
	lead := in.leadingTrivia(pos)
	start := lead.end

	end, ok := t.scan(src, start)
	if ok && end == start {
		ok = false
	}
	if ok && t.keyword && end < len(src) && isIdentifierPart(src[end]) {
		ok = false
	}
	if ok && t.exclude != nil && t.exclude(src[start:end]) {
		ok = false
	}

	var diags []*ParseError
	if !ok && t.unterminated != nil {
		if e, partial := t.unterminated(src, start); partial && e > start {
			end, ok = e, true
			diags = []*ParseError{{
				Offset:   end,
				Expected: []string{"'" + t.closing + "'"},
				Reason:   "Unterminated " + t.name,
			}}
		}
	}
	if !ok {
		return failure(expected(start, t.name))
	}

	trail := in.trailingTrivia(end)
	node := &cst.TokenNode{
		Kind:     t.kind,
		Range:    cst.TextRange{Start: pos, End: trail.end},
		Text:     src[start:end],
		Leading:  lead.pieces,
		Trailing: trail.pieces,
	}
	return result{ok: true, end: trail.end, edges: []cst.Edge{{Node: node}}, diags: diags}
}

// ruleMatcher wraps whatever its body matched into a node of its kind.
type ruleMatcher struct {
	id   int
	kind kinds.RuleKind
	body matcher
}

func (r *ruleMatcher) match(in *input, pos int) result {
	key := memoKey{r.id, pos}
	if res, ok := in.memo[key]; ok {
		return res
	}
	res := r.body.match(in, pos)
	if res.ok {
		node := &cst.RuleNode{
			Kind:  r.kind,
			Range: cst.TextRange{Start: pos, End: res.end},
			Edges: res.edges,
		}
		res.edges = []cst.Edge{{Node: node}}
	}
	in.memo[key] = res
	return res
}

// choice takes the first alternative that matches.
type choice struct {
	alts []matcher
}

func (c *choice) match(in *input, pos int) result {
	var err *ParseError
	for _, alt := range c.alts {
		r := alt.match(in, pos)
		if r.ok {
			r.err = furthest(err, r.err)
			return r
		}
		err = furthest(err, r.err)
	}
	return failure(err)
}

// variant labels the single node matched by its body.
type variant struct {
	body matcher
}

func (v *variant) match(in *input, pos int) result {
	r := v.body.match(in, pos)
	if r.ok {
		r.edges = label(r.edges, kinds.FieldVariant)
	}
	return r
}

type field struct {
	name     kinds.Field
	m        matcher
	optional bool
}

// recoveryPlan holds field indexes for a sequence that can recover. A
// negative index means the kind of recovery is not available.
type recoveryPlan struct {
	terminator int
	commit     int
	open       int
	close      int
}

// sequence matches fields in order and labels what each one produced.
type sequence struct {
	fields   []field
	recovery *recoveryPlan
}

func (s *sequence) match(in *input, pos int) result {
	out := result{ok: true}
	p := pos
	for i, f := range s.fields {
		r := f.m.match(in, p)
		out.err = furthest(out.err, r.err)
		if !r.ok {
			if f.optional {
				continue
			}
			return s.recover(in, p, i, out)
		}
		out.edges = concat(out.edges, label(r.edges, f.name))
		out.diags = concat(out.diags, r.diags)
		p = r.end
	}
	out.end = p
	return out
}

// recover finishes a sequence whose field at index failed at pos, by
// skipping input up to the terminator or the closing delimiter. Without an
// applicable recovery the sequence fails.
func (s *sequence) recover(in *input, pos, index int, out result) result {
	rp := s.recovery
	if rp == nil {
		return failure(out.err)
	}
	var target int
	switch {
	case rp.terminator >= 0 && index >= rp.commit && index <= rp.terminator:
		target = rp.terminator
	case rp.open >= 0 && index > rp.open && index <= rp.close:
		target = rp.close
	default:
		return failure(out.err)
	}

	diag := out.err
	if diag == nil {
		diag = expected(in.leadingTrivia(pos).end, s.fields[index].name.String())
	}
	end, found := skipUntil(in, pos, s.fields[target].m, target == rp.terminator)

	res := result{ok: true, end: end, edges: out.edges, diags: concat(out.diags, []*ParseError{diag})}
	if tok := in.skipped(pos, end); tok != nil {
		res.edges = concat(res.edges, []cst.Edge{{Node: tok}})
	}
	if found.ok {
		res.end = found.end
		res.edges = concat(res.edges, label(found.edges, s.fields[target].name))
		res.diags = concat(res.diags, found.diags)
	}
	return res
}

// skipUntil moves over input until target matches outside of any brackets.
// A terminator search gives up before a closing brace it did not open; both
// searches give up at the end of input. It returns where skipping stopped and
// the target's match, if any.
func skipUntil(in *input, pos int, target matcher, terminator bool) (int, result) {
	q := pos
	depth := 0
	for {
		if depth == 0 {
			if r := target.match(in, q); r.ok {
				return q, r
			}
		}
		start, end := in.lexeme(q)
		if start >= len(in.src) {
			return q, result{}
		}
		switch in.src[start] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			} else if terminator && in.src[start] == '}' {
				return q, result{}
			}
		}
		q = end
	}
}

// repeated matches its element as often as it can. With resync set, input
// the element cannot match is skipped chunk by chunk and reported. Its own
// slices are fresh, so the loop appends to them directly.
type repeated struct {
	element matcher
	resync  bool
	closer  matcher
	name    string
}

func (r *repeated) match(in *input, pos int) result {
	out := result{ok: true}
	p := pos
	for {
		e := r.element.match(in, p)
		if e.ok && e.end > p {
			out.edges = append(out.edges, e.edges...)
			out.diags = append(out.diags, e.diags...)
			out.err = furthest(out.err, e.err)
			p = e.end
			continue
		}
		if e.ok || !r.resync {
			out.err = furthest(out.err, e.err)
			break
		}
		start, _ := in.lexeme(p)
		if start >= len(in.src) {
			out.err = furthest(out.err, e.err)
			break
		}
		if r.closer != nil {
			if c := r.closer.match(in, p); c.ok {
				out.err = furthest(out.err, e.err)
				break
			}
		}
		q := skipChunk(in, p, r.closer, r.element)
		tok := in.skipped(p, q)
		if tok == nil {
			break
		}
		diag := e.err
		if diag == nil {
			diag = expected(start, r.name)
		}
		out.edges = append(out.edges, cst.Edge{Node: tok})
		out.diags = append(out.diags, diag)
		p = q
	}
	out.end = p
	return out
}

// skipChunk skips one statement-sized piece of input: up to and including a
// semicolon or a balanced brace block at the outer level, or up to a
// boundary where element matches again. A boundary is a keyword, or the
// token after a stray closer. Skipping stops before a closing brace the
// chunk did not open when a closer is given; otherwise stray closers are
// skipped.
func skipChunk(in *input, pos int, closer, element matcher) int {
	q := pos
	var open []byte
	stray := false
	for {
		if len(open) == 0 && q > pos {
			if closer != nil {
				if c := closer.match(in, q); c.ok {
					return q
				}
			}
			if stray || in.atKeyword(q) {
				if e := element.match(in, q); e.ok && e.end > q {
					return q
				}
			}
		}
		start, end := in.lexeme(q)
		if start >= len(in.src) {
			return q
		}
		stray = false
		c := in.src[start]
		switch c {
		case ';':
			if len(open) == 0 {
				return end
			}
		case '(', '[', '{':
			open = append(open, c)
		case ')', ']', '}':
			i := bytes.LastIndexByte(open, opener(c))
			switch {
			case i >= 0:
				open = open[:i]
				if c == '}' && len(open) == 0 {
					return end
				}
			case c == '}' && closer != nil:
				return q
			case c == '}' || len(open) == 0:
				open = open[:0]
				stray = true
			}
		}
		q = end
	}
}

func opener(closer byte) byte {
	switch closer {
	case ')':
		return '('
	case ']':
		return '['
	}
	return '{'
}

// separated matches one or more elements between separators. A trailing
// separator without an element after it is left unconsumed.
type separated struct {
	element   matcher
	separator matcher
}

func (s *separated) match(in *input, pos int) result {
	first := s.element.match(in, pos)
	if !first.ok {
		return failure(first.err)
	}
	out := result{ok: true, end: first.end, edges: concat(first.edges), diags: concat(first.diags), err: first.err}
	for {
		sep := s.separator.match(in, out.end)
		if !sep.ok {
			out.err = furthest(out.err, sep.err)
			return out
		}
		next := s.element.match(in, sep.end)
		if !next.ok {
			out.err = furthest(out.err, next.err)
			return out
		}
		out.edges = append(append(out.edges, sep.edges...), next.edges...)
		out.diags = append(append(out.diags, sep.diags...), next.diags...)
		out.err = furthest(out.err, next.err)
		out.end = next.end
	}
}

// tier is one operator level of a precedence ladder. Higher power binds
// tighter.
type tier struct {
	kind  kinds.RuleKind
	model grammar.Model
	power int
	op    *sequence
}

// precedence parses an operator ladder by precedence climbing. Every operand
// is wrapped in a node of the ladder's own kind.
type precedence struct {
	kind      kinds.RuleKind
	primary   matcher
	prefix    []*tier
	operators []*tier
}

type operand struct {
	ok    bool
	node  cst.Node
	end   int
	err   *ParseError
	diags []*ParseError
}

func (p *precedence) match(in *input, pos int) result {
	o := p.operand(in, pos, 0)
	if !o.ok {
		return failure(o.err)
	}
	return result{
		ok:    true,
		end:   o.end,
		edges: []cst.Edge{{Name: kinds.FieldVariant, Node: o.node}},
		err:   o.err,
		diags: o.diags,
	}
}

func (p *precedence) operand(in *input, pos, minPower int) operand {
	var lhs operand
	var err *ParseError
	for _, t := range p.prefix {
		op := t.op.match(in, pos)
		if !op.ok {
			err = furthest(err, op.err)
			continue
		}
		rhs := p.operand(in, op.end, t.power)
		if !rhs.ok {
			err = furthest(err, rhs.err)
			continue
		}
		lhs = operand{
			ok:    true,
			node:  p.build(t, pos, nil, op, &rhs),
			end:   rhs.end,
			err:   furthest(op.err, rhs.err),
			diags: concat(op.diags, rhs.diags),
		}
		break
	}
	if !lhs.ok {
		r := p.primary.match(in, pos)
		if !r.ok {
			return operand{err: furthest(err, r.err)}
		}
		lhs = operand{ok: true, node: r.edges[0].Node, end: r.end, err: r.err, diags: r.diags}
	}
	lhs.err = furthest(lhs.err, err)

	for {
		applied := false
		for _, t := range p.operators {
			if t.power <= minPower {
				continue
			}
			op := t.op.match(in, lhs.end)
			if !op.ok {
				lhs.err = furthest(lhs.err, op.err)
				continue
			}
			if t.model == grammar.Postfix {
				lhs = operand{
					ok:    true,
					node:  p.build(t, pos, &lhs, op, nil),
					end:   op.end,
					err:   furthest(lhs.err, op.err),
					diags: concat(lhs.diags, op.diags),
				}
			} else {
				next := t.power
				if t.model == grammar.BinaryRight {
					next--
				}
				rhs := p.operand(in, op.end, next)
				if !rhs.ok {
					lhs.err = furthest(lhs.err, op.err, rhs.err)
					continue
				}
				lhs = operand{
					ok:    true,
					node:  p.build(t, pos, &lhs, op, &rhs),
					end:   rhs.end,
					err:   furthest(lhs.err, op.err, rhs.err),
					diags: concat(lhs.diags, op.diags, rhs.diags),
				}
			}
			applied = true
			break
		}
		if !applied {
			return lhs
		}
	}
}

func (p *precedence) build(t *tier, start int, lhs *operand, op result, rhs *operand) *cst.RuleNode {
	var edges []cst.Edge
	end := op.end
	if lhs != nil {
		name := kinds.FieldLeftOperand
		if t.model == grammar.Postfix {
			name = kinds.FieldOperand
		}
		edges = append(edges, cst.Edge{Name: name, Node: p.wrap(lhs.node)})
	}
	edges = append(edges, op.edges...)
	if rhs != nil {
		name := kinds.FieldRightOperand
		if t.model == grammar.Prefix {
			name = kinds.FieldOperand
		}
		edges = append(edges, cst.Edge{Name: name, Node: p.wrap(rhs.node)})
		end = rhs.end
	}
	return &cst.RuleNode{Kind: t.kind, Range: cst.TextRange{Start: start, End: end}, Edges: edges}
}

func (p *precedence) wrap(n cst.Node) *cst.RuleNode {
	return &cst.RuleNode{
		Kind:  p.kind,
		Range: n.TextRange(),
		Edges: []cst.Edge{{Name: kinds.FieldVariant, Node: n}},
	}
}
