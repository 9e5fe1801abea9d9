package parser

import (
	"fmt"
	"sync"

	"github.com/dhamidi/sol/grammar"
	"github.com/dhamidi/sol/solidity/definition"
	"github.com/dhamidi/sol/solidity/kinds"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("sol.parser")

// registry holds one matcher per grammar item. It is built once and only
// read afterwards, so parses may share it.
type registry struct {
	def   *grammar.Definition
	refs  map[string]*ref
	rules map[kinds.RuleKind]matcher
	tiers map[kinds.RuleKind]kinds.RuleKind

	leading, trailing, endOfFile triviaFunc
	keyword                      func(word string) bool

	ids int
}

var solidityRegistry = sync.OnceValue(func() *registry {
	reg, err := build(definition.Create())
	if err != nil {
		panic(err)
	}
	return reg
})

func build(def *grammar.Definition) (*registry, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("parser: invalid grammar: %w", err)
	}
	reg := &registry{
		def:   def,
		refs:  make(map[string]*ref),
		rules: make(map[kinds.RuleKind]matcher),
		tiers: make(map[kinds.RuleKind]kinds.RuleKind),
	}
	c := newCompiler(def)
	reg.leading = c.trivia(def.MustLookup(def.LeadingTrivia).Scanner)
	reg.trailing = c.trivia(def.MustLookup(def.TrailingTrivia).Scanner)
	reg.endOfFile = c.trivia(def.MustLookup(def.EndOfFileTrivia).Scanner)
	reg.keyword = c.anyKeyword()

	for _, it := range def.Items() {
		if it.Kind != grammar.KindFragment && it.Kind != grammar.KindTrivia {
			reg.refs[it.Name] = &ref{name: it.Name}
		}
	}

	for _, it := range def.Items() {
		r, ok := reg.refs[it.Name]
		if !ok {
			continue
		}
		m, err := reg.item(c, it)
		if err != nil {
			return nil, err
		}
		r.m = m
	}

	log.Debugf("built %d matchers for %s", len(reg.refs), def.Name)
	return reg, nil
}

func (reg *registry) nextID() int {
	reg.ids++
	return reg.ids
}

func (reg *registry) item(c *compiler, it *grammar.Item) (matcher, error) {
	if it.Kind.IsTerminal() {
		return reg.token(c, it)
	}

	kind, ok := kinds.ParseRuleKind(it.Name)
	if !ok {
		return nil, fmt.Errorf("parser: no rule kind for %s", it.Name)
	}
	rm := &ruleMatcher{id: reg.nextID(), kind: kind}
	reg.rules[kind] = rm

	switch it.Kind {
	case grammar.KindStruct:
		seq, err := reg.sequence(it.Fields)
		if err != nil {
			return nil, err
		}
		if rec := it.Recovery; rec != nil {
			seq.recovery = &recoveryPlan{
				terminator: fieldIndex(it.Fields, rec.Terminator),
				commit:     rec.Commit,
				open:       fieldIndex(it.Fields, rec.Open),
				close:      fieldIndex(it.Fields, rec.Close),
			}
		}
		rm.body = seq
	case grammar.KindEnum:
		rm.body = &variant{body: reg.choice(it.Variants)}
	case grammar.KindRepeated:
		rep := &repeated{element: reg.refs[it.Element], resync: it.Resync, name: it.Element}
		if it.Closer != "" {
			rep.closer = reg.refs[it.Closer]
		}
		rm.body = rep
	case grammar.KindSeparated:
		rm.body = &separated{element: reg.refs[it.Element], separator: reg.refs[it.Separator]}
	case grammar.KindPrecedence:
		p, err := reg.precedence(kind, it)
		if err != nil {
			return nil, err
		}
		rm.body = p
	default:
		return nil, fmt.Errorf("parser: cannot build %s item %s", it.Kind, it.Name)
	}
	return rm, nil
}

func (reg *registry) token(c *compiler, it *grammar.Item) (matcher, error) {
	kind, ok := kinds.ParseTokenKind(it.Name)
	if !ok {
		return nil, fmt.Errorf("parser: no token kind for %s", it.Name)
	}
	t := &tokenMatcher{
		id:      reg.nextID(),
		kind:    kind,
		name:    it.Name,
		scan:    c.compile(it.Scanner),
		keyword: it.Kind == grammar.KindKeyword,
	}
	if it.Excludes != grammar.ScopeNone {
		t.exclude = c.reservedWords(it.Excludes)
	}
	if it.Unterminated != nil {
		t.unterminated = c.compile(it.Unterminated)
		t.closing = it.Closing
	}
	return t, nil
}

func (reg *registry) choice(names []string) matcher {
	if len(names) == 1 {
		return reg.refs[names[0]]
	}
	alts := make([]matcher, len(names))
	for i, name := range names {
		alts[i] = reg.refs[name]
	}
	return &choice{alts: alts}
}

func (reg *registry) sequence(fields []grammar.Field) (*sequence, error) {
	seq := &sequence{fields: make([]field, len(fields))}
	for i, f := range fields {
		name, ok := kinds.ParseField(f.Name)
		if !ok {
			return nil, fmt.Errorf("parser: unknown field %s", f.Name)
		}
		seq.fields[i] = field{name: name, m: reg.choice(f.Refs), optional: f.Optional}
	}
	return seq, nil
}

func (reg *registry) precedence(kind kinds.RuleKind, it *grammar.Item) (*precedence, error) {
	p := &precedence{kind: kind, primary: reg.choice(it.Primaries)}
	for i, t := range it.Tiers {
		tk, ok := kinds.ParseRuleKind(t.Name)
		if !ok {
			return nil, fmt.Errorf("parser: no rule kind for %s", t.Name)
		}
		op, err := reg.sequence(t.Fields)
		if err != nil {
			return nil, err
		}
		reg.tiers[tk] = kind
		level := &tier{kind: tk, model: t.Model, power: i + 1, op: op}
		if t.Model == grammar.Prefix {
			p.prefix = append(p.prefix, level)
		} else {
			p.operators = append(p.operators, level)
		}
	}
	return p, nil
}

func fieldIndex(fields []grammar.Field, name string) int {
	if name == "" {
		return -1
	}
	for i, f := range fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// matcherFor returns the matcher that parses a rule kind. Tier kinds have
// no matcher of their own and parse as the ladder they belong to.
func (reg *registry) matcherFor(kind kinds.RuleKind) (matcher, bool) {
	if owner, ok := reg.tiers[kind]; ok {
		kind = owner
	}
	m, ok := reg.rules[kind]
	return m, ok
}
