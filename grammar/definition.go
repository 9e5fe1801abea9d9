package grammar

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownItem is returned when a name does not belong to the definition.
var ErrUnknownItem = errors.New("unknown grammar item")

// Definition is a complete, immutable grammar.
type Definition struct {
	Name            string
	Root            string
	LeadingTrivia   string
	TrailingTrivia  string
	EndOfFileTrivia string

	items []*Item
	index map[string]*Item
	dups  []string

	nonInlinableOnce sync.Once
	nonInlinable     map[string]bool
}

func NewDefinition(name, root string, items []*Item) *Definition {
	d := &Definition{
		Name:  name,
		Root:  root,
		items: items,
		index: make(map[string]*Item, len(items)),
	}
	for _, it := range items {
		if _, ok := d.index[it.Name]; ok {
			d.dups = append(d.dups, it.Name)
		}
		d.index[it.Name] = it
	}
	return d
}

// WithTrivia names the trivia items used before tokens, after tokens and at
// the end of input.
func (d *Definition) WithTrivia(leading, trailing, endOfFile string) *Definition {
	d.LeadingTrivia = leading
	d.TrailingTrivia = trailing
	d.EndOfFileTrivia = endOfFile
	return d
}

// Items returns the items in declaration order.
func (d *Definition) Items() []*Item {
	return d.items
}

func (d *Definition) Lookup(name string) (*Item, error) {
	it, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", d.Name, ErrUnknownItem, name)
	}
	return it, nil
}

// MustLookup is Lookup for names taken from the definition itself.
func (d *Definition) MustLookup(name string) *Item {
	it, err := d.Lookup(name)
	if err != nil {
		panic(err)
	}
	return it
}

// NonInlinable returns the names of the items whose nodes are never collapsed
// into their only child. The set is computed on first use and shared.
func (d *Definition) NonInlinable() map[string]bool {
	d.nonInlinableOnce.Do(func() {
		d.nonInlinable = make(map[string]bool)
		for _, it := range d.items {
			if !it.Kind.Inlinable() {
				d.nonInlinable[it.Name] = true
			}
		}
	})
	return d.nonInlinable
}

// IsInlinable reports whether a single-child node of the named item may be
// collapsed into its child.
func (d *Definition) IsInlinable(name string) bool {
	return !d.NonInlinable()[name]
}

// RuleNames lists every name a rule node can carry: non-terminal items and
// the tiers of precedence items, in declaration order.
func (d *Definition) RuleNames() []string {
	var names []string
	for _, it := range d.items {
		if it.Kind.IsTerminal() {
			continue
		}
		names = append(names, it.Name)
		for _, t := range it.Tiers {
			names = append(names, t.Name)
		}
	}
	return names
}

// TokenNames lists every terminal that can appear as a token or trivia
// piece. Fragments only exist inside other terminals.
func (d *Definition) TokenNames() []string {
	var names []string
	for _, it := range d.items {
		if it.Kind.IsTerminal() && it.Kind != KindFragment {
			names = append(names, it.Name)
		}
	}
	return names
}

// FieldNames lists the distinct field names used by structs and tiers,
// sorted in first-use order.
func (d *Definition) FieldNames() []string {
	var names []string
	seen := map[string]bool{}
	add := func(fields []Field) {
		for _, f := range fields {
			if !seen[f.Name] {
				seen[f.Name] = true
				names = append(names, f.Name)
			}
		}
	}
	for _, it := range d.items {
		add(it.Fields)
		for _, t := range it.Tiers {
			add(t.Fields)
		}
	}
	return names
}

// Validate checks that the definition is internally consistent.
func (d *Definition) Validate() error {
	var errs []error
	for _, name := range d.dups {
		errs = append(errs, fmt.Errorf("duplicate item %q", name))
	}

	root, err := d.Lookup(d.Root)
	if err != nil {
		errs = append(errs, fmt.Errorf("root: %w", err))
	} else if root.Kind.IsTerminal() {
		errs = append(errs, fmt.Errorf("root %q is a terminal", d.Root))
	}

	for _, name := range []string{d.LeadingTrivia, d.TrailingTrivia, d.EndOfFileTrivia} {
		it, err := d.Lookup(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("trivia: %w", err))
			continue
		}
		if it.Kind != KindTrivia {
			errs = append(errs, fmt.Errorf("trivia %q is a %s", name, it.Kind))
		}
	}

	for _, it := range d.items {
		for _, ref := range it.References() {
			target, err := d.Lookup(ref)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", it.Name, err))
				continue
			}
			if it.Kind.IsTerminal() && !target.Kind.IsTerminal() {
				errs = append(errs, fmt.Errorf("%s: terminal refers to %s %q", it.Name, target.Kind, ref))
			}
		}
		errs = append(errs, d.validateShape(it)...)
	}
	return errors.Join(errs...)
}

func (d *Definition) validateShape(it *Item) []error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: "+format, append([]any{it.Name}, args...)...))
	}
	switch it.Kind {
	case KindStruct:
		if len(it.Fields) == 0 {
			bad("struct has no fields")
		}
		if r := it.Recovery; r != nil {
			for _, name := range []string{r.Terminator, r.Open, r.Close} {
				if name == "" {
					continue
				}
				if _, ok := it.Field(name); !ok {
					bad("recovery names missing field %q", name)
				}
			}
		}
	case KindEnum:
		if len(it.Variants) == 0 {
			bad("enum has no variants")
		}
	case KindRepeated:
		if it.Element == "" {
			bad("repeated has no element")
		}
	case KindSeparated:
		if it.Element == "" || it.Separator == "" {
			bad("separated needs an element and a separator")
		}
	case KindPrecedence:
		if len(it.Primaries) == 0 {
			bad("precedence has no primaries")
		}
		for _, t := range it.Tiers {
			if len(t.Fields) == 0 {
				bad("tier %s has no operator", t.Name)
			}
		}
	default:
		if it.Scanner == nil {
			bad("terminal has no scanner")
		}
	}
	return errs
}
