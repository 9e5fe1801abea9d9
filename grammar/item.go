// Package grammar describes a language as a flat list of named items. Each
// item's kind decides the shape of the tree node it produces and whether a
// single-child node of that item may be collapsed when rendered.
package grammar

// ItemKind is the tag of a grammar item.
type ItemKind int

const (
	KindStruct ItemKind = iota
	KindEnum
	KindRepeated
	KindSeparated
	KindPrecedence
	KindTrivia
	KindKeyword
	KindToken
	KindFragment
)

var itemKindNames = map[ItemKind]string{
	KindStruct:     "Struct",
	KindEnum:       "Enum",
	KindRepeated:   "Repeated",
	KindSeparated:  "Separated",
	KindPrecedence: "Precedence",
	KindTrivia:     "Trivia",
	KindKeyword:    "Keyword",
	KindToken:      "Token",
	KindFragment:   "Fragment",
}

func (k ItemKind) String() string {
	if name, ok := itemKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether items of this kind match raw text instead of
// other items.
func (k ItemKind) IsTerminal() bool {
	switch k {
	case KindTrivia, KindKeyword, KindToken, KindFragment:
		return true
	}
	return false
}

// Inlinable reports whether a node produced by an item of this kind may be
// rendered on the same line as its only child. Lists are always shown.
func (k ItemKind) Inlinable() bool {
	return k != KindRepeated && k != KindSeparated
}

// Scope is a set of sub-languages in which a keyword is reserved.
type Scope uint8

const (
	ScopeSolidity Scope = 1 << iota
	ScopeYul

	ScopeNone Scope = 0
	ScopeBoth       = ScopeSolidity | ScopeYul
)

// Model is the shape of one precedence tier.
type Model int

const (
	BinaryLeft Model = iota
	BinaryRight
	Prefix
	Postfix
)

var modelNames = map[Model]string{
	BinaryLeft:  "BinaryLeft",
	BinaryRight: "BinaryRight",
	Prefix:      "Prefix",
	Postfix:     "Postfix",
}

func (m Model) String() string {
	if name, ok := modelNames[m]; ok {
		return name
	}
	return "Unknown"
}

// Field is one named slot of a Struct or of a precedence tier's operator.
// A field with several Refs matches whichever of them matches first.
type Field struct {
	Name     string
	Refs     []string
	Optional bool
}

// Tier is one level of a precedence ladder.
type Tier struct {
	Name   string
	Model  Model
	Fields []Field
}

// Recovery tells the parser how a Struct may be completed after one of its
// fields fails to match.
//
// With Terminator set, once Commit leading fields matched, input is skipped
// up to and including the terminator. With Open and Close set, input after the
// opening delimiter is skipped up to the matching closer.
type Recovery struct {
	Terminator string
	Commit     int
	Open       string
	Close      string
}

// Item is one named grammar production.
type Item struct {
	Kind ItemKind
	Name string

	// Struct
	Fields   []Field
	Recovery *Recovery

	// Enum
	Variants []string

	// Repeated and Separated
	Element   string
	Separator string
	Resync    bool
	Closer    string

	// Precedence
	Primaries []string
	Tiers     []Tier

	// Terminals
	Scanner      Scanner
	Reserved     Scope
	Excludes     Scope
	Unterminated Scanner
	Closing      string
}

// References lists the names of every item this item refers to, in
// declaration order and without duplicates.
func (it *Item) References() []string {
	var refs []string
	seen := map[string]bool{}
	add := func(names ...string) {
		for _, name := range names {
			if name != "" && !seen[name] {
				seen[name] = true
				refs = append(refs, name)
			}
		}
	}
	for _, f := range it.Fields {
		add(f.Refs...)
	}
	add(it.Variants...)
	add(it.Element, it.Separator)
	add(it.Primaries...)
	for _, t := range it.Tiers {
		for _, f := range t.Fields {
			add(f.Refs...)
		}
	}
	add(scannerRefs(it.Scanner)...)
	add(scannerRefs(it.Unterminated)...)
	return refs
}

// Field returns the field with the given name.
func (it *Item) Field(name string) (Field, bool) {
	for _, f := range it.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
