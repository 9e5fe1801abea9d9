package grammar

// Struct returns an item matching its fields in order.
func Struct(name string, fields ...Field) *Item {
	return &Item{Kind: KindStruct, Name: name, Fields: fields}
}

// Terminated makes a Struct recover at its terminator field once commit
// leading fields have matched.
func (it *Item) Terminated(terminator string, commit int) *Item {
	if commit < 1 {
		commit = 1
	}
	if it.Recovery == nil {
		it.Recovery = &Recovery{}
	}
	it.Recovery.Terminator = terminator
	it.Recovery.Commit = commit
	return it
}

// Delimited makes a Struct recover at the field named close once the field
// named open has matched.
func (it *Item) Delimited(open, close string) *Item {
	if it.Recovery == nil {
		it.Recovery = &Recovery{}
	}
	it.Recovery.Open = open
	it.Recovery.Close = close
	return it
}

func Enum(name string, variants ...string) *Item {
	return &Item{Kind: KindEnum, Name: name, Variants: variants}
}

func Repeated(name, element string) *Item {
	return &Item{Kind: KindRepeated, Name: name, Element: element}
}

// Resyncing makes a Repeated item skip over input its element cannot match.
// Skipping never crosses an unmatched closer token; an empty closer means the
// list runs to the end of input.
func (it *Item) Resyncing(closer string) *Item {
	it.Resync = true
	it.Closer = closer
	return it
}

func Separated(name, element, separator string) *Item {
	return &Item{Kind: KindSeparated, Name: name, Element: element, Separator: separator}
}

// Precedence returns an operator ladder. Tiers are listed from the loosest
// binding to the tightest.
func Precedence(name string, primaries []string, tiers ...Tier) *Item {
	return &Item{Kind: KindPrecedence, Name: name, Primaries: primaries, Tiers: tiers}
}

func NewTier(name string, model Model, fields ...Field) Tier {
	return Tier{Name: name, Model: model, Fields: fields}
}

// Required returns a mandatory field. Without refs the field refers to the
// item of the same name.
func Required(name string, refs ...string) Field {
	if len(refs) == 0 {
		refs = []string{name}
	}
	return Field{Name: name, Refs: refs}
}

func Optional(name string, refs ...string) Field {
	f := Required(name, refs...)
	f.Optional = true
	return f
}

func Token(name string, s Scanner) *Item {
	return &Item{Kind: KindToken, Name: name, Scanner: s}
}

// Excluding makes an identifier-like token reject words reserved in scope.
func (it *Item) Excluding(scope Scope) *Item {
	it.Excludes = scope
	return it
}

// Lenient lets a token fall back to the unterminated scanner, reporting the
// missing closing text.
func (it *Item) Lenient(unterminated Scanner, closing string) *Item {
	it.Unterminated = unterminated
	it.Closing = closing
	return it
}

func Keyword(name string, s Scanner, reserved Scope) *Item {
	return &Item{Kind: KindKeyword, Name: name, Scanner: s, Reserved: reserved}
}

func Trivia(name string, s Scanner) *Item {
	return &Item{Kind: KindTrivia, Name: name, Scanner: s}
}

func Fragment(name string, s Scanner) *Item {
	return &Item{Kind: KindFragment, Name: name, Scanner: s}
}
