package grammar

// Scanner is an expression over raw characters used by terminal items.
type Scanner interface {
	scanner()
}

// Atom matches a literal string.
type Atom string

// Range matches one rune between From and To inclusive.
type Range struct {
	From, To rune
}

// Seq matches its parts one after another.
type Seq []Scanner

// Choice matches the alternative that consumes the most input.
type Choice []Scanner

// Opt matches its body or nothing.
type Opt struct{ Body Scanner }

// Many matches its body zero or more times.
type Many struct{ Body Scanner }

// Some matches its body one or more times.
type Some struct{ Body Scanner }

// NotIn matches any single rune that is not in Chars.
type NotIn string

// Ref matches the Fragment or Trivia item with the given name.
type Ref string

// NotFollowedBy matches Body only when Not does not match right after it.
type NotFollowedBy struct {
	Body Scanner
	Not  Scanner
}

func (Atom) scanner()          {}
func (Range) scanner()         {}
func (Seq) scanner()           {}
func (Choice) scanner()        {}
func (Opt) scanner()           {}
func (Many) scanner()          {}
func (Some) scanner()          {}
func (NotIn) scanner()         {}
func (Ref) scanner()           {}
func (NotFollowedBy) scanner() {}

func scannerRefs(s Scanner) []string {
	var refs []string
	var walk func(Scanner)
	walk = func(s Scanner) {
		switch s := s.(type) {
		case Ref:
			refs = append(refs, string(s))
		case Seq:
			for _, part := range s {
				walk(part)
			}
		case Choice:
			for _, part := range s {
				walk(part)
			}
		case Opt:
			walk(s.Body)
		case Many:
			walk(s.Body)
		case Some:
			walk(s.Body)
		case NotFollowedBy:
			walk(s.Body)
			walk(s.Not)
		}
	}
	walk(s)
	return refs
}

// Words returns one Atom per word, for keyword items that accept several
// spellings.
func Words(words ...string) Choice {
	c := make(Choice, len(words))
	for i, w := range words {
		c[i] = Atom(w)
	}
	return c
}

// Chars returns a Choice of one Atom per rune of s.
func Chars(s string) Choice {
	var c Choice
	for _, r := range s {
		c = append(c, Atom(string(r)))
	}
	return c
}
