package grammar

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteEBNF writes d in the notation read by golang.org/x/exp/ebnf. The
// start production is named after the definition. Rule items the root does
// not reach (reserved words, trivia) are added to it as alternatives so the
// whole grammar verifies. Character classes written with NotIn widen to the
// full rune range, and NotFollowedBy drops its lookahead.
func WriteEBNF(w io.Writer, d *Definition) error {
	bw := bufio.NewWriter(w)
	start := append([]string{d.Root}, d.unreached()...)
	fmt.Fprintf(bw, "%s = %s .\n\n", d.Name, strings.Join(start, " | "))

	for _, it := range d.items {
		fmt.Fprintf(bw, "%s = %s .\n", it.Name, itemEBNF(it))
		for _, t := range it.Tiers {
			fmt.Fprintf(bw, "%s = %s .\n", t.Name, tierEBNF(it.Name, t))
		}
	}
	return bw.Flush()
}

func (d *Definition) unreached() []string {
	reached := map[string]bool{}
	var visit func(name string)
	visit = func(name string) {
		if reached[name] {
			return
		}
		reached[name] = true
		it, ok := d.index[name]
		if !ok {
			return
		}
		for _, ref := range it.References() {
			visit(ref)
		}
	}
	visit(d.Root)

	var out []string
	for _, it := range d.items {
		if !reached[it.Name] {
			out = append(out, it.Name)
			visit(it.Name)
		}
	}
	return out
}

func itemEBNF(it *Item) string {
	switch it.Kind {
	case KindStruct:
		parts := make([]string, len(it.Fields))
		for i, f := range it.Fields {
			parts[i] = fieldEBNF(f)
		}
		return strings.Join(parts, " ")
	case KindEnum:
		return strings.Join(it.Variants, " | ")
	case KindRepeated:
		return "{ " + it.Element + " }"
	case KindSeparated:
		return fmt.Sprintf("%s { %s %s }", it.Element, it.Separator, it.Element)
	case KindPrecedence:
		alts := make([]string, 0, len(it.Tiers)+len(it.Primaries))
		for _, t := range it.Tiers {
			alts = append(alts, t.Name)
		}
		alts = append(alts, it.Primaries...)
		return strings.Join(alts, " | ")
	default:
		return scannerEBNF(it.Scanner)
	}
}

func tierEBNF(operand string, t Tier) string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = fieldEBNF(f)
	}
	op := strings.Join(parts, " ")
	switch t.Model {
	case Prefix:
		return op + " " + operand
	case Postfix:
		return operand + " " + op
	default:
		return operand + " " + op + " " + operand
	}
}

func fieldEBNF(f Field) string {
	body := f.Refs[0]
	if len(f.Refs) > 1 {
		body = "( " + strings.Join(f.Refs, " | ") + " )"
	}
	if f.Optional {
		return "[ " + body + " ]"
	}
	return body
}

func scannerEBNF(s Scanner) string {
	switch s := s.(type) {
	case Atom:
		return strconv.Quote(string(s))
	case Range:
		return rangeEBNF(s.From, s.To)
	case Seq:
		parts := make([]string, len(s))
		for i, p := range s {
			parts[i] = scannerEBNF(p)
		}
		return "( " + strings.Join(parts, " ") + " )"
	case Choice:
		parts := make([]string, len(s))
		for i, p := range s {
			parts[i] = scannerEBNF(p)
		}
		return "( " + strings.Join(parts, " | ") + " )"
	case Opt:
		return "[ " + scannerEBNF(s.Body) + " ]"
	case Many:
		return "{ " + scannerEBNF(s.Body) + " }"
	case Some:
		body := scannerEBNF(s.Body)
		return body + " { " + body + " }"
	case NotIn:
		return rangeEBNF(0, 0x10FFFF)
	case Ref:
		return string(s)
	case NotFollowedBy:
		return scannerEBNF(s.Body)
	}
	return `""`
}

func rangeEBNF(from, to rune) string {
	return strconv.Quote(string(from)) + " … " + strconv.Quote(string(to))
}
