// Package kinds enumerates the node kinds and field names of the Solidity
// syntax tree. The constants live in kinds_gen.go, which is regenerated from
// the grammar definition with `ahi kinds`.
package kinds

import "sync"

// RuleKind names a non-terminal node.
type RuleKind uint16

// TokenKind names a terminal node or a trivia piece.
type TokenKind uint16

// Field names the slot a child occupies in its parent. FieldNone marks
// children that are not bound to a slot, such as list elements.
type Field uint16

func (k RuleKind) String() string {
	if int(k) < len(ruleKindNames) {
		return ruleKindNames[k]
	}
	return "Unknown"
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "Unknown"
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "Unknown"
}

// RuleKinds returns every rule kind in declaration order.
func RuleKinds() []RuleKind {
	out := make([]RuleKind, len(ruleKindNames))
	for i := range out {
		out[i] = RuleKind(i)
	}
	return out
}

// TokenKinds returns every token kind in declaration order.
func TokenKinds() []TokenKind {
	out := make([]TokenKind, len(tokenKindNames))
	for i := range out {
		out[i] = TokenKind(i)
	}
	return out
}

// Fields returns every field name except FieldNone.
func Fields() []Field {
	out := make([]Field, 0, len(fieldNames)-1)
	for i := 1; i < len(fieldNames); i++ {
		out = append(out, Field(i))
	}
	return out
}

type lookup struct {
	rules  map[string]RuleKind
	tokens map[string]TokenKind
	fields map[string]Field
}

var lookups = sync.OnceValue(func() *lookup {
	l := &lookup{
		rules:  make(map[string]RuleKind, len(ruleKindNames)),
		tokens: make(map[string]TokenKind, len(tokenKindNames)),
		fields: make(map[string]Field, len(fieldNames)),
	}
	for i, name := range ruleKindNames {
		l.rules[name] = RuleKind(i)
	}
	for i, name := range tokenKindNames {
		l.tokens[name] = TokenKind(i)
	}
	for i, name := range fieldNames {
		if i > 0 {
			l.fields[name] = Field(i)
		}
	}
	return l
})

func ParseRuleKind(name string) (RuleKind, bool) {
	k, ok := lookups().rules[name]
	return k, ok
}

func ParseTokenKind(name string) (TokenKind, bool) {
	k, ok := lookups().tokens[name]
	return k, ok
}

func ParseField(name string) (Field, bool) {
	f, ok := lookups().fields[name]
	return f, ok
}
