package workspace

import (
	"github.com/dhamidi/sol/solidity/cst"
	"github.com/dhamidi/sol/solidity/kinds"
)

type SymbolKind int

const (
	SymbolContract SymbolKind = iota
	SymbolInterface
	SymbolLibrary
	SymbolFunction
	SymbolConstructor
	SymbolModifier
	SymbolEvent
	SymbolError
	SymbolStruct
	SymbolEnum
	SymbolType
	SymbolConstant
	SymbolVariable
)

// Symbol is a named definition and the definitions nested in it. Range and
// Selection exclude trivia.
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Range     cst.TextRange
	Selection cst.TextRange
	Children  []Symbol
}

var symbolKinds = map[kinds.RuleKind]SymbolKind{
	kinds.ContractDefinition:             SymbolContract,
	kinds.InterfaceDefinition:            SymbolInterface,
	kinds.LibraryDefinition:              SymbolLibrary,
	kinds.FunctionDefinition:             SymbolFunction,
	kinds.ReceiveFunctionDefinition:      SymbolFunction,
	kinds.FallbackFunctionDefinition:     SymbolFunction,
	kinds.ConstructorDefinition:          SymbolConstructor,
	kinds.ModifierDefinition:             SymbolModifier,
	kinds.EventDefinition:                SymbolEvent,
	kinds.ErrorDefinition:                SymbolError,
	kinds.StructDefinition:               SymbolStruct,
	kinds.EnumDefinition:                 SymbolEnum,
	kinds.UserDefinedValueTypeDefinition: SymbolType,
	kinds.ConstantDefinition:             SymbolConstant,
	kinds.StateVariableDefinition:        SymbolVariable,
}

// Symbols returns the outline of the document.
func (d *Document) Symbols() []Symbol {
	return collectSymbols(d.Output.Tree())
}

func collectSymbols(n cst.Node) []Symbol {
	rule, ok := n.(*cst.RuleNode)
	if !ok {
		return nil
	}

	var children []Symbol
	for child := range rule.Children() {
		children = append(children, collectSymbols(child)...)
	}

	kind, ok := symbolKinds[rule.Kind]
	if !ok {
		return children
	}
	sym := Symbol{
		Kind:     kind,
		Range:    significant(rule),
		Children: children,
	}
	sym.Name, sym.Selection = symbolName(rule)
	return []Symbol{sym}
}

// symbolName is the text of the Name field, or the leading keyword for
// definitions without one, such as constructors.
func symbolName(rule *cst.RuleNode) (string, cst.TextRange) {
	n := rule.Child(kinds.FieldName)
	if n == nil {
		n = rule
	}
	for tok := range cst.Tokens(n) {
		if !tok.IsSkipped() && tok.Text != "" {
			return tok.Text, tok.SignificantRange()
		}
	}
	r := rule.TextRange()
	return rule.Kind.String(), cst.TextRange{Start: r.Start, End: r.Start}
}

// significant is the range from the first to the last byte of token text
// under n.
func significant(n cst.Node) cst.TextRange {
	var r cst.TextRange
	first := true
	for tok := range cst.Tokens(n) {
		if tok.Text == "" {
			continue
		}
		sr := tok.SignificantRange()
		if first {
			r.Start = sr.Start
			first = false
		}
		r.End = sr.End
	}
	if first {
		start := n.TextRange().Start
		return cst.TextRange{Start: start, End: start}
	}
	return r
}
