package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/sol/solidity/cst"
)

const outline = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.0;

uint constant MAX = 10;
type Price is uint256;

contract Token {
    uint total;
    event Moved(uint amount);
    error Bad();
    struct Entry { uint x; }
    enum Kind { One }
    modifier only() { _; }
    constructor() {}
    function move() public {}
    receive() external payable {}
}

interface IToken { function move() external; }
library Math {}
`

type flatSymbol struct {
	Name  string
	Kind  SymbolKind
	Depth int
}

func flatten(symbols []Symbol, depth int) []flatSymbol {
	var out []flatSymbol
	for _, s := range symbols {
		out = append(out, flatSymbol{s.Name, s.Kind, depth})
		out = append(out, flatten(s.Children, depth+1)...)
	}
	return out
}

func TestSymbols(t *testing.T) {
	w := New("/proj")
	doc := w.UpdateFile("/proj/token.sol", outline, 0)
	require.True(t, doc.Output.IsValid(), "errors: %v", doc.Output.Errors())

	assert.Equal(t, []flatSymbol{
		{"MAX", SymbolConstant, 0},
		{"Price", SymbolType, 0},
		{"Token", SymbolContract, 0},
		{"total", SymbolVariable, 1},
		{"Moved", SymbolEvent, 1},
		{"Bad", SymbolError, 1},
		{"Entry", SymbolStruct, 1},
		{"Kind", SymbolEnum, 1},
		{"only", SymbolModifier, 1},
		{"constructor", SymbolConstructor, 1},
		{"move", SymbolFunction, 1},
		{"receive", SymbolFunction, 1},
		{"IToken", SymbolInterface, 0},
		{"move", SymbolFunction, 1},
		{"Math", SymbolLibrary, 0},
	}, flatten(doc.Symbols(), 0))
}

func TestSymbolRangesSkipTrivia(t *testing.T) {
	src := "// lead\ncontract  Token {}  // trail\n"
	doc := New("/").UpdateFile("a.sol", src, 0)
	require.True(t, doc.Output.IsValid())

	symbols := doc.Symbols()
	require.Len(t, symbols, 1)
	s := symbols[0]

	assert.Equal(t, "contract  Token {}", src[s.Range.Start:s.Range.End])
	assert.Equal(t, cst.TextRange{Start: 18, End: 23}, s.Selection)
	assert.Equal(t, "Token", src[s.Selection.Start:s.Selection.End])
}
