// Package definition holds the Solidity grammar as a grammar.Definition.
package definition

import (
	"slices"
	"sync"

	"github.com/dhamidi/sol/grammar"
)

// Root is the item a whole source file is parsed as.
const Root = "SourceUnit"

var solidity = sync.OnceValue(func() *grammar.Definition {
	items := slices.Concat(
		sourceUnit(),
		directives(),
		contracts(),
		functions(),
		types(),
		statements(),
		expressions(),
		yul(),
		keywords(),
		tokens(),
		trivia(),
		fragments(),
	)
	return grammar.NewDefinition("Solidity", Root, items).
		WithTrivia("LeadingTrivia", "TrailingTrivia", "EndOfFileTrivia")
})

// Create returns the Solidity definition. Every call returns the same
// read-only value.
func Create() *grammar.Definition {
	return solidity()
}
