// Package parser turns Solidity source text into a lossless syntax tree.
//
// The parser is generated at first use from the grammar in package
// definition: every item becomes a matcher, and matchers are combined by
// the item's kind. Parsing never fails outright. Input that does not fit the
// grammar ends up in Skipped tokens, and the tree still reproduces the
// source byte for byte.
//
// Results are memoized per rule and position, so a parse is linear in the
// size of the input for all but pathological sources. The memo lives only
// for one call; the matchers themselves are shared and safe for concurrent
// use.
package parser
