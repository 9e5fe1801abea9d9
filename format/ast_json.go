package format

import (
	"github.com/dhamidi/sol/solidity/cst"
	"github.com/dhamidi/sol/solidity/kinds"
)

type astJSONNode struct {
	Kind     string          `json:"kind"`
	Field    string          `json:"field,omitempty"`
	Range    astJSONRange    `json:"range"`
	Text     *string         `json:"text,omitempty"`
	Leading  []astJSONTrivia `json:"leading,omitempty"`
	Trailing []astJSONTrivia `json:"trailing,omitempty"`
	Children []*astJSONNode  `json:"children,omitempty"`
}

type astJSONRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type astJSONTrivia struct {
	Kind  string       `json:"kind"`
	Range astJSONRange `json:"range"`
	Text  string       `json:"text"`
}

func rangeToJSON(r cst.TextRange) astJSONRange {
	return astJSONRange{Start: r.Start, End: r.End}
}

func triviaToJSON(pieces []cst.Trivia) []astJSONTrivia {
	if len(pieces) == 0 {
		return nil
	}
	out := make([]astJSONTrivia, len(pieces))
	for i, tr := range pieces {
		out[i] = astJSONTrivia{Kind: tr.Kind.String(), Range: rangeToJSON(tr.Range), Text: tr.Text}
	}
	return out
}

func nodeToJSON(field kinds.Field, n cst.Node) *astJSONNode {
	jn := &astJSONNode{Range: rangeToJSON(n.TextRange())}
	if field != kinds.FieldNone {
		jn.Field = field.String()
	}

	switch n := n.(type) {
	case *cst.TokenNode:
		jn.Kind = n.Kind.String()
		text := n.Text
		jn.Text = &text
		jn.Leading = triviaToJSON(n.Leading)
		jn.Trailing = triviaToJSON(n.Trailing)
	case *cst.RuleNode:
		jn.Kind = n.Kind.String()
		for name, child := range n.Named() {
			jn.Children = append(jn.Children, nodeToJSON(name, child))
		}
	}

	return jn
}
