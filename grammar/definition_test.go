package grammar

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/ebnf"
)

// toy is a small arithmetic language with statements.
func toy() *Definition {
	items := []*Item{
		Repeated("Program", "Statement").Resyncing(""),
		Struct("Statement",
			Optional("LetKeyword"),
			Required("Value", "Expression"),
			Required("Semicolon"),
		).Terminated("Semicolon", 1),
		Precedence("Expression",
			[]string{"Number", "Name", "Group"},
			NewTier("Sum", BinaryLeft, Required("Operator", "Plus", "Minus")),
			NewTier("Negation", Prefix, Required("Operator", "Minus")),
		),
		Struct("Group",
			Required("OpenParen"),
			Required("Items", "Items"),
			Required("CloseParen"),
		).Delimited("OpenParen", "CloseParen"),
		Separated("Items", "Expression", "Comma"),
		Enum("Name", "Identifier"),
		Keyword("LetKeyword", Atom("let"), ScopeSolidity),
		Token("Identifier", Ref("Word")).Excluding(ScopeSolidity),
		Token("Number", Some{Body: Range{From: '0', To: '9'}}),
		Token("Plus", Atom("+")),
		Token("Minus", Atom("-")),
		Token("Comma", Atom(",")),
		Token("Semicolon", Atom(";")),
		Token("OpenParen", Atom("(")),
		Token("CloseParen", Atom(")")),
		Fragment("Word", Seq{Range{From: 'a', To: 'z'}, Many{Body: Range{From: 'a', To: 'z'}}}),
		Trivia("Space", Some{Body: Chars(" \t")}),
		Trivia("Comment", Seq{Atom("#"), Many{Body: NotIn("\n")}}),
		Trivia("Leading", Many{Body: Choice{Ref("Space"), Ref("Comment")}}),
		Trivia("Trailing", Opt{Body: Ref("Space")}),
	}
	return NewDefinition("Toy", "Program", items).WithTrivia("Leading", "Trailing", "Leading")
}

func TestValidate(t *testing.T) {
	require.NoError(t, toy().Validate())
}

func TestValidateReportsEveryProblem(t *testing.T) {
	items := []*Item{
		Struct("Root", Required("Missing")),
		Struct("Root", Required("Semi")).Terminated("Nope", 1),
		Enum("Empty"),
		Token("Semi", Ref("Root")),
		Token("Bare", nil),
		Trivia("Space", Atom(" ")),
	}
	d := NewDefinition("Broken", "Semi", items).WithTrivia("Space", "Space", "Gone")

	err := d.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownItem))

	for _, want := range []string{
		`duplicate item "Root"`,
		`root "Semi" is a terminal`,
		`"Gone"`,
		`"Missing"`,
		`Semi: terminal refers to Struct "Root"`,
		`recovery names missing field "Nope"`,
		`Empty: enum has no variants`,
		`Bare: terminal has no scanner`,
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLookup(t *testing.T) {
	d := toy()

	it, err := d.Lookup("Group")
	require.NoError(t, err)
	assert.Equal(t, KindStruct, it.Kind)

	_, err = d.Lookup("Nothing")
	assert.ErrorIs(t, err, ErrUnknownItem)
	assert.Panics(t, func() { d.MustLookup("Nothing") })
}

func TestNonInlinable(t *testing.T) {
	d := toy()

	assert.Equal(t, map[string]bool{"Program": true, "Items": true}, d.NonInlinable())
	assert.True(t, d.IsInlinable("Sum"))
	assert.True(t, d.IsInlinable("Statement"))
	assert.False(t, d.IsInlinable("Items"))
}

func TestNames(t *testing.T) {
	d := toy()

	assert.Equal(t, []string{"Program", "Statement", "Expression", "Sum", "Negation", "Group", "Items", "Name"}, d.RuleNames())
	assert.Equal(t, []string{
		"LetKeyword", "Identifier", "Number", "Plus", "Minus", "Comma", "Semicolon",
		"OpenParen", "CloseParen", "Space", "Comment", "Leading", "Trailing",
	}, d.TokenNames())
	assert.Equal(t, []string{"LetKeyword", "Value", "Semicolon", "Operator", "OpenParen", "Items", "CloseParen"}, d.FieldNames())
}

func TestReferences(t *testing.T) {
	d := toy()

	assert.Equal(t, []string{"Number", "Name", "Group", "Plus", "Minus"}, d.MustLookup("Expression").References())
	assert.Equal(t, []string{"Space", "Comment"}, d.MustLookup("Leading").References())
}

func TestBuilders(t *testing.T) {
	st := Struct("S", Required("A")).Terminated("A", 0)
	assert.Equal(t, 1, st.Recovery.Commit)

	f := Optional("Name", "Identifier", "Keyword")
	assert.True(t, f.Optional)
	assert.Equal(t, []string{"Identifier", "Keyword"}, f.Refs)
	assert.Equal(t, []string{"A"}, Required("A").Refs)

	tok := Token("S", Atom(`"`)).Lenient(Atom(`"`), `"`)
	assert.NotNil(t, tok.Unterminated)
	assert.Equal(t, Choice{Atom("a"), Atom("b")}, Chars("ab"))

	assert.Equal(t, "Postfix", Postfix.String())
	assert.Equal(t, "Unknown", Model(42).String())
	assert.Equal(t, "Separated", KindSeparated.String())
	assert.True(t, KindFragment.IsTerminal())
	assert.False(t, KindRepeated.Inlinable())
}

func TestWriteEBNF(t *testing.T) {
	d := toy()

	var buf bytes.Buffer
	require.NoError(t, WriteEBNF(&buf, d))
	text := buf.String()

	for _, want := range []string{
		"Toy = Program | Space | Comment | Leading | Trailing .\n",
		"Statement = [ LetKeyword ] Expression Semicolon .\n",
		"Expression = Sum | Negation | Number | Name | Group .\n",
		"Sum = Expression ( Plus | Minus ) Expression .\n",
		"Negation = Minus Expression .\n",
		"Items = Expression { Comma Expression } .\n",
		`Number = "0" … "9" { "0" … "9" } .` + "\n",
		`Comment = ( "#" { "\x00" … "\U0010ffff" } ) .` + "\n",
	} {
		assert.Contains(t, text, want)
	}

	grammar, err := ebnf.Parse("toy.ebnf", strings.NewReader(text))
	require.NoError(t, err)
	require.NoError(t, ebnf.Verify(grammar, "Toy"))
}
