package parser

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/sol/solidity/cst"
	"github.com/dhamidi/sol/solidity/kinds"
)

func findToken(root cst.Node, kind kinds.TokenKind) *cst.TokenNode {
	for tok := range cst.Tokens(root) {
		if tok.Kind == kind {
			return tok
		}
	}
	return nil
}

func findRule(root cst.Node, kind kinds.RuleKind) *cst.RuleNode {
	c := cst.NewCursor(root)
	for {
		if r, ok := c.Node().(*cst.RuleNode); ok && r.Kind == kind {
			return r
		}
		if !c.GoToNext() {
			return nil
		}
	}
}

// pathTo lists the kinds of the nodes that contain offset, from the root
// down to the token.
func pathTo(root cst.Node, offset int) []string {
	var path []string
	n := root
	for n != nil {
		switch v := n.(type) {
		case *cst.TokenNode:
			return append(path, v.Kind.String())
		case *cst.RuleNode:
			path = append(path, v.Kind.String())
			n = nil
			for child := range v.Children() {
				if r := child.TextRange(); r.Contains(offset) {
					n = child
					break
				}
			}
		}
	}
	return path
}

// operator unwraps an Expression node down to the operator node inside it.
func operator(t *testing.T, n cst.Node) *cst.RuleNode {
	t.Helper()
	rule, ok := n.(*cst.RuleNode)
	require.True(t, ok, "expected a rule node, got %T", n)
	for rule.Kind == kinds.Expression {
		rule, ok = rule.Child(kinds.FieldVariant).(*cst.RuleNode)
		require.True(t, ok)
	}
	return rule
}

func TestParseEmptySource(t *testing.T) {
	out := Parse("")

	assert.True(t, out.IsValid())
	assert.Equal(t, kinds.SourceUnit, out.Tree().Kind)
	assert.Equal(t, cst.TextRange{Start: 0, End: 0}, out.Tree().Range)
	assert.Zero(t, out.Tree().ChildCount())
}

func TestParseVersionPragma(t *testing.T) {
	src := "pragma solidity ^0.8.0;"
	out := Parse(src)

	require.True(t, out.IsValid(), "errors: %v", out.Errors())
	tok := findToken(out.Tree(), kinds.VersionPragmaValue)
	require.NotNil(t, tok)
	assert.Equal(t, "^0.8.0", tok.Text)
	assert.Equal(t, cst.TextRange{Start: 16, End: 22}, tok.Range)

	assert.Equal(t, []string{
		"SourceUnit",
		"SourceUnitMember",
		"PragmaDirective",
		"Pragma",
		"VersionPragma",
		"VersionPragmaExpressions",
		"VersionPragmaExpression",
		"VersionPragmaSpecifier",
		"VersionPragmaValue",
	}, pathTo(out.Tree(), 16))
}

func TestParseNestedParentheses(t *testing.T) {
	tests := []struct {
		src  string
		want cst.TextRange
	}{
		{"((((1))))", cst.TextRange{Start: 4, End: 5}},
		{" ((((1))))", cst.TextRange{Start: 5, End: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			out := ParseRule(kinds.Expression, tt.src)
			require.True(t, out.IsValid(), "errors: %v", out.Errors())

			tok := findToken(out.Tree(), kinds.DecimalLiteral)
			require.NotNil(t, tok)
			assert.Equal(t, "1", tok.Text)
			assert.Equal(t, tt.want, tok.SignificantRange())

			tuples := 0
			c := out.CreateTreeCursor()
			for {
				if r, ok := c.Node().(*cst.RuleNode); ok && r.Kind == kinds.TupleExpression {
					tuples++
				}
				if !c.GoToNext() {
					break
				}
			}
			assert.Equal(t, 4, tuples)
		})
	}
}

func TestParseUnterminatedString(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		parse func(string) *Output
	}{
		{
			name:  "statement",
			src:   `uint x = "abc`,
			parse: func(src string) *Output { return ParseRule(kinds.Statement, src) },
		},
		{
			name:  "source unit",
			src:   `contract C { function f() public { string memory s = "abc`,
			parse: func(src string) *Output { return Parse(src) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.parse(tt.src)

			require.Len(t, out.Errors(), 1)
			err := out.Errors()[0]
			assert.Equal(t, len(tt.src), err.Offset)
			assert.Equal(t, "Unterminated DoubleQuotedAsciiStringLiteral", err.Reason)
			assert.Contains(t, err.Expected, `'"'`)
			assert.NoError(t, cst.Validate(out.Tree(), tt.src))

			tok := findToken(out.Tree(), kinds.DoubleQuotedAsciiStringLiteral)
			require.NotNil(t, tok)
			assert.Equal(t, `"abc`, tok.Text)
		})
	}
}

func TestParseErrorReport(t *testing.T) {
	src := `uint x = "abc`
	out := ParseRule(kinds.Statement, src, WithFile("a.sol"))
	require.Len(t, out.ErrorReports(), 1)
	assert.Equal(t, out.Errors()[0].Report("a.sol", src), out.ErrorReports()[0])

	err := &ParseError{Offset: len(src), Expected: []string{`'"'`}, Reason: "Unterminated DoubleQuotedAsciiStringLiteral"}
	want := strings.Join([]string{
		`error: Unterminated DoubleQuotedAsciiStringLiteral. Expected '"'.`,
		` --> a.sol:1:14`,
		`  |`,
		`1 | uint x = "abc`,
		`  |              ^`,
		``,
	}, "\n")
	assert.Equal(t, want, err.Report("a.sol", src))
}

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{expected(0, "Semicolon"), "Expected Semicolon."},
		{expected(0, "Comma", "CloseParen"), "Expected Comma or CloseParen."},
		{expected(0, "A", "B", "C"), "Expected A, B or C."},
		{&ParseError{Expected: []string{"'\"'"}, Reason: "Unterminated X"}, `Unterminated X. Expected '"'.`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestFurthestMergesEqualOffsets(t *testing.T) {
	a := expected(3, "Semicolon")
	b := expected(3, "Comma")
	c := expected(1, "Identifier")

	got := furthest(a, c, b)
	assert.Equal(t, 3, got.Offset)
	assert.Equal(t, []string{"Comma", "Semicolon"}, got.Expected)
	assert.Same(t, a, furthest(a, expected(3, "Semicolon")))
	assert.Nil(t, furthest(nil, nil))
}

func TestNormalizeMergesEqualOffsets(t *testing.T) {
	first := &ParseError{Offset: 5, Expected: []string{"A"}, Reason: "Unterminated X"}
	errs := normalize([]*ParseError{expected(9, "C"), first, expected(5, "B"), expected(2, "D")})

	require.Len(t, errs, 3)
	assert.Equal(t, []int{2, 5, 9}, []int{errs[0].Offset, errs[1].Offset, errs[2].Offset})
	assert.Equal(t, []string{"A", "B"}, errs[1].Expected)
	assert.Equal(t, "Unterminated X", errs[1].Reason)

	same := expected(4, "A")
	errs = normalize([]*ParseError{same, expected(4, "A")})
	require.Len(t, errs, 1)
	assert.Same(t, same, errs[0])
}

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		src   string
		kind  kinds.RuleKind
		left  kinds.RuleKind
		right kinds.RuleKind
	}{
		{"a + b * c", kinds.AdditiveExpression, kinds.PrimaryExpression, kinds.MultiplicativeExpression},
		{"a * b + c", kinds.AdditiveExpression, kinds.MultiplicativeExpression, kinds.PrimaryExpression},
		{"a - b - c", kinds.AdditiveExpression, kinds.AdditiveExpression, kinds.PrimaryExpression},
		{"a = b = c", kinds.AssignmentExpression, kinds.PrimaryExpression, kinds.AssignmentExpression},
		{"a ** b ** c", kinds.ExponentiationExpression, kinds.PrimaryExpression, kinds.ExponentiationExpression},
		{"a || b && c", kinds.OrExpression, kinds.PrimaryExpression, kinds.AndExpression},
		{"a == b < c", kinds.EqualityExpression, kinds.PrimaryExpression, kinds.InequalityExpression},
		{"x = a | b ^ c", kinds.AssignmentExpression, kinds.PrimaryExpression, kinds.BitwiseOrExpression},
		{"a << 1 + 2", kinds.ShiftExpression, kinds.PrimaryExpression, kinds.AdditiveExpression},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			out := ParseRule(kinds.Expression, tt.src)
			require.True(t, out.IsValid(), "errors: %v", out.Errors())

			top := operator(t, out.Tree())
			assert.Equal(t, tt.kind, top.Kind)
			assert.Equal(t, tt.left, operator(t, top.Child(kinds.FieldLeftOperand)).Kind)
			assert.Equal(t, tt.right, operator(t, top.Child(kinds.FieldRightOperand)).Kind)
		})
	}
}

func TestUnaryAndPostfixExpressions(t *testing.T) {
	tests := []struct {
		src     string
		kind    kinds.RuleKind
		operand kinds.RuleKind
	}{
		{"-x", kinds.PrefixExpression, kinds.PrimaryExpression},
		{"!!x", kinds.PrefixExpression, kinds.PrefixExpression},
		{"-x++", kinds.PrefixExpression, kinds.PostfixExpression},
		{"delete a[1]", kinds.PrefixExpression, kinds.IndexAccessExpression},
		{"a.b.c", kinds.MemberAccessExpression, kinds.MemberAccessExpression},
		{"f(1)(2)", kinds.FunctionCallExpression, kinds.FunctionCallExpression},
		{"x.call{value: 1}()", kinds.FunctionCallExpression, kinds.CallOptionsExpression},
		{"a ? b : c", kinds.ConditionalExpression, kinds.PrimaryExpression},
		{"xs[1:]", kinds.IndexAccessExpression, kinds.PrimaryExpression},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			out := ParseRule(kinds.Expression, tt.src)
			require.True(t, out.IsValid(), "errors: %v", out.Errors())

			top := operator(t, out.Tree())
			assert.Equal(t, tt.kind, top.Kind)
			assert.Equal(t, tt.operand, operator(t, top.Child(kinds.FieldOperand)).Kind)
		})
	}
}

func TestOperatorKindParsesAsLadder(t *testing.T) {
	out := ParseRule(kinds.AdditiveExpression, "a + b")
	require.True(t, out.IsValid())
	assert.Equal(t, kinds.Expression, out.Tree().Kind)
}

func TestReservedWords(t *testing.T) {
	tests := []struct {
		kind  kinds.RuleKind
		src   string
		valid bool
	}{
		{kinds.Expression, "from", true},
		{kinds.Expression, "error", true},
		{kinds.Expression, "leave", true},
		{kinds.Expression, "contract", false},
		{kinds.Expression, "contracts", true},
		{kinds.Expression, "ifx", true},
		{kinds.YulBlock, "{ let from := 1 }", true},
		{kinds.YulBlock, "{ let uint256 := 1 }", true},
		{kinds.YulBlock, "{ let leave := 1 }", false},
		{kinds.YulBlock, "{ let switch := 1 }", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			out := ParseRule(tt.kind, tt.src)
			assert.Equal(t, tt.valid, out.IsValid(), "errors: %v", out.Errors())
			assert.NoError(t, cst.Validate(out.Tree(), tt.src))
		})
	}
}

func TestKeywordsNeedWordBoundary(t *testing.T) {
	out := ParseRule(kinds.Statement, "returnValue = 1;")
	require.True(t, out.IsValid(), "errors: %v", out.Errors())
	assert.Nil(t, findRule(out.Tree(), kinds.ReturnStatement))
	assert.NotNil(t, findRule(out.Tree(), kinds.AssignmentExpression))
}

func TestTrivia(t *testing.T) {
	src := "  // lead\n  x /* in */ = 1; // trail\n/* eof */\n"
	out := ParseRule(kinds.SourceUnit, "uint "+src)
	require.NoError(t, cst.Validate(out.Tree(), "uint "+src))

	out = ParseRule(kinds.Statement, src)
	require.True(t, out.IsValid(), "errors: %v", out.Errors())
	require.NoError(t, cst.Validate(out.Tree(), src))

	x := findToken(out.Tree(), kinds.Identifier)
	require.NotNil(t, x)
	var lead []kinds.TokenKind
	for _, tr := range x.Leading {
		lead = append(lead, tr.Kind)
	}
	assert.Equal(t, []kinds.TokenKind{kinds.Whitespace, kinds.SingleLineComment, kinds.EndOfLine, kinds.Whitespace}, lead)

	semi := findToken(out.Tree(), kinds.Semicolon)
	require.NotNil(t, semi)
	var trail []kinds.TokenKind
	for _, tr := range semi.Trailing {
		trail = append(trail, tr.Kind)
	}
	assert.Equal(t, []kinds.TokenKind{kinds.Whitespace, kinds.SingleLineComment, kinds.EndOfLine}, trail)

	eof := findToken(out.Tree(), kinds.EndOfFileTrivia)
	require.NotNil(t, eof)
	assert.Equal(t, "/* eof */\n", eof.FullText())
}

func TestLeftoverInput(t *testing.T) {
	src := "1 2"
	out := ParseRule(kinds.Expression, src)

	require.Len(t, out.Errors(), 1)
	assert.Equal(t, 2, out.Errors()[0].Offset)
	assert.Contains(t, out.Errors()[0].Expected, "EndOfFile")
	require.NoError(t, cst.Validate(out.Tree(), src))

	skipped := findToken(out.Tree(), kinds.Skipped)
	require.NotNil(t, skipped)
	assert.Equal(t, "2", skipped.Text)
}

func TestUnmatchedRoot(t *testing.T) {
	src := "+++"
	out := ParseRule(kinds.ContractDefinition, src)

	require.Len(t, out.Errors(), 1)
	assert.Equal(t, kinds.ContractDefinition, out.Tree().Kind)
	require.Equal(t, 1, out.Tree().ChildCount())
	assert.NoError(t, cst.Validate(out.Tree(), src))
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		errors  []int
		skipped []string
		has     []kinds.RuleKind
		hasNot  []kinds.RuleKind
	}{
		{
			name:    "missing initializer",
			src:     "contract A { function f() public { uint x = ; y = 2; } }",
			errors:  []int{strings.Index("contract A { function f() public { uint x = ; y = 2; } }", ";")},
			skipped: []string{"="},
			has:     []kinds.RuleKind{kinds.VariableDeclarationStatement, kinds.AssignmentExpression},
		},
		{
			name:    "stray closers at top level",
			src:     "}}} contract A {}",
			errors:  []int{0},
			skipped: []string{"}}}"},
			has:     []kinds.RuleKind{kinds.ContractDefinition},
		},
		{
			name:    "unclosed parameter list",
			src:     "contract C { function f( }",
			errors:  []int{strings.LastIndex("contract C { function f( }", "}")},
			skipped: []string{"function f("},
			has:     []kinds.RuleKind{kinds.ContractDefinition},
			hasNot:  []kinds.RuleKind{kinds.StateVariableDefinition, kinds.FunctionDefinition},
		},
		{
			name:    "body inside unclosed parameter list",
			src:     "contract C { function f(uint a { } }",
			errors:  []int{strings.Index("contract C { function f(uint a { } }", "{ }")},
			skipped: []string{"function f(uint a { }"},
			has:     []kinds.RuleKind{kinds.ContractDefinition},
			hasNot:  []kinds.RuleKind{kinds.StateVariableDefinition},
		},
		{
			name:   "missing closing braces",
			src:    "contract A { function f() public {",
			errors: []int{len("contract A { function f() public {")},
			has:    []kinds.RuleKind{kinds.Block, kinds.FunctionDefinition},
		},
		{
			name:    "stray statement",
			src:     "contract A { function f() public { ) ; g(); } }",
			errors:  []int{strings.Index("contract A { function f() public { ) ; g(); } }", ")")},
			skipped: []string{") ;"},
			has:     []kinds.RuleKind{kinds.FunctionCallExpression},
		},
		{
			name:   "missing semicolon before closer",
			src:    "function f() { return 1 }",
			errors: []int{len("function f() { return 1 ")},
			has:    []kinds.RuleKind{kinds.ReturnStatement},
		},
		{
			name:    "garbage in yul",
			src:     "function f() { assembly { let x := 1 ] x := 2 } }",
			errors:  []int{strings.Index("function f() { assembly { let x := 1 ] x := 2 } }", "]")},
			skipped: []string{"]"},
			has:     []kinds.RuleKind{kinds.YulVariableAssignmentStatement},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Parse(tt.src)
			require.NoError(t, cst.Validate(out.Tree(), tt.src))

			var offsets []int
			for _, e := range out.Errors() {
				offsets = append(offsets, e.Offset)
			}
			assert.Equal(t, tt.errors, offsets, "errors: %v", out.Errors())

			var skipped []string
			for tok := range cst.Tokens(out.Tree()) {
				if tok.IsSkipped() {
					skipped = append(skipped, tok.Text)
				}
			}
			assert.Equal(t, tt.skipped, skipped)

			for _, kind := range tt.has {
				assert.NotNil(t, findRule(out.Tree(), kind), "missing %s", kind)
			}
			for _, kind := range tt.hasNot {
				assert.Nil(t, findRule(out.Tree(), kind), "unexpected %s", kind)
			}
		})
	}
}

func readFixtures(t *testing.T) map[string]string {
	t.Helper()
	paths, err := filepath.Glob("testdata/*.sol")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	fixtures := make(map[string]string, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		fixtures[filepath.Base(path)] = string(content)
	}
	return fixtures
}

func TestFixtures(t *testing.T) {
	for name, src := range readFixtures(t) {
		t.Run(name, func(t *testing.T) {
			out := Parse(src, WithFile(name))
			require.NoError(t, cst.Validate(out.Tree(), src))

			if name == "broken.sol" {
				assert.False(t, out.IsValid())
				assert.NotNil(t, findToken(out.Tree(), kinds.Skipped))
				for i := 1; i < len(out.Errors()); i++ {
					assert.Less(t, out.Errors()[i-1].Offset, out.Errors()[i].Offset)
				}
				return
			}
			assert.True(t, out.IsValid(), "errors:\n%s", strings.Join(out.ErrorReports(), "\n"))
			assert.Nil(t, findToken(out.Tree(), kinds.Skipped))
		})
	}
}

func TestCursorVisitsEveryNode(t *testing.T) {
	for name, src := range readFixtures(t) {
		t.Run(name, func(t *testing.T) {
			out := Parse(src)
			c := out.CreateTreeCursor()
			advances := 0
			for c.GoToNext() {
				advances++
			}
			assert.Equal(t, cst.Count(out.Tree())-1, advances)
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	for name, src := range readFixtures(t) {
		t.Run(name, func(t *testing.T) {
			a, b := Parse(src), Parse(src)
			assert.Equal(t, a.Tree().String(), b.Tree().String())
			assert.Equal(t, a.Errors(), b.Errors())
		})
	}
}

func TestParseConcurrently(t *testing.T) {
	fixtures := readFixtures(t)
	want := make(map[string]string, len(fixtures))
	for name, src := range fixtures {
		want[name] = Parse(src).Tree().String()
	}

	var g errgroup.Group
	results := make([][]string, 8)
	for i := range results {
		g.Go(func() error {
			for name, src := range fixtures {
				results[i] = append(results[i], name+"\x00"+Parse(src).Tree().String())
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, res := range results {
		for _, entry := range res {
			name, tree, _ := strings.Cut(entry, "\x00")
			assert.Equal(t, want[name], tree, name)
		}
	}
}

func TestGarbageNeverBreaksTheTree(t *testing.T) {
	inputs := []string{
		"}",
		")))",
		"{{{{",
		"contract",
		"contract {",
		"\"",
		"/* never closed",
		"pragma",
		"\xff\xfe\x00",
		"function f( { } ) ; ; }",
		"assembly { let := }",
		"uint[",
		"a ? b",
		"x = = = ;",
	}
	rng := rand.New(rand.NewSource(1))
	alphabet := "contract function { } ( ) [ ] ; , . = + - * / \" ' x 1 0x if else \n assembly let := \xc3"
	for range 50 {
		var sb strings.Builder
		for range rng.Intn(60) {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		inputs = append(inputs, sb.String())
	}

	for _, src := range inputs {
		out := Parse(src)
		require.NoError(t, cst.Validate(out.Tree(), src), "input %q", src)
		for _, e := range out.Errors() {
			assert.GreaterOrEqual(t, e.Offset, 0)
			assert.LessOrEqual(t, e.Offset, len(src))
		}
	}
}

func TestRegistryCoversEveryItem(t *testing.T) {
	reg := solidityRegistry()
	for _, kind := range kinds.RuleKinds() {
		_, ok := reg.matcherFor(kind)
		assert.True(t, ok, "no matcher for %s", kind)
	}
}
