package definition

import (
	"strconv"

	"github.com/dhamidi/sol/grammar"
)

type (
	atom   = grammar.Atom
	seq    = grammar.Seq
	choice = grammar.Choice
	ref    = grammar.Ref
)

func trivia() []*grammar.Item {
	pieces := choice{ref("Whitespace"), ref("EndOfLine"), ref("SingleLineComment"), ref("MultilineComment")}
	return []*grammar.Item{
		grammar.Trivia("Whitespace", grammar.Some{Body: choice{atom(" "), atom("\t")}}),
		grammar.Trivia("EndOfLine", choice{atom("\r\n"), atom("\n"), atom("\r")}),
		grammar.Trivia("SingleLineComment", seq{atom("//"), grammar.Many{Body: grammar.NotIn("\r\n")}}),
		grammar.Trivia("MultilineComment", seq{
			atom("/*"),
			grammar.Many{Body: choice{
				grammar.NotIn("*"),
				grammar.NotFollowedBy{Body: atom("*"), Not: atom("/")},
			}},
			atom("*/"),
		}),
		grammar.Trivia("LeadingTrivia", grammar.Many{Body: pieces}),
		grammar.Trivia("TrailingTrivia", seq{
			grammar.Opt{Body: ref("Whitespace")},
			grammar.Opt{Body: ref("SingleLineComment")},
			grammar.Opt{Body: ref("EndOfLine")},
		}),
		grammar.Trivia("EndOfFileTrivia", grammar.Many{Body: pieces}),
	}
}

func fragments() []*grammar.Item {
	digit := grammar.Range{From: '0', To: '9'}
	return []*grammar.Item{
		grammar.Fragment("IdentifierStart", choice{
			atom("_"), atom("$"),
			grammar.Range{From: 'a', To: 'z'},
			grammar.Range{From: 'A', To: 'Z'},
		}),
		grammar.Fragment("IdentifierPart", choice{ref("IdentifierStart"), digit}),
		grammar.Fragment("RawIdentifier", seq{ref("IdentifierStart"), grammar.Many{Body: ref("IdentifierPart")}}),
		grammar.Fragment("DecimalDigits", seq{digit, grammar.Many{Body: seq{grammar.Opt{Body: atom("_")}, digit}}}),
		grammar.Fragment("DecimalExponent", seq{
			choice{atom("e"), atom("E")},
			grammar.Opt{Body: atom("-")},
			ref("DecimalDigits"),
		}),
		grammar.Fragment("DecimalFloat", seq{grammar.Opt{Body: ref("DecimalDigits")}, atom("."), ref("DecimalDigits")}),
		grammar.Fragment("HexCharacter", choice{
			digit,
			grammar.Range{From: 'a', To: 'f'},
			grammar.Range{From: 'A', To: 'F'},
		}),
		grammar.Fragment("HexPair", seq{ref("HexCharacter"), ref("HexCharacter")}),
		grammar.Fragment("PossiblySeparatedPairsOfHexDigits", seq{
			ref("HexPair"),
			grammar.Many{Body: seq{grammar.Opt{Body: atom("_")}, ref("HexPair")}},
		}),
		grammar.Fragment("AsciiEscape", grammar.Chars("nrt'\"\\\n\r")),
		grammar.Fragment("HexByteEscape", seq{atom("x"), ref("HexPair")}),
		grammar.Fragment("UnicodeEscape", seq{atom("u"), ref("HexPair"), ref("HexPair")}),
		grammar.Fragment("EscapeSequence", seq{
			atom(`\`),
			choice{ref("AsciiEscape"), ref("HexByteEscape"), ref("UnicodeEscape")},
		}),
		grammar.Fragment("VersionPragmaPart", grammar.Some{Body: choice{digit, atom("x"), atom("X"), atom("*")}}),
		grammar.Fragment("VersionOperator", grammar.Words("^", "~", "=", "<", ">", "<=", ">=")),
		grammar.Fragment("IntegerTypeSize", integerSizes()),
		grammar.Fragment("FixedBytesTypeSize", byteSizes()),
		grammar.Fragment("FixedTypeSize", seq{
			grammar.Some{Body: digit},
			atom("x"),
			grammar.Some{Body: digit},
		}),
	}
}

func integerSizes() grammar.Choice {
	var words []string
	for bits := 8; bits <= 256; bits += 8 {
		words = append(words, strconv.Itoa(bits))
	}
	return grammar.Words(words...)
}

func byteSizes() grammar.Choice {
	var words []string
	for n := 1; n <= 32; n++ {
		words = append(words, strconv.Itoa(n))
	}
	return grammar.Words(words...)
}

func stringBody(quote string) grammar.Scanner {
	return grammar.Many{Body: choice{ref("EscapeSequence"), grammar.NotIn(quote + "\\\r\n")}}
}

func quoted(prefix, quote string) (grammar.Scanner, grammar.Scanner) {
	open := atom(prefix + quote)
	return seq{open, stringBody(quote), atom(quote)}, seq{open, stringBody(quote)}
}

func stringLiteral(name, prefix, quote string) *grammar.Item {
	full, partial := quoted(prefix, quote)
	return grammar.Token(name, full).Lenient(partial, quote)
}

func tokens() []*grammar.Item {
	identPart := ref("IdentifierPart")
	hexString := func(quote string) grammar.Scanner {
		return seq{atom("hex" + quote), grammar.Opt{Body: ref("PossiblySeparatedPairsOfHexDigits")}, atom(quote)}
	}
	versionChar := choice{grammar.Range{From: '0', To: '9'}, atom("x"), atom("X"), atom("*")}

	items := []*grammar.Item{
		grammar.Token("Identifier", ref("RawIdentifier")).Excluding(grammar.ScopeSolidity),
		grammar.Token("YulIdentifier", ref("RawIdentifier")).Excluding(grammar.ScopeYul),
		grammar.Token("DecimalLiteral", grammar.NotFollowedBy{
			Body: seq{
				choice{ref("DecimalFloat"), ref("DecimalDigits")},
				grammar.Opt{Body: ref("DecimalExponent")},
			},
			Not: identPart,
		}),
		grammar.Token("HexLiteral", grammar.NotFollowedBy{
			Body: seq{
				atom("0x"),
				ref("HexCharacter"),
				grammar.Many{Body: seq{grammar.Opt{Body: atom("_")}, ref("HexCharacter")}},
			},
			Not: identPart,
		}),
		grammar.Token("YulDecimalLiteral", grammar.NotFollowedBy{
			Body: choice{atom("0"), seq{grammar.Range{From: '1', To: '9'}, grammar.Many{Body: grammar.Range{From: '0', To: '9'}}}},
			Not:  identPart,
		}),
		grammar.Token("YulHexLiteral", grammar.NotFollowedBy{
			Body: seq{atom("0x"), grammar.Some{Body: ref("HexCharacter")}},
			Not:  identPart,
		}),
		grammar.Token("HexStringLiteral", choice{hexString(`"`), hexString(`'`)}),
		stringLiteral("DoubleQuotedAsciiStringLiteral", "", `"`),
		stringLiteral("SingleQuotedAsciiStringLiteral", "", `'`),
		stringLiteral("DoubleQuotedUnicodeStringLiteral", "unicode", `"`),
		stringLiteral("SingleQuotedUnicodeStringLiteral", "unicode", `'`),
		grammar.Token("VersionPragmaValue", seq{
			grammar.Opt{Body: ref("VersionOperator")},
			ref("VersionPragmaPart"),
			grammar.Many{Body: seq{atom("."), ref("VersionPragmaPart")}},
		}),
		grammar.Token("VersionPragmaOperator", grammar.NotFollowedBy{Body: ref("VersionOperator"), Not: versionChar}),
	}
	return append(items, punctuation()...)
}

// punctuation returns operator tokens. Each one refuses to match a prefix of
// a longer operator.
func punctuation() []*grammar.Item {
	op := func(name, text string, longer ...string) *grammar.Item {
		if len(longer) == 0 {
			return grammar.Token(name, atom(text))
		}
		return grammar.Token(name, grammar.NotFollowedBy{Body: atom(text), Not: grammar.Words(longer...)})
	}
	return []*grammar.Item{
		op("OpenParen", "("),
		op("CloseParen", ")"),
		op("OpenBracket", "["),
		op("CloseBracket", "]"),
		op("OpenBrace", "{"),
		op("CloseBrace", "}"),
		op("Comma", ","),
		op("Period", "."),
		op("QuestionMark", "?"),
		op("Semicolon", ";"),
		op("Colon", ":", "="),
		op("ColonEqual", ":="),
		op("Equal", "=", "=", ">"),
		op("EqualEqual", "=="),
		op("EqualGreaterThan", "=>"),
		op("Bang", "!", "="),
		op("BangEqual", "!="),
		op("Tilde", "~"),
		op("Plus", "+", "+", "="),
		op("PlusPlus", "++"),
		op("PlusEqual", "+="),
		op("Minus", "-", "-", "=", ">"),
		op("MinusMinus", "--"),
		op("MinusEqual", "-="),
		op("MinusGreaterThan", "->"),
		op("Asterisk", "*", "*", "="),
		op("AsteriskAsterisk", "**"),
		op("AsteriskEqual", "*="),
		op("Slash", "/", "="),
		op("SlashEqual", "/="),
		op("Percent", "%", "="),
		op("PercentEqual", "%="),
		op("Ampersand", "&", "&", "="),
		op("AmpersandAmpersand", "&&"),
		op("AmpersandEqual", "&="),
		op("Bar", "|", "|", "="),
		op("BarBar", "||"),
		op("BarEqual", "|="),
		op("Caret", "^", "="),
		op("CaretEqual", "^="),
		op("LessThan", "<", "<", "="),
		op("LessThanEqual", "<="),
		op("LessThanLessThan", "<<", "="),
		op("LessThanLessThanEqual", "<<="),
		op("GreaterThan", ">", ">", "="),
		op("GreaterThanEqual", ">="),
		op("GreaterThanGreaterThan", ">>", ">", "="),
		op("GreaterThanGreaterThanEqual", ">>="),
		op("GreaterThanGreaterThanGreaterThan", ">>>", "="),
		op("GreaterThanGreaterThanGreaterThanEqual", ">>>="),
	}
}

func keywords() []*grammar.Item {
	const (
		sol  = grammar.ScopeSolidity
		yul  = grammar.ScopeYul
		both = grammar.ScopeBoth
		none = grammar.ScopeNone
	)
	kw := func(name, text string, scope grammar.Scope) *grammar.Item {
		return grammar.Keyword(name, atom(text), scope)
	}
	sized := func(prefix string, size grammar.Scanner) grammar.Scanner {
		return seq{atom(prefix), grammar.Opt{Body: size}}
	}
	return []*grammar.Item{
		kw("AbicoderKeyword", "abicoder", none),
		kw("AbstractKeyword", "abstract", sol),
		kw("AddressKeyword", "address", sol),
		kw("AnonymousKeyword", "anonymous", sol),
		kw("AsKeyword", "as", sol),
		kw("AssemblyKeyword", "assembly", sol),
		kw("BoolKeyword", "bool", sol),
		kw("BreakKeyword", "break", both),
		kw("ByteKeyword", "byte", sol),
		kw("BytesKeyword", "bytes", sol),
		kw("CalldataKeyword", "calldata", sol),
		kw("CaseKeyword", "case", both),
		kw("CatchKeyword", "catch", sol),
		kw("ConstantKeyword", "constant", sol),
		kw("ConstructorKeyword", "constructor", sol),
		kw("ContinueKeyword", "continue", both),
		kw("ContractKeyword", "contract", sol),
		kw("DefaultKeyword", "default", both),
		kw("DeleteKeyword", "delete", sol),
		kw("DoKeyword", "do", sol),
		kw("ElseKeyword", "else", sol),
		kw("EmitKeyword", "emit", sol),
		kw("EnumKeyword", "enum", sol),
		kw("ErrorKeyword", "error", none),
		kw("EventKeyword", "event", sol),
		kw("ExperimentalKeyword", "experimental", none),
		kw("ExternalKeyword", "external", sol),
		kw("FallbackKeyword", "fallback", none),
		kw("ForKeyword", "for", both),
		kw("FromKeyword", "from", none),
		kw("FunctionKeyword", "function", both),
		kw("GlobalKeyword", "global", none),
		kw("HexKeyword", "hex", both),
		kw("IfKeyword", "if", both),
		kw("ImmutableKeyword", "immutable", sol),
		kw("ImportKeyword", "import", sol),
		kw("IndexedKeyword", "indexed", sol),
		kw("InterfaceKeyword", "interface", sol),
		kw("InternalKeyword", "internal", sol),
		kw("IsKeyword", "is", sol),
		kw("LeaveKeyword", "leave", yul),
		kw("LetKeyword", "let", both),
		kw("LibraryKeyword", "library", sol),
		kw("MappingKeyword", "mapping", sol),
		kw("MemoryKeyword", "memory", sol),
		kw("ModifierKeyword", "modifier", sol),
		kw("NewKeyword", "new", sol),
		kw("OverrideKeyword", "override", sol),
		kw("PayableKeyword", "payable", sol),
		kw("PragmaKeyword", "pragma", sol),
		kw("PrivateKeyword", "private", sol),
		kw("PublicKeyword", "public", sol),
		kw("PureKeyword", "pure", sol),
		kw("ReceiveKeyword", "receive", none),
		kw("ReturnKeyword", "return", sol),
		kw("ReturnsKeyword", "returns", sol),
		kw("RevertKeyword", "revert", none),
		kw("SolidityKeyword", "solidity", none),
		kw("StorageKeyword", "storage", sol),
		kw("StringKeyword", "string", sol),
		kw("StructKeyword", "struct", sol),
		kw("SwitchKeyword", "switch", both),
		kw("TryKeyword", "try", sol),
		kw("TypeKeyword", "type", sol),
		kw("UncheckedKeyword", "unchecked", sol),
		kw("UsingKeyword", "using", sol),
		kw("ViewKeyword", "view", sol),
		kw("VirtualKeyword", "virtual", sol),
		kw("WhileKeyword", "while", sol),
		grammar.Keyword("BooleanLiteral", grammar.Words("true", "false"), both),
		grammar.Keyword("NumberUnit", grammar.Words(
			"wei", "gwei", "szabo", "finney", "ether",
			"seconds", "minutes", "hours", "days", "weeks", "years",
		), sol),
		grammar.Keyword("FixedBytesType", seq{atom("bytes"), ref("FixedBytesTypeSize")}, sol),
		grammar.Keyword("SignedIntegerType", sized("int", ref("IntegerTypeSize")), sol),
		grammar.Keyword("UnsignedIntegerType", sized("uint", ref("IntegerTypeSize")), sol),
		grammar.Keyword("SignedFixedType", sized("fixed", ref("FixedTypeSize")), sol),
		grammar.Keyword("UnsignedFixedType", sized("ufixed", ref("FixedTypeSize")), sol),
		grammar.Keyword("ReservedKeyword", grammar.Words(
			"after", "alias", "apply", "auto", "copyof", "define", "final",
			"implements", "in", "inline", "macro", "match", "mutable", "null",
			"of", "partial", "promise", "reference", "relocatable", "sealed",
			"sizeof", "static", "supports", "typedef", "typeof", "var",
		), sol),
	}
}
