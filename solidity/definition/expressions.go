package definition

import "github.com/dhamidi/sol/grammar"

func binary(name string, model grammar.Model, operators ...string) grammar.Tier {
	return grammar.NewTier(name, model, req("Operator", operators...))
}

func expressions() []*grammar.Item {
	return []*grammar.Item{
		grammar.Precedence("Expression",
			[]string{"PrimaryExpression"},
			binary("AssignmentExpression", grammar.BinaryRight,
				"Equal", "BarEqual", "PlusEqual", "MinusEqual", "CaretEqual", "SlashEqual",
				"PercentEqual", "AsteriskEqual", "AmpersandEqual", "LessThanLessThanEqual",
				"GreaterThanGreaterThanEqual", "GreaterThanGreaterThanGreaterThanEqual",
			),
			grammar.NewTier("ConditionalExpression", grammar.Postfix,
				req("QuestionMark"),
				req("TrueExpression", "Expression"),
				req("Colon"),
				req("FalseExpression", "Expression"),
			),
			binary("OrExpression", grammar.BinaryLeft, "BarBar"),
			binary("AndExpression", grammar.BinaryLeft, "AmpersandAmpersand"),
			binary("EqualityExpression", grammar.BinaryLeft, "EqualEqual", "BangEqual"),
			binary("InequalityExpression", grammar.BinaryLeft,
				"LessThan", "GreaterThan", "LessThanEqual", "GreaterThanEqual",
			),
			binary("BitwiseOrExpression", grammar.BinaryLeft, "Bar"),
			binary("BitwiseXorExpression", grammar.BinaryLeft, "Caret"),
			binary("BitwiseAndExpression", grammar.BinaryLeft, "Ampersand"),
			binary("ShiftExpression", grammar.BinaryLeft,
				"LessThanLessThan", "GreaterThanGreaterThan", "GreaterThanGreaterThanGreaterThan",
			),
			binary("AdditiveExpression", grammar.BinaryLeft, "Plus", "Minus"),
			binary("MultiplicativeExpression", grammar.BinaryLeft, "Asterisk", "Slash", "Percent"),
			binary("ExponentiationExpression", grammar.BinaryRight, "AsteriskAsterisk"),
			grammar.NewTier("PrefixExpression", grammar.Prefix,
				req("Operator", "PlusPlus", "MinusMinus", "Tilde", "Bang", "Minus", "DeleteKeyword"),
			),
			grammar.NewTier("PostfixExpression", grammar.Postfix,
				req("Operator", "PlusPlus", "MinusMinus"),
			),
			grammar.NewTier("FunctionCallExpression", grammar.Postfix,
				req("Arguments", "ArgumentsDeclaration"),
			),
			grammar.NewTier("CallOptionsExpression", grammar.Postfix,
				req("OpenBrace"),
				req("Options", "CallOptions"),
				req("CloseBrace"),
			),
			grammar.NewTier("MemberAccessExpression", grammar.Postfix,
				req("Period"),
				req("Member", "MemberAccess"),
			),
			grammar.NewTier("IndexAccessExpression", grammar.Postfix,
				req("OpenBracket"),
				opt("Start", "Expression"),
				opt("End", "IndexAccessEnd"),
				req("CloseBracket"),
			),
		),
		grammar.Enum("PrimaryExpression",
			"NewExpression",
			"TupleExpression",
			"TypeExpression",
			"ArrayExpression",
			"HexNumberExpression",
			"DecimalNumberExpression",
			"StringExpression",
			"ElementaryType",
			"PayableExpression",
			"BooleanLiteral",
			"Identifier",
		),
		grammar.Enum("MemberAccess", "Identifier", "AddressKeyword"),
		grammar.Struct("IndexAccessEnd",
			req("Colon"),
			opt("End", "Expression"),
		),
		grammar.Separated("CallOptions", "NamedArgument", "Comma"),

		grammar.Enum("ArgumentsDeclaration", "PositionalArgumentsDeclaration", "NamedArgumentsDeclaration"),
		grammar.Struct("PositionalArgumentsDeclaration",
			req("OpenParen"),
			opt("Arguments", "PositionalArguments"),
			req("CloseParen"),
		),
		grammar.Separated("PositionalArguments", "Expression", "Comma"),
		grammar.Struct("NamedArgumentsDeclaration",
			req("OpenParen"),
			opt("Arguments", "NamedArgumentGroup"),
			req("CloseParen"),
		),
		grammar.Struct("NamedArgumentGroup",
			req("OpenBrace"),
			opt("Arguments", "NamedArguments"),
			req("CloseBrace"),
		),
		grammar.Separated("NamedArguments", "NamedArgument", "Comma"),
		grammar.Struct("NamedArgument",
			req("Name", "Identifier"),
			req("Colon"),
			req("Value", "Expression"),
		),

		grammar.Struct("NewExpression",
			req("NewKeyword"),
			req("TypeName"),
		),
		grammar.Struct("TupleExpression",
			req("OpenParen"),
			req("Items", "TupleValues"),
			req("CloseParen"),
		),
		grammar.Separated("TupleValues", "TupleValue", "Comma"),
		grammar.Struct("TupleValue",
			opt("Expression"),
		),
		grammar.Struct("TypeExpression",
			req("TypeKeyword"),
			req("OpenParen"),
			req("TypeName"),
			req("CloseParen"),
		),
		grammar.Struct("ArrayExpression",
			req("OpenBracket"),
			req("Items", "ArrayValues"),
			req("CloseBracket"),
		),
		grammar.Separated("ArrayValues", "Expression", "Comma"),
		grammar.Struct("HexNumberExpression",
			req("Literal", "HexLiteral"),
		),
		grammar.Struct("DecimalNumberExpression",
			req("Literal", "DecimalLiteral"),
			opt("Unit", "NumberUnit"),
		),
		grammar.Struct("PayableExpression",
			req("PayableKeyword"),
			req("Arguments", "ArgumentsDeclaration"),
		),
		grammar.Enum("StringExpression", "HexStringLiteral", "AsciiStringLiteral", "UnicodeStringLiteral"),
		grammar.Enum("AsciiStringLiteral", "DoubleQuotedAsciiStringLiteral", "SingleQuotedAsciiStringLiteral"),
		grammar.Enum("UnicodeStringLiteral", "DoubleQuotedUnicodeStringLiteral", "SingleQuotedUnicodeStringLiteral"),
	}
}
