package definition

import "github.com/dhamidi/sol/grammar"

func yul() []*grammar.Item {
	return []*grammar.Item{
		grammar.Struct("YulBlock",
			req("OpenBrace"),
			req("Statements", "YulStatements"),
			req("CloseBrace"),
		).Delimited("OpenBrace", "CloseBrace"),
		grammar.Repeated("YulStatements", "YulStatement").Resyncing("CloseBrace"),
		grammar.Enum("YulStatement",
			"YulBlock",
			"YulFunctionDefinition",
			"YulVariableDeclarationStatement",
			"YulIfStatement",
			"YulForStatement",
			"YulSwitchStatement",
			"YulLeaveStatement",
			"YulBreakStatement",
			"YulContinueStatement",
			"YulVariableAssignmentStatement",
			"YulExpression",
		),
		grammar.Struct("YulFunctionDefinition",
			req("FunctionKeyword"),
			req("Name", "YulIdentifier"),
			req("Parameters", "YulParametersDeclaration"),
			opt("Returns", "YulReturnsDeclaration"),
			req("Body", "YulBlock"),
		),
		grammar.Struct("YulParametersDeclaration",
			req("OpenParen"),
			opt("Parameters", "YulParameters"),
			req("CloseParen"),
		),
		grammar.Separated("YulParameters", "YulIdentifier", "Comma"),
		grammar.Struct("YulReturnsDeclaration",
			req("MinusGreaterThan"),
			req("Variables", "YulVariableNames"),
		),
		grammar.Separated("YulVariableNames", "YulIdentifier", "Comma"),
		grammar.Struct("YulVariableDeclarationStatement",
			req("LetKeyword"),
			req("Variables", "YulVariableNames"),
			opt("Value", "YulVariableDeclarationValue"),
		),
		grammar.Struct("YulVariableDeclarationValue",
			req("Assignment", "ColonEqual"),
			req("Expression", "YulExpression"),
		),
		grammar.Struct("YulVariableAssignmentStatement",
			req("Variables", "YulPaths"),
			req("Assignment", "ColonEqual"),
			req("Expression", "YulExpression"),
		),
		grammar.Separated("YulPaths", "YulPath", "Comma"),
		grammar.Separated("YulPath", "YulIdentifier", "Period"),
		grammar.Struct("YulIfStatement",
			req("IfKeyword"),
			req("Condition", "YulExpression"),
			req("Body", "YulBlock"),
		),
		grammar.Struct("YulForStatement",
			req("ForKeyword"),
			req("Initialization", "YulBlock"),
			req("Condition", "YulExpression"),
			req("Iterator", "YulBlock"),
			req("Body", "YulBlock"),
		),
		grammar.Struct("YulSwitchStatement",
			req("SwitchKeyword"),
			req("Expression", "YulExpression"),
			req("Cases", "YulSwitchCases"),
		),
		grammar.Repeated("YulSwitchCases", "YulSwitchCase"),
		grammar.Enum("YulSwitchCase", "YulDefaultCase", "YulValueCase"),
		grammar.Struct("YulDefaultCase",
			req("DefaultKeyword"),
			req("Body", "YulBlock"),
		),
		grammar.Struct("YulValueCase",
			req("CaseKeyword"),
			req("Value", "YulLiteral"),
			req("Body", "YulBlock"),
		),
		grammar.Struct("YulLeaveStatement", req("LeaveKeyword")),
		grammar.Struct("YulBreakStatement", req("BreakKeyword")),
		grammar.Struct("YulContinueStatement", req("ContinueKeyword")),
		grammar.Enum("YulExpression", "YulFunctionCallExpression", "YulLiteral", "YulPath"),
		grammar.Struct("YulFunctionCallExpression",
			req("Operand", "YulIdentifier"),
			req("OpenParen"),
			opt("Arguments", "YulArguments"),
			req("CloseParen"),
		),
		grammar.Separated("YulArguments", "YulExpression", "Comma"),
		grammar.Enum("YulLiteral",
			"BooleanLiteral",
			"YulDecimalLiteral",
			"YulHexLiteral",
			"HexStringLiteral",
			"AsciiStringLiteral",
		),
	}
}
