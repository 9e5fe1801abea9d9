package definition

import "github.com/dhamidi/sol/grammar"

func statements() []*grammar.Item {
	return []*grammar.Item{
		grammar.Struct("Block",
			req("OpenBrace"),
			req("Statements"),
			req("CloseBrace"),
		).Delimited("OpenBrace", "CloseBrace"),
		grammar.Repeated("Statements", "Statement").Resyncing("CloseBrace"),
		grammar.Enum("Statement",
			"IfStatement",
			"ForStatement",
			"WhileStatement",
			"DoWhileStatement",
			"ContinueStatement",
			"BreakStatement",
			"ReturnStatement",
			"EmitStatement",
			"TryStatement",
			"RevertStatement",
			"AssemblyStatement",
			"Block",
			"UncheckedBlock",
			"SimpleStatement",
		),
		grammar.Enum("SimpleStatement",
			"TupleDeconstructionStatement",
			"VariableDeclarationStatement",
			"ExpressionStatement",
		),
		grammar.Struct("UncheckedBlock",
			req("UncheckedKeyword"),
			req("Block"),
		),

		grammar.Struct("ExpressionStatement",
			req("Expression"),
			req("Semicolon"),
		).Terminated("Semicolon", 1),
		grammar.Struct("VariableDeclarationStatement",
			req("VariableType", "TypeName"),
			opt("StorageLocation"),
			req("Name", "Identifier"),
			opt("Value", "VariableDeclarationValue"),
			req("Semicolon"),
		).Terminated("Semicolon", 3),
		grammar.Struct("VariableDeclarationValue",
			req("Equal"),
			req("Expression"),
		),
		grammar.Struct("TupleDeconstructionStatement",
			req("OpenParen"),
			req("Elements", "TupleDeconstructionElements"),
			req("CloseParen"),
			req("Equal"),
			req("Expression"),
			req("Semicolon"),
		).Terminated("Semicolon", 4),
		grammar.Separated("TupleDeconstructionElements", "TupleDeconstructionElement", "Comma"),
		grammar.Struct("TupleDeconstructionElement",
			opt("Member", "TupleMember"),
		),
		grammar.Enum("TupleMember", "TypedTupleMember", "UntypedTupleMember"),
		grammar.Struct("TypedTupleMember",
			req("TypeName"),
			opt("StorageLocation"),
			req("Name", "Identifier"),
		),
		grammar.Struct("UntypedTupleMember",
			opt("StorageLocation"),
			req("Name", "Identifier"),
		),

		grammar.Struct("IfStatement",
			req("IfKeyword"),
			req("OpenParen"),
			req("Condition", "Expression"),
			req("CloseParen"),
			req("Body", "Statement"),
			opt("ElseBranch"),
		),
		grammar.Struct("ElseBranch",
			req("ElseKeyword"),
			req("Body", "Statement"),
		),
		grammar.Struct("ForStatement",
			req("ForKeyword"),
			req("OpenParen"),
			req("Initialization", "ForStatementInitialization"),
			req("Condition", "ForStatementCondition"),
			opt("Iterator", "Expression"),
			req("CloseParen"),
			req("Body", "Statement"),
		),
		grammar.Enum("ForStatementInitialization", "SimpleStatement", "Semicolon"),
		grammar.Enum("ForStatementCondition", "ExpressionStatement", "Semicolon"),
		grammar.Struct("WhileStatement",
			req("WhileKeyword"),
			req("OpenParen"),
			req("Condition", "Expression"),
			req("CloseParen"),
			req("Body", "Statement"),
		),
		grammar.Struct("DoWhileStatement",
			req("DoKeyword"),
			req("Body", "Statement"),
			req("WhileKeyword"),
			req("OpenParen"),
			req("Condition", "Expression"),
			req("CloseParen"),
			req("Semicolon"),
		).Terminated("Semicolon", 1),
		grammar.Struct("ContinueStatement",
			req("ContinueKeyword"),
			req("Semicolon"),
		).Terminated("Semicolon", 1),
		grammar.Struct("BreakStatement",
			req("BreakKeyword"),
			req("Semicolon"),
		).Terminated("Semicolon", 1),
		grammar.Struct("ReturnStatement",
			req("ReturnKeyword"),
			opt("Expression"),
			req("Semicolon"),
		).Terminated("Semicolon", 1),
		grammar.Struct("EmitStatement",
			req("EmitKeyword"),
			req("Event", "IdentifierPath"),
			req("Arguments", "ArgumentsDeclaration"),
			req("Semicolon"),
		).Terminated("Semicolon", 1),
		grammar.Struct("RevertStatement",
			req("RevertKeyword"),
			opt("Error", "IdentifierPath"),
			req("Arguments", "ArgumentsDeclaration"),
			req("Semicolon"),
		).Terminated("Semicolon", 2),
		grammar.Struct("TryStatement",
			req("TryKeyword"),
			req("Expression"),
			opt("Returns", "ReturnsDeclaration"),
			req("Body", "Block"),
			req("CatchClauses"),
		),
		grammar.Repeated("CatchClauses", "CatchClause"),
		grammar.Struct("CatchClause",
			req("CatchKeyword"),
			opt("Error", "CatchClauseError"),
			req("Body", "Block"),
		),
		grammar.Struct("CatchClauseError",
			opt("Name", "Identifier"),
			req("Parameters", "ParametersDeclaration"),
		),
		grammar.Struct("AssemblyStatement",
			req("AssemblyKeyword"),
			opt("Label", "AsciiStringLiteral"),
			opt("Flags", "AssemblyFlagsDeclaration"),
			req("Body", "YulBlock"),
		),
		grammar.Struct("AssemblyFlagsDeclaration",
			req("OpenParen"),
			req("Flags", "AssemblyFlags"),
			req("CloseParen"),
		),
		grammar.Separated("AssemblyFlags", "AsciiStringLiteral", "Comma"),
	}
}
