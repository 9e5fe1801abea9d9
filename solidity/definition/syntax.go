package definition

import "github.com/dhamidi/sol/grammar"

var (
	req = grammar.Required
	opt = grammar.Optional
)

func sourceUnit() []*grammar.Item {
	return []*grammar.Item{
		grammar.Repeated("SourceUnit", "SourceUnitMember").Resyncing(""),
		grammar.Enum("SourceUnitMember",
			"PragmaDirective",
			"ImportDirective",
			"UsingDirective",
			"ContractDefinition",
			"InterfaceDefinition",
			"LibraryDefinition",
			"StructDefinition",
			"EnumDefinition",
			"FunctionDefinition",
			"ErrorDefinition",
			"EventDefinition",
			"UserDefinedValueTypeDefinition",
			"ConstantDefinition",
		),
	}
}

func directives() []*grammar.Item {
	return []*grammar.Item{
		grammar.Struct("PragmaDirective",
			req("PragmaKeyword"),
			req("Pragma"),
			req("Semicolon"),
		).Terminated("Semicolon", 1),
		grammar.Enum("Pragma", "AbicoderPragma", "ExperimentalPragma", "VersionPragma"),
		grammar.Struct("AbicoderPragma",
			req("AbicoderKeyword"),
			req("Version", "Identifier"),
		),
		grammar.Struct("ExperimentalPragma",
			req("ExperimentalKeyword"),
			req("Feature", "ExperimentalFeature"),
		),
		grammar.Enum("ExperimentalFeature", "Identifier", "AsciiStringLiteral"),
		grammar.Struct("VersionPragma",
			req("SolidityKeyword"),
			req("Sets", "VersionPragmaExpressions"),
		),
		grammar.Repeated("VersionPragmaExpressions", "VersionPragmaExpression"),
		grammar.Precedence("VersionPragmaExpression",
			[]string{"VersionPragmaSpecifier"},
			grammar.NewTier("VersionPragmaOrExpression", grammar.BinaryLeft, req("Operator", "BarBar")),
			grammar.NewTier("VersionPragmaRangeExpression", grammar.BinaryLeft, req("Operator", "Minus")),
		),
		grammar.Struct("VersionPragmaSpecifier",
			opt("Operator", "VersionPragmaOperator"),
			req("Value", "VersionPragmaValue"),
		),

		grammar.Struct("ImportDirective",
			req("ImportKeyword"),
			req("Clause", "ImportClause"),
			req("Semicolon"),
		).Terminated("Semicolon", 1),
		grammar.Enum("ImportClause", "PathImport", "NamedImport", "ImportDeconstruction"),
		grammar.Struct("PathImport",
			req("Path", "AsciiStringLiteral"),
			opt("Alias", "ImportAlias"),
		),
		grammar.Struct("NamedImport",
			req("Asterisk"),
			req("Alias", "ImportAlias"),
			req("FromKeyword"),
			req("Path", "AsciiStringLiteral"),
		),
		grammar.Struct("ImportDeconstruction",
			req("OpenBrace"),
			req("Symbols", "ImportDeconstructionSymbols"),
			req("CloseBrace"),
			req("FromKeyword"),
			req("Path", "AsciiStringLiteral"),
		),
		grammar.Separated("ImportDeconstructionSymbols", "ImportDeconstructionSymbol", "Comma"),
		grammar.Struct("ImportDeconstructionSymbol",
			req("Name", "Identifier"),
			opt("Alias", "ImportAlias"),
		),
		grammar.Struct("ImportAlias",
			req("AsKeyword"),
			req("Identifier"),
		),

		grammar.Struct("UsingDirective",
			req("UsingKeyword"),
			req("Clause", "UsingClause"),
			req("ForKeyword"),
			req("Target", "UsingTarget"),
			opt("GlobalKeyword"),
			req("Semicolon"),
		).Terminated("Semicolon", 1),
		grammar.Enum("UsingClause", "IdentifierPath", "UsingDeconstruction"),
		grammar.Struct("UsingDeconstruction",
			req("OpenBrace"),
			req("Symbols", "UsingDeconstructionSymbols"),
			req("CloseBrace"),
		),
		grammar.Separated("UsingDeconstructionSymbols", "UsingDeconstructionSymbol", "Comma"),
		grammar.Struct("UsingDeconstructionSymbol",
			req("Name", "IdentifierPath"),
			opt("Alias", "UsingAlias"),
		),
		grammar.Struct("UsingAlias",
			req("AsKeyword"),
			req("Operator", "UsingOperator"),
		),
		grammar.Enum("UsingOperator",
			"Ampersand", "Asterisk", "BangEqual", "Bar", "Caret", "EqualEqual",
			"GreaterThan", "GreaterThanEqual", "LessThan", "LessThanEqual",
			"Minus", "Percent", "Plus", "Slash", "Tilde",
		),
		grammar.Enum("UsingTarget", "TypeName", "Asterisk"),
	}
}

func contracts() []*grammar.Item {
	return []*grammar.Item{
		grammar.Struct("ContractDefinition",
			opt("AbstractKeyword"),
			req("ContractKeyword"),
			req("Name", "Identifier"),
			opt("Inheritance", "InheritanceSpecifier"),
			req("OpenBrace"),
			req("Members", "ContractMembers"),
			req("CloseBrace"),
		).Delimited("OpenBrace", "CloseBrace"),
		grammar.Struct("InheritanceSpecifier",
			req("IsKeyword"),
			req("Types", "InheritanceTypes"),
		),
		grammar.Separated("InheritanceTypes", "InheritanceType", "Comma"),
		grammar.Struct("InheritanceType",
			req("TypeName", "IdentifierPath"),
			opt("Arguments", "ArgumentsDeclaration"),
		),
		grammar.Repeated("ContractMembers", "ContractMember").Resyncing("CloseBrace"),
		grammar.Enum("ContractMember",
			"UsingDirective",
			"FunctionDefinition",
			"ConstructorDefinition",
			"ReceiveFunctionDefinition",
			"FallbackFunctionDefinition",
			"ModifierDefinition",
			"StructDefinition",
			"EnumDefinition",
			"EventDefinition",
			"ErrorDefinition",
			"UserDefinedValueTypeDefinition",
			"StateVariableDefinition",
		),
		grammar.Struct("InterfaceDefinition",
			req("InterfaceKeyword"),
			req("Name", "Identifier"),
			opt("Inheritance", "InheritanceSpecifier"),
			req("OpenBrace"),
			req("Members", "InterfaceMembers"),
			req("CloseBrace"),
		).Delimited("OpenBrace", "CloseBrace"),
		grammar.Repeated("InterfaceMembers", "ContractMember").Resyncing("CloseBrace"),
		grammar.Struct("LibraryDefinition",
			req("LibraryKeyword"),
			req("Name", "Identifier"),
			req("OpenBrace"),
			req("Members", "LibraryMembers"),
			req("CloseBrace"),
		).Delimited("OpenBrace", "CloseBrace"),
		grammar.Repeated("LibraryMembers", "ContractMember").Resyncing("CloseBrace"),

		grammar.Struct("StructDefinition",
			req("StructKeyword"),
			req("Name", "Identifier"),
			req("OpenBrace"),
			req("Members", "StructMembers"),
			req("CloseBrace"),
		).Delimited("OpenBrace", "CloseBrace"),
		grammar.Repeated("StructMembers", "StructMember"),
		grammar.Struct("StructMember",
			req("TypeName"),
			req("Name", "Identifier"),
			req("Semicolon"),
		).Terminated("Semicolon", 1),
		grammar.Struct("EnumDefinition",
			req("EnumKeyword"),
			req("Name", "Identifier"),
			req("OpenBrace"),
			opt("Members", "EnumMembers"),
			req("CloseBrace"),
		).Delimited("OpenBrace", "CloseBrace"),
		grammar.Separated("EnumMembers", "Identifier", "Comma"),

		grammar.Struct("ConstantDefinition",
			req("TypeName"),
			req("ConstantKeyword"),
			req("Name", "Identifier"),
			req("Equal"),
			req("Value", "Expression"),
			req("Semicolon"),
		).Terminated("Semicolon", 2),
		grammar.Struct("StateVariableDefinition",
			req("TypeName"),
			req("Attributes", "StateVariableAttributes"),
			req("Name", "Identifier"),
			opt("Value", "StateVariableDefinitionValue"),
			req("Semicolon"),
		).Terminated("Semicolon", 1),
		grammar.Struct("StateVariableDefinitionValue",
			req("Equal"),
			req("Value", "Expression"),
		),
		grammar.Repeated("StateVariableAttributes", "StateVariableAttribute"),
		grammar.Enum("StateVariableAttribute",
			"OverrideSpecifier",
			"ConstantKeyword",
			"InternalKeyword",
			"PrivateKeyword",
			"PublicKeyword",
			"ImmutableKeyword",
		),
		grammar.Struct("UserDefinedValueTypeDefinition",
			req("TypeKeyword"),
			req("Name", "Identifier"),
			req("IsKeyword"),
			req("ValueType", "ElementaryType"),
			req("Semicolon"),
		).Terminated("Semicolon", 1),
	}
}

func functions() []*grammar.Item {
	return []*grammar.Item{
		grammar.Struct("FunctionDefinition",
			req("FunctionKeyword"),
			req("Name", "FunctionName"),
			req("Parameters", "ParametersDeclaration"),
			req("Attributes", "FunctionAttributes"),
			opt("Returns", "ReturnsDeclaration"),
			req("Body", "FunctionBody"),
		),
		grammar.Enum("FunctionName", "Identifier", "FallbackKeyword", "ReceiveKeyword"),
		grammar.Struct("ParametersDeclaration",
			req("OpenParen"),
			opt("Parameters"),
			req("CloseParen"),
		),
		grammar.Separated("Parameters", "Parameter", "Comma"),
		grammar.Struct("Parameter",
			req("TypeName"),
			opt("StorageLocation"),
			opt("Name", "Identifier"),
		),
		grammar.Enum("StorageLocation", "MemoryKeyword", "StorageKeyword", "CalldataKeyword"),
		grammar.Repeated("FunctionAttributes", "FunctionAttribute"),
		grammar.Enum("FunctionAttribute",
			"OverrideSpecifier",
			"ConstantKeyword",
			"ExternalKeyword",
			"InternalKeyword",
			"PayableKeyword",
			"PrivateKeyword",
			"PublicKeyword",
			"PureKeyword",
			"ViewKeyword",
			"VirtualKeyword",
			"ModifierInvocation",
		),
		grammar.Struct("OverrideSpecifier",
			req("OverrideKeyword"),
			opt("Overridden", "OverridePathsDeclaration"),
		),
		grammar.Struct("OverridePathsDeclaration",
			req("OpenParen"),
			req("Paths", "OverridePaths"),
			req("CloseParen"),
		),
		grammar.Separated("OverridePaths", "IdentifierPath", "Comma"),
		grammar.Struct("ReturnsDeclaration",
			req("ReturnsKeyword"),
			req("Variables", "ParametersDeclaration"),
		),
		grammar.Enum("FunctionBody", "Block", "Semicolon"),
		grammar.Struct("ModifierInvocation",
			req("Name", "IdentifierPath"),
			opt("Arguments", "ArgumentsDeclaration"),
		),

		grammar.Struct("ConstructorDefinition",
			req("ConstructorKeyword"),
			req("Parameters", "ParametersDeclaration"),
			req("Attributes", "ConstructorAttributes"),
			req("Body", "Block"),
		),
		grammar.Repeated("ConstructorAttributes", "ConstructorAttribute"),
		grammar.Enum("ConstructorAttribute",
			"InternalKeyword",
			"PayableKeyword",
			"PublicKeyword",
			"VirtualKeyword",
			"ModifierInvocation",
		),
		grammar.Struct("FallbackFunctionDefinition",
			req("FallbackKeyword"),
			req("Parameters", "ParametersDeclaration"),
			req("Attributes", "FallbackFunctionAttributes"),
			opt("Returns", "ReturnsDeclaration"),
			req("Body", "FunctionBody"),
		),
		grammar.Repeated("FallbackFunctionAttributes", "FallbackFunctionAttribute"),
		grammar.Enum("FallbackFunctionAttribute",
			"OverrideSpecifier",
			"ExternalKeyword",
			"PayableKeyword",
			"PureKeyword",
			"ViewKeyword",
			"VirtualKeyword",
			"ModifierInvocation",
		),
		grammar.Struct("ReceiveFunctionDefinition",
			req("ReceiveKeyword"),
			req("Parameters", "ParametersDeclaration"),
			req("Attributes", "ReceiveFunctionAttributes"),
			req("Body", "FunctionBody"),
		),
		grammar.Repeated("ReceiveFunctionAttributes", "ReceiveFunctionAttribute"),
		grammar.Enum("ReceiveFunctionAttribute",
			"OverrideSpecifier",
			"ExternalKeyword",
			"PayableKeyword",
			"VirtualKeyword",
			"ModifierInvocation",
		),
		grammar.Struct("ModifierDefinition",
			req("ModifierKeyword"),
			req("Name", "Identifier"),
			opt("Parameters", "ParametersDeclaration"),
			req("Attributes", "ModifierAttributes"),
			req("Body", "FunctionBody"),
		),
		grammar.Repeated("ModifierAttributes", "ModifierAttribute"),
		grammar.Enum("ModifierAttribute", "OverrideSpecifier", "VirtualKeyword"),

		grammar.Struct("EventDefinition",
			req("EventKeyword"),
			req("Name", "Identifier"),
			req("OpenParen"),
			opt("Parameters", "EventParameters"),
			req("CloseParen"),
			opt("AnonymousKeyword"),
			req("Semicolon"),
		).Terminated("Semicolon", 1),
		grammar.Separated("EventParameters", "EventParameter", "Comma"),
		grammar.Struct("EventParameter",
			req("TypeName"),
			opt("IndexedKeyword"),
			opt("Name", "Identifier"),
		),
		grammar.Struct("ErrorDefinition",
			req("ErrorKeyword"),
			req("Name", "Identifier"),
			req("OpenParen"),
			opt("Parameters", "ErrorParameters"),
			req("CloseParen"),
			req("Semicolon"),
		).Terminated("Semicolon", 3),
		grammar.Separated("ErrorParameters", "ErrorParameter", "Comma"),
		grammar.Struct("ErrorParameter",
			req("TypeName"),
			opt("Name", "Identifier"),
		),
	}
}

func types() []*grammar.Item {
	return []*grammar.Item{
		grammar.Precedence("TypeName",
			[]string{"FunctionType", "MappingType", "ElementaryType", "IdentifierPath"},
			grammar.NewTier("ArrayTypeName", grammar.Postfix,
				req("OpenBracket"),
				opt("Index", "Expression"),
				req("CloseBracket"),
			),
		),
		grammar.Struct("FunctionType",
			req("FunctionKeyword"),
			req("Parameters", "ParametersDeclaration"),
			req("Attributes", "FunctionTypeAttributes"),
			opt("Returns", "ReturnsDeclaration"),
		),
		grammar.Repeated("FunctionTypeAttributes", "FunctionTypeAttribute"),
		grammar.Enum("FunctionTypeAttribute",
			"InternalKeyword",
			"ExternalKeyword",
			"PrivateKeyword",
			"PublicKeyword",
			"ConstantKeyword",
			"PureKeyword",
			"ViewKeyword",
			"PayableKeyword",
		),
		grammar.Struct("MappingType",
			req("MappingKeyword"),
			req("OpenParen"),
			req("KeyType", "MappingKey"),
			req("EqualGreaterThan"),
			req("ValueType", "MappingValue"),
			req("CloseParen"),
		),
		grammar.Struct("MappingKey",
			req("KeyType", "MappingKeyType"),
			opt("Name", "Identifier"),
		),
		grammar.Enum("MappingKeyType", "ElementaryType", "IdentifierPath"),
		grammar.Struct("MappingValue",
			req("TypeName"),
			opt("Name", "Identifier"),
		),
		grammar.Enum("ElementaryType",
			"BoolKeyword",
			"ByteKeyword",
			"StringKeyword",
			"AddressType",
			"BytesKeyword",
			"FixedBytesType",
			"SignedIntegerType",
			"UnsignedIntegerType",
			"SignedFixedType",
			"UnsignedFixedType",
		),
		grammar.Struct("AddressType",
			req("AddressKeyword"),
			opt("PayableKeyword"),
		),
		grammar.Separated("IdentifierPath", "Identifier", "Period"),
	}
}
