package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// typescriptGrammar covers TypeScript and, because the AST shape is the
// same, plain JavaScript files.
func typescriptGrammar() *Grammar {
	return &Grammar{
		Name:     "typescript",
		Language: sitter.NewLanguage(typescript.LanguageTypescript()),
		kinds: map[string]DeclKind{
			"function_declaration":           DeclFunction,
			"generator_function_declaration": DeclFunction,
			"function_signature":             DeclFunction,
			"class_declaration":              DeclClass,
			"abstract_class_declaration":     DeclClass,
			"interface_declaration":          DeclInterface,
			"type_alias_declaration":         DeclOther,
			"enum_declaration":               DeclOther,
		},
		memberKinds: map[string]DeclKind{
			"method_definition":         DeclMethod,
			"method_signature":          DeclMethod,
			"abstract_method_signature": DeclMethod,
			"property_signature":        DeclMethod,
		},
		typeOnly: map[string]bool{
			"function_signature":        true,
			"interface_declaration":     true,
			"type_alias_declaration":    true,
			"method_signature":          true,
			"abstract_method_signature": true,
			"property_signature":        true,
		},
		wrappers: map[string]string{
			"export_statement": "declaration",
		},
		bindingStatements: map[string]bool{
			"lexical_declaration":  true,
			"variable_declaration": true,
		},
		functionValues: map[string]bool{
			"arrow_function":      true,
			"function_expression": true,
			"generator_function":  true,
		},
		fieldBindings: map[string]bool{
			"public_field_definition": true,
		},
	}
}

// tsxGrammar is the TypeScript grammar with JSX productions enabled. The
// declaration tables are identical.
func tsxGrammar() *Grammar {
	g := typescriptGrammar()
	g.Name = "tsx"
	g.Language = sitter.NewLanguage(typescript.LanguageTSX())
	return g
}
