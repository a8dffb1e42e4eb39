package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
)

func phpGrammar() *Grammar {
	return &Grammar{
		Name:     "php",
		Language: sitter.NewLanguage(php.LanguagePHP()),
		kinds: map[string]DeclKind{
			"function_definition":   DeclFunction,
			"class_declaration":     DeclClass,
			"trait_declaration":     DeclClass,
			"enum_declaration":      DeclClass,
			"interface_declaration": DeclInterface,
		},
		memberKinds: map[string]DeclKind{
			"method_declaration": DeclMethod,
		},
		typeOnly: map[string]bool{
			"interface_declaration": true,
		},
	}
}
