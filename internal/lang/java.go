package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

func javaGrammar() *Grammar {
	return &Grammar{
		Name:     "java",
		Language: sitter.NewLanguage(java.Language()),
		kinds: map[string]DeclKind{
			"class_declaration":     DeclClass,
			"enum_declaration":      DeclClass,
			"record_declaration":    DeclClass,
			"interface_declaration": DeclInterface,
		},
		memberKinds: map[string]DeclKind{
			"method_declaration":      DeclMethod,
			"constructor_declaration": DeclMethod,
		},
		typeOnly: map[string]bool{
			"interface_declaration": true,
		},
	}
}
