package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

func pythonGrammar() *Grammar {
	return &Grammar{
		Name:     "python",
		Language: sitter.NewLanguage(python.Language()),
		kinds: map[string]DeclKind{
			"function_definition": DeclFunction,
			"class_definition":    DeclClass,
		},
		memberKinds: map[string]DeclKind{
			"function_definition": DeclMethod,
		},
		// Decorators are structurally part of the definition in this
		// grammar, so the wrapper is the extracted span.
		wrappers: map[string]string{
			"decorated_definition": "definition",
		},
	}
}
