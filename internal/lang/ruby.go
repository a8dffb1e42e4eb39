package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
)

// rubyGrammar flattens body_statement nodes during member scans: class and
// module bodies nest their statements one level down rather than under a
// dedicated body field in every grammar version.
func rubyGrammar() *Grammar {
	return &Grammar{
		Name:     "ruby",
		Language: sitter.NewLanguage(ruby.Language()),
		kinds: map[string]DeclKind{
			"method":           DeclFunction,
			"singleton_method": DeclFunction,
			"class":            DeclClass,
			"module":           DeclClass,
		},
		memberKinds: map[string]DeclKind{
			"method":           DeclMethod,
			"singleton_method": DeclMethod,
		},
		memberWrappers: map[string]bool{
			"body_statement": true,
		},
	}
}
