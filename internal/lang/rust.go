package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

// rustGrammar models impl blocks as class-kind declarations named after the
// type they implement. Methods live there rather than on the struct, so
// Type.method resolution scans the struct body first (finding nothing) and
// then each impl block in source order.
func rustGrammar() *Grammar {
	return &Grammar{
		Name:     "rust",
		Language: sitter.NewLanguage(rust.Language()),
		kinds: map[string]DeclKind{
			"function_item": DeclFunction,
			"struct_item":   DeclClass,
			"enum_item":     DeclClass,
			"union_item":    DeclClass,
			"impl_item":     DeclClass,
			"trait_item":    DeclInterface,
			"mod_item":      DeclOther,
			"const_item":    DeclBinding,
			"static_item":   DeclBinding,
		},
		memberKinds: map[string]DeclKind{
			"function_item":           DeclMethod,
			"function_signature_item": DeclMethod,
		},
		typeOnly: map[string]bool{
			"trait_item":              true,
			"function_signature_item": true,
		},
		nameOf: map[string]func(n *sitter.Node, source []byte) string{
			"impl_item": func(n *sitter.Node, source []byte) string {
				return nodeText(n.ChildByFieldName("type"), source)
			},
		},
	}
}
