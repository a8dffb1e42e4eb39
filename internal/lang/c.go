package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

// cGrammar classifies top-level declaration nodes by their declarator: a
// function_declarator makes a prototype (type-only, so a definition of the
// same name wins the tie-break), anything else a variable binding.
func cGrammar() *Grammar {
	g := &Grammar{
		Name:     "c",
		Language: sitter.NewLanguage(c.Language()),
		kinds: map[string]DeclKind{
			"function_definition": DeclFunction,
			"struct_specifier":    DeclClass,
			"union_specifier":     DeclClass,
			"enum_specifier":      DeclClass,
			"type_definition":     DeclOther,
		},
		memberKinds: map[string]DeclKind{},
		typeOnly: map[string]bool{
			"type_definition": true,
		},
		nameOf: map[string]func(n *sitter.Node, source []byte) string{
			"function_definition": declaratorName,
			"declaration":         declaratorName,
			"type_definition": func(n *sitter.Node, source []byte) string {
				return nodeText(n.ChildByFieldName("declarator"), source)
			},
		},
	}
	g.classify = func(n *sitter.Node, member bool) (DeclKind, bool, bool) {
		if member || n.Kind() != "declaration" {
			return DeclOther, false, false
		}
		if hasFunctionDeclarator(n) {
			return DeclFunction, true, true
		}
		return DeclBinding, false, true
	}
	return g
}

func hasFunctionDeclarator(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(uint(i))
		if child.Kind() == "function_declarator" {
			return true
		}
		if child.Kind() == "pointer_declarator" && hasFunctionDeclarator(child) {
			return true
		}
	}
	return false
}

// declaratorName digs the declared identifier out of nested declarators
// (pointers, functions, initializers).
func declaratorName(n *sitter.Node, source []byte) string {
	decl := n.ChildByFieldName("declarator")
	for decl != nil {
		switch decl.Kind() {
		case "identifier":
			return nodeText(decl, source)
		case "function_declarator", "pointer_declarator", "array_declarator", "init_declarator":
			decl = decl.ChildByFieldName("declarator")
		default:
			for i := 0; i < int(decl.ChildCount()); i++ {
				if child := decl.Child(uint(i)); child.Kind() == "identifier" {
					return nodeText(child, source)
				}
			}
			return ""
		}
	}
	return ""
}
