package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"sread/internal/lang"
)

// Index walks the direct children of container once and returns the
// declarations found at that nesting level, in source order. member selects
// the class-body kind table instead of the top-level one. Pure function of
// the tree; nodes without a resolvable name are skipped.
func Index(container *sitter.Node, g *lang.Grammar, source []byte, member bool) []Declaration {
	var decls []Declaration
	for i := 0; i < int(container.ChildCount()); i++ {
		child := container.Child(uint(i))
		if member && g.IsMemberWrapper(child.Kind()) {
			decls = append(decls, Index(child, g, source, true)...)
			continue
		}
		decls = append(decls, classify(child, g, source, member)...)
	}
	return decls
}

func classify(node *sitter.Node, g *lang.Grammar, source []byte, member bool) []Declaration {
	inner := g.Unwrap(node)

	if !member && g.IsBindingStatement(inner.Kind()) {
		return bindingDecls(node, inner, g, source)
	}
	if member && g.IsFieldBinding(inner.Kind()) {
		return fieldDecl(node, inner, g, source)
	}

	kind, typeOnly, ok := g.Classify(inner, member)
	if !ok {
		return nil
	}
	name := g.NameOf(inner, source)
	if name == "" {
		return nil
	}
	return []Declaration{{
		Name:     name,
		Kind:     kind,
		TypeOnly: typeOnly,
		Node:     node,
		Start:    node.StartByte(),
		End:      node.EndByte(),
		inner:    inner,
	}}
}

// bindingDecls indexes const/let/var statements whose declarators are
// initialized with a function value. The span is the whole statement (or
// its export wrapper), matching how the declaration reads in source.
func bindingDecls(span, stmt *sitter.Node, g *lang.Grammar, source []byte) []Declaration {
	var decls []Declaration
	for i := 0; i < int(stmt.ChildCount()); i++ {
		decl := stmt.Child(uint(i))
		if decl.Kind() != "variable_declarator" {
			continue
		}
		value := decl.ChildByFieldName("value")
		if value == nil || !g.IsFunctionValue(value.Kind()) {
			continue
		}
		name := g.NameOf(decl, source)
		if name == "" {
			continue
		}
		decls = append(decls, Declaration{
			Name:  name,
			Kind:  lang.DeclBinding,
			Node:  span,
			Start: span.StartByte(),
			End:   span.EndByte(),
			inner: value,
		})
	}
	return decls
}

// fieldDecl indexes a class field as a method when its value is a function
// (handler = () => { ... } style members).
func fieldDecl(span, field *sitter.Node, g *lang.Grammar, source []byte) []Declaration {
	value := field.ChildByFieldName("value")
	if value == nil || !g.IsFunctionValue(value.Kind()) {
		return nil
	}
	name := g.NameOf(field, source)
	if name == "" {
		return nil
	}
	return []Declaration{{
		Name:  name,
		Kind:  lang.DeclMethod,
		Node:  span,
		Start: span.StartByte(),
		End:   span.EndByte(),
		inner: field,
	}}
}
