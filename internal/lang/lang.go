// Package lang maps file types to tree-sitter grammars and describes, per
// grammar, which syntax node kinds count as extractable declarations.
package lang

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ErrUnsupported is returned for file types with no registered grammar.
var ErrUnsupported = errors.New("unsupported file type")

// DeclKind classifies extracted declarations.
type DeclKind int

const (
	DeclOther DeclKind = iota
	DeclFunction
	DeclClass
	DeclMethod
	DeclInterface
	DeclBinding
)

// String returns a short label for the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case DeclFunction:
		return "function"
	case DeclClass:
		return "class"
	case DeclMethod:
		return "method"
	case DeclInterface:
		return "interface"
	case DeclBinding:
		return "binding"
	default:
		return "other"
	}
}

// Grammar describes how one tree-sitter grammar maps onto the declaration
// model: which node kinds are declarations at the top level and inside a
// class body, which wrapper nodes to look through, and how to find a
// declaration's name. All tables are fixed at registration time, so an
// unmapped node kind is a deliberate "not a declaration".
type Grammar struct {
	Name     string
	Language *sitter.Language

	// kinds maps top-level node kinds to declaration kinds.
	kinds map[string]DeclKind

	// memberKinds maps node kinds found directly inside a class or
	// interface body.
	memberKinds map[string]DeclKind

	// typeOnly marks node kinds that declare only a type (interfaces,
	// type aliases, overload signatures). They lose the duplicate-name
	// tie-break to value declarations.
	typeOnly map[string]bool

	// wrappers maps wrapper node kinds to the field holding the wrapped
	// declaration (export_statement -> "declaration",
	// decorated_definition -> "definition"). The wrapper is the span.
	wrappers map[string]string

	// bindingStatements lists statement kinds whose variable declarators
	// are scanned for function-valued bindings (const f = () => ...).
	bindingStatements map[string]bool

	// functionValues lists initializer node kinds that make a binding or
	// field read as a function.
	functionValues map[string]bool

	// fieldBindings lists member kinds that count as methods only when
	// their value is a function (field-style handlers).
	fieldBindings map[string]bool

	// memberWrappers lists body child kinds flattened one level during a
	// member scan (ruby body_statement).
	memberWrappers map[string]bool

	// classify, when set, takes precedence over the kind tables for node
	// kinds whose meaning depends on their children (C declarations).
	classify func(n *sitter.Node, member bool) (DeclKind, bool, bool)

	// nameOf holds per-kind overrides for grammars where a declaration's
	// name is not a plain "name" field (C declarators, rust impl blocks).
	nameOf map[string]func(n *sitter.Node, source []byte) string
}

// Classify reports the declaration kind of a node at the given nesting
// level, whether it is type-only, and whether it is a declaration at all.
func (g *Grammar) Classify(n *sitter.Node, member bool) (DeclKind, bool, bool) {
	if g.classify != nil {
		if kind, typeOnly, ok := g.classify(n, member); ok {
			return kind, typeOnly, true
		}
	}
	table := g.kinds
	if member {
		table = g.memberKinds
	}
	kind, ok := table[n.Kind()]
	if !ok {
		return DeclOther, false, false
	}
	return kind, g.typeOnly[n.Kind()], true
}

// Unwrap follows wrapper nodes (export statements, decorated definitions)
// down to the declaration they carry. Returns n unchanged when it is not a
// wrapper or the wrapped field is missing.
func (g *Grammar) Unwrap(n *sitter.Node) *sitter.Node {
	for {
		field, ok := g.wrappers[n.Kind()]
		if !ok {
			return n
		}
		inner := n.ChildByFieldName(field)
		if inner == nil {
			return n
		}
		n = inner
	}
}

// IsBindingStatement reports whether a node kind holds variable declarators.
func (g *Grammar) IsBindingStatement(kind string) bool {
	return g.bindingStatements[kind]
}

// IsFunctionValue reports whether an initializer node kind reads as a function.
func (g *Grammar) IsFunctionValue(kind string) bool {
	return g.functionValues[kind]
}

// IsFieldBinding reports whether a member kind needs a function value to
// count as a method.
func (g *Grammar) IsFieldBinding(kind string) bool {
	return g.fieldBindings[kind]
}

// IsMemberWrapper reports whether a body child kind is flattened during a
// member scan.
func (g *Grammar) IsMemberWrapper(kind string) bool {
	return g.memberWrappers[kind]
}

// NameOf returns the declared identifier text for a declaration node, or ""
// when the node has no resolvable name.
func (g *Grammar) NameOf(n *sitter.Node, source []byte) string {
	if fn, ok := g.nameOf[n.Kind()]; ok {
		return fn(n, source)
	}
	return nodeText(n.ChildByFieldName("name"), source)
}

func nodeText(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return string(source[n.StartByte():n.EndByte()])
}

var (
	grammars   = map[string]*Grammar{}
	extensions = map[string]string{}
	// extensionList preserves registration order for target parsing.
	extensionList []string
)

func register(g *Grammar, exts ...string) {
	grammars[g.Name] = g
	for _, ext := range exts {
		extensions[ext] = g.Name
		extensionList = append(extensionList, ext)
	}
}

func init() {
	register(typescriptGrammar(), ".ts", ".mts", ".cts", ".js", ".jsx", ".mjs", ".cjs")
	register(tsxGrammar(), ".tsx")
	register(pythonGrammar(), ".py")
	register(rustGrammar(), ".rs")
	register(javaGrammar(), ".java")
	register(phpGrammar(), ".php")
	register(rubyGrammar(), ".rb")
	register(cGrammar(), ".c", ".h")
}

// ForPath returns the grammar for a file path based on its extension.
func ForPath(path string) (*Grammar, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name, ok := extensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, path)
	}
	return grammars[name], nil
}

// ForName returns a grammar by name, for callers that override extension
// dispatch.
func ForName(name string) (*Grammar, error) {
	g, ok := grammars[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown grammar %q", ErrUnsupported, name)
	}
	return g, nil
}

// Extensions returns the registered file extensions in registration order.
func Extensions() []string {
	return extensionList
}
