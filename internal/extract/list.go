package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"sread/internal/lang"
)

// List returns the names of the top-level declarations in source order.
// Class and interface bodies are not descended into; declarations without
// a resolvable name were already dropped by the index.
func List(root *sitter.Node, g *lang.Grammar, source []byte) []string {
	decls := Index(root, g, source, false)
	names := make([]string, 0, len(decls))
	for i := range decls {
		names = append(names, decls[i].Name)
	}
	return names
}
