package extract

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"sread/internal/lang"
)

// Extract parses source with the given grammar and returns the exact text
// of the declaration named by symbol. The tree lives only for the duration
// of the call.
func Extract(source []byte, g *lang.Grammar, symbol string) (string, error) {
	path, err := ParsePath(symbol)
	if err != nil {
		return "", err
	}

	tree, err := parse(source, g)
	if err != nil {
		return "", err
	}
	defer tree.Close()

	d, err := Resolve(tree.RootNode(), g, source, path)
	if err != nil {
		return "", err
	}
	return Span(d, source), nil
}

// ListSource parses source and returns its top-level declaration names.
func ListSource(source []byte, g *lang.Grammar) ([]string, error) {
	tree, err := parse(source, g)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	return List(tree.RootNode(), g, source), nil
}

func parse(source []byte, g *lang.Grammar) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(g.Language); err != nil {
		return nil, fmt.Errorf("%w: %s grammar: %v", ErrParse, g.Name, err)
	}
	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: %s source", ErrParse, g.Name)
	}
	return tree, nil
}
