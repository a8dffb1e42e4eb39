// Package extract implements the symbol resolution and span extraction
// engine: indexing the declarations of a parsed file, resolving a dotted
// symbol path against them, and slicing the exact source bytes of the
// winning declaration.
package extract

import (
	"errors"
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"sread/internal/lang"
)

var (
	// ErrSymbolNotFound reports that a well-formed file has no matching
	// declaration. Callers map it to its own exit status.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrParse reports that the grammar produced no usable tree at all.
	// Localized error nodes inside an otherwise valid tree are not fatal.
	ErrParse = errors.New("failed to parse")

	// ErrBadSymbol reports a malformed symbol argument.
	ErrBadSymbol = errors.New("invalid symbol")
)

// Declaration is a named, extractable construct found at one nesting level.
// Node is the span node: for wrapped declarations (export statements,
// decorated definitions) it is the wrapper, so the extracted text carries
// the export keyword or decorator. inner is the declaration itself and is
// where the body lives.
type Declaration struct {
	Name     string
	Kind     lang.DeclKind
	TypeOnly bool
	Node     *sitter.Node
	Start    uint
	End      uint

	inner *sitter.Node
}

// SymbolPath is the dotted identifier sequence naming the target, split on
// the first dot. Length is always 1 or 2.
type SymbolPath []string

// ParsePath splits a symbol argument into a SymbolPath.
func ParsePath(symbol string) (SymbolPath, error) {
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", ErrBadSymbol)
	}
	first, rest, dotted := strings.Cut(symbol, ".")
	if !dotted {
		return SymbolPath{first}, nil
	}
	if first == "" || rest == "" {
		return nil, fmt.Errorf("%w: %q", ErrBadSymbol, symbol)
	}
	return SymbolPath{first, rest}, nil
}
