package extract

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"sread/internal/lang"
)

// Resolve finds the declaration named by path. Single-segment paths scan
// the top-level index; two-segment paths resolve the first segment to a
// class or interface, then scan its members. There is no file-wide fallback
// for the member segment.
func Resolve(root *sitter.Node, g *lang.Grammar, source []byte, path SymbolPath) (*Declaration, error) {
	top := Index(root, g, source, false)

	if len(path) == 1 {
		if d, ok := pick(top, path[0]); ok {
			return d, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, path[0])
	}

	var containers []*Declaration
	for i := range top {
		d := &top[i]
		if d.Name != path[0] {
			continue
		}
		if d.Kind != lang.DeclClass && d.Kind != lang.DeclInterface {
			continue
		}
		containers = append(containers, d)
	}
	if len(containers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, path[0])
	}

	// Containers follow the same tie-break as single-segment lookups:
	// value-space containers before type-only ones, source order within
	// each group. A class merging with a same-named interface resolves
	// members through the class, while rust types still reach their
	// methods through each impl block in turn.
	for _, typeOnly := range []bool{false, true} {
		for _, c := range containers {
			if c.TypeOnly != typeOnly {
				continue
			}
			members := Index(bodyOf(c), g, source, true)
			if m, ok := pick(members, path[1]); ok {
				return m, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrSymbolNotFound, path[0], path[1])
}

// pick applies the duplicate-name tie-break: the first match in source
// order that is not type-only, otherwise the first match overall. This is
// what resolves the signature-plus-implementation overload pattern to the
// implementation.
func pick(decls []Declaration, name string) (*Declaration, bool) {
	var first *Declaration
	for i := range decls {
		if decls[i].Name != name {
			continue
		}
		if !decls[i].TypeOnly {
			return &decls[i], true
		}
		if first == nil {
			first = &decls[i]
		}
	}
	return first, first != nil
}

// bodyOf returns the node whose children are the container's members. When
// the grammar has no body field on this node (ruby), the container itself
// is scanned and member wrappers are flattened by Index.
func bodyOf(d *Declaration) *sitter.Node {
	if body := d.inner.ChildByFieldName("body"); body != nil {
		return body
	}
	return d.inner
}
