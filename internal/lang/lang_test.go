package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for grammar dispatch:
// - Every supported extension maps to the expected grammar
// - Unsupported extensions and unknown grammar names fail with ErrUnsupported
// - The tsx grammar is distinct from the typescript one
// - Registered kind tables point at a real tree-sitter language

func TestForPath(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"main.py":         "python",
		"app.ts":          "typescript",
		"app.mts":         "typescript",
		"app.cts":         "typescript",
		"widget.tsx":      "tsx",
		"app.js":          "typescript",
		"app.jsx":         "typescript",
		"app.mjs":         "typescript",
		"app.cjs":         "typescript",
		"lib.rs":          "rust",
		"Main.java":       "java",
		"index.php":       "php",
		"model.rb":        "ruby",
		"util.c":          "c",
		"util.h":          "c",
		"dir/nested.PY":   "python",
		"C:\\src\\app.py": "python",
	}
	for path, want := range cases {
		g, err := ForPath(path)
		require.NoError(t, err, "path %q", path)
		assert.Equal(t, want, g.Name, "path %q", path)
		assert.NotNil(t, g.Language)
	}
}

func TestForPath_Unsupported(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"notes.txt", "binary", "archive.unknownext", "go.mod"} {
		_, err := ForPath(path)
		assert.ErrorIs(t, err, ErrUnsupported, "path %q", path)
	}
}

func TestForName(t *testing.T) {
	t.Parallel()

	g, err := ForName("rust")
	require.NoError(t, err)
	assert.Equal(t, "rust", g.Name)

	_, err = ForName("cobol")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestExtensionsRegistered(t *testing.T) {
	t.Parallel()

	exts := Extensions()
	assert.Contains(t, exts, ".py")
	assert.Contains(t, exts, ".tsx")
	assert.Contains(t, exts, ".cjs")
	assert.Contains(t, exts, ".h")
}

func TestDeclKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "function", DeclFunction.String())
	assert.Equal(t, "class", DeclClass.String())
	assert.Equal(t, "method", DeclMethod.String())
	assert.Equal(t, "interface", DeclInterface.String())
	assert.Equal(t, "binding", DeclBinding.String())
	assert.Equal(t, "other", DeclOther.String())
}
