package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sread/internal/extract"
	"sread/internal/lang"
)

// Test Plan for the CLI layer:
// - Targets split on the colon following a supported extension
// - Windows-style paths with drive colons split correctly
// - Missing symbols and unknown extensions are rejected
// - Kind prefixes (function:, class:, ...) are stripped, others kept
// - End-to-end: extraction and listing through the root command
// - --lang forces a grammar for files with an unrecognized extension
// - Exit codes: 0 found, 1 not found, 2 file error
// - The version subcommand prints the build version

func TestSplitTarget(t *testing.T) {
	file, symbol, err := splitTarget("src/service.ts:GenericRepository.findById")
	require.NoError(t, err)
	assert.Equal(t, "src/service.ts", file)
	assert.Equal(t, "GenericRepository.findById", symbol)

	file, symbol, err = splitTarget("C:\\src\\app.py:main")
	require.NoError(t, err)
	assert.Equal(t, "C:\\src\\app.py", file)
	assert.Equal(t, "main", symbol)
}

func TestSplitTarget_Invalid(t *testing.T) {
	_, _, err := splitTarget("service.ts:")
	assert.ErrorIs(t, err, extract.ErrBadSymbol)

	_, _, err = splitTarget("service.unknownext:foo")
	assert.ErrorIs(t, err, lang.ErrUnsupported)

	_, _, err = splitTarget("no-colon-here")
	assert.ErrorIs(t, err, lang.ErrUnsupported)
}

func TestStripKindPrefix(t *testing.T) {
	assert.Equal(t, "parse", stripKindPrefix("function:parse"))
	assert.Equal(t, "parse", stripKindPrefix("fn:parse"))
	assert.Equal(t, "Cart", stripKindPrefix("class:Cart"))
	assert.Equal(t, "price", stripKindPrefix("method:price"))
	assert.Equal(t, "Pricer", stripKindPrefix("interface:Pricer"))
	// Unknown prefixes stay untouched.
	assert.Equal(t, "weird:name", stripKindPrefix("weird:name"))
	assert.Equal(t, "plain", stripKindPrefix("plain"))
}

func runRoot(t *testing.T, args ...string) (string, int) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	defer func() {
		listFlag = false
		rootCmd.PersistentFlags().Set("lang", "")
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()
	code := Execute()
	return out.String(), code
}

func TestRun_Extract(t *testing.T) {
	out, code := runRoot(t, "../../testdata/code/typescript/fixture.ts:simpleFunction")
	assert.Equal(t, 0, code)
	assert.Equal(t, "function simpleFunction(): number {\n  return 42;\n}", out)
}

func TestRun_List(t *testing.T) {
	out, code := runRoot(t, "../../testdata/code/typescript/fixture.ts", "--list")
	assert.Equal(t, 0, code)
	assert.Equal(t, "simpleFunction\nGenericRepository\nexportedFunction\nfindById\n", out)
}

func TestRun_LangOverride(t *testing.T) {
	// A .txt file has no registered grammar, so the target splits on its
	// last colon and the forced grammar parses it.
	out, code := runRoot(t, "../../testdata/code/python/legacy.txt:greet", "--lang", "python")
	assert.Equal(t, 0, code)
	assert.Equal(t, "def greet(name):\n    return \"hi \" + name", out)

	// Without the override the same target is rejected.
	out, code = runRoot(t, "../../testdata/code/python/legacy.txt:greet")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
}

func TestRun_ExitCodes(t *testing.T) {
	out, code := runRoot(t, "../../testdata/code/typescript/fixture.ts:NoSuchThing")
	assert.Equal(t, 1, code)
	assert.Empty(t, out, "stdout stays empty on failure")

	out, code = runRoot(t, "missing-dir/missing.ts:foo")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)

	out, code = runRoot(t, "../../testdata/code/typescript/fixture.unknownext:foo")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
}

func TestRun_Version(t *testing.T) {
	out, code := runRoot(t, "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "sread dev\n", out)
}
