// Package cli wires the sread command line: one root command that either
// extracts a symbol from a <file>:<symbol> target or lists a file's
// top-level declarations.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sread/internal/extract"
	"sread/internal/lang"
)

var (
	listFlag bool
	langFlag string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "sread <file>:<symbol>",
	Short: "Read a single symbol out of a source file",
	Long: `sread extracts one named declaration (function, class, method,
interface or exported binding) from a source file and prints its exact
source text, so callers never have to read the whole file.

  sread handlers.py:process_order
  sread service.ts:GenericRepository.findById
  sread service.ts --list`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command and maps its outcome onto the exit-code
// contract: 0 success, 1 symbol not found, 2 file/parse/usage error.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, extract.ErrSymbolNotFound) {
			return 1
		}
		return 2
	}
	return 0
}

func init() {
	rootCmd.Flags().BoolVar(&listFlag, "list", false, "list top-level declarations instead of extracting")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "force a grammar instead of detecting it from the extension")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	viper.SetEnvPrefix("sread")
	viper.AutomaticEnv()
	viper.BindPFlag("lang", rootCmd.PersistentFlags().Lookup("lang"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func run(cmd *cobra.Command, args []string) error {
	if listFlag {
		return runList(cmd, args[0])
	}

	file, symbol, err := splitTarget(args[0])
	if err != nil {
		return err
	}
	symbol = stripKindPrefix(symbol)

	g, err := grammarFor(file)
	if err != nil {
		return err
	}
	source, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "resolving %q in %s (%s grammar)\n", symbol, file, g.Name)
	}

	text, err := extract.Extract(source, g, symbol)
	if err != nil {
		return err
	}
	// The span is printed verbatim: an exact substring of the file, no
	// added trailing newline.
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

func runList(cmd *cobra.Command, file string) error {
	g, err := grammarFor(file)
	if err != nil {
		return err
	}
	source, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	names, err := extract.ListSource(source, g)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

// grammarFor picks the grammar for a file, honoring the --lang / SREAD_LANG
// override before extension dispatch.
func grammarFor(file string) (*lang.Grammar, error) {
	if name := viper.GetString("lang"); name != "" {
		return lang.ForName(name)
	}
	return lang.ForPath(file)
}

// splitTarget splits <file>:<symbol> on the colon that follows a supported
// extension, so paths that themselves contain colons (Windows drive
// letters) parse correctly. With a forced grammar the extension is not
// known, and the last colon splits instead.
func splitTarget(target string) (file, symbol string, err error) {
	for _, ext := range lang.Extensions() {
		marker := ext + ":"
		if pos := strings.Index(target, marker); pos >= 0 {
			cut := pos + len(ext)
			if target[cut+1:] == "" {
				return "", "", fmt.Errorf("%w: no symbol in %q", extract.ErrBadSymbol, target)
			}
			return target[:cut], target[cut+1:], nil
		}
	}
	if viper.GetString("lang") != "" {
		if pos := strings.LastIndex(target, ":"); pos > 0 && pos < len(target)-1 {
			return target[:pos], target[pos+1:], nil
		}
	}
	return "", "", fmt.Errorf("%w: expected <file>:<symbol>, got %q", lang.ErrUnsupported, target)
}

// stripKindPrefix drops an optional kind qualifier from the symbol part
// (function:parse, class:Cart, ...). Unknown prefixes are left alone: a
// colon may belong to the symbol itself.
func stripKindPrefix(symbol string) string {
	prefix, rest, found := strings.Cut(symbol, ":")
	if !found || rest == "" {
		return symbol
	}
	switch prefix {
	case "function", "func", "fn", "class", "method", "interface":
		return rest
	}
	return symbol
}
