// Command jsxc lowers a directory of JSX-bearing source files into plain
// ECMAScript ahead of time, recursively, in place under an output
// directory.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/junojs/jsxc/internal/jsxerr"
	"github.com/junojs/jsxc/internal/jsxlog"
	"github.com/junojs/jsxc/internal/transform"
)

var (
	outDir         string
	importPath     string
	expandIncludes bool
	verbose        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsxc <indir>",
		Short: "Compile JSX-bearing source files into plain JS ahead of time",
		RunE:  run,
	}

	rootCmd.Flags().StringVar(&outDir, "out", "build", "Output directory for compiled files")
	rootCmd.Flags().StringVar(&importPath, "import", "", "Module specifier generated imports pull runtime helpers from (default jsx/runtime)")
	rootCmd.Flags().BoolVar(&expandIncludes, "comment-directives", false, "Expand @include comment-directive file content imports before compiling")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return jsxerr.NewMissingDir()
	}
	indir := args[0]
	if info, err := os.Stat(indir); err != nil || !info.IsDir() {
		return jsxerr.NewMissingDir()
	}

	logger := jsxlog.Default(verbose)
	opts := transform.Options{
		ImportPath:     importPath,
		ExpandIncludes: expandIncludes,
	}

	if err := transform.WalkAndCompile(indir, outDir, opts, logger); err != nil {
		var parseErr *jsxerr.ParserError
		if errors.As(err, &parseErr) {
			return jsxerr.FromParser(parseErr)
		}
		return jsxerr.FromIo(err)
	}

	return nil
}
