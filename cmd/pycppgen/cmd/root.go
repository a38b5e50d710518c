package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pycppgen",
	Short: "Source-to-source generator from a dynamic scripting AST to C++",
	Long: `pycppgen reads a JSON-encoded abstract syntax tree for a small dynamic
scripting language and emits idiomatic-ish C++ source text.

It does not parse the scripting language itself — that step happens
upstream and its output is the JSON AST this tool consumes (see the
"ast" subcommand for working with those fixtures directly). Given that
tree, pycppgen walks it once and renders target-language text: control
flow, classes, exceptions, and a table of recognized standard-library
and NumPy-style idioms rewritten to their C++ counterparts.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
