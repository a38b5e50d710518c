package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/ibnicena/pycppgen/internal/config"
)

var diffConfigPath string

var diffCmd = &cobra.Command{
	Use:   "diff <ast.json> <existing.cc>",
	Short: "Diff freshly generated output against an existing file",
	Long: `Generate C++ from the given JSON AST and print a unified diff against
an existing target file, without overwriting anything. Exits non-zero
when the two differ, so it can be used as a staleness check in CI.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().StringVar(&diffConfigPath, "config", "", "path to a .pycppgen.yaml config file")
}

func runDiff(cmd *cobra.Command, args []string) error {
	astPath, existingPath := args[0], args[1]

	src, err := os.ReadFile(astPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", astPath, err)
	}
	existing, err := os.ReadFile(existingPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", existingPath, err)
	}

	opts, err := config.Load(diffConfigPath)
	if err != nil {
		return err
	}

	generated, err := generate(src, string(src), astPath, opts)
	if err != nil {
		return err
	}

	if generated == string(existing) {
		return nil
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(generated),
		FromFile: existingPath,
		ToFile:   astPath + " (generated)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return fmt.Errorf("building diff: %w", err)
	}

	fmt.Print(text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Println()
	}

	return fmt.Errorf("%s and %s differ", existingPath, astPath)
}
