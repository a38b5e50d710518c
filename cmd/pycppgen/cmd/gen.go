package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibnicena/pycppgen/ast"
	"github.com/ibnicena/pycppgen/internal/astdecode"
	"github.com/ibnicena/pycppgen/internal/config"
	"github.com/ibnicena/pycppgen/internal/errors"
	"github.com/ibnicena/pycppgen/internal/generator"
)

var (
	genOutput     string
	genWrite      bool
	genConfigPath string
)

var genCmd = &cobra.Command{
	Use:   "gen [file]",
	Short: "Generate C++ source from a JSON AST",
	Long: `Read a JSON-encoded AST (from a file argument or standard input),
decode it, run it through the code generator, and write the resulting
C++ text to standard output.

Examples:
  # Generate from a file, to stdout
  pycppgen gen tree.json

  # Generate from stdin
  cat tree.json | pycppgen gen

  # Write the result to a file
  pycppgen gen tree.json -o tree.cc

  # Rewrite tree.json's sibling tree.cc in place
  pycppgen gen tree.json -w`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output file (default: stdout)")
	genCmd.Flags().BoolVarP(&genWrite, "write", "w", false, "write result to the input file's .cc sibling")
	genCmd.Flags().StringVar(&genConfigPath, "config", "", "path to a .pycppgen.yaml config file")
}

func runGen(cmd *cobra.Command, args []string) error {
	if genWrite && len(args) == 0 {
		return fmt.Errorf("-w requires a file argument")
	}
	if genWrite && genOutput != "" {
		return fmt.Errorf("cannot use -w and -o together")
	}

	var filename string
	var src []byte
	var err error
	if len(args) == 1 {
		filename = args[0]
		src, err = os.ReadFile(filename)
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	opts, err := config.Load(genConfigPath)
	if err != nil {
		return err
	}

	out, err := generate(src, string(src), filename, opts)
	if err != nil {
		return err
	}

	switch {
	case genWrite:
		ext := filepath.Ext(filename)
		outFile := strings.TrimSuffix(filename, ext) + ".cc"
		if err := os.WriteFile(outFile, []byte(out), 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Generated %s\n", outFile)
		}
	case genOutput != "":
		if err := os.WriteFile(genOutput, []byte(out), 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
	default:
		fmt.Print(out)
	}

	return nil
}

// generate decodes src as a JSON AST and renders it. source/filename are
// carried through only for error display (internal/errors.CompilerError).
func generate(src []byte, source, filename string, opts generator.Options) (string, error) {
	mod, err := astdecode.DecodeModule(src)
	if err != nil {
		cerr := errors.NewCompilerError(ast.Position{}, err.Error(), source, filename)
		return "", cerr
	}

	gen := generator.New(opts)
	out, err := gen.Generate(mod)
	if err != nil {
		if ge, ok := err.(*generator.GenError); ok {
			cerr := errors.NewCompilerError(ge.Pos, ge.Msg, source, filename)
			return "", cerr
		}
		return "", err
	}
	return out, nil
}
