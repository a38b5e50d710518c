package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var astCmd = &cobra.Command{
	Use:   "ast",
	Short: "Inspect and edit JSON AST fixtures",
	Long: `Subcommands for working directly with the JSON-encoded AST files this
tool consumes, without decoding them into an ast.Module. Useful for
poking at a large fixture, or for hand-editing one in a test or script.`,
}

var astGetCmd = &cobra.Command{
	Use:   "get <path.json> <gjson-path>",
	Short: "Print one field of a JSON AST file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		result := gjson.GetBytes(data, args[1])
		if !result.Exists() {
			return fmt.Errorf("path %q not found in %s", args[1], args[0])
		}
		fmt.Println(result.String())
		return nil
	},
}

var astSetCmd = &cobra.Command{
	Use:   "set <path.json> <gjson-path> <value>",
	Short: "Patch one field of a JSON AST file in place",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		updated, err := sjson.SetBytes(data, args[1], args[2])
		if err != nil {
			return fmt.Errorf("setting %q: %w", args[1], err)
		}
		if err := os.WriteFile(args[0], updated, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", args[0], err)
		}
		return nil
	},
}

var astDumpCmd = &cobra.Command{
	Use:   "dump <path.json>",
	Short: "Pretty-print a JSON AST file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		opts := &pretty.Options{Indent: "  ", SortKeys: false}
		os.Stdout.Write(pretty.PrettyOptions(data, opts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.AddCommand(astGetCmd, astSetCmd, astDumpCmd)
}
