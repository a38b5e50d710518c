// Command pycppgen generates C++ source from a JSON-encoded AST.
package main

import (
	"fmt"
	"os"

	"github.com/ibnicena/pycppgen/cmd/pycppgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
