package errors_test

import (
	"strings"
	"testing"

	"github.com/ibnicena/pycppgen/ast"
	"github.com/ibnicena/pycppgen/internal/errors"
)

func TestFormatWithSourceLine(t *testing.T) {
	source := "x = 1\ny = x +\nz = 3"
	err := errors.NewCompilerError(ast.Position{Line: 2, Column: 7}, "unexpected end of expression", source, "prog.json")

	out := err.Format(false)

	if !strings.Contains(out, "Error in prog.json:2:7") {
		t.Errorf("expected a file:line:column header, got:\n%s", out)
	}
	if !strings.Contains(out, "y = x +") {
		t.Errorf("expected the offending source line to be quoted, got:\n%s", out)
	}
	if !strings.Contains(out, "unexpected end of expression") {
		t.Errorf("expected the message to be present, got:\n%s", out)
	}
}

func TestFormatWithoutFileUsesLineHeader(t *testing.T) {
	err := errors.NewCompilerError(ast.Position{Line: 1, Column: 1}, "bad token", "x", "")

	out := err.Format(false)

	if !strings.Contains(out, "Error at line 1:1") {
		t.Errorf("expected a file-less header, got:\n%s", out)
	}
}

func TestFormatOutOfRangeLineOmitsSourceLine(t *testing.T) {
	err := errors.NewCompilerError(ast.Position{Line: 99, Column: 1}, "boom", "one line only", "f.json")

	out := err.Format(false)

	if strings.Contains(out, "99 | ") {
		t.Errorf("expected no source line to be rendered for an out-of-range position, got:\n%s", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("expected the message to still be present, got:\n%s", out)
	}
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = errors.NewCompilerError(ast.Position{Line: 1, Column: 1}, "bad token", "x", "")
	if err.Error() == "" {
		t.Fatal("expected a non-empty error string")
	}
}
