package generator

import (
	"testing"

	"github.com/ibnicena/pycppgen/ast"
)

func TestFailPanicsWithGenError(t *testing.T) {
	g := New(DefaultOptions())
	node := &ast.Name{NodeBase: ast.NodeBase{P: ast.Position{Line: 5, Column: 2}}, Id: "x"}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected fail to panic")
		}
		ge, ok := r.(*GenError)
		if !ok {
			t.Fatalf("expected *GenError, got %T", r)
		}
		if ge.Pos.Line != 5 {
			t.Errorf("expected position to be carried from the failing node, got %+v", ge.Pos)
		}
	}()

	g.fail(node, "unsupported thing %d", 1)
}

func TestGenerateRecoversFail(t *testing.T) {
	g := New(DefaultOptions())
	node := &unsupportedStmt{Stmt: &ast.Break{NodeBase: ast.NodeBase{P: ast.Position{Line: 9, Column: 1}}}}
	out, err := g.Generate(&ast.Module{Body: []ast.Stmt{node}})
	if err == nil {
		t.Fatalf("expected an error, got output:\n%s", out)
	}
	ge, ok := err.(*GenError)
	if !ok {
		t.Fatalf("expected a *GenError, got %T", err)
	}
	if ge.Pos.Line != 9 {
		t.Errorf("expected the failing node's own position to be reported, got %+v", ge.Pos)
	}
}

// unsupportedStmt wraps a real ast.Stmt so it satisfies the interface (its
// stmtNode method is unexported, so no type outside package ast can declare
// its own), while its own concrete type is not one of emitStmt's named
// cases, so the dispatch switch falls through to its default branch.
type unsupportedStmt struct {
	ast.Stmt
}
