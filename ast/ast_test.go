package ast_test

import (
	"testing"

	"github.com/ibnicena/pycppgen/ast"
)

func TestNodeBasePos(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want ast.Position
	}{
		{
			name: "zero value position",
			node: &ast.Name{Id: "x"},
			want: ast.Position{},
		},
		{
			name: "explicit position",
			node: &ast.Name{NodeBase: ast.NodeBase{P: ast.Position{Line: 3, Column: 7}}, Id: "x"},
			want: ast.Position{Line: 3, Column: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Pos(); got != tt.want {
				t.Errorf("Pos() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMarkerInterfaces(t *testing.T) {
	var _ ast.Stmt = &ast.Import{}
	var _ ast.Stmt = &ast.FunctionDef{}
	var _ ast.Stmt = &ast.ClassDef{}
	var _ ast.Expr = &ast.Constant{}
	var _ ast.Expr = &ast.Call{}
	var _ ast.Expr = &ast.BinOp{}
}
