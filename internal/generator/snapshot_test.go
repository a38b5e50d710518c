package generator_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/ibnicena/pycppgen/ast"
	"github.com/ibnicena/pycppgen/internal/generator"
)

// TestFullProgramSnapshots covers full-program generation scenarios end to
// end, one snapshot per scenario, grounded on the fixture-driven pattern of
// internal/interp/fixture_test.go in the example pack this generator was
// built from.
func TestFullProgramSnapshots(t *testing.T) {
	scenarios := []struct {
		name string
		mod  *ast.Module
	}{
		{
			name: "fibonacci",
			mod: &ast.Module{
				Body: []ast.Stmt{
					&ast.FunctionDef{
						Name: "fib",
						Args: []*ast.Arg{{Name: "n", Annotation: &ast.Name{Id: "int"}}},
						Returns: &ast.Name{Id: "int"},
						Body: []ast.Stmt{
							&ast.If{
								Test: &ast.Compare{Left: &ast.Name{Id: "n"}, Op: ast.OpLtE, Comparator: &ast.Constant{Value: int64(1)}},
								Body: []ast.Stmt{&ast.Return{Value: &ast.Name{Id: "n"}}},
							},
							&ast.Return{Value: &ast.BinOp{
								Left: &ast.Call{Func: &ast.Name{Id: "fib"}, Args: []ast.Expr{
									&ast.BinOp{Left: &ast.Name{Id: "n"}, Op: ast.OpSub, Right: &ast.Constant{Value: int64(1)}},
								}},
								Op: ast.OpAdd,
								Right: &ast.Call{Func: &ast.Name{Id: "fib"}, Args: []ast.Expr{
									&ast.BinOp{Left: &ast.Name{Id: "n"}, Op: ast.OpSub, Right: &ast.Constant{Value: int64(2)}},
								}},
							}},
						},
					},
				},
			},
		},
		{
			name: "class_with_constructor_and_loop",
			mod: &ast.Module{
				Body: []ast.Stmt{
					&ast.ClassDef{
						Name: "Counter",
						Body: []ast.Stmt{
							&ast.FunctionDef{
								Name: "__init__",
								Args: []*ast.Arg{{Name: "self"}, {Name: "start"}},
								Body: []ast.Stmt{
									&ast.Assign{
										Target: &ast.Attribute{Value: &ast.Name{Id: "self"}, Attr: "value"},
										Value:  &ast.Name{Id: "start"},
									},
								},
							},
							&ast.FunctionDef{
								Name: "bump",
								Args: []*ast.Arg{{Name: "self"}},
								Body: []ast.Stmt{
									&ast.For{
										Target: &ast.Name{Id: "i"},
										Iter: &ast.Call{
											Func: &ast.Name{Id: "range"},
											Args: []ast.Expr{&ast.Constant{Value: int64(3)}},
										},
										Body: []ast.Stmt{
											&ast.AugAssign{
												Target: &ast.Attribute{Value: &ast.Name{Id: "self"}, Attr: "value"},
												Op:     ast.OpAdd,
												Value:  &ast.Constant{Value: int64(1)},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
		{
			name: "try_except_raise",
			mod: &ast.Module{
				Body: []ast.Stmt{
					&ast.Try{
						Body: []ast.Stmt{
							&ast.Raise{Exc: &ast.Call{
								Func: &ast.Name{Id: "KeyError"},
								Args: []ast.Expr{&ast.Constant{Value: "missing"}},
							}},
						},
						Handlers: []*ast.ExceptHandler{
							{Type: &ast.Name{Id: "KeyError"}, Name: "e", Body: []ast.Stmt{&ast.Continue{}}},
						},
						Finalbody: []ast.Stmt{&ast.Break{}},
					},
				},
			},
		},
		{
			name: "numpy_array_pipeline",
			mod: &ast.Module{
				Body: []ast.Stmt{
					&ast.Assign{
						Target: &ast.Name{Id: "data"},
						Value: &ast.Call{
							Func: &ast.Attribute{Value: &ast.Name{Id: "np"}, Attr: "array"},
							Args: []ast.Expr{&ast.List{Elts: []ast.Expr{
								&ast.Constant{Value: int64(1)}, &ast.Constant{Value: int64(2)},
							}}},
						},
					},
					&ast.Assign{
						Target: &ast.Name{Id: "total"},
						Value: &ast.Call{
							Func: &ast.Attribute{Value: &ast.Name{Id: "np"}, Attr: "sum"},
							Args: []ast.Expr{&ast.Name{Id: "data"}},
						},
					},
				},
			},
		},
	}

	for _, tt := range scenarios {
		t.Run(tt.name, func(t *testing.T) {
			g := generator.New(generator.DefaultOptions())
			out, err := g.Generate(tt.mod)
			if err != nil {
				t.Fatalf("Generate returned an error: %v", err)
			}
			snaps.MatchSnapshot(t, out)
		})
	}
}
