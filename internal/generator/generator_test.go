package generator_test

import (
	"strings"
	"testing"

	"github.com/ibnicena/pycppgen/ast"
	"github.com/ibnicena/pycppgen/internal/generator"
)

func generate(t *testing.T, body []ast.Stmt, opts generator.Options) string {
	t.Helper()
	g := generator.New(opts)
	out, err := g.Generate(&ast.Module{Body: body})
	if err != nil {
		t.Fatalf("Generate returned an error: %v", err)
	}
	return out
}

func TestAssignFallbackType(t *testing.T) {
	tests := []struct {
		name string
		opts generator.Options
		want string
	}{
		{
			name: "default fallback is int",
			opts: generator.DefaultOptions(),
			want: "int x = 1;",
		},
		{
			name: "auto fallback opt-in",
			opts: generator.Options{IndentWidth: 4, FallbackType: "auto"},
			want: "auto x = 1;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := []ast.Stmt{
				&ast.Assign{
					Target: &ast.Name{Id: "x"},
					Value:  &ast.Constant{Value: int64(1)},
				},
			}
			out := generate(t, body, tt.opts)
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.want, out)
			}
		})
	}
}

func TestAssignTupleUnpacking(t *testing.T) {
	body := []ast.Stmt{
		&ast.Assign{
			Target: &ast.Tuple{Elts: []ast.Expr{&ast.Name{Id: "a"}, &ast.Name{Id: "b"}}},
			Value:  &ast.Name{Id: "pair"},
		},
	}
	out := generate(t, body, generator.DefaultOptions())
	if !strings.Contains(out, "auto [a, b] = pair;") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "#include <tuple>") {
		t.Errorf("expected <tuple> include, got:\n%s", out)
	}
}

func TestPrintCallRewrite(t *testing.T) {
	body := []ast.Stmt{
		&ast.ExprStmt{Value: &ast.Call{
			Func: &ast.Name{Id: "print"},
			Args: []ast.Expr{&ast.Constant{Value: "hi"}},
		}},
	}
	out := generate(t, body, generator.DefaultOptions())
	if !strings.Contains(out, `std::cout << "hi" << std::endl;`) {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "#include <iostream>") {
		t.Errorf("expected <iostream> include, got:\n%s", out)
	}
}

func TestIfElse(t *testing.T) {
	body := []ast.Stmt{
		&ast.If{
			Test: &ast.Compare{Left: &ast.Name{Id: "x"}, Op: ast.OpGt, Comparator: &ast.Constant{Value: int64(0)}},
			Body: []ast.Stmt{&ast.Break{}},
			Orelse: []ast.Stmt{&ast.Continue{}},
		},
	}
	out := generate(t, body, generator.DefaultOptions())
	want := "if (x > 0) {\n    break;\n} else {\n    continue;\n}"
	if !strings.Contains(out, want) {
		t.Errorf("expected:\n%s\ngot:\n%s", want, out)
	}
}

func TestRaiseMapsExceptionType(t *testing.T) {
	body := []ast.Stmt{
		&ast.Raise{Exc: &ast.Call{
			Func: &ast.Name{Id: "ValueError"},
			Args: []ast.Expr{&ast.Constant{Value: "bad input"}},
		}},
	}
	out := generate(t, body, generator.DefaultOptions())
	if !strings.Contains(out, `throw std::invalid_argument("bad input");`) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestForItemsUnpacking(t *testing.T) {
	body := []ast.Stmt{
		&ast.For{
			Target: &ast.Tuple{Elts: []ast.Expr{&ast.Name{Id: "k"}, &ast.Name{Id: "v"}}},
			Iter: &ast.Call{
				Func: &ast.Attribute{Value: &ast.Name{Id: "counts"}, Attr: "items"},
			},
			Body: []ast.Stmt{&ast.Continue{}},
		},
	}
	out := generate(t, body, generator.DefaultOptions())
	if !strings.Contains(out, "for (auto& [k, v] : counts) {") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestForKeysDerefsFirst(t *testing.T) {
	body := []ast.Stmt{
		&ast.For{
			Target: &ast.Name{Id: "k"},
			Iter: &ast.Call{
				Func: &ast.Attribute{Value: &ast.Name{Id: "counts"}, Attr: "keys"},
			},
			Body: []ast.Stmt{&ast.Break{}},
		},
	}
	out := generate(t, body, generator.DefaultOptions())
	if !strings.Contains(out, "for (auto& _pair : counts) {") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "auto k = _pair.first;") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestListCompNestedForAndIf(t *testing.T) {
	expr := &ast.ListComp{
		Elt: &ast.Name{Id: "x"},
		Generators: []*ast.Comprehension{
			{
				Target: &ast.Name{Id: "x"},
				Iter:   &ast.Name{Id: "xs"},
				Ifs:    []ast.Expr{&ast.Compare{Left: &ast.Name{Id: "x"}, Op: ast.OpGt, Comparator: &ast.Constant{Value: int64(0)}}},
			},
		},
	}
	stmts := []ast.Stmt{
		&ast.Assign{Target: &ast.Name{Id: "ys"}, Value: expr},
	}
	out := generate(t, stmts, generator.DefaultOptions())
	if !strings.Contains(out, "for (auto x : xs) {") {
		t.Errorf("expected generator for-clause, got:\n%s", out)
	}
	if !strings.Contains(out, "if (x > 0) {") {
		t.Errorf("expected if-filter, got:\n%s", out)
	}
	if !strings.Contains(out, "_result.push_back(x);") {
		t.Errorf("expected push_back of element, got:\n%s", out)
	}
	if !strings.Contains(out, "#include <vector>") {
		t.Errorf("expected <vector> include, got:\n%s", out)
	}
}

func TestWithOpenForWriting(t *testing.T) {
	body := []ast.Stmt{
		&ast.With{
			Items: []ast.WithItem{
				{
					ContextExpr: &ast.Call{
						Func: &ast.Name{Id: "open"},
						Args: []ast.Expr{&ast.Constant{Value: "out.txt"}, &ast.Constant{Value: "w"}},
					},
					OptionalVars: &ast.Name{Id: "f"},
				},
			},
			Body: []ast.Stmt{&ast.Break{}},
		},
	}
	out := generate(t, body, generator.DefaultOptions())
	if !strings.Contains(out, `std::ofstream f("out.txt", std::ios::out);`) {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "}  // f closes automatically") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestAsyncFunctionDefWrapsTask(t *testing.T) {
	body := []ast.Stmt{
		&ast.AsyncFunctionDef{
			Name: "fetch",
			Args: []*ast.Arg{{Name: "url"}},
			Body: []ast.Stmt{&ast.Return{Value: &ast.Constant{Value: int64(1)}}},
		},
	}
	out := generate(t, body, generator.DefaultOptions())
	if !strings.Contains(out, "Task<void> fetch(auto url) {") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "#include <coroutine>") {
		t.Errorf("expected <coroutine> include, got:\n%s", out)
	}
}

func TestClassDefPrescansInitMembers(t *testing.T) {
	body := []ast.Stmt{
		&ast.ClassDef{
			Name: "Point",
			Body: []ast.Stmt{
				&ast.FunctionDef{
					Name: "__init__",
					Args: []*ast.Arg{{Name: "self"}, {Name: "x"}},
					Body: []ast.Stmt{
						&ast.Assign{
							Target: &ast.Attribute{Value: &ast.Name{Id: "self"}, Attr: "x"},
							Value:  &ast.Name{Id: "x"},
						},
					},
				},
			},
		},
	}
	out := generate(t, body, generator.DefaultOptions())
	if !strings.Contains(out, "class Point {") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "auto x;") {
		t.Errorf("expected prescanned member declaration, got:\n%s", out)
	}
	if !strings.Contains(out, "Point(auto x) {") {
		t.Errorf("expected constructor with self dropped, got:\n%s", out)
	}
}

func TestNumpyCustomAlias(t *testing.T) {
	body := []ast.Stmt{
		&ast.Assign{
			Target: &ast.Name{Id: "total"},
			Value: &ast.Call{
				Func: &ast.Attribute{Value: &ast.Name{Id: "npy"}, Attr: "sum"},
				Args: []ast.Expr{&ast.Name{Id: "values"}},
			},
		},
	}
	opts := generator.Options{IndentWidth: 4, FallbackType: "int", NumpyAlias: "npy"}
	out := generate(t, body, opts)
	if !strings.Contains(out, "nc::sum(values)") {
		t.Errorf("expected the custom alias to be recognized as numpy, got:\n%s", out)
	}
	if !strings.Contains(out, `#include "NumCpp.hpp"`) && !strings.Contains(out, "NumCpp") {
		t.Errorf("expected a NumCpp include, got:\n%s", out)
	}
}

func TestTryExceptFinally(t *testing.T) {
	body := []ast.Stmt{
		&ast.Try{
			Body: []ast.Stmt{&ast.ExprStmt{Value: &ast.Call{Func: &ast.Name{Id: "risky"}}}},
			Handlers: []*ast.ExceptHandler{
				{Type: &ast.Name{Id: "KeyError"}, Name: "e", Body: []ast.Stmt{&ast.Break{}}},
			},
			Finalbody: []ast.Stmt{&ast.Continue{}},
		},
	}
	out := generate(t, body, generator.DefaultOptions())
	if !strings.Contains(out, "catch (const std::out_of_range& e) {") {
		t.Errorf("expected mapped KeyError catch clause, got:\n%s", out)
	}
	if !strings.Contains(out, "continue;") {
		t.Errorf("expected finally body to be appended, got:\n%s", out)
	}
}

