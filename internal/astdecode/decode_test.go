package astdecode_test

import (
	"testing"

	"github.com/ibnicena/pycppgen/ast"
	"github.com/ibnicena/pycppgen/internal/astdecode"
)

func TestDecodeModuleRejectsNonModuleRoot(t *testing.T) {
	_, err := astdecode.DecodeModule([]byte(`{"kind": "Name", "id": "x"}`))
	if err == nil {
		t.Fatal("expected an error for a non-Module root node")
	}
}

func TestDecodeModuleRejectsUnknownKind(t *testing.T) {
	doc := `{"kind": "Module", "body": [{"kind": "Bogus"}]}`
	_, err := astdecode.DecodeModule([]byte(doc))
	if err == nil {
		t.Fatal("expected an error for an unrecognized statement kind")
	}
}

func TestDecodeModulePosition(t *testing.T) {
	doc := `{"kind": "Module", "pos": {"line": 1, "column": 0}, "body": []}`
	mod, err := astdecode.DecodeModule([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mod.Body) != 0 {
		t.Fatalf("expected empty body, got %d statements", len(mod.Body))
	}
	if got, want := mod.Pos(), (ast.Position{Line: 1, Column: 0}); got != want {
		t.Errorf("Pos() = %+v, want %+v", got, want)
	}
}

func TestDecodeConstantDistinguishesIntAndFloat(t *testing.T) {
	tests := []struct {
		name string
		json string
		want any
	}{
		{"integer", `{"kind": "Constant", "value": 1}`, int64(1)},
		{"float with trailing zero", `{"kind": "Constant", "value": 1.0}`, float64(1)},
		{"negative float", `{"kind": "Constant", "value": -2.5}`, float64(-2.5)},
		{"string", `{"kind": "Constant", "value": "hi"}`, "hi"},
		{"bool", `{"kind": "Constant", "value": true}`, true},
		{"null", `{"kind": "Constant", "value": null}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"kind": "Module", "body": [{"kind": "ExprStmt", "value": ` + tt.json + `}]}`
			mod, err := astdecode.DecodeModule([]byte(doc))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			stmt := mod.Body[0].(*ast.ExprStmt)
			c := stmt.Value.(*ast.Constant)
			if c.Value != tt.want {
				t.Errorf("got %#v (%T), want %#v (%T)", c.Value, c.Value, tt.want, tt.want)
			}
		})
	}
}

func TestDecodeAssignAndBinOp(t *testing.T) {
	doc := `{
		"kind": "Module",
		"body": [
			{
				"kind": "Assign",
				"target": {"kind": "Name", "id": "x"},
				"value": {
					"kind": "BinOp",
					"op": "+",
					"left": {"kind": "Constant", "value": 1},
					"right": {"kind": "Constant", "value": 2}
				}
			}
		]
	}`

	mod, err := astdecode.DecodeModule([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assign := mod.Body[0].(*ast.Assign)
	if assign.Target.(*ast.Name).Id != "x" {
		t.Fatalf("unexpected target: %+v", assign.Target)
	}
	bin := assign.Value.(*ast.BinOp)
	if bin.Op != ast.OpAdd {
		t.Fatalf("expected OpAdd, got %q", bin.Op)
	}
}

func TestDecodeCallWithKeywords(t *testing.T) {
	doc := `{
		"kind": "Module",
		"body": [
			{
				"kind": "ExprStmt",
				"value": {
					"kind": "Call",
					"func": {"kind": "Name", "id": "Process"},
					"args": [],
					"keywords": [
						{"name": "target", "value": {"kind": "Name", "id": "worker"}}
					]
				}
			}
		]
	}`

	mod, err := astdecode.DecodeModule([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	call := mod.Body[0].(*ast.ExprStmt).Value.(*ast.Call)
	if len(call.Keywords) != 1 || call.Keywords[0].Name != "target" {
		t.Fatalf("unexpected keywords: %+v", call.Keywords)
	}
}

func TestDecodeForLoop(t *testing.T) {
	doc := `{
		"kind": "Module",
		"body": [
			{
				"kind": "For",
				"target": {"kind": "Name", "id": "i"},
				"iter": {
					"kind": "Call",
					"func": {"kind": "Name", "id": "range"},
					"args": [{"kind": "Constant", "value": 10}],
					"keywords": []
				},
				"body": [
					{"kind": "Continue"}
				]
			}
		]
	}`

	mod, err := astdecode.DecodeModule([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	forStmt := mod.Body[0].(*ast.For)
	if forStmt.Target.(*ast.Name).Id != "i" {
		t.Fatalf("unexpected target: %+v", forStmt.Target)
	}
	if _, ok := forStmt.Body[0].(*ast.Continue); !ok {
		t.Fatalf("expected Continue, got %T", forStmt.Body[0])
	}
}

func TestDecodeTryRaise(t *testing.T) {
	doc := `{
		"kind": "Module",
		"body": [
			{
				"kind": "Try",
				"body": [
					{"kind": "Raise", "exc": {
						"kind": "Call",
						"func": {"kind": "Name", "id": "ValueError"},
						"args": [{"kind": "Constant", "value": "bad"}],
						"keywords": []
					}}
				],
				"handlers": [
					{"type": {"kind": "Name", "id": "ValueError"}, "name": "e", "body": [{"kind": "Break"}]}
				],
				"finalbody": []
			}
		]
	}`

	mod, err := astdecode.DecodeModule([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tryStmt := mod.Body[0].(*ast.Try)
	if len(tryStmt.Handlers) != 1 || tryStmt.Handlers[0].Name != "e" {
		t.Fatalf("unexpected handlers: %+v", tryStmt.Handlers)
	}
}
