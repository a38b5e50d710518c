package astdecode

import (
	"encoding/json"
	"fmt"

	"github.com/ibnicena/pycppgen/ast"
)

// decodeStmt decodes one statement node by its "kind" discriminator. The
// switch is exhaustive over spec.md §3's closed statement vocabulary; an
// unrecognized kind is a decode error, never a silently-ignored node.
func decodeStmt(raw json.RawMessage) (ast.Stmt, error) {
	m, err := rawObject(raw)
	if err != nil {
		return nil, err
	}
	kind, err := kindOf(m)
	if err != nil {
		return nil, err
	}
	base := posOf(m)

	switch kind {
	case "Import":
		names, err := decodeAliases(m["names"])
		if err != nil {
			return nil, fmt.Errorf("Import.names: %w", err)
		}
		return &ast.Import{NodeBase: base, Names: names}, nil

	case "ImportFrom":
		names, err := decodeAliases(m["names"])
		if err != nil {
			return nil, fmt.Errorf("ImportFrom.names: %w", err)
		}
		return &ast.ImportFrom{NodeBase: base, Module: stringField(m, "module"), Names: names}, nil

	case "FunctionDef", "AsyncFunctionDef":
		args, err := decodeArgs(m["args"])
		if err != nil {
			return nil, fmt.Errorf("%s.args: %w", kind, err)
		}
		returns, err := decodeExprOpt(m["returns"])
		if err != nil {
			return nil, fmt.Errorf("%s.returns: %w", kind, err)
		}
		body, err := decodeStmtList(m["body"])
		if err != nil {
			return nil, fmt.Errorf("%s.body: %w", kind, err)
		}
		name := stringField(m, "name")
		if kind == "AsyncFunctionDef" {
			return &ast.AsyncFunctionDef{NodeBase: base, Name: name, Args: args, Returns: returns, Body: body}, nil
		}
		return &ast.FunctionDef{NodeBase: base, Name: name, Args: args, Returns: returns, Body: body}, nil

	case "ClassDef":
		bases, err := decodeExprList(m["bases"])
		if err != nil {
			return nil, fmt.Errorf("ClassDef.bases: %w", err)
		}
		body, err := decodeStmtList(m["body"])
		if err != nil {
			return nil, fmt.Errorf("ClassDef.body: %w", err)
		}
		return &ast.ClassDef{NodeBase: base, Name: stringField(m, "name"), Bases: bases, Body: body}, nil

	case "Assign":
		target, err := decodeExpr(m["target"])
		if err != nil {
			return nil, fmt.Errorf("Assign.target: %w", err)
		}
		value, err := decodeExpr(m["value"])
		if err != nil {
			return nil, fmt.Errorf("Assign.value: %w", err)
		}
		return &ast.Assign{NodeBase: base, Target: target, Value: value}, nil

	case "AugAssign":
		target, err := decodeExpr(m["target"])
		if err != nil {
			return nil, fmt.Errorf("AugAssign.target: %w", err)
		}
		value, err := decodeExpr(m["value"])
		if err != nil {
			return nil, fmt.Errorf("AugAssign.value: %w", err)
		}
		op, err := decodeOp(m)
		if err != nil {
			return nil, fmt.Errorf("AugAssign.op: %w", err)
		}
		return &ast.AugAssign{NodeBase: base, Target: target, Op: op, Value: value}, nil

	case "Return":
		value, err := decodeExprOpt(m["value"])
		if err != nil {
			return nil, fmt.Errorf("Return.value: %w", err)
		}
		return &ast.Return{NodeBase: base, Value: value}, nil

	case "ExprStmt":
		value, err := decodeExpr(m["value"])
		if err != nil {
			return nil, fmt.Errorf("ExprStmt.value: %w", err)
		}
		return &ast.ExprStmt{NodeBase: base, Value: value}, nil

	case "If":
		test, err := decodeExpr(m["test"])
		if err != nil {
			return nil, fmt.Errorf("If.test: %w", err)
		}
		body, err := decodeStmtList(m["body"])
		if err != nil {
			return nil, fmt.Errorf("If.body: %w", err)
		}
		orelse, err := decodeStmtList(m["orelse"])
		if err != nil {
			return nil, fmt.Errorf("If.orelse: %w", err)
		}
		return &ast.If{NodeBase: base, Test: test, Body: body, Orelse: orelse}, nil

	case "While":
		test, err := decodeExpr(m["test"])
		if err != nil {
			return nil, fmt.Errorf("While.test: %w", err)
		}
		body, err := decodeStmtList(m["body"])
		if err != nil {
			return nil, fmt.Errorf("While.body: %w", err)
		}
		return &ast.While{NodeBase: base, Test: test, Body: body}, nil

	case "For":
		target, err := decodeExpr(m["target"])
		if err != nil {
			return nil, fmt.Errorf("For.target: %w", err)
		}
		iter, err := decodeExpr(m["iter"])
		if err != nil {
			return nil, fmt.Errorf("For.iter: %w", err)
		}
		body, err := decodeStmtList(m["body"])
		if err != nil {
			return nil, fmt.Errorf("For.body: %w", err)
		}
		return &ast.For{NodeBase: base, Target: target, Iter: iter, Body: body}, nil

	case "Break":
		return &ast.Break{NodeBase: base}, nil

	case "Continue":
		return &ast.Continue{NodeBase: base}, nil

	case "With":
		items, err := decodeWithItems(m["items"])
		if err != nil {
			return nil, fmt.Errorf("With.items: %w", err)
		}
		body, err := decodeStmtList(m["body"])
		if err != nil {
			return nil, fmt.Errorf("With.body: %w", err)
		}
		return &ast.With{NodeBase: base, Items: items, Body: body}, nil

	case "Try":
		body, err := decodeStmtList(m["body"])
		if err != nil {
			return nil, fmt.Errorf("Try.body: %w", err)
		}
		handlers, err := decodeHandlers(m["handlers"])
		if err != nil {
			return nil, fmt.Errorf("Try.handlers: %w", err)
		}
		finalbody, err := decodeStmtList(m["finalbody"])
		if err != nil {
			return nil, fmt.Errorf("Try.finalbody: %w", err)
		}
		return &ast.Try{NodeBase: base, Body: body, Handlers: handlers, Finalbody: finalbody}, nil

	case "Raise":
		exc, err := decodeExprOpt(m["exc"])
		if err != nil {
			return nil, fmt.Errorf("Raise.exc: %w", err)
		}
		return &ast.Raise{NodeBase: base, Exc: exc}, nil

	default:
		return nil, fmt.Errorf("astdecode: unrecognized statement kind %q", kind)
	}
}

// decodeExpr decodes one expression node by its "kind" discriminator,
// exhaustive over spec.md §3's closed expression vocabulary.
func decodeExpr(raw json.RawMessage) (ast.Expr, error) {
	m, err := rawObject(raw)
	if err != nil {
		return nil, err
	}
	kind, err := kindOf(m)
	if err != nil {
		return nil, err
	}
	base := posOf(m)

	switch kind {
	case "Constant":
		value, err := decodeConstantValue(raw)
		if err != nil {
			return nil, fmt.Errorf("Constant.value: %w", err)
		}
		return &ast.Constant{NodeBase: base, Value: value}, nil

	case "Name":
		return &ast.Name{NodeBase: base, Id: stringField(m, "id")}, nil

	case "Attribute":
		value, err := decodeExpr(m["value"])
		if err != nil {
			return nil, fmt.Errorf("Attribute.value: %w", err)
		}
		return &ast.Attribute{NodeBase: base, Value: value, Attr: stringField(m, "attr")}, nil

	case "Subscript":
		value, err := decodeExpr(m["value"])
		if err != nil {
			return nil, fmt.Errorf("Subscript.value: %w", err)
		}
		slice, err := decodeExpr(m["slice"])
		if err != nil {
			return nil, fmt.Errorf("Subscript.slice: %w", err)
		}
		return &ast.Subscript{NodeBase: base, Value: value, Slice: slice}, nil

	case "Call":
		fn, err := decodeExpr(m["func"])
		if err != nil {
			return nil, fmt.Errorf("Call.func: %w", err)
		}
		args, err := decodeExprList(m["args"])
		if err != nil {
			return nil, fmt.Errorf("Call.args: %w", err)
		}
		kwargs, err := decodeKeywords(m["keywords"])
		if err != nil {
			return nil, fmt.Errorf("Call.keywords: %w", err)
		}
		return &ast.Call{NodeBase: base, Func: fn, Args: args, Keywords: kwargs}, nil

	case "BinOp":
		left, err := decodeExpr(m["left"])
		if err != nil {
			return nil, fmt.Errorf("BinOp.left: %w", err)
		}
		right, err := decodeExpr(m["right"])
		if err != nil {
			return nil, fmt.Errorf("BinOp.right: %w", err)
		}
		op, err := decodeOp(m)
		if err != nil {
			return nil, fmt.Errorf("BinOp.op: %w", err)
		}
		return &ast.BinOp{NodeBase: base, Left: left, Op: op, Right: right}, nil

	case "UnaryOp":
		operand, err := decodeExpr(m["operand"])
		if err != nil {
			return nil, fmt.Errorf("UnaryOp.operand: %w", err)
		}
		op, err := decodeOp(m)
		if err != nil {
			return nil, fmt.Errorf("UnaryOp.op: %w", err)
		}
		return &ast.UnaryOp{NodeBase: base, Op: op, Operand: operand}, nil

	case "BoolOp":
		values, err := decodeExprList(m["values"])
		if err != nil {
			return nil, fmt.Errorf("BoolOp.values: %w", err)
		}
		op, err := decodeOp(m)
		if err != nil {
			return nil, fmt.Errorf("BoolOp.op: %w", err)
		}
		return &ast.BoolOp{NodeBase: base, Op: op, Values: values}, nil

	case "Compare":
		left, err := decodeExpr(m["left"])
		if err != nil {
			return nil, fmt.Errorf("Compare.left: %w", err)
		}
		comparator, err := decodeExpr(m["comparator"])
		if err != nil {
			return nil, fmt.Errorf("Compare.comparator: %w", err)
		}
		op, err := decodeOp(m)
		if err != nil {
			return nil, fmt.Errorf("Compare.op: %w", err)
		}
		return &ast.Compare{NodeBase: base, Left: left, Op: op, Comparator: comparator}, nil

	case "Lambda":
		args, err := decodeArgs(m["args"])
		if err != nil {
			return nil, fmt.Errorf("Lambda.args: %w", err)
		}
		body, err := decodeExpr(m["body"])
		if err != nil {
			return nil, fmt.Errorf("Lambda.body: %w", err)
		}
		return &ast.Lambda{NodeBase: base, Args: args, Body: body}, nil

	case "JoinedStr":
		values, err := decodeExprList(m["values"])
		if err != nil {
			return nil, fmt.Errorf("JoinedStr.values: %w", err)
		}
		return &ast.JoinedStr{NodeBase: base, Values: values}, nil

	case "FormattedValue":
		value, err := decodeExpr(m["value"])
		if err != nil {
			return nil, fmt.Errorf("FormattedValue.value: %w", err)
		}
		return &ast.FormattedValue{NodeBase: base, Value: value}, nil

	case "Await":
		value, err := decodeExpr(m["value"])
		if err != nil {
			return nil, fmt.Errorf("Await.value: %w", err)
		}
		return &ast.Await{NodeBase: base, Value: value}, nil

	case "List":
		elts, err := decodeExprList(m["elts"])
		if err != nil {
			return nil, fmt.Errorf("List.elts: %w", err)
		}
		return &ast.List{NodeBase: base, Elts: elts}, nil

	case "Tuple":
		elts, err := decodeExprList(m["elts"])
		if err != nil {
			return nil, fmt.Errorf("Tuple.elts: %w", err)
		}
		return &ast.Tuple{NodeBase: base, Elts: elts}, nil

	case "Dict":
		keys, err := decodeExprList(m["keys"])
		if err != nil {
			return nil, fmt.Errorf("Dict.keys: %w", err)
		}
		values, err := decodeExprList(m["values"])
		if err != nil {
			return nil, fmt.Errorf("Dict.values: %w", err)
		}
		return &ast.Dict{NodeBase: base, Keys: keys, Values: values}, nil

	case "ListComp":
		elt, err := decodeExpr(m["elt"])
		if err != nil {
			return nil, fmt.Errorf("ListComp.elt: %w", err)
		}
		gens, err := decodeComprehensions(m["generators"])
		if err != nil {
			return nil, fmt.Errorf("ListComp.generators: %w", err)
		}
		return &ast.ListComp{NodeBase: base, Elt: elt, Generators: gens}, nil

	default:
		return nil, fmt.Errorf("astdecode: unrecognized expression kind %q", kind)
	}
}

func stringField(m map[string]json.RawMessage, key string) string {
	raw, ok := m[key]
	if !ok {
		return ""
	}
	var s string
	_ = json.Unmarshal(raw, &s)
	return s
}
