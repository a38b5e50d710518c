// Package astdecode decodes a JSON-serialized syntax tree into the ast
// package's Go types. It stands in for the Snake-language parser, which
// spec.md §1 explicitly keeps out of scope: a real parser would hand the
// generator an in-memory tree directly, but this repository has no parser,
// so its tests and CLI exchange that tree across a JSON boundary instead.
//
// The JSON shape is a direct, line-for-line mirror of the ast package: each
// object carries a "kind" discriminator matching a Go type name, plus that
// type's fields using snake_case keys. Decode does not try to be lenient —
// an unrecognized "kind" is an error, not a silently-skipped node, because
// a silently dropped node would make the generator's output look correct
// while missing a statement.
package astdecode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ibnicena/pycppgen/ast"
)

// DecodeModule decodes a JSON document into a *ast.Module.
func DecodeModule(data []byte) (*ast.Module, error) {
	raw, err := rawObject(data)
	if err != nil {
		return nil, err
	}
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	if kind != "Module" {
		return nil, fmt.Errorf("astdecode: top-level node must be Module, got %q", kind)
	}
	body, err := decodeStmtList(raw["body"])
	if err != nil {
		return nil, fmt.Errorf("astdecode: Module.body: %w", err)
	}
	return &ast.Module{NodeBase: posOf(raw), Body: body}, nil
}

func rawObject(data []byte) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("astdecode: invalid JSON object: %w", err)
	}
	return m, nil
}

func kindOf(m map[string]json.RawMessage) (string, error) {
	raw, ok := m["kind"]
	if !ok {
		return "", fmt.Errorf("astdecode: node missing \"kind\" field")
	}
	var kind string
	if err := json.Unmarshal(raw, &kind); err != nil {
		return "", fmt.Errorf("astdecode: \"kind\" field is not a string: %w", err)
	}
	return kind, nil
}

func posOf(m map[string]json.RawMessage) ast.NodeBase {
	raw, ok := m["pos"]
	if !ok {
		return ast.NodeBase{}
	}
	var p struct {
		Line   int `json:"line"`
		Column int `json:"column"`
	}
	_ = json.Unmarshal(raw, &p)
	return ast.NodeBase{P: ast.Position{Line: p.Line, Column: p.Column}}
}

// decodeStmtList decodes a JSON array of statement nodes. A nil/absent
// array decodes to a nil slice, matching an empty body.
func decodeStmtList(raw json.RawMessage) ([]ast.Stmt, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]ast.Stmt, 0, len(items))
	for i, item := range items {
		s, err := decodeStmt(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func decodeExprList(raw json.RawMessage) ([]ast.Expr, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]ast.Expr, 0, len(items))
	for i, item := range items {
		e, err := decodeExpr(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// decodeExprOpt decodes an optional expression field. Absent, null, or
// empty raw bytes all decode to a nil Expr.
func decodeExprOpt(raw json.RawMessage) (ast.Expr, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return decodeExpr(raw)
}

func decodeAliases(raw json.RawMessage) ([]ast.Alias, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []struct {
		Name   string `json:"name"`
		AsName string `json:"as_name"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]ast.Alias, 0, len(items))
	for _, it := range items {
		out = append(out, ast.Alias{Name: it.Name, AsName: it.AsName})
	}
	return out, nil
}

func decodeArgs(raw json.RawMessage) ([]*ast.Arg, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []struct {
		Name       string          `json:"name"`
		Annotation json.RawMessage `json:"annotation"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]*ast.Arg, 0, len(items))
	for _, it := range items {
		ann, err := decodeExprOpt(it.Annotation)
		if err != nil {
			return nil, fmt.Errorf("arg %q annotation: %w", it.Name, err)
		}
		out = append(out, &ast.Arg{Name: it.Name, Annotation: ann})
	}
	return out, nil
}

func decodeKeywords(raw json.RawMessage) ([]*ast.Keyword, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]*ast.Keyword, 0, len(items))
	for _, it := range items {
		v, err := decodeExpr(it.Value)
		if err != nil {
			return nil, fmt.Errorf("keyword %q: %w", it.Name, err)
		}
		out = append(out, &ast.Keyword{Name: it.Name, Value: v})
	}
	return out, nil
}

func decodeWithItems(raw json.RawMessage) ([]ast.WithItem, error) {
	var items []struct {
		ContextExpr  json.RawMessage `json:"context_expr"`
		OptionalVars json.RawMessage `json:"optional_vars"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]ast.WithItem, 0, len(items))
	for _, it := range items {
		ctx, err := decodeExpr(it.ContextExpr)
		if err != nil {
			return nil, fmt.Errorf("with item context_expr: %w", err)
		}
		vars, err := decodeExprOpt(it.OptionalVars)
		if err != nil {
			return nil, fmt.Errorf("with item optional_vars: %w", err)
		}
		out = append(out, ast.WithItem{ContextExpr: ctx, OptionalVars: vars})
	}
	return out, nil
}

func decodeHandlers(raw json.RawMessage) ([]*ast.ExceptHandler, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []struct {
		Type json.RawMessage   `json:"type"`
		Name string            `json:"name"`
		Body []json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]*ast.ExceptHandler, 0, len(items))
	for _, it := range items {
		typ, err := decodeExprOpt(it.Type)
		if err != nil {
			return nil, fmt.Errorf("except handler type: %w", err)
		}
		body := make([]ast.Stmt, 0, len(it.Body))
		for i, b := range it.Body {
			s, err := decodeStmt(b)
			if err != nil {
				return nil, fmt.Errorf("except handler body[%d]: %w", i, err)
			}
			body = append(body, s)
		}
		out = append(out, &ast.ExceptHandler{Type: typ, Name: it.Name, Body: body})
	}
	return out, nil
}

func decodeComprehensions(raw json.RawMessage) ([]*ast.Comprehension, error) {
	var items []struct {
		Target json.RawMessage   `json:"target"`
		Iter   json.RawMessage   `json:"iter"`
		Ifs    []json.RawMessage `json:"ifs"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]*ast.Comprehension, 0, len(items))
	for _, it := range items {
		target, err := decodeExpr(it.Target)
		if err != nil {
			return nil, fmt.Errorf("comprehension target: %w", err)
		}
		iter, err := decodeExpr(it.Iter)
		if err != nil {
			return nil, fmt.Errorf("comprehension iter: %w", err)
		}
		ifs, err := decodeExprList(rawArray(it.Ifs))
		if err != nil {
			return nil, fmt.Errorf("comprehension ifs: %w", err)
		}
		out = append(out, &ast.Comprehension{Target: target, Iter: iter, Ifs: ifs})
	}
	return out, nil
}

// rawArray re-marshals an already-decoded []json.RawMessage so it can be
// handed back to a function that expects the original encoded array.
func rawArray(items []json.RawMessage) json.RawMessage {
	if items == nil {
		return nil
	}
	b, _ := json.Marshal(items)
	return b
}

// decodeConstantValue decodes a Constant.value field, preserving the
// int/float distinction a JSON number alone doesn't carry (1 and 1.0
// unmarshal identically into a bare float64). json.Number keeps the
// original literal so a missing "." or exponent marker means the source
// wrote an integer literal — exactly the information ast.Constant needs
// to tell `1` from `1.0`, the same distinction Python's own ast module
// preserves natively.
func decodeConstantValue(raw json.RawMessage) (any, error) {
	var env struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(env.Value))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	num, ok := v.(json.Number)
	if !ok {
		return v, nil
	}
	s := num.String()
	if strings.ContainsAny(s, ".eE") {
		f, err := num.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	i, err := num.Int64()
	if err != nil {
		return nil, err
	}
	return i, nil
}

func decodeOp(m map[string]json.RawMessage) (ast.Op, error) {
	raw, ok := m["op"]
	if !ok {
		return "", fmt.Errorf("astdecode: node missing \"op\" field")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return ast.Op(s), nil
}
