package generator

import (
	"fmt"

	"github.com/ibnicena/pycppgen/ast"
)

// operatorGlyph renders the closed operator vocabulary of spec.md §3. Pow is
// handled by emitBinOp directly (it is not a glyph, it is a function call),
// so it has no case here.
func operatorGlyph(op ast.Op) string {
	switch op {
	case ast.OpAdd:
		return "+"
	case ast.OpSub:
		return "-"
	case ast.OpMul:
		return "*"
	case ast.OpDiv:
		return "/"
	case ast.OpMod:
		return "%"
	case ast.OpGt:
		return ">"
	case ast.OpLt:
		return "<"
	case ast.OpEq:
		return "=="
	case ast.OpNeq:
		return "!="
	case ast.OpGtE:
		return ">="
	case ast.OpLtE:
		return "<="
	case ast.OpAnd:
		return "&&"
	case ast.OpOr:
		return "||"
	case ast.OpNot:
		return "!"
	case ast.OpUAdd:
		return "+"
	case ast.OpUSub:
		return "-"
	default:
		panic(fmt.Sprintf("generator: unrecognized operator %q", op))
	}
}

func (g *Generator) emitBinOp(node *ast.BinOp) string {
	left := g.emitExpr(node.Left)
	right := g.emitExpr(node.Right)

	if node.Op == ast.OpPow {
		g.includes.add(IncludeCmath)
		return fmt.Sprintf("std::pow(%s, %s)", left, right)
	}

	return fmt.Sprintf("%s %s %s", left, operatorGlyph(node.Op), right)
}

// emitUnaryOp wraps the operand in parentheses when it is a compound
// expression, preserving precedence across the rewrite (spec.md §4.7).
func (g *Generator) emitUnaryOp(node *ast.UnaryOp) string {
	operand := g.emitExpr(node.Operand)
	op := operatorGlyph(node.Op)
	if isCompoundExpr(node.Operand) {
		return fmt.Sprintf("%s(%s)", op, operand)
	}
	return op + operand
}

func isCompoundExpr(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.BinOp, *ast.Compare, *ast.BoolOp:
		return true
	default:
		return false
	}
}

func (g *Generator) emitCompare(node *ast.Compare) string {
	left := g.emitExpr(node.Left)
	right := g.emitExpr(node.Comparator)
	return fmt.Sprintf("%s %s %s", left, operatorGlyph(node.Op), right)
}

func (g *Generator) emitBoolOp(node *ast.BoolOp) string {
	glyph := operatorGlyph(node.Op)
	parts := make([]string, len(node.Values))
	for i, v := range node.Values {
		parts[i] = g.emitExpr(v)
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out = out + " " + glyph + " " + p
	}
	return out
}
