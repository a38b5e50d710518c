package generator

import (
	"strings"

	"github.com/ibnicena/pycppgen/ast"
)

// initializerName is the recognized constructor sentinel method name
// (spec.md §4.3: "a method whose name is the recognized initializer
// sentinel, e.g. __init__").
const initializerName = "__init__"

// renderArgs renders a parameter list and records each parameter's
// inferred type in the flat, unscoped variable-type table (spec.md §3:
// "populated at parameter declarations and some assignments").
func (g *Generator) renderArgs(args []*ast.Arg) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		typ := "auto"
		if arg.Annotation != nil {
			typ = g.emitExpr(arg.Annotation)
		}
		g.varTypes[arg.Name] = typ
		out[i] = typ + " " + arg.Name
	}
	return out
}

func (g *Generator) emitFunctionDef(node *ast.FunctionDef) {
	isMethod := g.currentClass != ""
	isConstructor := isMethod && node.Name == initializerName
	args := node.Args
	if isMethod && len(args) > 0 {
		args = args[1:] // drop self/this
	}

	if isConstructor {
		g.emit("%s(%s) {", g.currentClass, strings.Join(g.renderArgs(args), ", "))
		g.emitBlockBody(node.Body)
		g.emit("}")
		return
	}

	returnType := "void"
	if functionReturnsTuple(node.Body) {
		returnType = "auto"
		g.includes.add(IncludeTuple)
	} else if node.Returns != nil {
		returnType = g.emitExpr(node.Returns)
	}

	g.emit("%s %s(%s) {", returnType, node.Name, strings.Join(g.renderArgs(args), ", "))
	g.emitBlockBody(node.Body)
	g.emit("}")
}

func (g *Generator) emitAsyncFunctionDef(node *ast.AsyncFunctionDef) {
	g.includes.add(IncludeCoroutine)
	g.includes.add(IncludeTask)

	isMethod := g.currentClass != ""
	args := node.Args
	if isMethod && len(args) > 0 {
		args = args[1:]
	}

	returnType := "void"
	if node.Returns != nil {
		returnType = g.emitExpr(node.Returns)
	}
	coroutineReturnType := "Task<" + returnType + ">"

	g.asyncFuncs[node.Name] = struct{}{}

	// "Currently in async" is a scoped context switch, not a general
	// feature: save and restore around this one emission (spec.md §9).
	prevAsync := g.inAsync
	g.inAsync = true
	g.emit("%s %s(%s) {", coroutineReturnType, node.Name, strings.Join(g.renderArgs(args), ", "))
	g.emitBlockBody(node.Body)
	g.emit("}")
	g.inAsync = prevAsync
}

// emitBlockBody emits a nested statement list one indent level deeper
// than the current one, without emitting the enclosing braces — callers
// write their own opening/closing lines so they can customize them
// (constructors, if/else, loops, etc. all share this helper).
func (g *Generator) emitBlockBody(body []ast.Stmt) {
	g.indent++
	for _, stmt := range body {
		g.emitStmt(stmt)
	}
	g.indent--
}

// functionReturnsTuple reports whether any Return statement reachable
// from body (at any nesting depth, including inside nested control flow,
// try/except, with-blocks, and nested defs) returns a tuple literal. This
// mirrors original_source/'s use of ast.walk, which is exhaustive over the
// entire subtree regardless of what kind of node it encounters.
func functionReturnsTuple(body []ast.Stmt) bool {
	for _, stmt := range body {
		if stmtReturnsTuple(stmt) {
			return true
		}
	}
	return false
}

func stmtReturnsTuple(stmt ast.Stmt) bool {
	switch s := stmt.(type) {
	case *ast.Return:
		_, ok := s.Value.(*ast.Tuple)
		return ok
	case *ast.If:
		return functionReturnsTuple(s.Body) || functionReturnsTuple(s.Orelse)
	case *ast.While:
		return functionReturnsTuple(s.Body)
	case *ast.For:
		return functionReturnsTuple(s.Body)
	case *ast.With:
		return functionReturnsTuple(s.Body)
	case *ast.Try:
		if functionReturnsTuple(s.Body) || functionReturnsTuple(s.Finalbody) {
			return true
		}
		for _, h := range s.Handlers {
			if functionReturnsTuple(h.Body) {
				return true
			}
		}
		return false
	case *ast.FunctionDef:
		return functionReturnsTuple(s.Body)
	case *ast.AsyncFunctionDef:
		return functionReturnsTuple(s.Body)
	case *ast.ClassDef:
		return functionReturnsTuple(s.Body)
	default:
		return false
	}
}
