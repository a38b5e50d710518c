package generator

import "github.com/ibnicena/pycppgen/ast"

// exceptionTypeMap is the source→target exception name mapping of spec.md
// §6. Anything absent from this table maps to std::exception.
var exceptionTypeMap = map[string]string{
	"Exception":         "std::exception",
	"ValueError":        "std::invalid_argument",
	"TypeError":         "std::invalid_argument",
	"RuntimeError":      "std::runtime_error",
	"KeyError":          "std::out_of_range",
	"IndexError":        "std::out_of_range",
	"ZeroDivisionError": "std::overflow_error",
	"FileNotFoundError": "std::runtime_error",
	"IOError":           "std::runtime_error",
}

func mapExceptionType(name string) string {
	if mapped, ok := exceptionTypeMap[name]; ok {
		return mapped
	}
	return "std::exception"
}

// emitTry implements spec.md §4.5's try/except/finally rewrite. finalbody
// statements are appended after every catch clause with no wrapping block —
// a documented deviation (spec.md §9): they do not run on an uncaught
// exception.
func (g *Generator) emitTry(node *ast.Try) {
	g.includes.add(IncludeStdexcept)

	g.emit("try {")
	g.emitBlockBody(node.Body)
	g.emit("}")

	for _, handler := range node.Handlers {
		if handler.Type != nil {
			excType := g.emitExpr(handler.Type)
			cppType := mapExceptionType(excType)
			if handler.Name != "" {
				g.emit("catch (const %s& %s) {", cppType, handler.Name)
			} else {
				g.emit("catch (const %s&) {", cppType)
			}
		} else {
			g.emit("catch (...) {")
		}
		g.emitBlockBody(handler.Body)
		g.emit("}")
	}

	for _, stmt := range node.Finalbody {
		g.emitStmt(stmt)
	}
}

// emitRaise implements spec.md §4.5's raise rewrite: call-form carries a
// mapped exception type and an optional message, bare `raise` re-throws the
// current exception.
func (g *Generator) emitRaise(node *ast.Raise) {
	g.includes.add(IncludeStdexcept)

	if node.Exc == nil {
		g.emit("throw;")
		return
	}

	var excType string
	var excMsg string
	haveMsg := false

	switch exc := node.Exc.(type) {
	case *ast.Call:
		excType = g.emitExpr(exc.Func)
		if len(exc.Args) > 0 {
			excMsg = g.emitExpr(exc.Args[0])
			haveMsg = true
		}
	case *ast.Name:
		excType = g.emitExpr(exc)
	default:
		excType = g.emitExpr(node.Exc)
	}

	cppExcType := "std::runtime_error"
	if excType != "" {
		cppExcType = mapExceptionType(excType)
	}

	if haveMsg {
		g.emit("throw %s(%s);", cppExcType, excMsg)
	} else {
		g.emit(`throw %s("Exception");`, cppExcType)
	}
}
