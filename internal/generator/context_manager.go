package generator

import "github.com/ibnicena/pycppgen/ast"

// emitWith implements the file-open context-manager protocol of spec.md
// §4.8. Only the first item is inspected; any other form falls through to
// an unsupported-context-manager placeholder that still emits the body, so
// partial output stays useful (spec.md §7's "recover gracefully from
// missing structural detail" policy).
func (g *Generator) emitWith(node *ast.With) {
	g.includes.add(IncludeFstream)
	g.includes.add(IncludeString)

	item := node.Items[0]
	call, ok := item.ContextExpr.(*ast.Call)
	if !ok || !isOpenCall(call) {
		g.emit("// Unsupported context manager")
		for _, stmt := range node.Body {
			g.emitStmt(stmt)
		}
		return
	}

	filename := `""`
	if len(call.Args) > 0 {
		filename = g.emitExpr(call.Args[0])
	}

	mode := "r"
	if len(call.Args) > 1 {
		if c, ok := call.Args[1].(*ast.Constant); ok {
			if s, ok := c.Value.(string); ok {
				mode = s
			}
		}
	}

	writing := containsByte(mode, 'w')
	appending := containsByte(mode, 'a')

	streamType := "std::ifstream"
	streamMode := "std::ios::in"
	if writing || appending {
		streamType = "std::ofstream"
		streamMode = "std::ios::out"
		if appending {
			streamMode += " | std::ios::app"
		}
	}

	varName := "_file"
	if item.OptionalVars != nil {
		varName = g.emitExpr(item.OptionalVars)
	}

	g.emit("{")
	g.indent++
	if writing || appending {
		g.emit("%s %s(%s, %s);", streamType, varName, filename, streamMode)
	} else {
		g.emit("%s %s(%s);", streamType, varName, filename)
	}
	for _, stmt := range node.Body {
		g.emitStmt(stmt)
	}
	g.indent--
	g.emit("}  // %s closes automatically", varName)
}

func isOpenCall(call *ast.Call) bool {
	name, ok := call.Func.(*ast.Name)
	return ok && name.Id == "open"
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}
