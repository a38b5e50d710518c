package generator

import "github.com/ibnicena/pycppgen/ast"

// emitClassDef is the two-phase class rewriter of spec.md §4.4: a
// pre-scan of the initializer populates the member table without writing
// any output, then the class is emitted with its member declarations
// followed by its methods.
func (g *Generator) emitClassDef(node *ast.ClassDef) {
	g.currentClass = node.Name
	info := newClassInfo()
	g.classMembers[node.Name] = info

	g.prescanClassMembers(node, info)

	g.emit("class %s {", node.Name)
	g.emit("public:")
	g.indent++
	for _, m := range info.order {
		g.emit("%s %s;", m.Type, m.Name)
	}
	if len(info.order) > 0 {
		g.emitRaw("")
	}
	for _, item := range node.Body {
		g.emitStmt(item)
	}
	g.indent--
	g.emit("};")

	g.currentClass = ""
}

// prescanClassMembers walks only the __init__ method's own body (not
// nested control flow — original_source/ scans item.body directly, one
// level, and so does this) looking for `self.<name> = <rhs>` assignments,
// inferring a member type per spec.md §4.4a's priority order: parameter
// passthrough, string literal, integer literal, otherwise deferred (not
// recorded here — the live Assign handler in statements.go extends the
// table when it meets one of these later).
func (g *Generator) prescanClassMembers(node *ast.ClassDef, info *classInfo) {
	var init *ast.FunctionDef
	for _, item := range node.Body {
		if fn, ok := item.(*ast.FunctionDef); ok && fn.Name == initializerName {
			init = fn
			break
		}
	}
	if init == nil {
		return
	}

	for _, stmt := range init.Body {
		assign, ok := stmt.(*ast.Assign)
		if !ok {
			continue
		}
		memberName, ok := selfMemberName(assign.Target)
		if !ok {
			continue
		}

		switch rhs := assign.Value.(type) {
		case *ast.Name:
			ctorArgs := init.Args
			if len(ctorArgs) > 0 {
				ctorArgs = ctorArgs[1:] // drop self
			}
			for _, arg := range ctorArgs {
				if arg.Name == rhs.Id {
					typ := "auto"
					if arg.Annotation != nil {
						typ = g.emitExpr(arg.Annotation)
					}
					info.add(memberName, typ)
					break
				}
			}
		case *ast.Constant:
			switch rhs.Value.(type) {
			case string:
				info.add(memberName, "std::string")
			case int64:
				info.add(memberName, "int")
			}
		}
	}
}

// selfMemberName reports whether target is a `self.<name>` attribute
// access and, if so, returns <name>.
func selfMemberName(target ast.Expr) (string, bool) {
	attr, ok := target.(*ast.Attribute)
	if !ok {
		return "", false
	}
	name, ok := attr.Value.(*ast.Name)
	if !ok || name.Id != "self" {
		return "", false
	}
	return attr.Attr, true
}
