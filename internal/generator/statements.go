package generator

import (
	"strings"

	"github.com/ibnicena/pycppgen/ast"
)

// emitAssign implements the three target shapes of spec.md §4.5: tuple
// unpacking (structured binding), self.<name> (a class member, declared once
// at class scope and assigned bare thereafter), and a plain local
// declaration whose type is resolved by the §4.7 priority chain.
func (g *Generator) emitAssign(node *ast.Assign) {
	if tuple, ok := node.Target.(*ast.Tuple); ok {
		g.includes.add(IncludeTuple)
		vars := make([]string, len(tuple.Elts))
		for i, elt := range tuple.Elts {
			vars[i] = g.emitExpr(elt)
		}
		value := g.emitExpr(node.Value)
		g.emit("auto [%s] = %s;", strings.Join(vars, ", "), value)
		return
	}

	target := g.emitExpr(node.Target)
	value := g.emitExpr(node.Value)

	if memberName, ok := selfMemberName(node.Target); ok && g.currentClass != "" {
		info := g.classMembers[g.currentClass]
		if !info.seen[memberName] {
			info.add(memberName, g.inferSelfMemberType(node.Value, value))
		}
		g.emit("%s = %s;", target, value)
		return
	}

	g.emit("%s %s = %s;", g.inferAssignType(node.Value, value), target, value)
}

// inferSelfMemberType infers a class-member's type the first time a
// `self.<name> = <rhs>` assignment reaches it outside the constructor
// pre-scan, reusing the same priority order as prescanClassMembers plus the
// HTTP-response special case original_source/ applies during live emission.
func (g *Generator) inferSelfMemberType(rhs ast.Expr, rendered string) string {
	if strings.Contains(rendered, "requests::get") {
		return "cpr::Response"
	}
	switch v := rhs.(type) {
	case *ast.Constant:
		switch v.Value.(type) {
		case string:
			return "std::string"
		case int64:
			return "int"
		}
		return "auto"
	case *ast.Name:
		if typ, ok := g.varTypes[v.Id]; ok {
			return typ
		}
		return "auto"
	default:
		return "auto"
	}
}

// inferAssignType implements spec.md §4.7's type-at-introduction priority
// chain for a plain (non-member) local declaration.
func (g *Generator) inferAssignType(rhs ast.Expr, rendered string) string {
	switch rhs.(type) {
	case *ast.Dict, *ast.List, *ast.ListComp, *ast.Lambda:
		return "auto"
	}
	switch {
	case strings.Contains(rendered, "requests::get"):
		return "cpr::Response"
	case strings.Contains(rendered, "nc::"), strings.Contains(rendered, ".reshape("), strings.Contains(rendered, ".transpose("):
		return "auto"
	case strings.Contains(rendered, "std::thread"):
		return "std::thread"
	case strings.Contains(rendered, "std::mutex"):
		return "std::mutex"
	case strings.Contains(rendered, "string_utils::"):
		return "auto"
	case strings.Contains(rendered, "std::istreambuf_iterator"), strings.Contains(rendered, "std::getline"), strings.Contains(rendered, "_lines"):
		return "auto"
	default:
		return g.opts.FallbackType
	}
}

func (g *Generator) emitAugAssign(node *ast.AugAssign) {
	target := g.emitExpr(node.Target)
	value := g.emitExpr(node.Value)
	g.emit("%s %s= %s;", target, operatorGlyph(node.Op), value)
}

func (g *Generator) emitReturn(node *ast.Return) {
	keyword := "return"
	if g.inAsync {
		keyword = "co_return"
	}

	if node.Value == nil {
		g.emit("%s;", keyword)
		return
	}

	var value string
	if tuple, ok := node.Value.(*ast.Tuple); ok {
		g.includes.add(IncludeTuple)
		elems := make([]string, len(tuple.Elts))
		for i, elt := range tuple.Elts {
			elems[i] = g.emitExpr(elt)
		}
		value = "std::make_tuple(" + strings.Join(elems, ", ") + ")"
	} else {
		value = g.emitExpr(node.Value)
	}

	g.emit("%s %s;", keyword, value)
}

func (g *Generator) emitIf(node *ast.If) {
	test := g.emitExpr(node.Test)
	g.emit("if (%s) {", test)
	g.emitBlockBody(node.Body)
	if len(node.Orelse) > 0 {
		g.emit("} else {")
		g.emitBlockBody(node.Orelse)
	}
	g.emit("}")
}

func (g *Generator) emitWhile(node *ast.While) {
	test := g.emitExpr(node.Test)
	g.emit("while (%s) {", test)
	g.emitBlockBody(node.Body)
	g.emit("}")
}
