package generator

import (
	"strings"

	"github.com/ibnicena/pycppgen/ast"
)

// emitFor implements the three recognized iteration shapes of spec.md §4.6.
// `range(...)` in the iter position is not special-cased here: it reaches
// this function as an ordinary Call, and the IIFE rewrite happens in
// idioms.go exactly like any other recognized call — emitFor only ever sees
// its rendered fragment.
func (g *Generator) emitFor(node *ast.For) {
	if call, ok := node.Iter.(*ast.Call); ok {
		if attr, ok := call.Func.(*ast.Attribute); ok {
			dictObj := g.emitExpr(attr.Value)
			switch attr.Attr {
			case "items":
				if tuple, ok := node.Target.(*ast.Tuple); ok {
					vars := make([]string, len(tuple.Elts))
					for i, elt := range tuple.Elts {
						vars[i] = g.emitExpr(elt)
					}
					g.emit("for (auto& [%s] : %s) {", strings.Join(vars, ", "), dictObj)
				} else {
					target := g.emitExpr(node.Target)
					g.emit("for (auto& %s : %s) {", target, dictObj)
				}
				g.emitBlockBody(node.Body)
				g.emit("}")
				return
			case "keys":
				target := g.emitExpr(node.Target)
				g.emit("for (auto& _pair : %s) {", dictObj)
				g.indent++
				g.emit("auto %s = _pair.first;", target)
				g.indent--
				g.emitBlockBody(node.Body)
				g.emit("}")
				return
			case "values":
				target := g.emitExpr(node.Target)
				g.emit("for (auto& _pair : %s) {", dictObj)
				g.indent++
				g.emit("auto %s = _pair.second;", target)
				g.indent--
				g.emitBlockBody(node.Body)
				g.emit("}")
				return
			default:
				target := g.emitExpr(node.Target)
				iterName := g.emitExpr(node.Iter)
				g.emit("for (auto %s : %s) {", target, iterName)
				g.emitBlockBody(node.Body)
				g.emit("}")
				return
			}
		}
	}

	target := g.emitExpr(node.Target)
	iterName := g.emitExpr(node.Iter)

	loopVarType := "auto"
	if iterType, ok := g.varTypes[iterName]; ok {
		if t, ok := sequenceElementType(iterType); ok {
			loopVarType = t
		}
	}

	g.emit("for (%s %s : %s) {", loopVarType, target, iterName)
	g.emitBlockBody(node.Body)
	g.emit("}")
}

// sequenceElementType extracts T from a rendered "std::vector<T>" type
// string, mirroring original_source/'s string-slicing extraction.
func sequenceElementType(typ string) (string, bool) {
	const prefix = "std::vector<"
	if len(typ) > len(prefix)+1 && typ[:len(prefix)] == prefix && typ[len(typ)-1] == '>' {
		return typ[len(prefix) : len(typ)-1], true
	}
	return "", false
}
