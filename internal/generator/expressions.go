package generator

import (
	"strconv"
	"strings"

	"github.com/ibnicena/pycppgen/ast"
)

func (g *Generator) emitConstant(node *ast.Constant) string {
	switch v := node.Value.(type) {
	case string:
		return `"` + v + `"`
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return "nullptr"
	default:
		g.fail(node, "unrecognized constant value type %T", node.Value)
		return ""
	}
}

// emitName maps the three recognized annotation names to their target-
// language type; any other identifier is emitted verbatim (spec.md §4.7).
func (g *Generator) emitName(node *ast.Name) string {
	switch node.Id {
	case "int":
		return "int"
	case "str":
		g.includes.add(IncludeString)
		return "std::string"
	case "dict":
		g.includes.add(IncludeJSON)
		return "nlohmann::json"
	default:
		return node.Id
	}
}

// emitAttribute renders `self.<x>` as just `<x>`, rewrites the recognized
// array properties to method calls, and otherwise falls back to
// `<value>.<attr>` (spec.md §4.7). The self-check runs first, matching
// original_source/'s order: `self.shape` would otherwise be miscategorized
// as the array-property rewrite.
func (g *Generator) emitAttribute(node *ast.Attribute) string {
	value := g.emitExpr(node.Value)
	if value == "self" {
		return node.Attr
	}
	switch node.Attr {
	case "shape":
		return value + ".shape()"
	case "size":
		return value + ".size()"
	case "T":
		return value + ".transpose()"
	default:
		return value + "." + node.Attr
	}
}

// emitSubscript handles multi-dimensional array indexing (tuple slice), the
// `list[T]` generic-sequence annotation form, and plain indexing (spec.md
// §4.7).
func (g *Generator) emitSubscript(node *ast.Subscript) string {
	value := g.emitExpr(node.Value)
	if tuple, ok := node.Slice.(*ast.Tuple); ok {
		indices := make([]string, len(tuple.Elts))
		for i, dim := range tuple.Elts {
			indices[i] = g.emitExpr(dim)
		}
		return value + "(" + strings.Join(indices, ", ") + ")"
	}
	slice := g.emitExpr(node.Slice)
	if value == "list" {
		g.includes.add(IncludeVector)
		return "std::vector<" + slice + ">"
	}
	return value + "[" + slice + "]"
}

func (g *Generator) emitDict(node *ast.Dict) string {
	g.includes.add(IncludeMap)
	pairs := make([]string, len(node.Keys))
	for i := range node.Keys {
		k := g.emitExpr(node.Keys[i])
		v := g.emitExpr(node.Values[i])
		pairs[i] = "{" + k + ", " + v + "}"
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// emitLambda renders parameters using their recorded type from an enclosing
// scope's parameter table, or auto when the lambda parameter was never
// itself declared with an annotation (lambdas never carry one).
func (g *Generator) emitLambda(node *ast.Lambda) string {
	params := make([]string, len(node.Args))
	for i, arg := range node.Args {
		typ, ok := g.varTypes[arg.Name]
		if !ok {
			typ = "auto"
		}
		params[i] = typ + " " + arg.Name
	}
	body := g.emitExpr(node.Body)
	return "[](" + strings.Join(params, ", ") + ") { return " + body + "; }"
}

func (g *Generator) emitJoinedStr(node *ast.JoinedStr) string {
	parts := make([]string, len(node.Values))
	for i, v := range node.Values {
		parts[i] = g.emitExpr(v)
	}
	return strings.Join(parts, " + ")
}
