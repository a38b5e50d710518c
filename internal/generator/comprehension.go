package generator

import (
	"strings"

	"github.com/ibnicena/pycppgen/ast"
)

// emitListComp renders a list comprehension as a multi-line immediately-
// invoked lambda, nesting `for` clauses left-to-right and `if` filters
// inside their owning `for` (spec.md §4.7, §9). The builder below is local
// to this call — nothing here touches g.lines, matching the design note
// that comprehension state must not leak into the outer statement buffer.
func (g *Generator) emitListComp(node *ast.ListComp) string {
	g.includes.add(IncludeVector)

	var lines []string
	lines = append(lines, "[]() {")
	lines = append(lines, "    std::vector<int> _result;")

	for _, gen := range node.Generators {
		target := g.emitExpr(gen.Target)
		iterExpr := g.emitExpr(gen.Iter)
		lines = append(lines, "    for (auto "+target+" : "+iterExpr+") {")
		for _, ifClause := range gen.Ifs {
			cond := g.emitExpr(ifClause)
			lines = append(lines, "        if ("+cond+") {")
		}
	}

	element := g.emitExpr(node.Elt)
	depth := len(node.Generators)
	for _, gen := range node.Generators {
		depth += len(gen.Ifs)
	}
	lines = append(lines, strings.Repeat("    ", depth+1)+"_result.push_back("+element+");")

	for i := len(node.Generators) - 1; i >= 0; i-- {
		for range node.Generators[i].Ifs {
			lines = append(lines, "        }")
		}
		lines = append(lines, "    }")
	}

	lines = append(lines, "    return _result;")
	lines = append(lines, "}()")

	return strings.Join(lines, "\n")
}
