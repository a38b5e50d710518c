// Package generator is the code generator: a syntax-directed tree walker
// that consumes an ast.Module and produces target-language (Brace) source
// text. See spec.md / SPEC_FULL.md MODULE 3 for the full design.
package generator

import (
	"fmt"
	"strings"

	"github.com/ibnicena/pycppgen/ast"
)

// member is one (name, type) pair of a class-member table entry.
type member struct {
	Name string
	Type string
}

// classInfo is a class's ordered member-declaration list plus a
// uniqueness guard, so a duplicate `self.x = ...` in two different
// methods does not emit two member declarations (spec.md §8
// "class-member uniqueness").
type classInfo struct {
	order []member
	seen  map[string]bool
}

func newClassInfo() *classInfo {
	return &classInfo{seen: make(map[string]bool)}
}

func (c *classInfo) add(name, typ string) {
	if c.seen[name] {
		return
	}
	c.seen[name] = true
	c.order = append(c.order, member{Name: name, Type: typ})
}

// Options configures one generator run. IndentWidth and FallbackType
// resolve the two Open Questions spec.md §9 leaves to the implementer;
// see internal/config for where these are populated from a config file.
type Options struct {
	// IndentWidth is spaces per nesting level. spec.md §3 invariant 2
	// fixes this at four; the field exists so a caller can opt out
	// deliberately, not so every invocation has to guess a value.
	IndentWidth int
	// FallbackType is either "int" (spec.md §4.7's literal default,
	// lossy but matches original_source/) or "auto" (the stricter
	// alternative spec.md §9 explicitly permits).
	FallbackType string
	// NumpyAlias is the extra import alias recognized for the numeric-
	// array module, beyond the literal names "np" and "numpy".
	NumpyAlias string
}

// DefaultOptions returns the options original_source/ behaves as if it
// always used: four-space indentation and the lossy integer fallback.
func DefaultOptions() Options {
	return Options{IndentWidth: 4, FallbackType: "int"}
}

// Generator holds all state for one translation. A Generator must not be
// reused across invocations (spec.md §5): construct a fresh one per call
// to Generate.
type Generator struct {
	opts Options

	lines  []string
	indent int

	includes *includeSet

	varTypes map[string]string

	currentClass string
	classMembers map[string]*classInfo

	asyncFuncs map[string]struct{}
	inAsync    bool

	// numpyAliases is the set of import-bound names recognized as the
	// numeric-array module, seeded with "np"/"numpy" and extended by
	// whatever alias an `import numpy as X` statement (or opts.NumpyAlias)
	// introduces.
	numpyAliases map[string]bool
}

// New constructs a fresh Generator ready for one Generate call.
func New(opts Options) *Generator {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 4
	}
	if opts.FallbackType == "" {
		opts.FallbackType = "int"
	}
	g := &Generator{
		opts:         opts,
		includes:     newIncludeSet(),
		varTypes:     make(map[string]string),
		classMembers: make(map[string]*classInfo),
		asyncFuncs:   make(map[string]struct{}),
		numpyAliases: map[string]bool{"np": true, "numpy": true},
	}
	if opts.NumpyAlias != "" {
		g.numpyAliases[opts.NumpyAlias] = true
	}
	return g
}

// Generate translates mod into target-language text. It recovers from the
// internal fail() panic (spec.md §4.1's one fatal error path) and reports
// it as a plain error instead of crashing the caller.
func (g *Generator) Generate(mod *ast.Module) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ge, ok := r.(*GenError); ok {
				err = ge
				return
			}
			panic(r)
		}
	}()

	g.collectAsyncNames(mod.Body)
	for _, stmt := range mod.Body {
		g.emitStmt(stmt)
	}

	includes := g.includes.flush()
	if len(includes) == 0 {
		return strings.Join(g.lines, "\n"), nil
	}
	var b strings.Builder
	for _, inc := range includes {
		b.WriteString("#include ")
		b.WriteString(inc)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(strings.Join(g.lines, "\n"))
	return b.String(), nil
}

// collectAsyncNames pre-scans top-level defs and records the names of
// async functions in asyncFuncs before traversal starts. The set is
// informational only: no handler reads it, and whether `return` renders as
// co_return is decided by the in-async flag alone.
func (g *Generator) collectAsyncNames(body []ast.Stmt) {
	for _, stmt := range body {
		if fn, ok := stmt.(*ast.AsyncFunctionDef); ok {
			g.asyncFuncs[fn.Name] = struct{}{}
		}
	}
}

func (g *Generator) indentStr() string {
	return strings.Repeat(" ", g.indent*g.opts.IndentWidth)
}

// emit appends one fully-indented line to the buffer (spec.md §3
// invariant 2: every appended line begins with exactly indent*width
// spaces).
func (g *Generator) emit(format string, args ...any) {
	g.lines = append(g.lines, g.indentStr()+fmt.Sprintf(format, args...))
}

// emitRaw appends a line without re-applying indentation, for the rare
// block-terminator lines a caller has already indented itself.
func (g *Generator) emitRaw(line string) {
	g.lines = append(g.lines, line)
}

// emitStmt is the statement dispatch entry point: it appends lines to the
// buffer and returns nothing. It must never be used to produce a value —
// that is emitExpr's job — so the two are kept as entirely separate
// methods (spec.md §9's bimodality design note) rather than one visitor
// that sometimes returns a string and sometimes doesn't.
func (g *Generator) emitStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Import:
		g.emitImport(s)
	case *ast.ImportFrom:
		g.emitImportFrom(s)
	case *ast.FunctionDef:
		g.emitFunctionDef(s)
	case *ast.AsyncFunctionDef:
		g.emitAsyncFunctionDef(s)
	case *ast.ClassDef:
		g.emitClassDef(s)
	case *ast.Assign:
		g.emitAssign(s)
	case *ast.AugAssign:
		g.emitAugAssign(s)
	case *ast.Return:
		g.emitReturn(s)
	case *ast.ExprStmt:
		g.emit("%s;", g.emitExpr(s.Value))
	case *ast.If:
		g.emitIf(s)
	case *ast.While:
		g.emitWhile(s)
	case *ast.For:
		g.emitFor(s)
	case *ast.Break:
		g.emit("break;")
	case *ast.Continue:
		g.emit("continue;")
	case *ast.With:
		g.emitWith(s)
	case *ast.Try:
		g.emitTry(s)
	case *ast.Raise:
		g.emitRaise(s)
	default:
		g.fail(stmt, "unsupported statement node %T", stmt)
	}
}

// emitExpr is the expression dispatch entry point: it returns a rendered
// fragment and never appends to the line buffer. Any include-set side
// effect a handler performs happens unconditionally during this call,
// regardless of whether the caller ends up using the returned fragment —
// this matches traversal, not textual emission (spec.md §4.1).
func (g *Generator) emitExpr(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Constant:
		return g.emitConstant(e)
	case *ast.Name:
		return g.emitName(e)
	case *ast.Attribute:
		return g.emitAttribute(e)
	case *ast.Subscript:
		return g.emitSubscript(e)
	case *ast.Call:
		return g.emitCall(e)
	case *ast.BinOp:
		return g.emitBinOp(e)
	case *ast.UnaryOp:
		return g.emitUnaryOp(e)
	case *ast.BoolOp:
		return g.emitBoolOp(e)
	case *ast.Compare:
		return g.emitCompare(e)
	case *ast.Lambda:
		return g.emitLambda(e)
	case *ast.JoinedStr:
		return g.emitJoinedStr(e)
	case *ast.FormattedValue:
		return g.emitExpr(e.Value)
	case *ast.Await:
		return fmt.Sprintf("co_await %s", g.emitExpr(e.Value))
	case *ast.List:
		return g.emitListOrTuple(e.Elts)
	case *ast.Tuple:
		return g.emitListOrTuple(e.Elts)
	case *ast.Dict:
		return g.emitDict(e)
	case *ast.ListComp:
		return g.emitListComp(e)
	default:
		g.fail(expr, "unsupported expression node %T", expr)
		return "" // unreachable: fail panics
	}
}

func (g *Generator) emitListOrTuple(elts []ast.Expr) string {
	parts := make([]string, len(elts))
	for i, e := range elts {
		parts[i] = g.emitExpr(e)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
