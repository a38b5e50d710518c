// Package ast defines the Abstract Syntax Tree node vocabulary the
// generator consumes. The tree is produced elsewhere (see
// internal/astdecode) and is immutable from the generator's point of view.
package ast

// Position marks where a node came from in the original source, for error
// reporting. A zero Position means the position is unknown (e.g. a node
// synthesized by a test).
type Position struct {
	Line   int
	Column int
}

// NodeBase carries the source position shared by every concrete node.
// Embedding it gives a node its Pos() method for free.
type NodeBase struct {
	P Position
}

// Pos returns the node's source position.
func (n NodeBase) Pos() Position { return n.P }

// Node is the base interface every AST node satisfies.
type Node interface {
	Pos() Position
}

// Expr is any node that produces a value. The unexported marker method
// closes the set of types that may be used where an expression is
// expected, so a function accepting ast.Expr cannot accidentally be
// handed a statement.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action without producing a value.
type Stmt interface {
	Node
	stmtNode()
}

// Module is the root of the tree: a flat body of top-level statements.
type Module struct {
	NodeBase
	Body []Stmt
}

// Alias is the `name` or `name as asname` form used by Import/ImportFrom.
type Alias struct {
	Name   string
	AsName string // empty if no "as" clause
}

// EffectiveName returns AsName if present, otherwise Name — the identifier
// the rest of the program would have bound the import under.
func (a Alias) EffectiveName() string {
	if a.AsName != "" {
		return a.AsName
	}
	return a.Name
}

// Import is a bare `import a, b as c` statement.
type Import struct {
	NodeBase
	Names []Alias
}

func (*Import) stmtNode() {}

// ImportFrom is a `from module import a, b` statement.
type ImportFrom struct {
	NodeBase
	Module string
	Names  []Alias
}

func (*ImportFrom) stmtNode() {}

// Arg is one parameter of a function/lambda signature: a name with an
// optional type annotation expression (nil for lambdas, which never carry
// annotations in the source language).
type Arg struct {
	Name       string
	Annotation Expr
}

// Keyword is a `name=value` call argument.
type Keyword struct {
	Name  string
	Value Expr
}

// FunctionDef is a synchronous function or method definition.
type FunctionDef struct {
	NodeBase
	Name    string
	Args    []*Arg
	Returns Expr // return type annotation, nil if absent
	Body    []Stmt
}

func (*FunctionDef) stmtNode() {}

// AsyncFunctionDef is an `async def` definition.
type AsyncFunctionDef struct {
	NodeBase
	Name    string
	Args    []*Arg
	Returns Expr
	Body    []Stmt
}

func (*AsyncFunctionDef) stmtNode() {}

// ClassDef is a class body. Bases are recorded but unused by the generator
// (single inheritance is out of scope); they are kept so a future pass can
// use them without reshaping the tree.
type ClassDef struct {
	NodeBase
	Name  string
	Bases []Expr
	Body  []Stmt
}

func (*ClassDef) stmtNode() {}
