package ast

// Constant is a literal value: a string, integer, float, bool, or nil.
// Value holds the Go-native representation; the generator decides how to
// render it (a string constant gets surrounding quotes, others their
// textual form).
type Constant struct {
	NodeBase
	Value any
}

func (*Constant) exprNode() {}

// Name is a bare identifier reference.
type Name struct {
	NodeBase
	Id string
}

func (*Name) exprNode() {}

// Attribute is `value.attr`.
type Attribute struct {
	NodeBase
	Value Expr
	Attr  string
}

func (*Attribute) exprNode() {}

// Subscript is `value[slice]`. Slice is a Tuple for the multi-dimensional
// index form `value[i, j]`.
type Subscript struct {
	NodeBase
	Value Expr
	Slice Expr
}

func (*Subscript) exprNode() {}

// Call is `func(args, kw=value, ...)`.
type Call struct {
	NodeBase
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

func (*Call) exprNode() {}

// BinOp is a binary arithmetic expression `left op right`.
type BinOp struct {
	NodeBase
	Left  Expr
	Op    Op
	Right Expr
}

func (*BinOp) exprNode() {}

// UnaryOp is a unary expression `op operand`.
type UnaryOp struct {
	NodeBase
	Op      Op
	Operand Expr
}

func (*UnaryOp) exprNode() {}

// BoolOp is a chain of `and`/`or` values: `v1 and v2 and v3`.
type BoolOp struct {
	NodeBase
	Op     Op
	Values []Expr
}

func (*BoolOp) exprNode() {}

// Compare is a single comparison `left op comparator`. Chained comparisons
// (`a < b < c`) are parsed with more than one operator/comparator pair
// upstream, but this node only ever holds the first — see spec.md §4.7
// ("Compare handles only the first operator/comparator pair").
type Compare struct {
	NodeBase
	Left       Expr
	Op         Op
	Comparator Expr
}

func (*Compare) exprNode() {}

// Lambda is an anonymous single-expression function.
type Lambda struct {
	NodeBase
	Args []*Arg
	Body Expr
}

func (*Lambda) exprNode() {}

// JoinedStr is an f-string: a sequence of literal and FormattedValue
// pieces concatenated together.
type JoinedStr struct {
	NodeBase
	Values []Expr
}

func (*JoinedStr) exprNode() {}

// FormattedValue is one `{expr}` interpolation inside a JoinedStr.
type FormattedValue struct {
	NodeBase
	Value Expr
}

func (*FormattedValue) exprNode() {}

// Await is `await value`, legal only inside an async function body.
type Await struct {
	NodeBase
	Value Expr
}

func (*Await) exprNode() {}

// List is a list literal `[e1, e2, ...]`.
type List struct {
	NodeBase
	Elts []Expr
}

func (*List) exprNode() {}

// Tuple is a tuple literal `(e1, e2, ...)`. Tuple also appears as an
// assignment target (unpacking) and as a Subscript slice (multi-dim
// indexing); those uses reuse this same node shape.
type Tuple struct {
	NodeBase
	Elts []Expr
}

func (*Tuple) exprNode() {}

// Dict is a dict literal `{k1: v1, k2: v2, ...}`.
type Dict struct {
	NodeBase
	Keys   []Expr
	Values []Expr
}

func (*Dict) exprNode() {}

// Comprehension is one `for target in iter [if cond ...]` clause of a
// ListComp. A comprehension may have more than one `if` filter and a
// ListComp may chain more than one Comprehension (nested `for` clauses).
type Comprehension struct {
	Target Expr
	Iter   Expr
	Ifs    []Expr
}

// ListComp is `[elt for target in iter if cond ...]`, possibly with
// multiple chained for-clauses.
type ListComp struct {
	NodeBase
	Elt        Expr
	Generators []*Comprehension
}

func (*ListComp) exprNode() {}
