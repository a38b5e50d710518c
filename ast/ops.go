package ast

// Op is the closed set of operator tokens the generator must handle
// exhaustively (spec.md §3 "Operators"). It is a distinct type rather than
// a bare string so a stray typo in a caller doesn't silently become an
// "unrecognized" operator that degrades gracefully — there is no such
// thing as a gracefully-degraded operator, only a complete or an invalid
// generator.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpMod Op = "%"
	OpPow Op = "**"

	OpGt   Op = ">"
	OpLt   Op = "<"
	OpEq   Op = "=="
	OpNeq  Op = "!="
	OpGtE  Op = ">="
	OpLtE  Op = "<="

	OpAnd Op = "and"
	OpOr  Op = "or"
	OpNot Op = "not"

	OpUAdd Op = "u+"
	OpUSub Op = "u-"
)
