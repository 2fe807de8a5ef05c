package arrowc

// Program is the root of the source AST. Body holds top-level entries in
// source order.
type Program struct {
	Body []Expr
}

type Expr interface{}

// ArrowFunc is a parenthesised parameter list with an arrow-introduced
// body. Body stays empty until the matching '=>' has been consumed.
type ArrowFunc struct {
	Params []Expr
	Body   []Expr
}

type Identifier struct {
	Name string
}

type BinaryOp string

const (
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"
)

type OperatorExpr struct {
	Operation BinaryOp
}

type LiteralType int

const (
	LiteralNumber LiteralType = iota
)

type LiteralExpr struct {
	Typ   LiteralType
	Value string
}
