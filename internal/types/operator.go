package types

// BinOper tags a binary operator. The shared operators below are Operator values;
// dialect packages declare their own tag types to extend the set without touching Expr.
type BinOper interface {
	Symbol() string
}

// Operator represents the shared, dialect-neutral binary operators.
type Operator string

const (
	// Basic comparison operators.
	EQ Operator = "="
	NE Operator = "<>"
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="

	// Extended operators.
	IN      Operator = "IN"
	NotIn   Operator = "NOT IN"
	LIKE    Operator = "LIKE"
	NotLike Operator = "NOT LIKE"
	Is      Operator = "IS"
	IsNot   Operator = "IS NOT"

	// Logical operators.
	AndOp Operator = "AND"
	OrOp  Operator = "OR"

	// Arithmetic operators.
	Add Operator = "+"
	Sub Operator = "-"
	Mul Operator = "*"
	Div Operator = "/"
	Mod Operator = "%"
)

// Symbol returns the SQL spelling of the operator.
func (o Operator) Symbol() string {
	return string(o)
}

// Direction represents index key order.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)
