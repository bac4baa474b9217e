package types

// ExprNode is a node of an expression tree.
type ExprNode interface {
	isExprNode()
}

// ColumnNode references a column, optionally qualified by a table or alias.
type ColumnNode struct {
	Table string
	Name  string
}

// ValueNode holds a literal value. Dialects format it at render time.
type ValueNode struct {
	Value any
}

// BinaryNode combines two expressions under a binary operator.
type BinaryNode struct {
	Left  Expr
	Op    BinOper
	Right Expr
}

// NotNode negates an expression.
type NotNode struct {
	Operand Expr
}

// CustomNode is a raw SQL fragment written verbatim.
type CustomNode struct {
	SQL string
}

func (ColumnNode) isExprNode() {}
func (ValueNode) isExprNode()  {}
func (BinaryNode) isExprNode() {}
func (NotNode) isExprNode()    {}
func (CustomNode) isExprNode() {}

// ExprTrait is the base expression capability. Anything that can present itself as
// an Expr and combine with a right-hand operand qualifies; dialect extensions are
// granted to every ExprTrait value.
type ExprTrait interface {
	AsExpr() Expr
	Binary(op BinOper, right any) Expr
}

// Expr is the shared expression type. It is an immutable value wrapping one node.
type Expr struct {
	Node ExprNode
}

// AsExpr returns the expression itself.
func (e Expr) AsExpr() Expr {
	return e
}

// Binary returns a new expression wrapping (e, op, right).
// The right operand is converted with Into; no operand validation happens here.
func (e Expr) Binary(op BinOper, right any) Expr {
	return Expr{Node: BinaryNode{Left: e, Op: op, Right: Into(right)}}
}

// Into converts a value to an expression. Expressions pass through, nodes are
// wrapped, everything else becomes a literal.
func Into(v any) Expr {
	switch x := v.(type) {
	case Expr:
		return x
	case ExprTrait:
		return x.AsExpr()
	case ExprNode:
		return Expr{Node: x}
	default:
		return Expr{Node: ValueNode{Value: v}}
	}
}

// Column creates a column expression.
func Column(name string) Expr {
	return Expr{Node: ColumnNode{Name: name}}
}

// TableColumnExpr creates a table-qualified column expression.
func TableColumnExpr(table, name string) Expr {
	return Expr{Node: ColumnNode{Table: table, Name: name}}
}

// Value creates a literal expression.
func Value(v any) Expr {
	return Expr{Node: ValueNode{Value: v}}
}

// Custom creates a raw SQL expression.
func Custom(sql string) Expr {
	return Expr{Node: CustomNode{SQL: sql}}
}

// Not negates an expression.
func Not(e ExprTrait) Expr {
	return Expr{Node: NotNode{Operand: e.AsExpr()}}
}
