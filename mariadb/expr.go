package mariadb

import "github.com/zoobzio/astddl/internal/types"

// BinOper is a MariaDB-specific binary operator.
type BinOper string

const (
	Regexp        BinOper = "REGEXP"
	NotRegexp     BinOper = "NOT REGEXP"
	NullSafeEq    BinOper = "<=>"
	GetJSONField  BinOper = "->"
	CastJSONField BinOper = "->>"
)

// Symbol returns the SQL spelling of the operator.
func (o BinOper) Symbol() string {
	return string(o)
}

// Expr adds MariaDB operators to any expression.
type Expr struct {
	types.ExprTrait
}

// Ext grants the MariaDB operators to e.
func Ext(e types.ExprTrait) Expr {
	return Expr{ExprTrait: e}
}

func (e Expr) Regexp(right any) types.Expr        { return e.Binary(Regexp, right) }
func (e Expr) NotRegexp(right any) types.Expr     { return e.Binary(NotRegexp, right) }
func (e Expr) NullSafeEq(right any) types.Expr    { return e.Binary(NullSafeEq, right) }
func (e Expr) GetJSONField(right any) types.Expr  { return e.Binary(GetJSONField, right) }
func (e Expr) CastJSONField(right any) types.Expr { return e.Binary(CastJSONField, right) }
