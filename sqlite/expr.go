package sqlite

import "github.com/zoobzio/astddl/internal/types"

// BinOper is an SQLite-specific binary operator.
type BinOper string

const (
	Glob          BinOper = "GLOB"
	Match         BinOper = "MATCH"
	GetJSONField  BinOper = "->"
	CastJSONField BinOper = "->>"
)

// Symbol returns the SQL spelling of the operator.
func (o BinOper) Symbol() string {
	return string(o)
}

// Expr adds SQLite operators to any expression.
//
//	sqlite.Ext(astddl.Col("name")).Glob("a*")  // "name" GLOB 'a*'
type Expr struct {
	types.ExprTrait
}

// Ext grants the SQLite operators to e.
func Ext(e types.ExprTrait) Expr {
	return Expr{ExprTrait: e}
}

// Glob is a case-sensitive Unix glob match.
func (e Expr) Glob(right any) types.Expr {
	return e.Binary(Glob, right)
}

// Matches is the full-text MATCH operator.
func (e Expr) Matches(right any) types.Expr {
	return e.Binary(Match, right)
}

// GetJSONField extracts a JSON field as JSON (->).
func (e Expr) GetJSONField(right any) types.Expr {
	return e.Binary(GetJSONField, right)
}

// CastJSONField extracts a JSON field as an SQL value (->>).
func (e Expr) CastJSONField(right any) types.Expr {
	return e.Binary(CastJSONField, right)
}
