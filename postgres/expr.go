package postgres

import "github.com/zoobzio/astddl/internal/types"

// BinOper is a PostgreSQL-specific binary operator.
type BinOper string

const (
	ILike                BinOper = "ILIKE"
	NotILike             BinOper = "NOT ILIKE"
	Matches              BinOper = "@@"
	Contains             BinOper = "@>"
	Contained            BinOper = "<@"
	Overlap              BinOper = "&&"
	Concatenate          BinOper = "||"
	Regex                BinOper = "~"
	RegexCaseInsensitive BinOper = "~*"
	GetJSONField         BinOper = "->"
	CastJSONField        BinOper = "->>"

	// pgvector distance operators.
	L2Distance     BinOper = "<->"
	CosineDistance BinOper = "<=>"
)

// Symbol returns the SQL spelling of the operator.
func (o BinOper) Symbol() string {
	return string(o)
}

// Expr adds PostgreSQL operators to any expression.
//
//	postgres.Ext(astddl.Col("title")).ILike("%go%")
type Expr struct {
	types.ExprTrait
}

// Ext grants the PostgreSQL operators to e.
func Ext(e types.ExprTrait) Expr {
	return Expr{ExprTrait: e}
}

// ILike is case-insensitive LIKE.
func (e Expr) ILike(right any) types.Expr { return e.Binary(ILike, right) }

// NotILike is the negation of ILike.
func (e Expr) NotILike(right any) types.Expr { return e.Binary(NotILike, right) }

// Matches is full-text search (@@).
func (e Expr) Matches(right any) types.Expr { return e.Binary(Matches, right) }

// Contains is array/range/jsonb containment (@>).
func (e Expr) Contains(right any) types.Expr { return e.Binary(Contains, right) }

// Contained is the reverse of Contains (<@).
func (e Expr) Contained(right any) types.Expr { return e.Binary(Contained, right) }

// Overlap tests array or range overlap (&&).
func (e Expr) Overlap(right any) types.Expr { return e.Binary(Overlap, right) }

// Concatenate joins strings, arrays or jsonb (||).
func (e Expr) Concatenate(right any) types.Expr { return e.Binary(Concatenate, right) }

// Regex is a POSIX regular expression match (~).
func (e Expr) Regex(right any) types.Expr { return e.Binary(Regex, right) }

// RegexCaseInsensitive is a case-insensitive POSIX match (~*).
func (e Expr) RegexCaseInsensitive(right any) types.Expr {
	return e.Binary(RegexCaseInsensitive, right)
}

// GetJSONField extracts a JSON field as JSON (->).
func (e Expr) GetJSONField(right any) types.Expr { return e.Binary(GetJSONField, right) }

// CastJSONField extracts a JSON field as text (->>).
func (e Expr) CastJSONField(right any) types.Expr { return e.Binary(CastJSONField, right) }

// L2Distance is the pgvector Euclidean distance.
func (e Expr) L2Distance(right any) types.Expr { return e.Binary(L2Distance, right) }

// CosineDistance is the pgvector cosine distance.
func (e Expr) CosineDistance(right any) types.Expr { return e.Binary(CosineDistance, right) }
