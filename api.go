// Package astddl renders dialect-neutral index DDL to SQL for multiple databases.
//
// Index statements are plain values. A dialect Renderer turns them into
// CREATE INDEX, DROP INDEX or inline table index text:
//
//	import "github.com/zoobzio/astddl/postgres"
//
//	stmt, err := astddl.CreateIndex(astddl.T("users")).
//		Name("idx_users_email").
//		Unique().
//		Columns("email").
//		Where(astddl.Col("deleted_at").IsNull()).
//		Build()
//
//	sql, err := postgres.New().CreateIndex(stmt)
//	// CREATE UNIQUE INDEX "idx_users_email" ON "users" ("email") WHERE "deleted_at" IS NULL
//
// # Dialects
//
// Available dialects: postgres, sqlite, mariadb, mssql. Each dialect rejects
// constructs it cannot express with an UnsupportedFeatureError instead of
// emitting SQL the database would refuse.
//
// # Dialect Operators
//
// Expressions share one type. Dialect packages add operators to any expression
// through an extension wrapper:
//
//	sqlite.Ext(astddl.Col("name")).Glob("a*")          // "name" GLOB 'a*'
//	postgres.Ext(astddl.Col("tags")).Contains(tags)    // "tags" @> ...
//
// Rendering an operator with a dialect that does not know it fails.
//
// # Schema-Validated Usage
//
// An Instance built from a DBML schema checks table and column references:
//
//	instance, err := astddl.NewFromDBML(project)
//	users := instance.T("users") // panics if users is not in the schema
package astddl

import (
	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

// IndexCreateStatement describes CREATE INDEX and inline table index constraints.
type IndexCreateStatement = types.IndexCreateStatement

// IndexDropStatement describes DROP INDEX.
type IndexDropStatement = types.IndexDropStatement

// IndexColumn is one key of an index: a TableColumn or an ExprColumn.
type IndexColumn = types.IndexColumn

// TableColumn is an index key over a plain column.
type TableColumn = types.TableColumn

// ExprColumn is an index key over an expression. No dialect renders it.
type ExprColumn = types.ExprColumn

// IndexType names the index access method.
type IndexType = types.IndexType

// Re-export index types for public API.
const (
	BTree        = types.BTree
	Hash         = types.Hash
	FullText     = types.FullText
	Spatial      = types.Spatial
	GIN          = types.GIN
	GiST         = types.GiST
	BRIN         = types.BRIN
	SPGiST       = types.SPGiST
	Clustered    = types.Clustered
	NonClustered = types.NonClustered
)

// TableRef identifies a table, optionally schema-qualified.
type TableRef = types.TableRef

// Direction represents index key order.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// Expr is the shared expression type.
type Expr = types.Expr

// ExprTrait is the base expression capability extended by dialect packages.
type ExprTrait = types.ExprTrait

// BinOper is a binary operator tag.
type BinOper = types.BinOper

// Operator is a binary operator understood by every dialect.
type Operator = types.Operator

// Re-export shared operators for public API.
const (
	EQ      = types.EQ
	NE      = types.NE
	GT      = types.GT
	GE      = types.GE
	LT      = types.LT
	LE      = types.LE
	IN      = types.IN
	NotIn   = types.NotIn
	LIKE    = types.LIKE
	NotLike = types.NotLike
	Is      = types.Is
	IsNot   = types.IsNot
	AndOp   = types.AndOp
	OrOp    = types.OrOp
	Add     = types.Add
	Sub     = types.Sub
	Mul     = types.Mul
	Div     = types.Div
	Mod     = types.Mod
)

// ConditionItem is a predicate: an Expr or a ConditionGroup.
type ConditionItem = types.ConditionItem

// ConditionGroup combines predicates with AND or OR.
type ConditionGroup = types.ConditionGroup

// LogicOperator represents how grouped conditions are combined.
type LogicOperator = types.LogicOperator

// Re-export logic operators for public API.
const (
	AND = types.AND
	OR  = types.OR
)

// Capabilities describes the index features a dialect supports.
type Capabilities = render.Capabilities

// UnsupportedFeatureError indicates a construct the dialect cannot express.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// SQLWriter is the sink accepted by streaming render methods.
type SQLWriter = render.SQLWriter

// Sentinel errors returned by renderers.
var (
	ErrNoColumns              = render.ErrNoColumns
	ErrUnsupportedIndexColumn = render.ErrUnsupportedIndexColumn
	ErrMissingName            = render.ErrMissingName
	ErrMissingTable           = render.ErrMissingTable
	ErrInvalidOrder           = render.ErrInvalidOrder
)
