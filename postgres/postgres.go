// Package postgres provides the PostgreSQL dialect renderer for astddl.
package postgres

import (
	"encoding/hex"
	"fmt"

	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

const dialect = "postgres"

// Renderer implements the PostgreSQL dialect renderer.
type Renderer struct {
	render.IndexDefaults
}

var _ render.IndexBuilder = (*Renderer)(nil)

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Dialect returns the dialect name.
func (r *Renderer) Dialect() string {
	return dialect
}

// Quote returns the PostgreSQL identifier quotes.
func (r *Renderer) Quote() render.Quote {
	return render.DoubleQuote
}

// CreateIndex renders a CREATE INDEX statement.
func (r *Renderer) CreateIndex(stmt *types.IndexCreateStatement) (string, error) {
	return render.String(func(w render.SQLWriter) error {
		return render.CreateIndex(r, stmt, w)
	})
}

// WriteCreateIndex streams a CREATE INDEX statement into w.
func (r *Renderer) WriteCreateIndex(w render.SQLWriter, stmt *types.IndexCreateStatement) error {
	return render.CreateIndex(r, stmt, w)
}

// TableIndex renders an index constraint for use inside CREATE TABLE.
func (r *Renderer) TableIndex(stmt *types.IndexCreateStatement) (string, error) {
	return render.String(func(w render.SQLWriter) error {
		return render.TableIndex(r, stmt, w)
	})
}

// DropIndex renders a DROP INDEX statement.
func (r *Renderer) DropIndex(stmt *types.IndexDropStatement) (string, error) {
	return render.String(func(w render.SQLWriter) error {
		return render.DropIndex(r, stmt, w)
	})
}

// Condition renders a predicate tree with PostgreSQL quoting and operators.
func (r *Renderer) Condition(cond types.ConditionItem) (string, error) {
	return render.String(func(w render.SQLWriter) error {
		return r.expr().Condition(cond, w)
	})
}

// RenderTableIndexExpression uses the common inline form followed by the
// constraint's INCLUDE list:
//
//	[CONSTRAINT name] {PRIMARY KEY|UNIQUE [NULLS NOT DISTINCT]} (columns) [INCLUDE (columns)]
func (r *Renderer) RenderTableIndexExpression(stmt *types.IndexCreateStatement, w render.SQLWriter) error {
	if err := r.validateInline(stmt); err != nil {
		return err
	}
	if err := render.TableIndexExpression(r, stmt, w); err != nil {
		return err
	}
	if len(stmt.Include) > 0 {
		w.WriteString(" INCLUDE ")
		render.NameList(r.Quote(), stmt.Include, w)
	}
	return nil
}

// validateInline rejects options that only CREATE INDEX can carry.
func (r *Renderer) validateInline(stmt *types.IndexCreateStatement) error {
	switch {
	case stmt.Type != "":
		return render.NewUnsupportedFeatureError(dialect, "index method "+string(stmt.Type)+" on table constraints",
			"create the index with CreateIndex")
	case !types.IsEmpty(stmt.Where):
		return render.NewUnsupportedFeatureError(dialect, "partial table constraints (WHERE)",
			"create a partial unique index with CreateIndex")
	case stmt.Concurrently:
		return render.NewUnsupportedFeatureError(dialect, "CONCURRENTLY on table constraints")
	case stmt.IfNotExists:
		return render.NewUnsupportedFeatureError(dialect, "IF NOT EXISTS on table constraints")
	case stmt.NullsNotDistinct && !stmt.Unique:
		return fmt.Errorf("%s: NULLS NOT DISTINCT requires a unique index", dialect)
	case len(stmt.Include) > 0 && !stmt.Primary && !stmt.Unique:
		return render.NewUnsupportedFeatureError(dialect, "INCLUDE on a plain table index",
			"INCLUDE applies to PRIMARY KEY and UNIQUE constraints")
	}
	return checkKeyPrefixes(stmt.Columns)
}

// RenderIndexCreateStatement writes
//
//	CREATE [UNIQUE] INDEX [CONCURRENTLY] [IF NOT EXISTS] [name] ON table [USING method]
//	(columns) [INCLUDE (columns)] [NULLS NOT DISTINCT] [WHERE predicate]
func (r *Renderer) RenderIndexCreateStatement(stmt *types.IndexCreateStatement, w render.SQLWriter) error {
	if err := r.validateCreate(stmt); err != nil {
		return err
	}

	w.WriteString("CREATE ")
	if stmt.Unique {
		w.WriteString("UNIQUE ")
	}
	w.WriteString("INDEX ")
	if stmt.Concurrently {
		w.WriteString("CONCURRENTLY ")
	}
	if stmt.IfNotExists {
		w.WriteString("IF NOT EXISTS ")
	}
	if stmt.Name != "" {
		w.WriteString(r.Quote().Ident(stmt.Name))
		w.WriteString(" ")
	}
	w.WriteString("ON ")
	if err := r.RenderTableRefIndexStmt(stmt.Table, w); err != nil {
		return err
	}
	if err := r.RenderIndexType(stmt.Type, w); err != nil {
		return err
	}
	w.WriteString(" ")
	if err := render.IndexColumns(r, stmt.Columns, w); err != nil {
		return err
	}
	if len(stmt.Include) > 0 {
		w.WriteString(" INCLUDE ")
		render.NameList(r.Quote(), stmt.Include, w)
	}
	if stmt.NullsNotDistinct {
		w.WriteString(" NULLS NOT DISTINCT")
	}
	return r.RenderFilter(stmt.Where, w)
}

func (r *Renderer) validateCreate(stmt *types.IndexCreateStatement) error {
	if stmt.Primary {
		return render.NewUnsupportedFeatureError(dialect, "PRIMARY KEY in CREATE INDEX",
			"declare the key inline with TableIndex")
	}
	if stmt.IfNotExists && stmt.Name == "" {
		return fmt.Errorf("%s: IF NOT EXISTS: %w", dialect, render.ErrMissingName)
	}
	if stmt.NullsNotDistinct && !stmt.Unique {
		return fmt.Errorf("%s: NULLS NOT DISTINCT requires a unique index", dialect)
	}
	if _, err := indexMethod(stmt.Type); err != nil {
		return err
	}
	return checkKeyPrefixes(stmt.Columns)
}

// RenderTableRefIndexStmt writes the schema-qualified table name. Aliases are
// meaningless in DDL and dropped.
func (r *Renderer) RenderTableRefIndexStmt(table types.TableRef, w render.SQLWriter) error {
	if table.IsZero() {
		return fmt.Errorf("%s: %w", dialect, render.ErrMissingTable)
	}
	w.WriteString(r.Quote().Qualified(table.Schema, table.Name))
	return nil
}

// RenderIndexDropStatement writes
//
//	DROP INDEX [CONCURRENTLY] [IF EXISTS] [schema.]name
//
// PostgreSQL indexes live in the schema of their table.
func (r *Renderer) RenderIndexDropStatement(stmt *types.IndexDropStatement, w render.SQLWriter) error {
	w.WriteString("DROP INDEX ")
	if stmt.Concurrently {
		w.WriteString("CONCURRENTLY ")
	}
	if stmt.IfExists {
		w.WriteString("IF EXISTS ")
	}
	w.WriteString(r.Quote().Qualified(stmt.Table.Schema, stmt.Name))
	return nil
}

// RenderIndexType writes " USING <method>".
func (r *Renderer) RenderIndexType(indexType types.IndexType, w render.SQLWriter) error {
	method, err := indexMethod(indexType)
	if err != nil {
		return err
	}
	if method != "" {
		w.WriteString(" USING ")
		w.WriteString(method)
	}
	return nil
}

// indexMethod maps an index type to a PostgreSQL access method.
func indexMethod(indexType types.IndexType) (string, error) {
	switch indexType {
	case "":
		return "", nil
	case types.FullText:
		return string(types.GIN), nil
	case types.Spatial:
		return string(types.GiST), nil
	case types.Clustered, types.NonClustered:
		return "", render.NewUnsupportedFeatureError(dialect, string(indexType)+" indexes",
			"use CLUSTER after creating the index")
	default:
		return string(indexType), nil
	}
}

// RenderIndexPrefix writes PRIMARY KEY or UNIQUE [NULLS NOT DISTINCT].
// Plain indexes have no prefix.
func (r *Renderer) RenderIndexPrefix(stmt *types.IndexCreateStatement, w render.SQLWriter) error {
	switch {
	case stmt.Primary:
		w.WriteString("PRIMARY KEY ")
	case stmt.Unique:
		w.WriteString("UNIQUE ")
		if stmt.NullsNotDistinct {
			w.WriteString("NULLS NOT DISTINCT ")
		}
	}
	return nil
}

// WriteColumnIndexPrefix rejects key lengths; PostgreSQL always indexes whole values.
func (r *Renderer) WriteColumnIndexPrefix(prefix *uint32, _ render.SQLWriter) error {
	if prefix != nil {
		return keyPrefixError()
	}
	return nil
}

// RenderFilter writes " WHERE <predicate>" for partial indexes.
func (r *Renderer) RenderFilter(cond types.ConditionItem, w render.SQLWriter) error {
	return render.Filter(r.expr(), cond, w)
}

func checkKeyPrefixes(cols []types.IndexColumn) error {
	for _, col := range cols {
		if tc, ok := col.(types.TableColumn); ok && tc.Prefix != nil {
			return keyPrefixError()
		}
	}
	return nil
}

func keyPrefixError() error {
	return render.NewUnsupportedFeatureError(dialect, "index key length prefix",
		"PostgreSQL indexes whole column values")
}

func (r *Renderer) expr() render.ExprRenderer {
	return render.ExprRenderer{
		Dialect:  dialect,
		Quote:    r.Quote(),
		Operator: renderOperator,
		Bytes: func(v []byte) string {
			return `'\x` + hex.EncodeToString(v) + `'::bytea`
		},
	}
}

func renderOperator(op types.BinOper) (string, error) {
	switch o := op.(type) {
	case types.Operator:
		return o.Symbol(), nil
	case BinOper:
		return o.Symbol(), nil
	default:
		return "", render.UnsupportedOperator(dialect, op)
	}
}

// Capabilities returns the index features supported by PostgreSQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		PartialIndex:      true,
		IndexMethod:       true,
		KeyLengthPrefix:   false,
		IfNotExists:       true,
		DropIfExists:      true,
		Concurrently:      true,
		IncludeColumns:    true,
		NullsNotDistinct:  true,
		DropScopedToTable: false,
		UnnamedIndex:      true,
	}
}
