// Package sqlite provides the SQLite dialect renderer for astddl.
package sqlite

import (
	"fmt"

	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

const dialect = "sqlite"

// Renderer implements the SQLite dialect renderer.
type Renderer struct {
	render.IndexDefaults
}

var _ render.IndexBuilder = (*Renderer)(nil)

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// Dialect returns the dialect name.
func (r *Renderer) Dialect() string {
	return dialect
}

// Quote returns the SQLite identifier quotes.
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

// Condition renders a predicate tree with SQLite quoting and operators.
func (r *Renderer) Condition(cond types.ConditionItem) (string, error) {
	return render.String(func(w render.SQLWriter) error {
		return r.expr().Condition(cond, w)
	})
}

// RenderTableIndexExpression uses the common inline form. Table constraints
// carry no method, INCLUDE list or predicate, so those are refused up front.
func (r *Renderer) RenderTableIndexExpression(stmt *types.IndexCreateStatement, w render.SQLWriter) error {
	if err := r.validateCommon(stmt); err != nil {
		return err
	}
	if stmt.IfNotExists {
		return render.NewUnsupportedFeatureError(dialect, "IF NOT EXISTS on table constraints")
	}
	if !types.IsEmpty(stmt.Where) {
		return render.NewUnsupportedFeatureError(dialect, "partial table constraints (WHERE)",
			"create a partial unique index with CreateIndex")
	}
	return render.TableIndexExpression(r, stmt, w)
}

// RenderIndexCreateStatement writes
//
//	CREATE [UNIQUE] INDEX [IF NOT EXISTS] [schema.]name ON table (columns) [WHERE predicate]
//
// SQLite attaches the schema to the index name; the table must not be qualified.
func (r *Renderer) RenderIndexCreateStatement(stmt *types.IndexCreateStatement, w render.SQLWriter) error {
	if err := r.validateCreate(stmt); err != nil {
		return err
	}

	w.WriteString("CREATE ")
	if stmt.Unique {
		w.WriteString("UNIQUE ")
	}
	w.WriteString("INDEX ")
	if stmt.IfNotExists {
		w.WriteString("IF NOT EXISTS ")
	}
	w.WriteString(r.Quote().Qualified(stmt.Table.Schema, stmt.Name))
	w.WriteString(" ON ")
	if err := r.RenderTableRefIndexStmt(stmt.Table, w); err != nil {
		return err
	}
	w.WriteString(" ")
	if err := render.IndexColumns(r, stmt.Columns, w); err != nil {
		return err
	}
	return r.RenderFilter(stmt.Where, w)
}

func (r *Renderer) validateCreate(stmt *types.IndexCreateStatement) error {
	if stmt.Name == "" {
		return fmt.Errorf("%s: %w", dialect, render.ErrMissingName)
	}
	if stmt.Primary {
		return render.NewUnsupportedFeatureError(dialect, "PRIMARY KEY in CREATE INDEX",
			"declare the key inline with TableIndex")
	}
	return r.validateCommon(stmt)
}

// validateCommon rejects what neither the inline nor the standalone form can express.
func (r *Renderer) validateCommon(stmt *types.IndexCreateStatement) error {
	if stmt.Type != "" {
		return render.NewUnsupportedFeatureError(dialect, "index method "+string(stmt.Type),
			"SQLite only builds B-tree indexes; use an FTS5 virtual table for full-text search")
	}
	if stmt.Concurrently {
		return render.NewUnsupportedFeatureError(dialect, "CONCURRENTLY")
	}
	if len(stmt.Include) > 0 {
		return render.NewUnsupportedFeatureError(dialect, "INCLUDE columns")
	}
	if stmt.NullsNotDistinct {
		return render.NewUnsupportedFeatureError(dialect, "NULLS NOT DISTINCT")
	}
	for _, col := range stmt.Columns {
		if tc, ok := col.(types.TableColumn); ok && tc.Prefix != nil {
			return keyPrefixError()
		}
	}
	return nil
}

// RenderTableRefIndexStmt writes the bare table name. The schema of an index
// statement goes on the index name instead.
func (r *Renderer) RenderTableRefIndexStmt(table types.TableRef, w render.SQLWriter) error {
	if table.IsZero() {
		return fmt.Errorf("%s: %w", dialect, render.ErrMissingTable)
	}
	w.WriteString(r.Quote().Ident(table.Name))
	return nil
}

// RenderIndexDropStatement writes
//
//	DROP INDEX [IF EXISTS] [schema.]name
func (r *Renderer) RenderIndexDropStatement(stmt *types.IndexDropStatement, w render.SQLWriter) error {
	if stmt.Concurrently {
		return render.NewUnsupportedFeatureError(dialect, "CONCURRENTLY")
	}
	w.WriteString("DROP INDEX ")
	if stmt.IfExists {
		w.WriteString("IF EXISTS ")
	}
	w.WriteString(r.Quote().Qualified(stmt.Table.Schema, stmt.Name))
	return nil
}

// RenderIndexPrefix writes PRIMARY KEY or UNIQUE. Plain indexes have no prefix.
func (r *Renderer) RenderIndexPrefix(stmt *types.IndexCreateStatement, w render.SQLWriter) error {
	switch {
	case stmt.Primary:
		w.WriteString("PRIMARY KEY ")
	case stmt.Unique:
		w.WriteString("UNIQUE ")
	}
	return nil
}

// WriteColumnIndexPrefix rejects key lengths.
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

func keyPrefixError() error {
	return render.NewUnsupportedFeatureError(dialect, "index key length prefix",
		"SQLite indexes whole column values")
}

func (r *Renderer) expr() render.ExprRenderer {
	return render.ExprRenderer{
		Dialect:  dialect,
		Quote:    r.Quote(),
		Operator: renderOperator,
		Bool: func(v bool) string {
			if v {
				return "1"
			}
			return "0"
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

// Capabilities returns the index features supported by SQLite.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		PartialIndex:      true,
		IndexMethod:       false,
		KeyLengthPrefix:   false,
		IfNotExists:       true,
		DropIfExists:      true,
		Concurrently:      false,
		IncludeColumns:    false,
		NullsNotDistinct:  false,
		DropScopedToTable: false,
		UnnamedIndex:      false,
	}
}
