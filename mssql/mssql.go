// Package mssql provides the SQL Server dialect renderer for astddl.
package mssql

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

const dialect = "mssql"

// Renderer implements the SQL Server dialect renderer.
type Renderer struct {
	render.IndexDefaults
}

var _ render.IndexBuilder = (*Renderer)(nil)

// New creates a new SQL Server renderer.
func New() *Renderer {
	return &Renderer{}
}

// Dialect returns the dialect name.
func (r *Renderer) Dialect() string {
	return dialect
}

// Quote returns the SQL Server identifier quotes.
func (r *Renderer) Quote() render.Quote {
	return render.Brackets
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

// TableIndex renders an index definition for use inside CREATE TABLE.
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

// Condition renders a predicate tree with SQL Server quoting.
func (r *Renderer) Condition(cond types.ConditionItem) (string, error) {
	return render.String(func(w render.SQLWriter) error {
		return r.expr().Condition(cond, w)
	})
}

// RenderTableIndexExpression writes PRIMARY KEY and UNIQUE constraints in the
// common form. Plain indexes use the inline INDEX clause:
//
//	INDEX name [CLUSTERED|NONCLUSTERED] (columns) [INCLUDE (columns)] [WHERE predicate]
func (r *Renderer) RenderTableIndexExpression(stmt *types.IndexCreateStatement, w render.SQLWriter) error {
	if err := r.validateCommon(stmt); err != nil {
		return err
	}
	if stmt.IfNotExists {
		return render.NewUnsupportedFeatureError(dialect, "IF NOT EXISTS on table indexes")
	}

	if stmt.Primary || stmt.Unique {
		if !types.IsEmpty(stmt.Where) {
			return render.NewUnsupportedFeatureError(dialect, "filtered constraints",
				"create a filtered unique index with CreateIndex")
		}
		if len(stmt.Include) > 0 {
			return render.NewUnsupportedFeatureError(dialect, "INCLUDE on PRIMARY KEY or UNIQUE constraints",
				"create a unique index with CreateIndex")
		}
		return render.TableIndexExpression(r, stmt, w)
	}

	if stmt.Name == "" {
		return fmt.Errorf("%s: inline INDEX: %w", dialect, render.ErrMissingName)
	}
	w.WriteString("INDEX ")
	w.WriteString(r.Quote().Ident(stmt.Name))
	w.WriteString(" ")
	if err := r.RenderIndexType(stmt.Type, w); err != nil {
		return err
	}
	if err := render.IndexColumns(r, stmt.Columns, w); err != nil {
		return err
	}
	if len(stmt.Include) > 0 {
		w.WriteString(" INCLUDE ")
		render.NameList(r.Quote(), stmt.Include, w)
	}
	return r.RenderFilter(stmt.Where, w)
}

// RenderIndexCreateStatement writes
//
//	CREATE [UNIQUE] [CLUSTERED|NONCLUSTERED] INDEX name ON table (columns)
//	[INCLUDE (columns)] [WHERE predicate]
func (r *Renderer) RenderIndexCreateStatement(stmt *types.IndexCreateStatement, w render.SQLWriter) error {
	if stmt.Name == "" {
		return fmt.Errorf("%s: %w", dialect, render.ErrMissingName)
	}
	if stmt.Primary {
		return render.NewUnsupportedFeatureError(dialect, "PRIMARY KEY in CREATE INDEX",
			"declare the key inline with TableIndex")
	}
	if stmt.IfNotExists {
		return render.NewUnsupportedFeatureError(dialect, "CREATE INDEX IF NOT EXISTS",
			"guard the statement with an IF NOT EXISTS query on sys.indexes")
	}
	if err := r.validateCommon(stmt); err != nil {
		return err
	}

	w.WriteString("CREATE ")
	if stmt.Unique {
		w.WriteString("UNIQUE ")
	}
	if err := r.RenderIndexType(stmt.Type, w); err != nil {
		return err
	}
	w.WriteString("INDEX ")
	w.WriteString(r.Quote().Ident(stmt.Name))
	w.WriteString(" ON ")
	if err := r.RenderTableRefIndexStmt(stmt.Table, w); err != nil {
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
	return r.RenderFilter(stmt.Where, w)
}

func (r *Renderer) validateCommon(stmt *types.IndexCreateStatement) error {
	if stmt.Concurrently {
		return render.NewUnsupportedFeatureError(dialect, "CONCURRENTLY",
			"use WITH (ONLINE = ON) on editions that support it")
	}
	if stmt.NullsNotDistinct {
		return render.NewUnsupportedFeatureError(dialect, "NULLS NOT DISTINCT")
	}
	if _, err := indexKind(stmt.Type); err != nil {
		return err
	}
	for _, col := range stmt.Columns {
		if tc, ok := col.(types.TableColumn); ok && tc.Prefix != nil {
			return keyPrefixError()
		}
	}
	return nil
}

// RenderTableRefIndexStmt writes the schema-qualified table name.
func (r *Renderer) RenderTableRefIndexStmt(table types.TableRef, w render.SQLWriter) error {
	if table.IsZero() {
		return fmt.Errorf("%s: %w", dialect, render.ErrMissingTable)
	}
	w.WriteString(r.Quote().Qualified(table.Schema, table.Name))
	return nil
}

// RenderIndexDropStatement writes
//
//	DROP INDEX [IF EXISTS] name ON table
func (r *Renderer) RenderIndexDropStatement(stmt *types.IndexDropStatement, w render.SQLWriter) error {
	if stmt.Table.IsZero() {
		return fmt.Errorf("%s: DROP INDEX: %w", dialect, render.ErrMissingTable)
	}
	if stmt.Concurrently {
		return render.NewUnsupportedFeatureError(dialect, "CONCURRENTLY")
	}

	w.WriteString("DROP INDEX ")
	if stmt.IfExists {
		w.WriteString("IF EXISTS ")
	}
	w.WriteString(r.Quote().Ident(stmt.Name))
	w.WriteString(" ON ")
	return r.RenderTableRefIndexStmt(stmt.Table, w)
}

// RenderIndexType writes "CLUSTERED " or "NONCLUSTERED ". SQL Server places
// the storage kind ahead of the column list rather than in a USING clause.
func (r *Renderer) RenderIndexType(indexType types.IndexType, w render.SQLWriter) error {
	kind, err := indexKind(indexType)
	if err != nil {
		return err
	}
	if kind != "" {
		w.WriteString(kind)
		w.WriteString(" ")
	}
	return nil
}

func indexKind(indexType types.IndexType) (string, error) {
	switch indexType {
	case "", types.BTree:
		return "", nil
	case types.Clustered:
		return "CLUSTERED", nil
	case types.NonClustered:
		return "NONCLUSTERED", nil
	default:
		return "", render.NewUnsupportedFeatureError(dialect, "index method "+string(indexType),
			"SQL Server indexes are CLUSTERED or NONCLUSTERED")
	}
}

// RenderIndexPrefix writes PRIMARY KEY or UNIQUE followed by the storage kind.
func (r *Renderer) RenderIndexPrefix(stmt *types.IndexCreateStatement, w render.SQLWriter) error {
	switch {
	case stmt.Primary:
		w.WriteString("PRIMARY KEY ")
	case stmt.Unique:
		w.WriteString("UNIQUE ")
	default:
		return nil
	}
	return r.RenderIndexType(stmt.Type, w)
}

// WriteColumnIndexPrefix rejects key lengths.
func (r *Renderer) WriteColumnIndexPrefix(prefix *uint32, _ render.SQLWriter) error {
	if prefix != nil {
		return keyPrefixError()
	}
	return nil
}

// RenderFilter writes " WHERE <predicate>" for filtered indexes.
func (r *Renderer) RenderFilter(cond types.ConditionItem, w render.SQLWriter) error {
	return render.Filter(r.expr(), cond, w)
}

func keyPrefixError() error {
	return render.NewUnsupportedFeatureError(dialect, "index key length prefix",
		"SQL Server indexes whole column values")
}

func (r *Renderer) expr() render.ExprRenderer {
	return render.ExprRenderer{
		Dialect: dialect,
		Quote:   r.Quote(),
		Bool: func(v bool) string {
			if v {
				return "1"
			}
			return "0"
		},
		Bytes: func(v []byte) string {
			return "0x" + strings.ToUpper(hex.EncodeToString(v))
		},
	}
}

// Capabilities returns the index features supported by SQL Server.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		PartialIndex:      true,
		IndexMethod:       true,
		KeyLengthPrefix:   false,
		IfNotExists:       false,
		DropIfExists:      true,
		Concurrently:      false,
		IncludeColumns:    true,
		NullsNotDistinct:  false,
		DropScopedToTable: true,
		UnnamedIndex:      false,
	}
}
