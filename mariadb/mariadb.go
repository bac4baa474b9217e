// Package mariadb provides the MariaDB/MySQL dialect renderer for astddl.
package mariadb

import (
	"fmt"
	"strings"

	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

const dialect = "mariadb"

// Renderer implements the MariaDB dialect renderer. The generated DDL is also
// accepted by MySQL, except IF [NOT] EXISTS on indexes which is MariaDB only.
type Renderer struct {
	render.IndexDefaults
}

var _ render.IndexBuilder = (*Renderer)(nil)

// New creates a new MariaDB renderer.
func New() *Renderer {
	return &Renderer{}
}

// Dialect returns the dialect name.
func (r *Renderer) Dialect() string {
	return dialect
}

// Quote returns the MariaDB identifier quotes.
func (r *Renderer) Quote() render.Quote {
	return render.Backtick
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

// Condition renders a predicate tree with MariaDB quoting and operators.
func (r *Renderer) Condition(cond types.ConditionItem) (string, error) {
	return render.String(func(w render.SQLWriter) error {
		return r.expr().Condition(cond, w)
	})
}

// RenderTableIndexExpression writes the MariaDB inline form:
//
//	[PRIMARY |UNIQUE |FULLTEXT |SPATIAL ]KEY [name ](columns)[ USING method]
//
// MariaDB has no CONSTRAINT-named plain keys and no partial indexes.
func (r *Renderer) RenderTableIndexExpression(stmt *types.IndexCreateStatement, w render.SQLWriter) error {
	if err := r.validateCommon(stmt); err != nil {
		return err
	}

	if err := r.RenderIndexPrefix(stmt, w); err != nil {
		return err
	}
	w.WriteString("KEY ")
	if stmt.Name != "" && !stmt.Primary {
		w.WriteString(r.Quote().Ident(stmt.Name))
		w.WriteString(" ")
	}
	if err := render.IndexColumns(r, stmt.Columns, w); err != nil {
		return err
	}
	return r.RenderIndexType(stmt.Type, w)
}

// RenderIndexCreateStatement writes
//
//	CREATE [UNIQUE|FULLTEXT|SPATIAL] INDEX [IF NOT EXISTS] name ON table (columns) [USING method]
func (r *Renderer) RenderIndexCreateStatement(stmt *types.IndexCreateStatement, w render.SQLWriter) error {
	if stmt.Name == "" {
		return fmt.Errorf("%s: %w", dialect, render.ErrMissingName)
	}
	if stmt.Primary {
		return render.NewUnsupportedFeatureError(dialect, "PRIMARY KEY in CREATE INDEX",
			"declare the key inline with TableIndex")
	}
	if err := r.validateCommon(stmt); err != nil {
		return err
	}

	w.WriteString("CREATE ")
	if err := r.RenderIndexPrefix(stmt, w); err != nil {
		return err
	}
	w.WriteString("INDEX ")
	if stmt.IfNotExists {
		w.WriteString("IF NOT EXISTS ")
	}
	w.WriteString(r.Quote().Ident(stmt.Name))
	w.WriteString(" ON ")
	if err := r.RenderTableRefIndexStmt(stmt.Table, w); err != nil {
		return err
	}
	w.WriteString(" ")
	if err := render.IndexColumns(r, stmt.Columns, w); err != nil {
		return err
	}
	return r.RenderIndexType(stmt.Type, w)
}

// validateCommon rejects what neither the inline nor the standalone form can express.
// A WHERE predicate is refused here rather than silently dropped by the filter hook.
func (r *Renderer) validateCommon(stmt *types.IndexCreateStatement) error {
	if !types.IsEmpty(stmt.Where) {
		return render.NewUnsupportedFeatureError(dialect, "partial indexes (WHERE)",
			"index a generated column that is NULL for excluded rows")
	}
	if stmt.Concurrently {
		return render.NewUnsupportedFeatureError(dialect, "CONCURRENTLY",
			"MariaDB builds indexes online by default")
	}
	if len(stmt.Include) > 0 {
		return render.NewUnsupportedFeatureError(dialect, "INCLUDE columns")
	}
	if stmt.NullsNotDistinct {
		return render.NewUnsupportedFeatureError(dialect, "NULLS NOT DISTINCT")
	}
	if (stmt.Unique || stmt.Primary) && (stmt.Type == types.FullText || stmt.Type == types.Spatial) {
		return render.NewUnsupportedFeatureError(dialect, "UNIQUE or PRIMARY "+string(stmt.Type)+" keys",
			"FULLTEXT and SPATIAL keys cannot enforce uniqueness")
	}
	_, err := indexMethod(stmt.Type)
	return err
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
//
// Index names are scoped to their table, so the table is mandatory.
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

// RenderIndexType writes " USING BTREE|HASH". FULLTEXT and SPATIAL are
// written by the prefix hook instead.
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

func indexMethod(indexType types.IndexType) (string, error) {
	switch indexType {
	case "", types.FullText, types.Spatial:
		return "", nil
	case types.BTree, types.Hash:
		return string(indexType), nil
	default:
		if strings.EqualFold(string(indexType), "RTREE") {
			return "RTREE", nil
		}
		return "", render.NewUnsupportedFeatureError(dialect, "index method "+string(indexType),
			"MariaDB supports BTREE, HASH and RTREE")
	}
}

// RenderIndexPrefix writes PRIMARY, UNIQUE, FULLTEXT or SPATIAL.
func (r *Renderer) RenderIndexPrefix(stmt *types.IndexCreateStatement, w render.SQLWriter) error {
	if stmt.Primary {
		w.WriteString("PRIMARY ")
	} else if stmt.Unique {
		w.WriteString("UNIQUE ")
	}
	switch stmt.Type {
	case types.FullText:
		w.WriteString("FULLTEXT ")
	case types.Spatial:
		w.WriteString("SPATIAL ")
	}
	return nil
}

func (r *Renderer) expr() render.ExprRenderer {
	return render.ExprRenderer{
		Dialect:  dialect,
		Quote:    r.Quote(),
		Operator: renderOperator,
		String:   quoteString,
	}
}

// quoteString escapes backslashes too, since MariaDB treats them as escapes
// unless NO_BACKSLASH_ESCAPES is set.
func quoteString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return render.QuoteString(s)
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

// Capabilities returns the index features supported by MariaDB.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		PartialIndex:      false,
		IndexMethod:       true,
		KeyLengthPrefix:   true,
		IfNotExists:       true,
		DropIfExists:      true,
		Concurrently:      false,
		IncludeColumns:    false,
		NullsNotDistinct:  false,
		DropScopedToTable: true,
		UnnamedIndex:      false,
	}
}
