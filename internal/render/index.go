package render

import (
	"fmt"
	"strconv"

	"github.com/zoobzio/astddl/internal/types"
)

// IndexBuilder renders index DDL for one dialect.
//
// Dialects embed IndexDefaults for the optional hooks and must implement the rest.
// RenderIndexPrefix, RenderIndexCreateStatement, RenderTableRefIndexStmt and
// RenderIndexDropStatement have no default: a dialect that forgets one does not
// satisfy the interface. Dialects whose inline index syntax matches the common form
// implement RenderTableIndexExpression by calling TableIndexExpression.
type IndexBuilder interface {
	// Dialect returns the dialect name used in error messages.
	Dialect() string

	// Quote returns the identifier quote characters.
	Quote() Quote

	// RenderTableIndexExpression writes an index as part of a table definition,
	// e.g. CONSTRAINT "uq" UNIQUE ("email").
	RenderTableIndexExpression(stmt *types.IndexCreateStatement, w SQLWriter) error

	// RenderIndexCreateStatement writes a complete CREATE INDEX statement.
	RenderIndexCreateStatement(stmt *types.IndexCreateStatement, w SQLWriter) error

	// RenderTableRefIndexStmt writes the table reference of an index statement.
	RenderTableRefIndexStmt(table types.TableRef, w SQLWriter) error

	// RenderIndexDropStatement writes a complete DROP INDEX statement.
	RenderIndexDropStatement(stmt *types.IndexDropStatement, w SQLWriter) error

	// RenderIndexType writes the index method clause.
	RenderIndexType(indexType types.IndexType, w SQLWriter) error

	// RenderIndexPrefix writes the keywords ahead of the column list (UNIQUE, PRIMARY KEY, ...).
	RenderIndexPrefix(stmt *types.IndexCreateStatement, w SQLWriter) error

	// WriteColumnIndexPrefix writes the key-length prefix that follows a column name.
	WriteColumnIndexPrefix(prefix *uint32, w SQLWriter) error

	// RenderFilter writes the WHERE clause of a partial index.
	RenderFilter(cond types.ConditionItem, w SQLWriter) error
}

// IndexDefaults supplies the optional IndexBuilder hooks.
type IndexDefaults struct{}

// RenderIndexType writes nothing.
func (IndexDefaults) RenderIndexType(_ types.IndexType, _ SQLWriter) error {
	return nil
}

// WriteColumnIndexPrefix writes " (n)" when a key length is set.
func (IndexDefaults) WriteColumnIndexPrefix(prefix *uint32, w SQLWriter) error {
	if prefix != nil {
		w.WriteString(" (")
		w.WriteString(strconv.FormatUint(uint64(*prefix), 10))
		w.WriteString(")")
	}
	return nil
}

// RenderFilter writes nothing. Dialects without partial indexes keep this.
func (IndexDefaults) RenderFilter(_ types.ConditionItem, _ SQLWriter) error {
	return nil
}

// TableIndexExpression is the common inline index form:
//
//	[CONSTRAINT <name> ]<prefix>(<columns>)[<filter>]
func TableIndexExpression(b IndexBuilder, stmt *types.IndexCreateStatement, w SQLWriter) error {
	if stmt.Name != "" {
		w.WriteString("CONSTRAINT ")
		w.WriteString(b.Quote().Ident(stmt.Name))
		w.WriteString(" ")
	}

	if err := b.RenderIndexPrefix(stmt, w); err != nil {
		return err
	}

	if err := IndexColumns(b, stmt.Columns, w); err != nil {
		return err
	}

	return b.RenderFilter(stmt.Where, w)
}

// IndexColumnWithTableColumn writes one plain column key: the quoted name,
// the key-length prefix and an explicit order when one was requested.
func IndexColumnWithTableColumn(b IndexBuilder, col types.TableColumn, w SQLWriter) error {
	w.WriteString(b.Quote().Ident(col.Name))

	if err := b.WriteColumnIndexPrefix(col.Prefix, w); err != nil {
		return err
	}

	switch col.Order {
	case "":
	case types.ASC:
		w.WriteString(" ASC")
	case types.DESC:
		w.WriteString(" DESC")
	default:
		return invalidOrder(b.Dialect(), col)
	}
	return nil
}

// IndexColumns writes the parenthesized key list. An empty list or an expression
// key aborts the render.
func IndexColumns(b IndexBuilder, cols []types.IndexColumn, w SQLWriter) error {
	if len(cols) == 0 {
		return fmt.Errorf("%s: %w", b.Dialect(), ErrNoColumns)
	}

	w.WriteString("(")
	for i, col := range cols {
		if i > 0 {
			w.WriteString(", ")
		}
		switch c := col.(type) {
		case types.TableColumn:
			if err := IndexColumnWithTableColumn(b, c, w); err != nil {
				return err
			}
		case types.ExprColumn:
			return unsupportedIndexColumn(b.Dialect())
		default:
			return fmt.Errorf("%s: unknown index column type: %T", b.Dialect(), c)
		}
	}
	w.WriteString(")")
	return nil
}

// ValidateIndexColumns runs the key list checks of IndexColumns without writing,
// so entry points can reject a statement before any text reaches the writer.
func ValidateIndexColumns(dialect string, cols []types.IndexColumn) error {
	if len(cols) == 0 {
		return fmt.Errorf("%s: %w", dialect, ErrNoColumns)
	}
	for _, col := range cols {
		switch c := col.(type) {
		case types.TableColumn:
			if c.Name == "" {
				return fmt.Errorf("%s: index column name is required", dialect)
			}
			switch c.Order {
			case "", types.ASC, types.DESC:
			default:
				return invalidOrder(dialect, c)
			}
		case types.ExprColumn:
			return unsupportedIndexColumn(dialect)
		default:
			return fmt.Errorf("%s: unknown index column type: %T", dialect, c)
		}
	}
	return nil
}

func invalidOrder(dialect string, col types.TableColumn) error {
	return fmt.Errorf("%s: %w %q on column %q", dialect, ErrInvalidOrder, col.Order, col.Name)
}

// NameList writes a parenthesized list of quoted identifiers, as used by INCLUDE.
func NameList(q Quote, names []string, w SQLWriter) {
	w.WriteString("(")
	for i, name := range names {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteString(q.Ident(name))
	}
	w.WriteString(")")
}

// Filter writes " WHERE <predicate>" for a non-empty condition.
// Dialects with partial indexes implement RenderFilter with it.
func Filter(er ExprRenderer, cond types.ConditionItem, w SQLWriter) error {
	if types.IsEmpty(cond) {
		return nil
	}
	w.WriteString(" WHERE ")
	return er.Condition(cond, w)
}

func unsupportedIndexColumn(dialect string) error {
	return UnsupportedFeatureError{
		Err:     ErrUnsupportedIndexColumn,
		Dialect: dialect,
		Feature: "expression index columns",
		Hint:    "index a generated column instead",
	}
}
