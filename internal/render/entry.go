package render

import (
	"fmt"

	"github.com/zoobzio/astddl/internal/types"
)

// CreateIndex checks the statement and renders it with the dialect's
// RenderIndexCreateStatement. Malformed statements are rejected before any write.
func CreateIndex(b IndexBuilder, stmt *types.IndexCreateStatement, w SQLWriter) error {
	if stmt == nil {
		return fmt.Errorf("%s: nil index statement", b.Dialect())
	}
	if stmt.Table.IsZero() {
		return fmt.Errorf("%s: %w", b.Dialect(), ErrMissingTable)
	}
	if err := ValidateIndexColumns(b.Dialect(), stmt.Columns); err != nil {
		return err
	}
	return Run(w, func(w SQLWriter) error {
		return b.RenderIndexCreateStatement(stmt, w)
	})
}

// TableIndex renders the inline form of an index, for use inside CREATE TABLE.
func TableIndex(b IndexBuilder, stmt *types.IndexCreateStatement, w SQLWriter) error {
	if stmt == nil {
		return fmt.Errorf("%s: nil index statement", b.Dialect())
	}
	if err := ValidateIndexColumns(b.Dialect(), stmt.Columns); err != nil {
		return err
	}
	return Run(w, func(w SQLWriter) error {
		return b.RenderTableIndexExpression(stmt, w)
	})
}

// DropIndex checks the statement and renders it with the dialect's
// RenderIndexDropStatement.
func DropIndex(b IndexBuilder, stmt *types.IndexDropStatement, w SQLWriter) error {
	if stmt == nil {
		return fmt.Errorf("%s: nil drop statement", b.Dialect())
	}
	if stmt.Name == "" {
		return fmt.Errorf("%s: %w", b.Dialect(), ErrMissingName)
	}
	return Run(w, func(w SQLWriter) error {
		return b.RenderIndexDropStatement(stmt, w)
	})
}
