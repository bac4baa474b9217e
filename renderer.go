package astddl

import "github.com/zoobzio/astddl/internal/types"

// Renderer defines the interface for SQL dialect-specific index rendering.
// The postgres, sqlite, mariadb and mssql packages each provide one.
type Renderer interface {
	// Dialect returns the dialect name.
	Dialect() string

	// CreateIndex renders a CREATE INDEX statement.
	CreateIndex(stmt *types.IndexCreateStatement) (string, error)

	// WriteCreateIndex streams a CREATE INDEX statement into w.
	WriteCreateIndex(w SQLWriter, stmt *types.IndexCreateStatement) error

	// TableIndex renders the index as a clause of CREATE TABLE.
	TableIndex(stmt *types.IndexCreateStatement) (string, error)

	// DropIndex renders a DROP INDEX statement.
	DropIndex(stmt *types.IndexDropStatement) (string, error)

	// Condition renders a predicate with the dialect's quoting and operators.
	Condition(cond types.ConditionItem) (string, error)

	// Capabilities reports the index features the dialect supports.
	Capabilities() Capabilities
}
