package astddl

import (
	"fmt"

	"github.com/zoobzio/astddl/internal/types"
)

// and creates an AND condition group (internal helper for builder).
func and(conditions ...types.ConditionItem) types.ConditionGroup {
	return types.ConditionGroup{
		Logic:      types.AND,
		Conditions: conditions,
	}
}

// Builder provides a fluent API for constructing CREATE INDEX statements.
// The first error is kept and every later call is a no-op.
type Builder struct {
	stmt *types.IndexCreateStatement
	err  error
}

// CreateIndex creates a new index builder for table t.
func CreateIndex(t types.TableRef) *Builder {
	return &Builder{
		stmt: &types.IndexCreateStatement{Table: t},
	}
}

// GetStatement returns the statement under construction.
func (b *Builder) GetStatement() *types.IndexCreateStatement {
	return b.stmt
}

// GetError returns the internal error.
func (b *Builder) GetError() error {
	return b.err
}

// Name sets the index name.
func (b *Builder) Name(name string) *Builder {
	if b.err != nil {
		return b
	}
	if !isValidSQLIdentifier(name) {
		b.err = fmt.Errorf("invalid index name: %q", name)
		return b
	}
	b.stmt.Name = name
	return b
}

// Columns appends ascending-by-default keys over plain columns.
func (b *Builder) Columns(names ...string) *Builder {
	for _, name := range names {
		b.Key(types.TableColumn{Name: name})
	}
	return b
}

// Desc appends a descending key.
func (b *Builder) Desc(name string) *Builder {
	return b.Key(types.TableColumn{Name: name, Order: types.DESC})
}

// Prefixed appends a key indexing only the first n characters of the column.
func (b *Builder) Prefixed(name string, n uint32) *Builder {
	return b.Key(types.TableColumn{Name: name, Prefix: &n})
}

// Key appends an arbitrary index key.
func (b *Builder) Key(col types.IndexColumn) *Builder {
	if b.err != nil {
		return b
	}
	if tc, ok := col.(types.TableColumn); ok && !isValidSQLIdentifier(tc.Name) {
		b.err = fmt.Errorf("invalid index column: %q", tc.Name)
		return b
	}
	b.stmt.Columns = append(b.stmt.Columns, col)
	return b
}

// Unique marks the index unique.
func (b *Builder) Unique() *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.Unique = true
	return b
}

// Primary marks the index as the primary key. Only the inline form renders it.
func (b *Builder) Primary() *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.Primary = true
	return b
}

// Using sets the index method.
func (b *Builder) Using(t types.IndexType) *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.Type = t
	return b
}

// IfNotExists adds IF NOT EXISTS.
func (b *Builder) IfNotExists() *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.IfNotExists = true
	return b
}

// Concurrently builds the index without blocking writes (PostgreSQL).
func (b *Builder) Concurrently() *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.Concurrently = true
	return b
}

// NullsNotDistinct treats NULLs as equal in a unique index (PostgreSQL 15+).
func (b *Builder) NullsNotDistinct() *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.NullsNotDistinct = true
	return b
}

// Include adds covering columns.
func (b *Builder) Include(names ...string) *Builder {
	if b.err != nil {
		return b
	}
	for _, name := range names {
		if !isValidSQLIdentifier(name) {
			b.err = fmt.Errorf("invalid include column: %q", name)
			return b
		}
	}
	b.stmt.Include = append(b.stmt.Include, names...)
	return b
}

// Where sets or adds the partial index predicate.
func (b *Builder) Where(condition types.ConditionItem) *Builder {
	if b.err != nil {
		return b
	}

	if b.stmt.Where == nil {
		b.stmt.Where = condition
	} else {
		// If there's already a predicate, combine with AND
		b.stmt.Where = and(b.stmt.Where, condition)
	}

	return b
}

// Build returns the statement or the first builder error.
func (b *Builder) Build() (*types.IndexCreateStatement, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.stmt.Table.IsZero() {
		return nil, ErrMissingTable
	}
	if len(b.stmt.Columns) == 0 {
		return nil, ErrNoColumns
	}
	return b.stmt, nil
}

// MustBuild returns the statement or panics.
func (b *Builder) MustBuild() *types.IndexCreateStatement {
	stmt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return stmt
}

// Render builds the statement and renders it as CREATE INDEX.
func (b *Builder) Render(r Renderer) (string, error) {
	stmt, err := b.Build()
	if err != nil {
		return "", err
	}
	return r.CreateIndex(stmt)
}

// DropBuilder provides a fluent API for constructing DROP INDEX statements.
type DropBuilder struct {
	stmt *types.IndexDropStatement
	err  error
}

// DropIndex creates a new drop builder for the named index.
func DropIndex(name string) *DropBuilder {
	b := &DropBuilder{stmt: &types.IndexDropStatement{Name: name}}
	if !isValidSQLIdentifier(name) {
		b.err = fmt.Errorf("invalid index name: %q", name)
	}
	return b
}

// On sets the table the index belongs to. Required by mariadb and mssql, and
// supplies the schema elsewhere.
func (b *DropBuilder) On(t types.TableRef) *DropBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Table = t
	return b
}

// IfExists adds IF EXISTS.
func (b *DropBuilder) IfExists() *DropBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.IfExists = true
	return b
}

// Concurrently drops the index without blocking (PostgreSQL).
func (b *DropBuilder) Concurrently() *DropBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Concurrently = true
	return b
}

// Build returns the statement or the first builder error.
func (b *DropBuilder) Build() (*types.IndexDropStatement, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.stmt, nil
}

// MustBuild returns the statement or panics.
func (b *DropBuilder) MustBuild() *types.IndexDropStatement {
	stmt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return stmt
}

// Render builds the statement and renders it as DROP INDEX.
func (b *DropBuilder) Render(r Renderer) (string, error) {
	stmt, err := b.Build()
	if err != nil {
		return "", err
	}
	return r.DropIndex(stmt)
}
