package astddl

import (
	"errors"
	"fmt"

	"github.com/zoobzio/astddl/internal/types"
	"github.com/zoobzio/dbml"
)

// ErrUnknownTable is returned when a statement names a table missing from the schema.
var ErrUnknownTable = errors.New("table not found in schema")

// ErrUnknownColumn is returned when a statement names a column missing from its table.
var ErrUnknownColumn = errors.New("column not found in table")

// Instance validates index statements against a DBML schema.
type Instance struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables map[string]*dbml.Table
	fields map[string]map[string]*dbml.Column // table -> field -> column
}

// NewFromDBML creates a new Instance from a DBML project.
func NewFromDBML(project *dbml.Project) (*Instance, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	a := &Instance{
		project: project,
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}

	// Build indexes for fast validation
	for _, table := range project.Tables {
		a.tables[table.Name] = table
		a.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			a.fields[table.Name][col.Name] = col
		}
	}

	return a, nil
}

// Project returns the underlying schema.
func (a *Instance) Project() *dbml.Project {
	return a.project
}

func (a *Instance) validateTable(name string) error {
	if _, ok := a.tables[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return nil
}

func (a *Instance) validateColumn(table, column string) error {
	if _, ok := a.fields[table][column]; !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, table, column)
	}
	return nil
}

// TryT creates a validated table reference, returning an error if invalid.
func (a *Instance) TryT(name string) (types.TableRef, error) {
	t, err := TryT(name)
	if err != nil {
		return types.TableRef{}, err
	}
	if err := a.validateTable(t.Name); err != nil {
		return types.TableRef{}, fmt.Errorf("invalid table: %w", err)
	}
	return t, nil
}

// T creates a validated table reference.
func (a *Instance) T(name string) types.TableRef {
	t, err := a.TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TryCol creates a column expression validated against table t.
func (a *Instance) TryCol(t types.TableRef, name string) (types.Expr, error) {
	if err := a.validateTable(t.Name); err != nil {
		return types.Expr{}, err
	}
	if err := a.validateColumn(t.Name, name); err != nil {
		return types.Expr{}, fmt.Errorf("invalid column: %w", err)
	}
	return types.Column(name), nil
}

// Col creates a column expression validated against table t.
func (a *Instance) Col(t types.TableRef, name string) types.Expr {
	e, err := a.TryCol(t, name)
	if err != nil {
		panic(err)
	}
	return e
}

// ValidateIndex checks that the statement's table, key columns, covering
// columns and predicate columns all exist in the schema.
func (a *Instance) ValidateIndex(stmt *types.IndexCreateStatement) error {
	if stmt == nil {
		return fmt.Errorf("nil index statement")
	}
	table := stmt.Table.Name
	if err := a.validateTable(table); err != nil {
		return err
	}
	for _, name := range stmt.ColumnNames() {
		if err := a.validateColumn(table, name); err != nil {
			return err
		}
	}
	for _, name := range stmt.Include {
		if err := a.validateColumn(table, name); err != nil {
			return err
		}
	}
	return a.validateCondition(table, stmt.Where)
}

// ValidateDrop checks that a drop statement's table, when set, exists.
func (a *Instance) ValidateDrop(stmt *types.IndexDropStatement) error {
	if stmt == nil {
		return fmt.Errorf("nil drop statement")
	}
	if stmt.Table.IsZero() {
		return nil
	}
	return a.validateTable(stmt.Table.Name)
}

func (a *Instance) validateCondition(table string, cond types.ConditionItem) error {
	switch c := cond.(type) {
	case nil:
		return nil
	case types.ConditionGroup:
		for _, sub := range c.Conditions {
			if err := a.validateCondition(table, sub); err != nil {
				return err
			}
		}
		return nil
	case types.Expr:
		return a.validateExpr(table, c)
	default:
		return fmt.Errorf("unknown condition type: %T", c)
	}
}

// validateExpr walks column references. Qualified columns are checked against
// their own table; custom fragments are opaque and skipped.
func (a *Instance) validateExpr(table string, e types.Expr) error {
	switch n := e.Node.(type) {
	case types.ColumnNode:
		if n.Table != "" {
			if err := a.validateTable(n.Table); err != nil {
				return err
			}
			return a.validateColumn(n.Table, n.Name)
		}
		return a.validateColumn(table, n.Name)
	case types.BinaryNode:
		if err := a.validateExpr(table, n.Left); err != nil {
			return err
		}
		return a.validateExpr(table, n.Right)
	case types.NotNode:
		return a.validateExpr(table, n.Operand)
	}
	return nil
}
