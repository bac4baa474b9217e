package types

// TableRef identifies a target table, optionally schema-qualified and aliased.
// This is exported from the internal package so dialects can use it,
// but external users cannot import this package.
type TableRef struct {
	Schema string
	Name   string
	Alias  string
}

// GetName returns the table name.
func (t TableRef) GetName() string {
	return t.Name
}

// GetSchema returns the schema qualifier.
func (t TableRef) GetSchema() string {
	return t.Schema
}

// GetAlias returns the table alias.
func (t TableRef) GetAlias() string {
	return t.Alias
}

// IsZero reports whether the reference names no table.
func (t TableRef) IsZero() bool {
	return t.Name == ""
}
