package render

// Capabilities describes the index DDL features supported by a dialect.
type Capabilities struct {
	PartialIndex      bool // CREATE INDEX ... WHERE
	IndexMethod       bool // USING <method>
	KeyLengthPrefix   bool // col(10)
	IfNotExists       bool // CREATE INDEX IF NOT EXISTS
	DropIfExists      bool // DROP INDEX IF EXISTS
	Concurrently      bool // CREATE/DROP INDEX CONCURRENTLY
	IncludeColumns    bool // INCLUDE (col, ...)
	NullsNotDistinct  bool // NULLS NOT DISTINCT
	DropScopedToTable bool // DROP INDEX name ON table
	UnnamedIndex      bool // CREATE INDEX ON table (...)
}
