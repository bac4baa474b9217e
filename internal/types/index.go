package types

// IndexType names the index access method. The zero value means "dialect default".
// Values outside the predefined set are written verbatim by dialects that accept a method.
type IndexType string

const (
	BTree    IndexType = "BTREE"
	Hash     IndexType = "HASH"
	FullText IndexType = "FULLTEXT"
	Spatial  IndexType = "SPATIAL"
	GIN      IndexType = "GIN"
	GiST     IndexType = "GIST"
	BRIN     IndexType = "BRIN"
	SPGiST   IndexType = "SPGIST"

	// SQL Server storage layouts.
	Clustered    IndexType = "CLUSTERED"
	NonClustered IndexType = "NONCLUSTERED"
)

// IndexColumn is one key of an index. The set of variants is closed:
// TableColumn and ExprColumn.
type IndexColumn interface {
	isIndexColumn()
}

// TableColumn is an index key over a plain column.
type TableColumn struct {
	Name   string
	Prefix *uint32   // key length, dialects with prefixed indexes only
	Order  Direction // empty defers to the dialect default order
}

// ExprColumn is an index key over an expression. Declared for completeness;
// no dialect renders it.
type ExprColumn struct {
	Expr Expr
}

func (TableColumn) isIndexColumn() {}
func (ExprColumn) isIndexColumn()  {}

// IndexCreateStatement describes CREATE INDEX and inline table index constraints.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type IndexCreateStatement struct {
	Name             string
	Table            TableRef
	Columns          []IndexColumn
	Type             IndexType
	Primary          bool
	Unique           bool
	NullsNotDistinct bool // PostgreSQL 15+
	IfNotExists      bool
	Concurrently     bool     // PostgreSQL
	Include          []string // covering columns (PostgreSQL, SQL Server)
	Where            ConditionItem
}

// IndexDropStatement describes DROP INDEX.
type IndexDropStatement struct {
	Name         string
	Table        TableRef
	IfExists     bool
	Concurrently bool // PostgreSQL
}

// ColumnNames returns the names of the plain column keys, in order.
func (s *IndexCreateStatement) ColumnNames() []string {
	names := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		if tc, ok := col.(TableColumn); ok {
			names = append(names, tc.Name)
		}
	}
	return names
}
