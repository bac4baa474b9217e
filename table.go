package astddl

import (
	"fmt"
	"strings"

	"github.com/zoobzio/astddl/internal/types"
)

// TryT creates a table reference, returning an error if the name is not a plain
// identifier. A "schema.table" name is split into its parts.
func TryT(name string) (types.TableRef, error) {
	schema, table := "", name
	if i := strings.IndexByte(name, '.'); i != -1 {
		schema, table = name[:i], name[i+1:]
		if !isValidSQLIdentifier(schema) {
			return types.TableRef{}, fmt.Errorf("invalid schema: %q", schema)
		}
	}
	if !isValidSQLIdentifier(table) {
		return types.TableRef{}, fmt.Errorf("invalid table: %q", table)
	}
	return types.TableRef{Schema: schema, Name: table}, nil
}

// T creates a table reference.
func T(name string) types.TableRef {
	t, err := TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// isValidSQLIdentifier checks if a string is a plain SQL identifier:
// a letter or underscore followed by letters, digits or underscores.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}

	// Must start with letter or underscore
	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	// Rest must be alphanumeric or underscore
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}
	return true
}
