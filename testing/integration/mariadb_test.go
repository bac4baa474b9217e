package integration

import (
	"context"
	"testing"

	"github.com/zoobzio/astddl"
	mariadbrenderer "github.com/zoobzio/astddl/mariadb"
)

const mariadbUsersTable = `CREATE TABLE users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	email VARCHAR(255) NOT NULL,
	name VARCHAR(255),
	bio TEXT,
	active BOOLEAN DEFAULT true,
	deleted_at TIMESTAMP NULL
)`

// TestMariaDBIntegration_CreateAndDrop renders and executes every supported index form.
func TestMariaDBIntegration_CreateAndDrop(t *testing.T) {
	mdb := openDatabase(t, "mariadb")
	mdb.createTable(t, "users", mariadbUsersTable)

	unique, composite := indexFixtures(t)
	unique.IfNotExists = true
	composite.Type = astddl.BTree

	prefixed := astddl.CreateIndex(astddl.T("users")).
		Name("idx_users_bio").
		Prefixed("bio", 32).
		MustBuild()

	fulltext := astddl.CreateIndex(astddl.T("users")).
		Name("ft_users_bio").
		Columns("bio").
		Using(astddl.FullText).
		MustBuild()

	mdb.roundTrip(t, mariadbrenderer.New(), unique, composite, prefixed, fulltext)
}

// TestMariaDBIntegration_TableIndex embeds inline keys in CREATE TABLE.
func TestMariaDBIntegration_TableIndex(t *testing.T) {
	mdb := openDatabase(t, "mariadb")

	clauses := inlineIndexes(t, mariadbrenderer.New(),
		&astddl.IndexCreateStatement{
			Primary: true,
			Columns: []astddl.IndexColumn{astddl.TableColumn{Name: "id"}},
		},
		&astddl.IndexCreateStatement{
			Name:    "uq_accounts_handle",
			Unique:  true,
			Columns: []astddl.IndexColumn{astddl.TableColumn{Name: "handle"}},
		},
		&astddl.IndexCreateStatement{
			Name:    "ft_accounts_bio",
			Type:    astddl.FullText,
			Columns: []astddl.IndexColumn{astddl.TableColumn{Name: "bio"}},
		},
	)

	mdb.createTable(t, "accounts", "CREATE TABLE accounts (id BIGINT NOT NULL, handle VARCHAR(64), bio TEXT"+clauses+")")
	for _, name := range []string{"uq_accounts_handle", "ft_accounts_bio"} {
		if !mdb.indexExists(t, "accounts", name) {
			t.Errorf("key %s not created", name)
		}
	}
}

// TestMariaDBIntegration_RegexpPredicate checks extension operators against the server.
func TestMariaDBIntegration_RegexpPredicate(t *testing.T) {
	mdb := openDatabase(t, "mariadb")
	mdb.createTable(t, "users", mariadbUsersTable)
	mdb.exec(t, `INSERT INTO users (email, name) VALUES ('a@example.com', 'alice'), ('b@test.org', 'bob')`)

	cond, err := mariadbrenderer.New().Condition(
		mariadbrenderer.Ext(astddl.Col("email")).Regexp("@example\\.com$"),
	)
	if err != nil {
		t.Fatalf("Condition() error = %v", err)
	}

	var count int
	if err := mdb.db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM users WHERE "+cond).Scan(&count); err != nil {
		t.Fatalf("query with %q failed: %v", cond, err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 for %q", count, cond)
	}
}
