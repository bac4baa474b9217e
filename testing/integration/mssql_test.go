package integration

import (
	"testing"

	"github.com/zoobzio/astddl"
	mssqlrenderer "github.com/zoobzio/astddl/mssql"
)

// TestMSSQLIntegration_CreateAndDrop renders and executes every supported index form.
func TestMSSQLIntegration_CreateAndDrop(t *testing.T) {
	ms := openDatabase(t, "mssql")
	ms.createTable(t, "dbo.users", `CREATE TABLE dbo.users (
		id BIGINT IDENTITY(1,1) PRIMARY KEY NONCLUSTERED,
		email NVARCHAR(255) NOT NULL,
		name NVARCHAR(255),
		active BIT DEFAULT 1,
		deleted_at DATETIME2 NULL
	)`)

	unique, composite := indexFixtures(t)
	unique.Table.Schema = "dbo"
	unique.Where = astddl.Col("deleted_at").IsNull()
	composite.Table.Schema = "dbo"
	composite.Type = astddl.Clustered

	covering := astddl.CreateIndex(astddl.T("dbo.users")).
		Name("ix_users_active").
		Columns("active").
		Using(astddl.NonClustered).
		Include("email", "name").
		Where(astddl.Col("active").Eq(true)).
		MustBuild()

	ms.roundTrip(t, mssqlrenderer.New(), unique, composite, covering)
}

// TestMSSQLIntegration_TableIndex embeds inline constraints and indexes in CREATE TABLE.
func TestMSSQLIntegration_TableIndex(t *testing.T) {
	ms := openDatabase(t, "mssql")

	clauses := inlineIndexes(t, mssqlrenderer.New(),
		&astddl.IndexCreateStatement{Name: "pk_accounts", Primary: true, Type: astddl.Clustered, Columns: []astddl.IndexColumn{astddl.TableColumn{Name: "id"}}},
		&astddl.IndexCreateStatement{Name: "uq_accounts_handle", Unique: true, Columns: []astddl.IndexColumn{astddl.TableColumn{Name: "handle"}}},
		&astddl.IndexCreateStatement{
			Name:    "ix_accounts_live",
			Columns: []astddl.IndexColumn{astddl.TableColumn{Name: "handle"}},
			Include: []string{"closed_at"},
			Where:   astddl.Col("closed_at").IsNull(),
		},
	)

	ms.createTable(t, "dbo.accounts", "CREATE TABLE dbo.accounts (id BIGINT NOT NULL, handle NVARCHAR(64), closed_at DATETIME2 NULL"+clauses+")")
	if !ms.indexExists(t, "dbo.accounts", "ix_accounts_live") {
		t.Error("inline filtered index not created")
	}
}
