package sqlite

import (
	"errors"
	"testing"

	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
	"github.com/zoobzio/astddl/postgres"
)

func cols(names ...string) []types.IndexColumn {
	out := make([]types.IndexColumn, len(names))
	for i, name := range names {
		out[i] = types.TableColumn{Name: name}
	}
	return out
}

func TestNew(t *testing.T) {
	r := New()
	if r == nil {
		t.Fatal("New() returned nil")
	}
}

func TestExtensionOperators(t *testing.T) {
	tests := []struct {
		name     string
		expr     types.Expr
		expected string
	}{
		{"Glob", Ext(types.Column("name")).Glob("a"), `"name" GLOB 'a'`},
		{"Matches", Ext(types.Column("name")).Matches("a"), `"name" MATCH 'a'`},
		{"GetJSONField", Ext(types.Column("name")).GetJSONField("a"), `"name" -> 'a'`},
		{"CastJSONField", Ext(types.Column("name")).CastJSONField("a"), `"name" ->> 'a'`},
		{"shared operator still renders", types.Column("name").Eq("a"), `"name" = 'a'`},
		{"bool literal", types.Column("active").Eq(true), `"active" = 1`},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Condition(tt.expr)
			if err != nil {
				t.Fatalf("Condition() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("SQL = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExtensionOperators_ForeignDialect(t *testing.T) {
	_, err := New().Condition(postgres.Ext(types.Column("name")).ILike("a"))
	var ufErr render.UnsupportedFeatureError
	if !errors.As(err, &ufErr) {
		t.Fatalf("error = %v, want UnsupportedFeatureError", err)
	}
}

func TestCreateIndex(t *testing.T) {
	tests := []struct {
		name     string
		stmt     *types.IndexCreateStatement
		expected string
	}{
		{
			name: "simple",
			stmt: &types.IndexCreateStatement{
				Name:    "idx_users_email",
				Table:   types.TableRef{Name: "users"},
				Columns: cols("email"),
			},
			expected: `CREATE INDEX "idx_users_email" ON "users" ("email")`,
		},
		{
			name: "schema goes on the index name",
			stmt: &types.IndexCreateStatement{
				Name:    "idx_users_email",
				Table:   types.TableRef{Schema: "main", Name: "users"},
				Columns: cols("email"),
				Unique:  true,
			},
			expected: `CREATE UNIQUE INDEX "main"."idx_users_email" ON "users" ("email")`,
		},
		{
			name: "if not exists with order",
			stmt: &types.IndexCreateStatement{
				Name:  "idx_posts_recent",
				Table: types.TableRef{Name: "posts"},
				Columns: []types.IndexColumn{
					types.TableColumn{Name: "user_id"},
					types.TableColumn{Name: "created_at", Order: types.DESC},
				},
				IfNotExists: true,
			},
			expected: `CREATE INDEX IF NOT EXISTS "idx_posts_recent" ON "posts" ("user_id", "created_at" DESC)`,
		},
		{
			name: "partial",
			stmt: &types.IndexCreateStatement{
				Name:    "idx_users_live",
				Table:   types.TableRef{Name: "users"},
				Columns: cols("email"),
				Where:   types.Column("deleted_at").IsNull(),
			},
			expected: `CREATE INDEX "idx_users_live" ON "users" ("email") WHERE "deleted_at" IS NULL`,
		},
		{
			name: "partial with glob",
			stmt: &types.IndexCreateStatement{
				Name:    "idx_files_tmp",
				Table:   types.TableRef{Name: "files"},
				Columns: cols("path"),
				Where:   Ext(types.Column("path")).Glob("/tmp/*"),
			},
			expected: `CREATE INDEX "idx_files_tmp" ON "files" ("path") WHERE "path" GLOB '/tmp/*'`,
		},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.CreateIndex(tt.stmt)
			if err != nil {
				t.Fatalf("CreateIndex() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("SQL = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCreateIndex_Errors(t *testing.T) {
	n := uint32(10)
	base := func() *types.IndexCreateStatement {
		return &types.IndexCreateStatement{Name: "idx", Table: types.TableRef{Name: "t"}, Columns: cols("a")}
	}

	t.Run("missing name", func(t *testing.T) {
		stmt := base()
		stmt.Name = ""
		if _, err := New().CreateIndex(stmt); !errors.Is(err, render.ErrMissingName) {
			t.Errorf("error = %v, want ErrMissingName", err)
		}
	})

	unsupported := map[string]func(*types.IndexCreateStatement){
		"primary":            func(s *types.IndexCreateStatement) { s.Primary = true },
		"index method":       func(s *types.IndexCreateStatement) { s.Type = types.Hash },
		"concurrently":       func(s *types.IndexCreateStatement) { s.Concurrently = true },
		"include":            func(s *types.IndexCreateStatement) { s.Include = []string{"b"} },
		"nulls not distinct": func(s *types.IndexCreateStatement) { s.Unique, s.NullsNotDistinct = true, true },
		"key prefix": func(s *types.IndexCreateStatement) {
			s.Columns = []types.IndexColumn{types.TableColumn{Name: "a", Prefix: &n}}
		},
	}

	for name, mutate := range unsupported {
		t.Run(name, func(t *testing.T) {
			stmt := base()
			mutate(stmt)
			_, err := New().CreateIndex(stmt)
			var ufErr render.UnsupportedFeatureError
			if !errors.As(err, &ufErr) {
				t.Errorf("error = %v, want UnsupportedFeatureError", err)
			}
		})
	}
}

func TestTableIndex(t *testing.T) {
	n := uint32(10)
	r := New()

	got, err := r.TableIndex(&types.IndexCreateStatement{Name: "uq_email", Columns: cols("email"), Unique: true})
	if err != nil {
		t.Fatalf("TableIndex() error = %v", err)
	}
	if got != `CONSTRAINT "uq_email" UNIQUE ("email")` {
		t.Errorf("SQL = %q, want %q", got, `CONSTRAINT "uq_email" UNIQUE ("email")`)
	}

	_, err = r.TableIndex(&types.IndexCreateStatement{
		Name:    "idx",
		Columns: []types.IndexColumn{types.TableColumn{Name: "a", Prefix: &n}},
	})
	if err == nil {
		t.Error("expected key prefix to be rejected")
	}
}

func TestTableIndex_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		stmt *types.IndexCreateStatement
	}{
		{"method", &types.IndexCreateStatement{Name: "uq", Columns: []types.IndexColumn{types.TableColumn{Name: "email"}}, Unique: true, Type: types.Hash}},
		{"include", &types.IndexCreateStatement{Name: "uq", Columns: []types.IndexColumn{types.TableColumn{Name: "email"}}, Unique: true, Include: []string{"id"}}},
		{"nulls not distinct", &types.IndexCreateStatement{Name: "uq", Columns: []types.IndexColumn{types.TableColumn{Name: "email"}}, Unique: true, NullsNotDistinct: true}},
		{"concurrently", &types.IndexCreateStatement{Name: "uq", Columns: []types.IndexColumn{types.TableColumn{Name: "email"}}, Unique: true, Concurrently: true}},
		{"if not exists", &types.IndexCreateStatement{Name: "uq", Columns: []types.IndexColumn{types.TableColumn{Name: "email"}}, Unique: true, IfNotExists: true}},
		{"where", &types.IndexCreateStatement{Name: "uq", Columns: []types.IndexColumn{types.TableColumn{Name: "email"}}, Unique: true, Where: types.Column("email").IsNotNull()}},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.TableIndex(tt.stmt)
			var ufe render.UnsupportedFeatureError
			if !errors.As(err, &ufe) {
				t.Fatalf("error = %v, want UnsupportedFeatureError", err)
			}
			if got != "" {
				t.Errorf("SQL = %q, want nothing on error", got)
			}
		})
	}
}

func TestDropIndex(t *testing.T) {
	tests := []struct {
		name     string
		stmt     *types.IndexDropStatement
		expected string
	}{
		{"simple", &types.IndexDropStatement{Name: "idx"}, `DROP INDEX "idx"`},
		{"if exists", &types.IndexDropStatement{Name: "idx", IfExists: true}, `DROP INDEX IF EXISTS "idx"`},
		{"schema", &types.IndexDropStatement{Name: "idx", Table: types.TableRef{Schema: "aux", Name: "t"}}, `DROP INDEX "aux"."idx"`},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.DropIndex(tt.stmt)
			if err != nil {
				t.Fatalf("DropIndex() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("SQL = %q, want %q", got, tt.expected)
			}
		})
	}

	if _, err := r.DropIndex(&types.IndexDropStatement{Name: "idx", Concurrently: true}); err == nil {
		t.Error("expected CONCURRENTLY to be rejected")
	}
}
