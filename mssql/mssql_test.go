package mssql

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
			// SQL Server uses square brackets for quoting
			expected: "CREATE INDEX [idx_users_email] ON [users] ([email])",
		},
		{
			name: "unique clustered with schema",
			stmt: &types.IndexCreateStatement{
				Name:    "ix_orders_id",
				Table:   types.TableRef{Schema: "dbo", Name: "orders"},
				Columns: cols("id"),
				Unique:  true,
				Type:    types.Clustered,
			},
			expected: "CREATE UNIQUE CLUSTERED INDEX [ix_orders_id] ON [dbo].[orders] ([id])",
		},
		{
			name: "covering filtered",
			stmt: &types.IndexCreateStatement{
				Name:  "ix_orders_open",
				Table: types.TableRef{Name: "orders"},
				Columns: []types.IndexColumn{
					types.TableColumn{Name: "customer_id"},
					types.TableColumn{Name: "created_at", Order: types.DESC},
				},
				Type:    types.NonClustered,
				Include: []string{"total"},
				Where: types.ConditionGroup{Logic: types.AND, Conditions: []types.ConditionItem{
					types.Column("status").Eq("open"),
					types.Column("archived").Eq(false),
				}},
			},
			expected: "CREATE NONCLUSTERED INDEX [ix_orders_open] ON [orders] ([customer_id], [created_at] DESC) INCLUDE ([total]) WHERE ([status] = 'open' AND [archived] = 0)",
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
		"if not exists":      func(s *types.IndexCreateStatement) { s.IfNotExists = true },
		"hash":               func(s *types.IndexCreateStatement) { s.Type = types.Hash },
		"concurrently":       func(s *types.IndexCreateStatement) { s.Concurrently = true },
		"nulls not distinct": func(s *types.IndexCreateStatement) { s.Unique, s.NullsNotDistinct = true, true },
		"key prefix": func(s *types.IndexCreateStatement) {
			s.Columns = []types.IndexColumn{types.TableColumn{Name: "a", Prefix: &n}}
		},
		"foreign operator": func(s *types.IndexCreateStatement) {
			s.Where = postgres.Ext(types.Column("a")).ILike("x")
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
	tests := []struct {
		name     string
		stmt     *types.IndexCreateStatement
		expected string
	}{
		{
			name:     "primary key clustered",
			stmt:     &types.IndexCreateStatement{Name: "pk_orders", Columns: cols("id"), Primary: true, Type: types.Clustered},
			expected: "CONSTRAINT [pk_orders] PRIMARY KEY CLUSTERED ([id])",
		},
		{
			name:     "unique",
			stmt:     &types.IndexCreateStatement{Name: "uq_email", Columns: cols("email"), Unique: true},
			expected: "CONSTRAINT [uq_email] UNIQUE ([email])",
		},
		{
			name: "inline filtered index",
			stmt: &types.IndexCreateStatement{
				Name:    "ix_live",
				Columns: cols("email"),
				Type:    types.NonClustered,
				Where:   types.Column("deleted_at").IsNull(),
			},
			expected: "INDEX [ix_live] NONCLUSTERED ([email]) WHERE [deleted_at] IS NULL",
		},
		{
			name: "inline index include",
			stmt: &types.IndexCreateStatement{
				Name:    "ix",
				Columns: cols("email"),
				Include: []string{"name"},
				Where:   types.Column("deleted_at").IsNull(),
			},
			expected: "INDEX [ix] ([email]) INCLUDE ([name]) WHERE [deleted_at] IS NULL",
		},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.TableIndex(tt.stmt)
			if err != nil {
				t.Fatalf("TableIndex() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("SQL = %q, want %q", got, tt.expected)
			}
		})
	}

	t.Run("filtered constraint rejected", func(t *testing.T) {
		_, err := r.TableIndex(&types.IndexCreateStatement{
			Name: "uq", Columns: cols("a"), Unique: true, Where: types.Column("a").IsNotNull(),
		})
		if err == nil {
			t.Error("expected error")
		}
	})

	t.Run("constraint include rejected", func(t *testing.T) {
		got, err := r.TableIndex(&types.IndexCreateStatement{
			Name: "uq", Columns: cols("a"), Unique: true, Include: []string{"b"},
		})
		var ufErr render.UnsupportedFeatureError
		if !errors.As(err, &ufErr) {
			t.Errorf("error = %v, want UnsupportedFeatureError", err)
		}
		if got != "" {
			t.Errorf("SQL = %q, want nothing on error", got)
		}
	})

	t.Run("if not exists rejected", func(t *testing.T) {
		if _, err := r.TableIndex(&types.IndexCreateStatement{Name: "ix", Columns: cols("a"), IfNotExists: true}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("unnamed inline index", func(t *testing.T) {
		_, err := r.TableIndex(&types.IndexCreateStatement{Columns: cols("a")})
		if !errors.Is(err, render.ErrMissingName) {
			t.Errorf("error = %v, want ErrMissingName", err)
		}
	})
}

func TestDropIndex(t *testing.T) {
	r := New()

	got, err := r.DropIndex(&types.IndexDropStatement{
		Name:     "ix_orders_open",
		Table:    types.TableRef{Schema: "dbo", Name: "orders"},
		IfExists: true,
	})
	if err != nil {
		t.Fatalf("DropIndex() error = %v", err)
	}
	expected := "DROP INDEX IF EXISTS [ix_orders_open] ON [dbo].[orders]"
	if got != expected {
		t.Errorf("SQL = %q, want %q", got, expected)
	}

	if _, err := r.DropIndex(&types.IndexDropStatement{Name: "ix"}); !errors.Is(err, render.ErrMissingTable) {
		t.Errorf("error = %v, want ErrMissingTable", err)
	}
}

func TestLiterals(t *testing.T) {
	r := New()
	got, err := r.Condition(types.Column("hash").Eq([]byte{0x0a, 0xff}))
	if err != nil {
		t.Fatalf("Condition() error = %v", err)
	}
	if got != "[hash] = 0x0AFF" {
		t.Errorf("SQL = %q, want %q", got, "[hash] = 0x0AFF")
	}
}
