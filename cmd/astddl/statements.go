package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
	_ "modernc.org/sqlite"

	"github.com/zoobzio/astddl"
	"github.com/zoobzio/astddl/mariadb"
	"github.com/zoobzio/astddl/mssql"
	"github.com/zoobzio/astddl/postgres"
	"github.com/zoobzio/astddl/sqlite"
	"github.com/zoobzio/pipz"
	"github.com/zoobzio/zlog"
)

// dialect pairs a renderer with the database/sql driver that executes its output.
type dialect struct {
	renderer astddl.Renderer
	driver   string
}

var dialects = map[string]func() dialect{
	"postgres": func() dialect { return dialect{renderer: postgres.New(), driver: "pgx"} },
	"sqlite":   func() dialect { return dialect{renderer: sqlite.New(), driver: "sqlite"} },
	"mariadb":  func() dialect { return dialect{renderer: mariadb.New(), driver: "mysql"} },
	"mssql":    func() dialect { return dialect{renderer: mssql.New(), driver: "sqlserver"} },
}

// dialectAliases maps common alternative names to a registered dialect.
var dialectAliases = map[string]string{
	"postgresql": "postgres",
	"pg":         "postgres",
	"sqlite3":    "sqlite",
	"mysql":      "mariadb",
	"sqlserver":  "mssql",
}

func lookupDialect(name string) (dialect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := dialectAliases[key]; ok {
		key = alias
	}
	ctor, ok := dialects[key]
	if !ok {
		return dialect{}, fmt.Errorf("unknown dialect %q", name)
	}
	return ctor(), nil
}

// createStatement converts a definition into an index statement.
func createStatement(def IndexDef) (*astddl.IndexCreateStatement, error) {
	table, err := astddl.TryT(def.Table)
	if err != nil {
		return nil, err
	}

	b := astddl.CreateIndex(table)
	if def.Name != "" {
		b.Name(def.Name)
	}
	for _, col := range def.Columns {
		key := astddl.TableColumn{Name: col.Name, Prefix: col.Prefix}
		switch strings.ToUpper(col.Order) {
		case "":
		case "ASC":
			key.Order = astddl.ASC
		case "DESC":
			key.Order = astddl.DESC
		default:
			return nil, fmt.Errorf("column %s: invalid order %q", col.Name, col.Order)
		}
		b.Key(key)
	}
	if def.Type != "" {
		b.Using(astddl.IndexType(def.Type))
	}
	if def.Primary {
		b.Primary()
	}
	if def.Unique {
		b.Unique()
	}
	if def.IfNotExists {
		b.IfNotExists()
	}
	if def.Concurrently {
		b.Concurrently()
	}
	if def.NullsNotDist {
		b.NullsNotDistinct()
	}
	if len(def.Include) > 0 {
		b.Include(def.Include...)
	}
	if def.Where != "" {
		b.Where(astddl.Cust(def.Where))
	}
	return b.Build()
}

// dropStatement converts a definition into a DROP INDEX statement.
// IF EXISTS mirrors the definition's IF NOT EXISTS.
func dropStatement(def IndexDef) (*astddl.IndexDropStatement, error) {
	table, err := astddl.TryT(def.Table)
	if err != nil {
		return nil, err
	}
	b := astddl.DropIndex(def.Name).On(table)
	if def.IfNotExists {
		b.IfExists()
	}
	if def.Concurrently {
		b.Concurrently()
	}
	return b.Build()
}

// indexJob carries one definition through the render and apply pipelines.
type indexJob struct {
	def    IndexDef
	label  string
	drop   bool
	create *astddl.IndexCreateStatement
	remove *astddl.IndexDropStatement
	sql    string
}

func newIndexJob(i int, def IndexDef, drop bool) *indexJob {
	label := def.Name
	if label == "" {
		label = fmt.Sprintf("#%d", i+1)
	}
	return &indexJob{def: def, label: label, drop: drop}
}

func (j *indexJob) wrap(err error) error {
	return fmt.Errorf("index %s on %s: %w", j.label, j.def.Table, err)
}

// Pipeline stage names.
const (
	stageBuild   = "build"
	stageRender  = "render"
	stageExecute = "execute"
)

func buildStage(_ context.Context, job *indexJob) (*indexJob, error) {
	var err error
	if job.drop {
		job.remove, err = dropStatement(job.def)
	} else {
		job.create, err = createStatement(job.def)
	}
	return job, err
}

// newRenderPipeline converts a definition into a statement and renders it.
func newRenderPipeline(r astddl.Renderer, log eventLog) *pipz.Sequence[*indexJob] {
	return pipz.NewSequence[*indexJob]("render-index",
		pipz.Apply(stageBuild, buildStage),
		pipz.Apply(stageRender, func(_ context.Context, job *indexJob) (*indexJob, error) {
			var err error
			if job.drop {
				job.sql, err = r.DropIndex(job.remove)
			} else {
				job.sql, err = r.CreateIndex(job.create)
			}
			if err == nil {
				log.debug("rendered", indexFields(r.Dialect(), job.def)...)
			}
			return job, err
		}),
	)
}

// newExecPipeline runs a rendered statement against db.
func newExecPipeline(db *sql.DB, dialect string, log eventLog) *pipz.Sequence[*indexJob] {
	return pipz.NewSequence[*indexJob]("apply-index",
		pipz.Effect(stageExecute, func(ctx context.Context, job *indexJob) error {
			log.debug("executing", append(indexFields(dialect, job.def), zlog.String("sql", job.sql))...)
			_, err := db.ExecContext(ctx, job.sql)
			return err
		}),
	)
}

// renderAll renders every definition in order. The first failure names the
// offending index and nothing is returned.
func renderAll(ctx context.Context, r astddl.Renderer, defs []IndexDef, drop bool, log eventLog) ([]*indexJob, error) {
	pipeline := newRenderPipeline(r, log)
	jobs := make([]*indexJob, 0, len(defs))
	for i, def := range defs {
		job := newIndexJob(i, def, drop)
		if _, err := pipeline.Process(ctx, job); err != nil {
			log.error("render failed", err, indexFields(r.Dialect(), def)...)
			return nil, job.wrap(err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// execAll runs the jobs in order and stops at the first failure. It returns
// the number executed.
func execAll(ctx context.Context, db *sql.DB, dialect string, jobs []*indexJob, log eventLog) (int, error) {
	pipeline := newExecPipeline(db, dialect, log)
	for i, job := range jobs {
		if _, err := pipeline.Process(ctx, job); err != nil {
			log.error("apply failed", err, indexFields(dialect, job.def)...)
			return i, job.wrap(err)
		}
	}
	return len(jobs), nil
}
