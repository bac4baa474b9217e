package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/zoobzio/zlog"
)

var errMissingDatabaseURL = errors.New("database URL is required (--database-url, " + databaseEnv + " or database_url)")

// applyCmd renders the definitions and executes them in order.
// Statements run outside a transaction: CONCURRENTLY forbids one and
// several databases commit DDL implicitly.
func applyCmd(opts *globalOptions) *cobra.Command {
	var (
		databaseURL string
		drop        bool
		dryRun      bool
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Execute the rendered statements against a database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newEventLog(opts)
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if env := os.Getenv(databaseEnv); env != "" {
				cfg.DatabaseURL = env
			}
			if databaseURL != "" {
				cfg.DatabaseURL = databaseURL
			}

			d, err := lookupDialect(cfg.Dialect)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			jobs, err := renderAll(ctx, d.renderer, cfg.Indexes, drop, log)
			if err != nil {
				return err
			}

			if dryRun {
				for _, job := range jobs {
					fmt.Fprintf(cmd.OutOrStdout(), "%s;\n", job.sql)
				}
				return nil
			}
			if cfg.DatabaseURL == "" {
				return errMissingDatabaseURL
			}

			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			db, err := sql.Open(d.driver, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to open %s database: %w", d.renderer.Dialect(), err)
			}
			defer db.Close()

			n, err := execAll(ctx, db, d.renderer.Dialect(), jobs, log)
			if err != nil {
				return err
			}
			log.info("applied",
				zlog.String("dialect", d.renderer.Dialect()),
				zlog.String("statements", strconv.Itoa(n)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d statement(s)\n", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&databaseURL, "database-url", "d", "", "Database connection URL")
	cmd.Flags().BoolVar(&drop, "drop", false, "Execute DROP INDEX instead of CREATE INDEX")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the statements without executing them")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "Overall execution timeout")
	return cmd
}
