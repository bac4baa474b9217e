// Package main provides the astddl CLI.
// It renders index definitions from a YAML file as SQL for a chosen dialect.
//
// Usage:
//
//	astddl render -f indexes.yaml                 # CREATE INDEX statements (postgres)
//	astddl render -f indexes.yaml --dialect mssql # another dialect
//	astddl render -f indexes.yaml --drop          # DROP INDEX statements
//	astddl apply -f indexes.yaml -d <dsn>         # execute against a database
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// newRootCmd builds the command tree. Flags are bound per invocation so tests
// can run commands in isolation.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "astddl",
		Short:         "Render dialect-neutral index definitions as SQL",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "indexes.yaml", "Path to index definitions")
	rootCmd.PersistentFlags().StringVar(&opts.dialect, "dialect", "", "SQL dialect (postgres, sqlite, mariadb, mssql)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		renderCmd(opts),
		applyCmd(opts),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
