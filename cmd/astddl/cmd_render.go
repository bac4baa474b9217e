package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// renderCmd prints the statements for every definition, one per line.
func renderCmd(opts *globalOptions) *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print CREATE INDEX (or DROP INDEX) statements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			d, err := lookupDialect(cfg.Dialect)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			jobs, err := renderAll(ctx, d.renderer, cfg.Indexes, drop, newEventLog(opts))
			if err != nil {
				return err
			}
			for _, job := range jobs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s;\n", job.sql)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&drop, "drop", false, "Render DROP INDEX instead of CREATE INDEX")
	return cmd
}
