package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"salestrack/internal/infrastructure/storage/postgres"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: `Bring the database schema to the latest embedded version.

Migrations run in a single transaction under an advisory lock, so
concurrent invocations are safe.`,
		RunE: runMigrate,
	}
	cmd.Flags().Bool("status", false, "show migration status without applying changes")
	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()
	txm := postgres.NewTxManager(pool)

	if statusOnly, _ := cmd.Flags().GetBool("status"); statusOnly {
		status, err := postgres.Status(ctx, txm)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "current: %d\nlatest:  %d\npending: %d\n",
			status.Current, status.Latest, len(status.Pending))
		return nil
	}

	status, err := postgres.Migrate(ctx, txm)
	if err != nil {
		return err
	}
	log.Infow("database migrated", "version", status.Current, "latest", status.Latest)
	return nil
}
