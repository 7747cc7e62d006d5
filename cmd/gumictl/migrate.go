package main

import (
	"fmt"

	"github.com/MKhiriev/gumi-collection/internal/config"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/store"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var sqliteDSN string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending migrations",
		Long: "Apply pending migrations to the record store database configured in the environment, " +
			"or to a client cache file when --sqlite is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewLogger("gumictl")
			ctx := cmd.Context()

			var (
				db  *store.DB
				err error
			)
			if sqliteDSN != "" {
				db, err = store.NewConnectSQLite(ctx, sqliteDSN, log)
			} else {
				var cfg *config.StructuredConfig
				if cfg, err = config.GetEnvConfig(); err != nil {
					return fmt.Errorf("config: %w", err)
				}
				db, err = store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
			}
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}

	cmd.Flags().StringVar(&sqliteDSN, "sqlite", "", "client cache DSN to migrate instead of PostgreSQL")
	return cmd
}
