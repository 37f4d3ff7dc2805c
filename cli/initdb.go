package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"

	"pagamentos/config"
	"pagamentos/database"
)

func initDBCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "initdb",
		Short: "Create the database schema",
		Long: `Create the users and payments tables if they are missing.

With --force every table is dropped first and all data is lost.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig()
			db, err := database.Open(cfg.Database, logger.Silent)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			if force {
				err = database.Reset(db)
			} else {
				err = database.Migrate(db)
			}
			if err != nil {
				return err
			}

			slog.Info("database schema ready", "driver", cfg.Database.Driver, "force", force)
			fmt.Fprintln(cmd.OutOrStdout(), "Database initialized.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "drop and recreate every table")
	return cmd
}
