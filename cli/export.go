package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"

	"pagamentos/config"
	"pagamentos/database"
	"pagamentos/export"
	"pagamentos/repository"
)

func exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every payment to a spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig()
			db, err := database.Open(cfg.Database, logger.Silent)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			list, err := repository.NewPaymentRepository(db).List(cmd.Context())
			if err != nil {
				return err
			}
			data, err := export.ToSpreadsheet(list)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d payments to %s\n", len(list), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", export.SpreadsheetFilename, "output file")
	return cmd
}
