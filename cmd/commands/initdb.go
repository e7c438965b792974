package commands

import (
	"github.com/arinkulshi/diet-recommendation-tool/config"

	"github.com/spf13/cobra"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the foods, users and favorites tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openMigrated()
		if err != nil {
			return err
		}
		defer config.CloseDB(db)
		success("Database initialized successfully (%s)", cfg.DBDriver)
		return nil
	},
}
