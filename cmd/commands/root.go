package commands

import (
	"fmt"
	"os"

	"github.com/arinkulshi/diet-recommendation-tool/config"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Nutrition lookup API: ranked food search, favorites and recommendations",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfg == nil {
			cfg = config.Load()
		}
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, initDBCmd, importCmd, tokenCmd)
}

// openMigrated opens the configured database and brings the schema up to date.
func openMigrated() (*gorm.DB, error) {
	db, err := config.OpenDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := config.Migrate(db); err != nil {
		_ = config.CloseDB(db)
		return nil, err
	}
	return db, nil
}
