package commands

import (
	"strings"

	"github.com/arinkulshi/diet-recommendation-tool/config"
	"github.com/arinkulshi/diet-recommendation-tool/services"
	"github.com/arinkulshi/diet-recommendation-tool/utils"

	"github.com/spf13/cobra"
)

var (
	demoPassword  string
	seedFavorites int
)

var importCmd = &cobra.Command{
	Use:   "import [csv-path | s3://bucket/key]",
	Short: "Load the branded food dataset and the demo user",
	Long: `Loads foods from a FoodData Central branded_food CSV (local file or S3 object).
If the dataset cannot be read, a small built-in sample is inserted instead.
The demo user is created and its first favorites are seeded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := "branded_food.csv"
		if len(args) == 1 {
			source = args[0]
		}
		ctx := cmd.Context()

		db, err := openMigrated()
		if err != nil {
			return err
		}
		defer config.CloseDB(db)

		var remote services.ObjectOpener
		if strings.HasPrefix(source, "s3://") {
			s3o, err := utils.NewS3Opener(ctx, cfg.AWSRegion)
			if err != nil {
				return err
			}
			remote = s3o
		}
		im := services.NewImporter(db, remote)

		n, err := im.Import(ctx, source)
		if err != nil {
			warning("Error loading CSV data, nothing imported: %v", err)
			if n, err = im.SeedSample(ctx); err != nil {
				return err
			}
			info("Inserted %d sample food items", n)
		} else {
			success("Inserted %d records into the database", n)
		}

		user, err := services.NewUserService(db).EnsureDemoUser(ctx, demoPassword)
		if err != nil {
			return err
		}
		added, err := im.SeedFavorites(ctx, user.ID, seedFavorites)
		if err != nil {
			return err
		}
		success("Demo user %q (id %d) ready with %d new favorites", user.Username, user.ID, added)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&demoPassword, "demo-password", "demo", "Password for the demo user")
	importCmd.Flags().IntVar(&seedFavorites, "favorites", 5, "Number of foods to favorite for the demo user")
}
