package services

import (
	"path/filepath"
	"testing"

	"github.com/arinkulshi/diet-recommendation-tool/config"
	"github.com/arinkulshi/diet-recommendation-tool/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err, "open sqlite")
	t.Cleanup(func() {
		_ = config.CloseDB(db)
	})
	require.NoError(t, config.Migrate(db), "migrate")
	return db
}

type foodFixture struct {
	name        string
	owner       string
	ingredients string
	category    string
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func insertFoods(t *testing.T, db *gorm.DB, fixtures ...foodFixture) []models.Food {
	t.Helper()
	foods := make([]models.Food, 0, len(fixtures))
	for _, f := range fixtures {
		foods = append(foods, models.Food{
			BrandName:           strPtr(f.name),
			BrandOwner:          strPtr(f.owner),
			Ingredients:         strPtr(f.ingredients),
			BrandedFoodCategory: strPtr(f.category),
			Calories:            floatPtr(100),
			Protein:             floatPtr(5),
			TotalFat:            floatPtr(2),
			Carbohydrates:       floatPtr(20),
		})
	}
	require.NoError(t, db.Create(&foods).Error)
	return foods
}

func insertUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	u := models.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u
}
