package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arinkulshi/diet-recommendation-tool/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const importBatchSize = 500

// ObjectOpener fetches remote dataset objects such as s3://bucket/key.
type ObjectOpener interface {
	Open(ctx context.Context, url string) (io.ReadCloser, error)
}

type Importer struct {
	db     *gorm.DB
	remote ObjectOpener
}

// NewImporter wires the importer; remote may be nil when only local files
// are imported.
func NewImporter(db *gorm.DB, remote ObjectOpener) *Importer {
	return &Importer{db: db, remote: remote}
}

// Import loads a branded-food CSV from a local path or s3:// URL and
// returns the number of rows inserted.
func (im *Importer) Import(ctx context.Context, source string) (int, error) {
	rc, err := im.open(ctx, source)
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	return im.ImportCSV(ctx, rc)
}

func (im *Importer) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "s3://") {
		if im.remote == nil {
			return nil, fmt.Errorf("no S3 client configured for %s", source)
		}
		return im.remote.Open(ctx, source)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	return f, nil
}

// ImportCSV reads rows by header name; unknown columns are ignored and
// missing ones stay NULL. The load is atomic: on any error nothing is kept.
func (im *Importer) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}

	inserted := 0
	err = im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		batch := make([]models.Food, 0, importBatchSize)
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if err := tx.CreateInBatches(&batch, importBatchSize).Error; err != nil {
				return fmt.Errorf("insert foods: %w", err)
			}
			inserted += len(batch)
			batch = batch[:0]
			return nil
		}

		for {
			rec, err := cr.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return fmt.Errorf("read csv row %d: %w", inserted+len(batch)+2, err)
			}
			batch = append(batch, foodFromRow(cols, rec))
			if len(batch) == importBatchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		return flush()
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func foodFromRow(cols map[string]int, rec []string) models.Food {
	str := func(name string) *string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return nil
		}
		v := strings.TrimSpace(rec[i])
		if v == "" {
			return nil
		}
		return &v
	}
	num := func(name string) *float64 {
		s := str(name)
		if s == nil {
			return nil
		}
		f, err := strconv.ParseFloat(*s, 64)
		if err != nil {
			return nil
		}
		return &f
	}
	return models.Food{
		FdcID:                    str("fdc_id"),
		BrandOwner:               str("brand_owner"),
		BrandName:                str("brand_name"),
		SubbrandName:             str("subbrand_name"),
		GtinUpc:                  str("gtin_upc"),
		Ingredients:              str("ingredients"),
		NotASignificantSourceOf:  str("not_a_significant_source_of"),
		ServingSize:              num("serving_size"),
		ServingSizeUnit:          str("serving_size_unit"),
		HouseholdServingFulltext: str("household_serving_fulltext"),
		BrandedFoodCategory:      str("branded_food_category"),
		DataSource:               str("data_source"),
		PackageWeight:            str("package_weight"),
		ModifiedDate:             str("modified_date"),
		AvailableDate:            str("available_date"),
		MarketCountry:            str("market_country"),
		DiscontinuedDate:         str("discontinued_date"),
		PreparationStateCode:     str("preparation_state_code"),
		TradeChannel:             str("trade_channel"),
		ShortDescription:         str("short_description"),
		MaterialCode:             str("material_code"),
		Calories:                 num("calories"),
		Protein:                  num("protein"),
		TotalFat:                 num("total_fat"),
		Carbohydrates:            num("carbohydrates"),
		Fiber:                    num("fiber"),
		Sugars:                   num("sugars"),
		Sodium:                   num("sodium"),
	}
}

type sampleFood struct {
	name                                                string
	calories, protein, fat, carbs, fiber, sugars, sodium float64
}

var sampleFoods = []sampleFood{
	{"Generic Oatmeal", 150, 5, 3, 27, 4, 1, 0},
	{"Protein Bar Plus", 220, 20, 9, 23, 3, 5, 140},
	{"Plain Greek Yogurt", 120, 15, 0, 9, 0, 9, 80},
	{"Chicken Breast", 165, 31, 3.6, 0, 0, 0, 74},
	{"Mixed Vegetables", 50, 2, 0, 10, 4, 4, 50},
	{"Whole Wheat Bread", 80, 4, 1, 15, 3, 2, 160},
	{"Atlantic Salmon", 206, 22, 13, 0, 0, 0, 60},
	{"Brown Rice", 215, 5, 1.8, 45, 3.5, 0, 10},
	{"Avocado", 240, 3, 22, 12, 10, 1, 10},
	{"Almond Milk", 40, 1, 3, 2, 0, 0, 150},
}

// SeedSample inserts the built-in sample foods used when no dataset is
// available.
func (im *Importer) SeedSample(ctx context.Context) (int, error) {
	foods := make([]models.Food, 0, len(sampleFoods))
	for _, s := range sampleFoods {
		s := s
		foods = append(foods, models.Food{
			BrandName:     &s.name,
			Calories:      &s.calories,
			Protein:       &s.protein,
			TotalFat:      &s.fat,
			Carbohydrates: &s.carbs,
			Fiber:         &s.fiber,
			Sugars:        &s.sugars,
			Sodium:        &s.sodium,
		})
	}
	if err := im.db.WithContext(ctx).Create(&foods).Error; err != nil {
		return 0, fmt.Errorf("insert sample foods: %w", err)
	}
	return len(foods), nil
}

// SeedFavorites favorites the first n foods for userID, skipping pairs that
// already exist.
func (im *Importer) SeedFavorites(ctx context.Context, userID uint, n int) (int, error) {
	var ids []uint
	if err := im.db.WithContext(ctx).Model(&models.Food{}).Order("id").Limit(n).Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("list seed foods: %w", err)
	}
	added := 0
	for _, id := range ids {
		res := im.db.WithContext(ctx).
			Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Favorite{UserID: userID, FoodID: id})
		if res.Error != nil {
			return added, fmt.Errorf("seed favorite for food %d: %w", id, res.Error)
		}
		added += int(res.RowsAffected)
	}
	return added, nil
}
