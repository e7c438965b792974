package models

// Food is a branded food record loaded from the FoodData Central export.
// Rows are reference data: the API reads them, only the importer writes them.
type Food struct {
	ID                       uint     `gorm:"primaryKey" json:"id"`
	FdcID                    *string  `gorm:"column:fdc_id" json:"fdc_id"`
	BrandOwner               *string  `json:"brand_owner"`
	BrandName                *string  `gorm:"index:idx_food_name" json:"brand_name"`
	SubbrandName             *string  `json:"subbrand_name"`
	GtinUpc                  *string  `gorm:"column:gtin_upc" json:"gtin_upc"`
	Ingredients              *string  `json:"ingredients"`
	NotASignificantSourceOf  *string  `gorm:"column:not_a_significant_source_of" json:"not_a_significant_source_of"`
	ServingSize              *float64 `json:"serving_size"`
	ServingSizeUnit          *string  `json:"serving_size_unit"`
	HouseholdServingFulltext *string  `json:"household_serving_fulltext"`
	BrandedFoodCategory      *string  `gorm:"index:idx_food_category" json:"branded_food_category"`
	DataSource               *string  `json:"data_source"`
	PackageWeight            *string  `json:"package_weight"`
	ModifiedDate             *string  `json:"modified_date"`
	AvailableDate            *string  `json:"available_date"`
	MarketCountry            *string  `json:"market_country"`
	DiscontinuedDate         *string  `json:"discontinued_date"`
	PreparationStateCode     *string  `json:"preparation_state_code"`
	TradeChannel             *string  `json:"trade_channel"`
	ShortDescription         *string  `json:"short_description"`
	MaterialCode             *string  `json:"material_code"`
	Calories                 *float64 `json:"calories"`
	Protein                  *float64 `json:"protein"`
	TotalFat                 *float64 `json:"total_fat"`
	Carbohydrates            *float64 `json:"carbohydrates"`
	Fiber                    *float64 `json:"fiber"`
	Sugars                   *float64 `json:"sugars"`
	Sodium                   *float64 `json:"sodium"`
}

func (Food) TableName() string { return "foods" }

// FoodSummary is the trimmed projection used by search results and favorites.
type FoodSummary struct {
	ID                  uint     `json:"id"`
	BrandName           *string  `json:"brand_name"`
	BrandOwner          *string  `json:"brand_owner"`
	Calories            *float64 `json:"calories"`
	Protein             *float64 `json:"protein"`
	Fat                 *float64 `json:"fat"`
	Carbohydrates       *float64 `json:"carbohydrates"`
	ServingSize         *float64 `json:"serving_size"`
	ServingSizeUnit     *string  `json:"serving_size_unit"`
	BrandedFoodCategory *string  `json:"branded_food_category"`
}

// DisplayName prefers the brand name and falls back to the owner.
func (f FoodSummary) DisplayName() string {
	if f.BrandName != nil && *f.BrandName != "" {
		return *f.BrandName
	}
	if f.BrandOwner != nil {
		return *f.BrandOwner
	}
	return ""
}
