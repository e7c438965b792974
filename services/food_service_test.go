package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(res *SearchResult) []string {
	out := make([]string, 0, len(res.Results))
	for _, r := range res.Results {
		out = append(out, r.DisplayName())
	}
	return out
}

func TestSearch_RanksByMatchTier(t *testing.T) {
	db := openTestDB(t)
	insertFoods(t, db,
		foodFixture{name: "Corn Flakes", ingredients: "milled corn, kellogg malt flavor"},
		foodFixture{name: "Frosted Mini", owner: "Kellogg Company"},
		foodFixture{name: "Best of Kellogg"},
		foodFixture{name: "Kellogg"},
		foodFixture{name: "Kelloggs Raisin Bran"},
		foodFixture{name: "Snack", owner: "Kellogg"},
		foodFixture{name: "Cereal", owner: "The Kellogg Group"},
		foodFixture{name: "Unrelated", owner: "General Mills", ingredients: "oats"},
	)

	res, err := NewFoodService(db).Search(context.Background(), SearchParams{Query: "Kellogg", Limit: 20})
	require.NoError(t, err)

	// an owner substring alone is not a match, so "Cereal" is left out
	assert.Equal(t, []string{
		"Kellogg",              // 1 exact brand name
		"Kelloggs Raisin Bran", // 2 brand name prefix
		"Snack",                // 3 exact brand owner
		"Frosted Mini",         // 4 brand owner prefix
		"Best of Kellogg",      // 5 brand name substring
		"Corn Flakes",          // 7 ingredients
	}, names(res))
	assert.EqualValues(t, 6, res.Total)
	assert.NotContains(t, names(res), "Cereal")
}

func TestSearch_OwnerSubstringOrdersIngredientMatches(t *testing.T) {
	db := openTestDB(t)
	// tier 6 only applies to rows admitted by another condition, here ingredients
	insertFoods(t, db,
		foodFixture{name: "Corn Flakes", ingredients: "kellogg malt flavor"},
		foodFixture{name: "Cereal", owner: "The Kellogg Group", ingredients: "kellogg oats"},
	)

	res, err := NewFoodService(db).Search(context.Background(), SearchParams{Query: "Kellogg", Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cereal", "Corn Flakes"}, names(res))
	assert.EqualValues(t, 2, res.Total)
}

func TestSearch_ExactBeforeSubstring(t *testing.T) {
	db := openTestDB(t)
	// inserted first so id order alone would put the substring match ahead
	insertFoods(t, db,
		foodFixture{name: "Greek Yogurt Plain"},
		foodFixture{name: "Plain Yogurt"},
		foodFixture{name: "Yogurt"},
	)

	res, err := NewFoodService(db).Search(context.Background(), SearchParams{Query: "Yogurt", Limit: 20})
	require.NoError(t, err)
	require.Len(t, res.Results, 3)
	assert.Equal(t, "Yogurt", res.Results[0].DisplayName())
}

func TestSearch_TiesBreakByID(t *testing.T) {
	db := openTestDB(t)
	foods := insertFoods(t, db,
		foodFixture{name: "Oat Crunch"},
		foodFixture{name: "Oat Bran"},
		foodFixture{name: "Oat Milk"},
	)

	res, err := NewFoodService(db).Search(context.Background(), SearchParams{Query: "Oat", Limit: 20})
	require.NoError(t, err)
	require.Len(t, res.Results, 3)
	for i, f := range foods {
		assert.Equal(t, f.ID, res.Results[i].ID)
	}
}

func TestSearch_EmptyQueryOrdersByBrandName(t *testing.T) {
	db := openTestDB(t)
	insertFoods(t, db,
		foodFixture{name: "Walnuts"},
		foodFixture{name: "Almond Milk"},
		foodFixture{name: "Brown Rice"},
	)

	res, err := NewFoodService(db).Search(context.Background(), SearchParams{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"Almond Milk", "Brown Rice", "Walnuts"}, names(res))
	assert.EqualValues(t, 3, res.Total)
}

func TestSearch_PaginationKeepsTotal(t *testing.T) {
	db := openTestDB(t)
	fixtures := make([]foodFixture, 0, 50)
	for i := 0; i < 45; i++ {
		fixtures = append(fixtures, foodFixture{name: fmt.Sprintf("Granola %02d", i), category: "Cereal"})
	}
	for i := 0; i < 5; i++ {
		fixtures = append(fixtures, foodFixture{name: fmt.Sprintf("Juice %02d", i), category: "Beverages"})
	}
	insertFoods(t, db, fixtures...)
	svc := NewFoodService(db)
	ctx := context.Background()

	first, err := svc.Search(ctx, SearchParams{Query: "Granola", Limit: 20, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, first.Results, 20)
	assert.EqualValues(t, 45, first.Total)

	last, err := svc.Search(ctx, SearchParams{Query: "Granola", Limit: 20, Offset: 40})
	require.NoError(t, err)
	assert.Len(t, last.Results, 5)
	assert.EqualValues(t, 45, last.Total)

	byCategory, err := svc.Search(ctx, SearchParams{Category: "Cere", Limit: 20, Offset: 20})
	require.NoError(t, err)
	assert.Len(t, byCategory.Results, 20)
	assert.EqualValues(t, 45, byCategory.Total)

	seen := map[uint]bool{}
	for offset := 0; offset < 45; offset += 20 {
		page, err := svc.Search(ctx, SearchParams{Query: "Granola", Limit: 20, Offset: offset})
		require.NoError(t, err)
		for _, r := range page.Results {
			assert.False(t, seen[r.ID], "food %d returned on two pages", r.ID)
			seen[r.ID] = true
		}
	}
	assert.Len(t, seen, 45)
}

func TestSearch_CategoryFilterAppliesWithQuery(t *testing.T) {
	db := openTestDB(t)
	insertFoods(t, db,
		foodFixture{name: "Chocolate Milk", category: "Dairy Drinks"},
		foodFixture{name: "Chocolate Bar", category: "Candy"},
		foodFixture{name: "Vanilla Milk", category: "Dairy Drinks"},
	)

	res, err := NewFoodService(db).Search(context.Background(), SearchParams{Query: "Chocolate", Category: "Dairy", Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"Chocolate Milk"}, names(res))
	assert.EqualValues(t, 1, res.Total)
}

func TestSearch_CategoryFilterIgnoresCase(t *testing.T) {
	db := openTestDB(t)
	insertFoods(t, db,
		foodFixture{name: "Chocolate Milk", category: "Dairy Drinks"},
		foodFixture{name: "Chocolate Bar", category: "Candy"},
	)

	res, err := NewFoodService(db).Search(context.Background(), SearchParams{Category: "dairy drink", Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"Chocolate Milk"}, names(res))
	assert.EqualValues(t, 1, res.Total)
}

func TestSearch_WildcardsMatchLiterally(t *testing.T) {
	db := openTestDB(t)
	insertFoods(t, db,
		foodFixture{name: "100% Juice"},
		foodFixture{name: "1000 Island Dressing"},
	)

	res, err := NewFoodService(db).Search(context.Background(), SearchParams{Query: "100%", Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Juice"}, names(res))
}

func TestSearch_NoMatches(t *testing.T) {
	db := openTestDB(t)
	insertFoods(t, db, foodFixture{name: "Apple"})

	res, err := NewFoodService(db).Search(context.Background(), SearchParams{Query: "zzz", Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, res.Results)
	assert.NotNil(t, res.Results)
	assert.EqualValues(t, 0, res.Total)
}

func TestGetFood(t *testing.T) {
	db := openTestDB(t)
	foods := insertFoods(t, db, foodFixture{name: "Avocado", owner: "Farm Co", ingredients: "avocado"})
	svc := NewFoodService(db)
	ctx := context.Background()

	a, err := svc.Get(ctx, foods[0].ID)
	require.NoError(t, err)
	b, err := svc.Get(ctx, foods[0].ID)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	require.NotNil(t, a.BrandName)
	assert.Equal(t, "Avocado", *a.BrandName)

	_, err = svc.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrFoodNotFound)
}
