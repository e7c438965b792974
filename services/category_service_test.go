package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	db := openTestDB(t)
	insertFoods(t, db,
		foodFixture{name: "A", category: "Snacks"},
		foodFixture{name: "B", category: "Beverages"},
		foodFixture{name: "C", category: "Snacks"},
		foodFixture{name: "D"},
	)

	got, err := NewCategoryService(db).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Beverages", "Snacks"}, got)
}

func TestListCategories_Empty(t *testing.T) {
	db := openTestDB(t)
	got, err := NewCategoryService(db).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
