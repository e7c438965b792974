package services

import (
	"context"
	"fmt"

	"github.com/arinkulshi/diet-recommendation-tool/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns the distinct category labels in alphabetical order.
func (s *CategoryService) List(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := s.db.WithContext(ctx).
		Model(&models.Food{}).
		Distinct().
		Where("branded_food_category IS NOT NULL AND branded_food_category <> ''").
		Order("branded_food_category").
		Pluck("branded_food_category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
