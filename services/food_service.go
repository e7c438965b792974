package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arinkulshi/diet-recommendation-tool/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const summaryColumns = "id, brand_name, brand_owner, calories, protein, total_fat AS fat, " +
	"carbohydrates, serving_size, serving_size_unit, branded_food_category"

const DefaultPageSize = 20

type SearchParams struct {
	Query    string
	Category string
	Limit    int
	Offset   int
}

type SearchResult struct {
	Results []models.FoodSummary `json:"results"`
	Total   int64                `json:"total"`
}

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// Search returns one page of foods matching p, best match first, together
// with the number of matches across all pages.
func (s *FoodService) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	filter := s.filter(p)

	var total int64
	if err := filter(s.db.WithContext(ctx).Model(&models.Food{})).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count foods: %w", err)
	}

	q := filter(s.db.WithContext(ctx).Model(&models.Food{}).Select(summaryColumns))
	if p.Query != "" {
		q = q.Order(s.rankExpr(p.Query))
	} else {
		q = q.Order("brand_name ASC, id ASC")
	}

	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	results := make([]models.FoodSummary, 0, p.Limit)
	if err := q.Limit(p.Limit).Offset(p.Offset).Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	return &SearchResult{Results: results, Total: total}, nil
}

// filter builds the WHERE predicate shared by the page query and the count
// query so the reported total always matches the orderable set.
func (s *FoodService) filter(p SearchParams) func(*gorm.DB) *gorm.DB {
	like := s.likeOp()
	return func(tx *gorm.DB) *gorm.DB {
		if p.Query != "" {
			esc := escapeLike(p.Query)
			tx = tx.Where(
				"(brand_name = ? OR brand_name "+like+" ? ESCAPE '\\' OR brand_name "+like+" ? ESCAPE '\\'"+
					" OR brand_owner = ? OR brand_owner "+like+" ? ESCAPE '\\'"+
					" OR ingredients "+like+" ? ESCAPE '\\')",
				p.Query, esc+"%", "%"+esc+"%",
				p.Query, esc+"%",
				"%"+esc+"%",
			)
		}
		if p.Category != "" {
			tx = tx.Where("branded_food_category "+like+" ? ESCAPE '\\'", "%"+escapeLike(p.Category)+"%")
		}
		return tx
	}
}

// rankExpr orders matches by relevance tier, 1 being the strongest, then by
// id. Both keys live in one expression: chaining a second Order would
// replace it.
func (s *FoodService) rankExpr(query string) clause.OrderBy {
	like := s.likeOp()
	esc := escapeLike(query)
	sql := "CASE" +
		" WHEN brand_name = ? THEN 1" +
		" WHEN brand_name " + like + " ? ESCAPE '\\' THEN 2" +
		" WHEN brand_owner = ? THEN 3" +
		" WHEN brand_owner " + like + " ? ESCAPE '\\' THEN 4" +
		" WHEN brand_name " + like + " ? ESCAPE '\\' THEN 5" +
		" WHEN brand_owner " + like + " ? ESCAPE '\\' THEN 6" +
		" WHEN ingredients " + like + " ? ESCAPE '\\' THEN 7" +
		" ELSE 8 END, id ASC"
	return clause.OrderBy{Expression: clause.Expr{
		SQL: sql,
		Vars: []interface{}{
			query,
			esc + "%",
			query,
			esc + "%",
			"%" + esc + "%",
			"%" + esc + "%",
			"%" + esc + "%",
		},
		WithoutParentheses: true,
	}}
}

// likeOp keeps substring matching case-insensitive on both drivers; SQLite
// LIKE already folds ASCII case.
func (s *FoodService) likeOp() string {
	if s.db.Dialector != nil && s.db.Dialector.Name() == "postgres" {
		return "ILIKE"
	}
	return "LIKE"
}

// Get returns the full record for id.
func (s *FoodService) Get(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, fmt.Errorf("get food %d: %w", id, err)
	}
	return &food, nil
}

func (s *FoodService) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Food{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check food %d: %w", id, err)
	}
	return n > 0, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
