package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/arinkulshi/diet-recommendation-tool/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const favoriteColumns = "f.id, f.brand_name, f.brand_owner, f.calories, f.protein, " +
	"f.total_fat AS fat, f.carbohydrates, f.serving_size, f.serving_size_unit, " +
	"f.branded_food_category, fav.id AS favorite_id, fav.created_at"

// FavoriteEvent is pushed to a user's realtime subscribers.
type FavoriteEvent struct {
	Kind       string               `json:"kind"` // "favorite.added" | "favorite.removed"
	FavoriteID uint                 `json:"favorite_id"`
	Favorite   *models.FavoriteFood `json:"favorite,omitempty"`
}

type FavoriteService struct {
	db    *gorm.DB
	users *UserService
	foods *FoodService
	hub   *RealtimeHub
}

// NewFavoriteService wires the service; hub may be nil.
func NewFavoriteService(db *gorm.DB, users *UserService, foods *FoodService, hub *RealtimeHub) *FavoriteService {
	return &FavoriteService{db: db, users: users, foods: foods, hub: hub}
}

func (s *FavoriteService) joined(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("favorites fav").
		Joins("JOIN foods f ON fav.food_id = f.id").
		Select(favoriteColumns)
}

// List returns the user's favorites, newest first.
func (s *FavoriteService) List(ctx context.Context, userID uint) ([]models.FavoriteFood, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	favorites := []models.FavoriteFood{}
	if err := s.joined(ctx).
		Where("fav.user_id = ?", userID).
		Order("fav.created_at DESC, fav.id DESC").
		Scan(&favorites).Error; err != nil {
		return nil, fmt.Errorf("db error fetching favorites: %w", err)
	}
	return favorites, nil
}

// Add favorites foodID for userID. The insert relies on the unique
// (user_id, food_id) index, so concurrent adds can never create two rows;
// the loser gets a *DuplicateFavoriteError.
func (s *FavoriteService) Add(ctx context.Context, userID, foodID uint) (*models.FavoriteFood, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	ok, err = s.foods.Exists(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrFoodNotFound
	}

	fav := models.Favorite{UserID: userID, FoodID: foodID}
	res := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "food_id"}},
			DoNothing: true,
		}).
		Create(&fav)
	if res.Error != nil {
		return nil, fmt.Errorf("insert favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var existing models.Favorite
		if err := s.db.WithContext(ctx).
			Where("user_id = ? AND food_id = ?", userID, foodID).
			First(&existing).Error; err != nil {
			return nil, fmt.Errorf("load existing favorite: %w", err)
		}
		return nil, &DuplicateFavoriteError{FavoriteID: existing.ID}
	}

	out, err := s.get(ctx, fav.ID)
	if err != nil {
		return nil, err
	}
	s.publish(userID, FavoriteEvent{Kind: "favorite.added", FavoriteID: out.FavoriteID, Favorite: out})
	return out, nil
}

// Remove deletes favoriteID if it belongs to userID.
func (s *FavoriteService) Remove(ctx context.Context, userID, favoriteID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", favoriteID, userID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return fmt.Errorf("delete favorite %d: %w", favoriteID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	s.publish(userID, FavoriteEvent{Kind: "favorite.removed", FavoriteID: favoriteID})
	return nil
}

func (s *FavoriteService) get(ctx context.Context, favoriteID uint) (*models.FavoriteFood, error) {
	var out models.FavoriteFood
	res := s.joined(ctx).Where("fav.id = ?", favoriteID).Limit(1).Scan(&out)
	if res.Error != nil {
		return nil, fmt.Errorf("load favorite %d: %w", favoriteID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrFavoriteNotFound
	}
	return &out, nil
}

func (s *FavoriteService) publish(userID uint, ev FavoriteEvent) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(userID, ev)
}

// IsDuplicate reports whether err is a duplicate-favorite conflict and
// returns the existing favorite id.
func IsDuplicate(err error) (uint, bool) {
	var dup *DuplicateFavoriteError
	if errors.As(err, &dup) {
		return dup.FavoriteID, true
	}
	return 0, false
}
