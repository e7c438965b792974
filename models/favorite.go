package models

import "time"

// Favorite bookmarks a food for a user. (user_id, food_id) is unique.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorites_user_food" json:"user_id"`
	FoodID    uint      `gorm:"not null;uniqueIndex:idx_favorites_user_food" json:"food_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Food Food `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// FavoriteFood is a favorite joined with its food summary.
type FavoriteFood struct {
	FoodSummary
	FavoriteID uint      `json:"favorite_id"`
	CreatedAt  time.Time `json:"created_at"`
}
