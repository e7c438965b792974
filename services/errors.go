package services

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrFoodNotFound     = errors.New("food not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// DuplicateFavoriteError is returned when the (user, food) pair is already
// favorited. FavoriteID identifies the existing row.
type DuplicateFavoriteError struct {
	FavoriteID uint
}

func (e *DuplicateFavoriteError) Error() string {
	return fmt.Sprintf("food is already in favorites (favorite %d)", e.FavoriteID)
}
