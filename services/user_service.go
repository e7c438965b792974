package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/arinkulshi/diet-recommendation-tool/models"
	"github.com/arinkulshi/diet-recommendation-tool/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DemoUsername = "demo_user"
	DemoEmail    = "demo@example.com"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

func (s *UserService) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check user %d: %w", id, err)
	}
	return n > 0, nil
}

// EnsureDemoUser creates the single demo account if it does not exist yet
// and returns it.
func (s *UserService) EnsureDemoUser(ctx context.Context, password string) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{Username: DemoUsername, Email: DemoEmail, PasswordHash: hash}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create demo user: %w", err)
	}

	var existing models.User
	if err := s.db.WithContext(ctx).Where("username = ?", DemoUsername).First(&existing).Error; err != nil {
		return nil, fmt.Errorf("load demo user: %w", err)
	}
	return &existing, nil
}
