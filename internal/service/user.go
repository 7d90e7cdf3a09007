package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dailydiet/daily-diet-api/internal/models"
)

// ErrEmailTaken is returned when registration reuses an existing email.
var ErrEmailTaken = errors.New("email already registered")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a user with a fresh id and session id. The email check
// and the insert are separate statements; the unique index on email backs
// the check up if two registrations race.
func (s *UserService) Register(ctx context.Context, name, email string) (*models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	user := models.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		SessionID: uuid.New(),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}
