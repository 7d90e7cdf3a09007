package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dailydiet/daily-diet-api/internal/models"
)

// ErrMealNotFound is returned when an owner-scoped lookup matches no row.
// A meal belonging to somebody else yields the same error as a meal that
// does not exist, so ids never leak across users.
var ErrMealNotFound = errors.New("meal not found")

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// MealInput carries the mutable fields shared by create and update.
type MealInput struct {
	Name        string
	Description string
	Date        string
	Hour        string
	IsOnDiet    bool
}

// Metrics summarizes a user's diet adherence.
type Metrics struct {
	TotalMeals       int `json:"totalMeals"`
	TotalOnDiet      int `json:"totalOnDiet"`
	TotalOutsideDiet int `json:"totalOutsideDiet"`
	BetterDietStreak int `json:"betterDietStreak"`
}

func (s *MealService) Create(ctx context.Context, userID uuid.UUID, input MealInput) (*models.Meal, error) {
	meal := models.Meal{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Date:        input.Date,
		Hour:        input.Hour,
		IsOnDiet:    input.IsOnDiet,
		UserID:      userID,
	}
	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}
	return &meal, nil
}

// List returns the user's meals in chronological order. Date and hour are
// text columns, so the ordering is lexical.
func (s *MealService) List(ctx context.Context, userID uuid.UUID) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date, hour").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	return meals, nil
}

func (s *MealService) Get(ctx context.Context, userID, mealID uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, fmt.Errorf("failed to load meal: %w", err)
	}
	return &meal, nil
}

// Update overwrites every mutable field of an owned meal. The map form
// forces is_on_diet to be written even when it is false.
func (s *MealService) Update(ctx context.Context, userID, mealID uuid.UUID, input MealInput) error {
	meal, err := s.Get(ctx, userID, mealID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Model(meal).Updates(map[string]interface{}{
		"name":        input.Name,
		"description": input.Description,
		"date":        input.Date,
		"hour":        input.Hour,
		"is_on_diet":  input.IsOnDiet,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update meal: %w", err)
	}
	return nil
}

func (s *MealService) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete meal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

// ComputeMetrics aggregates the user's whole meal history. The streak
// counter increments on every on-diet meal and resets on every off-diet
// meal; the reported value is the counter after the chronologically last
// meal, i.e. the trailing run of on-diet meals.
func (s *MealService) ComputeMetrics(ctx context.Context, userID uuid.UUID) (*Metrics, error) {
	meals, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	metrics := &Metrics{TotalMeals: len(meals)}
	for _, meal := range meals {
		if meal.IsOnDiet {
			metrics.TotalOnDiet++
			metrics.BetterDietStreak++
		} else {
			metrics.TotalOutsideDiet++
			metrics.BetterDietStreak = 0
		}
	}

	return metrics, nil
}
