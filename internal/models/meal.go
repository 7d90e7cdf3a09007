package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal is a single logged meal. Date and Hour are stored as text exactly as
// submitted ("YYYY-MM-DD" and "HH:mm"); chronological ordering is the lexical
// ordering of those columns. A user cannot log the same meal name twice at
// the same date and hour.
type Meal struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"not null;uniqueIndex:idx_meals_name_date_hour_user" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Date        string    `gorm:"not null;uniqueIndex:idx_meals_name_date_hour_user" json:"date"`
	Hour        string    `gorm:"not null;uniqueIndex:idx_meals_name_date_hour_user" json:"hour"`
	IsOnDiet    bool      `gorm:"not null" json:"is_on_diet"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_meals_name_date_hour_user" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
