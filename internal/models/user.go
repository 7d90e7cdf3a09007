package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account created through registration. There is no login flow:
// the session id issued at registration is the only credential a user ever
// holds, carried back on every request in the sessionId cookie.
type User struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	SessionID uuid.UUID `gorm:"type:varchar(36);index;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
