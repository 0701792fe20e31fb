package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a notification recipient.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	PushToken *string   `json:"-"` // device token for push delivery; nil once revoked
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
