package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity record. JWTAuthActive tracks whether the user has a
// live session: set on login, cleared on logout.
type User struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	JWTAuthActive bool      `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
