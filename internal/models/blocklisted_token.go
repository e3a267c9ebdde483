package models

import (
	"time"

	"github.com/google/uuid"
)

// BlocklistedToken represents a revoked access token. The exact token string
// is stored; a re-issued token for the same user has a different string and
// is unaffected.
type BlocklistedToken struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"` // Time when token was blocklisted
}
