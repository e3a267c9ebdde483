package models

import (
	"time"

	"github.com/google/uuid"
)

// MedicalInfo holds one user's reported medical profile: birth date, gender
// and the selected factor ids (own and family history).
type MedicalInfo struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	BirthDate       time.Time `json:"birth_date"`
	Gender          string    `json:"gender"` // "K" or "M"
	UserFactorIDs   []int     `json:"user_factor_ids"`
	FamilyFactorIDs []int     `json:"family_factor_ids"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
