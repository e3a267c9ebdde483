package dtos

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/models"
)

// FactorIDList accepts either a JSON array of ints or a comma-separated
// string ("1,2,3"); clients historically sent both shapes.
type FactorIDList []int

func (l *FactorIDList) UnmarshalJSON(data []byte) error {
	var ids []int
	if err := json.Unmarshal(data, &ids); err == nil {
		*l = ids
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*l = nil
		return nil
	}
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	*l = ids
	return nil
}

// ----------------------
// Requests
// ----------------------

type UpdateMedicalInfoRequest struct {
	UserFactors   FactorIDList `json:"userFactors"`
	FamilyFactors FactorIDList `json:"familyFactors"`
	BirthDate     string       `json:"birthDate" validate:"required"`
	Gender        string       `json:"gender" validate:"required"`
}

// ----------------------
// Responses
// ----------------------

type FactorView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewFactorViews(factors []*models.Factor) []FactorView {
	views := make([]FactorView, 0, len(factors))
	for _, f := range factors {
		views = append(views, FactorView{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
		})
	}
	return views
}

type FactorsData struct {
	FamilyFactors []FactorView `json:"familyFactors"`
	UserFactors   []FactorView `json:"userFactors"`
}

type FactorsResponse struct {
	Success bool        `json:"success"`
	Data    FactorsData `json:"data"`
}
