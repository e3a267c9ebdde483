package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/dtos"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/middleware"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/services"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/utils"
)

type FactorController struct {
	factorService services.FactorService
}

func NewFactorController(factorService services.FactorService) *FactorController {
	return &FactorController{factorService: factorService}
}

// birthDateLayouts covers the date shapes clients have been seen sending.
var birthDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02.01.2006",
	"02/01/2006",
	"2006/01/02",
}

func parseBirthDate(s string) (time.Time, error) {
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

// ---------------------------------------------------------------------
// GetFactors
// ---------------------------------------------------------------------
func (c *FactorController) GetFactors(w http.ResponseWriter, r *http.Request) {
	family, user, err := c.factorService.ListFactors(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to list factors", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.FactorsResponse{
		Success: true,
		Data: dtos.FactorsData{
			FamilyFactors: dtos.NewFactorViews(family),
			UserFactors:   dtos.NewFactorViews(user),
		},
	})
}

// ---------------------------------------------------------------------
// UpdateFactors
// ---------------------------------------------------------------------
func (c *FactorController) UpdateFactors(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "Missing authenticated user")
		return
	}

	var req dtos.UpdateMedicalInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Validation error", err)
		return
	}

	if req.Gender != "K" && req.Gender != "M" {
		utils.RespondError(w, http.StatusBadRequest, "Incorrect value passed as gender.")
		return
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Incorrect value passed as birthDate.")
		return
	}

	err = c.factorService.UpdateMedicalInfo(
		r.Context(),
		user.ID,
		birthDate,
		req.Gender,
		req.UserFactors,
		req.FamilyFactors,
	)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrUnknownUserFactor):
			utils.RespondError(w, http.StatusBadRequest, "Incorrect values passed as user factors.")
		case errors.Is(err, utils.ErrUnknownFamilyFactor):
			utils.RespondError(w, http.StatusBadRequest, "Incorrect values passed as family factors.")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update medical info", err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.BasicResponse{
		Success: true,
		Msg:     "Medical info updated successfully",
	})
}
