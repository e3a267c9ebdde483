package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/dtos"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/middleware"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/services"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/utils"
)

type UserController struct {
	authService services.AuthService
}

func NewUserController(authService services.AuthService) *UserController {
	return &UserController{authService: authService}
}

// EditUser updates username and/or email of the identity the gate resolved.
func (c *UserController) EditUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "Missing authenticated user")
		return
	}

	var req dtos.EditUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Validation error", err)
		return
	}

	if err := c.authService.UpdateProfile(r.Context(), user, req.Username, req.Email); err != nil {
		if errors.Is(err, utils.ErrEmailExists) {
			utils.RespondError(w, http.StatusBadRequest, "Email already taken")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update user", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.BasicResponse{Success: true})
}
