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

type AuthController struct {
	authService services.AuthService
}

func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// ---------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Validation error", err)
		return
	}

	user, err := c.authService.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrEmailExists) {
			utils.RespondError(w, http.StatusBadRequest, "Email already taken")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to register user", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.RegisterResponse{
		Success: true,
		UserID:  user.ID.String(),
		Msg:     "The user was successfully registered",
	})
}

// ---------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Validation error", err)
		return
	}

	user, token, err := c.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrUnknownEmail):
			utils.RespondError(w, http.StatusBadRequest, "This email does not exist.")
		case errors.Is(err, utils.ErrWrongCredentials):
			utils.RespondError(w, http.StatusBadRequest, "Wrong credentials.")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Failed to log in", err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		Success: true,
		Token:   token,
		User:    dtos.NewUserView(user),
	})
}

// ---------------------------------------------------------------------
// Logout (behind the auth gate)
// ---------------------------------------------------------------------
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "Missing authenticated user")
		return
	}
	token := middleware.PresentedToken(r)

	if err := c.authService.Logout(r.Context(), user, token); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to log out", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.BasicResponse{Success: true})
}
