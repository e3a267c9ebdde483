package dtos

import "github.com/joanna-bieganowska/Profilaktykarz/internal/models"

// UserView is the public projection of a user; the password digest is never
// part of a response.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func NewUserView(u *models.User) UserView {
	return UserView{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
	}
}

// EditUserRequest carries optional profile changes; empty fields are left
// untouched. The userID field is accepted for wire compatibility but the
// edited identity is always the one the auth gate resolved.
type EditUserRequest struct {
	UserID   string `json:"userID" validate:"omitempty,max=36"`
	Username string `json:"username" validate:"omitempty,min=2,max=32"`
	Email    string `json:"email" validate:"omitempty,min=4,max=64"`
}
