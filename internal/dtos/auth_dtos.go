package dtos

// ----------------------
// Requests
// ----------------------

// Email is validated by length only; enforcing an RFC-format check would
// reject addresses the deployed API has always accepted.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=32"`
	Email    string `json:"email" validate:"required,min=4,max=64"`
	Password string `json:"password" validate:"required,min=4,max=16"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,min=4,max=64"`
	Password string `json:"password" validate:"required,min=4,max=16"`
}

// ----------------------
// Responses
// ----------------------

type RegisterResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userID"`
	Msg     string `json:"msg"`
}

type LoginResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}

type BasicResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg,omitempty"`
}
