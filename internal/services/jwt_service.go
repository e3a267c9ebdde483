package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/models"
)

// JWTService mints access tokens. Verification lives in the middleware
// package next to the auth gate that consumes it.
type JWTService interface {
	GenerateAccessToken(user *models.User) (string, error)
}

type jwtService struct {
	secret      []byte
	tokenExpiry time.Duration
}

func NewJWTService(secret []byte, tokenExpiry time.Duration) JWTService {
	return &jwtService{
		secret:      secret,
		tokenExpiry: tokenExpiry,
	}
}

// GenerateAccessToken signs {id, email, exp} with the process-wide secret.
// Rotating the secret invalidates all outstanding tokens.
func (j *jwtService) GenerateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID.String(),
		"email": user.Email,
		"exp":   time.Now().Add(j.tokenExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}
