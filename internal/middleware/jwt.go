package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is what a verified access token carries.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// ValidateToken checks the token's signature, algorithm and standard claims.
// Only HMAC-signed tokens are accepted; anything else is a decode failure.
// The auth gate treats every error from here uniformly, so callers should not
// branch on the reason.
func ValidateToken(tokenString string, secret []byte) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("missing expiration claim")
	}
	expiresAt := time.Unix(int64(exp), 0)
	if expiresAt.Before(time.Now()) {
		return nil, jwt.ErrTokenExpired
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return nil, errors.New("missing id claim")
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, errors.New("malformed id claim")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, errors.New("missing email claim")
	}

	return &TokenClaims{
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt,
	}, nil
}
