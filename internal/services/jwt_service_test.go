package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/middleware"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/models"
)

var jwtTestSecret = []byte("codec-test-secret")

func codecTestUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "tester",
		Email:    "a@b.com",
	}
}

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	user := codecTestUser()
	svc := NewJWTService(jwtTestSecret, 90*time.Minute)

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := middleware.ValidateToken(token, jwtTestSecret)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Email, claims.Email)
}

func TestGenerateAccessToken_EmbedsExpiry(t *testing.T) {
	user := codecTestUser()
	svc := NewJWTService(jwtTestSecret, 90*time.Minute)

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := middleware.ValidateToken(token, jwtTestSecret)
	require.NoError(t, err)

	expected := time.Now().Add(90 * time.Minute)
	require.WithinDuration(t, expected, claims.ExpiresAt, 5*time.Second)
}

func TestValidateToken_Expired(t *testing.T) {
	user := codecTestUser()
	svc := NewJWTService(jwtTestSecret, -time.Millisecond)

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = middleware.ValidateToken(token, jwtTestSecret)
	require.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	user := codecTestUser()
	svc := NewJWTService(jwtTestSecret, time.Hour)

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = middleware.ValidateToken(token, []byte("some-other-secret"))
	require.Error(t, err)
}

func TestValidateToken_RejectsUnsignedAlgorithm(t *testing.T) {
	user := codecTestUser()
	claims := jwt.MapClaims{
		"id":    user.ID.String(),
		"email": user.Email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = middleware.ValidateToken(token, jwtTestSecret)
	require.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := middleware.ValidateToken("definitely.not.a-jwt", jwtTestSecret)
	require.Error(t, err)
}

func TestValidateToken_MissingClaims(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtTestSecret)
	require.NoError(t, err)

	_, err = middleware.ValidateToken(token, jwtTestSecret)
	require.Error(t, err)
}
