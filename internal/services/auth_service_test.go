package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/dtos"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/middleware"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/models"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/utils"
)

// ----------------------------------------------------------------------
// In-memory fakes
// ----------------------------------------------------------------------

type memUserRepo struct {
	byEmail map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*models.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, u *models.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return utils.ErrEmailExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.byEmail[email], nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(ctx context.Context, u *models.User) error {
	for email, stored := range r.byEmail {
		if stored.ID == u.ID && email != u.Email {
			if _, taken := r.byEmail[u.Email]; taken {
				return utils.ErrEmailExists
			}
			delete(r.byEmail, email)
		}
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) SetJWTAuthActive(ctx context.Context, id uuid.UUID, active bool) error {
	for _, u := range r.byEmail {
		if u.ID == id {
			u.JWTAuthActive = active
		}
	}
	return nil
}

func (r *memUserRepo) count() int { return len(r.byEmail) }

type memBlocklistRepo struct {
	tokens map[string]bool
}

func newMemBlocklistRepo() *memBlocklistRepo {
	return &memBlocklistRepo{tokens: map[string]bool{}}
}

func (r *memBlocklistRepo) Blocklist(ctx context.Context, token string) error {
	r.tokens[token] = true
	return nil
}

func (r *memBlocklistRepo) IsBlocklisted(ctx context.Context, token string) (bool, error) {
	return r.tokens[token], nil
}

func (r *memBlocklistRepo) CleanupOlderThan(ctx context.Context, cutoff time.Time) error {
	return nil
}

// ----------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------

func newTestAuthService() (AuthService, *memUserRepo, *memBlocklistRepo) {
	userRepo := newMemUserRepo()
	blocklistRepo := newMemBlocklistRepo()
	jwtService := NewJWTService(jwtTestSecret, 90*time.Minute)
	return NewAuthService(userRepo, blocklistRepo, jwtService), userRepo, blocklistRepo
}

func registerRequest() dtos.RegisterRequest {
	return dtos.RegisterRequest{
		Username: "tester",
		Email:    "a@b.com",
		Password: "pass1234",
	}
}

// ----------------------------------------------------------------------
// Tests
// ----------------------------------------------------------------------

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _ := newTestAuthService()

	created, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	// Registration never activates a session.
	require.False(t, created.JWTAuthActive)

	user, token, err := svc.Login(ctx, "a@b.com", "pass1234")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
	require.NotEmpty(t, token)

	claims, err := middleware.ValidateToken(token, jwtTestSecret)
	require.NoError(t, err)
	require.Equal(t, created.ID, claims.UserID)
	require.Equal(t, "a@b.com", claims.Email)

	stored, err := userRepo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.True(t, stored.JWTAuthActive)
}

func TestRegister_HashesPassword(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _ := newTestAuthService()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	stored, err := userRepo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotEqual(t, "pass1234", stored.PasswordHash)
	require.True(t, utils.CheckPasswordHash("pass1234", stored.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _ := newTestAuthService()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest())
	require.ErrorIs(t, err, utils.ErrEmailExists)
	require.Equal(t, 1, userRepo.count())
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _, err := svc.Login(context.Background(), "nobody@b.com", "pass1234")
	require.ErrorIs(t, err, utils.ErrUnknownEmail)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _ := newTestAuthService()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "a@b.com", "wrong")
	require.ErrorIs(t, err, utils.ErrWrongCredentials)

	stored, err := userRepo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.False(t, stored.JWTAuthActive)
}

func TestLogout_RevokesTokenAndClearsSession(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, blocklistRepo := newTestAuthService()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "a@b.com", "pass1234")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, user, token))

	revoked, err := blocklistRepo.IsBlocklisted(ctx, token)
	require.NoError(t, err)
	require.True(t, revoked)

	stored, err := userRepo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.False(t, stored.JWTAuthActive)
}

func TestUpdateProfile_AppliesNonEmptyFields(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _ := newTestAuthService()

	user, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProfile(ctx, user, "renamed", ""))

	stored, err := userRepo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, "renamed", stored.Username)
	require.Equal(t, "a@b.com", stored.Email)
}
