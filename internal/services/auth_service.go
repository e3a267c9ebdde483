package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/dtos"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/models"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/repositories"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/utils"
)

// AuthService interface
type AuthService interface {
	// Register creates the identity. No token is issued; the user must log
	// in separately.
	Register(ctx context.Context, req dtos.RegisterRequest) (*models.User, error)

	// Login verifies credentials, issues a token and marks the session
	// active. Returns utils.ErrUnknownEmail or utils.ErrWrongCredentials.
	Login(ctx context.Context, email, password string) (*models.User, string, error)

	// Logout blocklists the presented token and clears the session flag.
	// Either alone would be enough for the gate to reject the token.
	Logout(ctx context.Context, user *models.User, token string) error

	// UpdateProfile applies non-empty username/email changes. Token and
	// session state are untouched.
	UpdateProfile(ctx context.Context, user *models.User, username, email string) error
}

type authService struct {
	userRepo      repositories.UserRepository
	blocklistRepo repositories.TokenBlocklistRepository
	jwtService    JWTService
}

func NewAuthService(
	userRepo repositories.UserRepository,
	blocklistRepo repositories.TokenBlocklistRepository,
	jwtService JWTService,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		blocklistRepo: blocklistRepo,
		jwtService:    jwtService,
	}
}

func (s *authService) Register(ctx context.Context, req dtos.RegisterRequest) (*models.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", utils.ErrUnknownEmail
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", utils.ErrWrongCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, "", err
	}

	if err := s.userRepo.SetJWTAuthActive(ctx, user.ID, true); err != nil {
		return nil, "", err
	}
	user.JWTAuthActive = true

	return user, token, nil
}

func (s *authService) Logout(ctx context.Context, user *models.User, token string) error {
	if err := s.blocklistRepo.Blocklist(ctx, token); err != nil {
		return err
	}
	if err := s.userRepo.SetJWTAuthActive(ctx, user.ID, false); err != nil {
		return err
	}
	user.JWTAuthActive = false
	return nil
}

func (s *authService) UpdateProfile(ctx context.Context, user *models.User, username, email string) error {
	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}
	return s.userRepo.Update(ctx, user)
}
