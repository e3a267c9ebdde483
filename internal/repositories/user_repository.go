package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/models"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/utils"
)

type UserRepository interface {
	// Create inserts the user. Returns utils.ErrEmailExists when the email
	// is already taken (the email column carries a unique constraint, so a
	// race between two registrations cannot create two rows).
	Create(ctx context.Context, u *models.User) error

	// GetByEmail returns nil, nil when no user has that email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// Update persists username and email.
	Update(ctx context.Context, u *models.User) error

	// SetJWTAuthActive flips the session-active flag.
	SetJWTAuthActive(ctx context.Context, id uuid.UUID, active bool) error
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func baseSelectUser() string {
	return `
        SELECT id, username, email, password_hash, jwt_auth_active, created_at, updated_at
        FROM users
    `
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, username, email, password_hash, jwt_auth_active)
        VALUES ($1, $2, $3, $4, FALSE)
    `,
		u.ID, u.Username, u.Email, u.PasswordHash,
	)
	if err != nil && isUniqueViolation(err) {
		return utils.ErrEmailExists
	}
	return err
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE email=$1", email)
	return r.scanUser(row)
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE id=$1", id)
	return r.scanUser(row)
}

func (r *userRepo) Update(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
        UPDATE users SET
            username=$1,
            email=$2,
            updated_at=NOW()
        WHERE id=$3
    `,
		u.Username, u.Email, u.ID,
	)
	if err != nil && isUniqueViolation(err) {
		return utils.ErrEmailExists
	}
	return err
}

func (r *userRepo) SetJWTAuthActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := r.db.Exec(ctx, `
        UPDATE users SET jwt_auth_active=$1, updated_at=NOW() WHERE id=$2
    `, active, id)
	return err
}

func (r *userRepo) scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.JWTAuthActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
