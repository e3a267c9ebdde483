package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenBlocklistRepository is the append-only record of revoked tokens.
// Presence of a token's exact string makes that token permanently invalid
// regardless of its embedded expiration.
type TokenBlocklistRepository interface {
	// Blocklist inserts the raw token string. Idempotent if already present.
	Blocklist(ctx context.Context, token string) error

	// IsBlocklisted is an exact string membership test.
	IsBlocklisted(ctx context.Context, token string) (bool, error)

	// CleanupOlderThan deletes rows blocklisted before the cutoff. Meant for
	// the nightly maintenance job only.
	CleanupOlderThan(ctx context.Context, cutoff time.Time) error
}

type tokenBlocklistRepo struct {
	db DB
}

func NewTokenBlocklistRepository(db DB) TokenBlocklistRepository {
	return &tokenBlocklistRepo{db: db}
}

func (r *tokenBlocklistRepo) Blocklist(ctx context.Context, token string) error {
	query := `
        INSERT INTO blocklisted_tokens (id, token, created_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (token) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, uuid.New(), token)
	return err
}

func (r *tokenBlocklistRepo) IsBlocklisted(ctx context.Context, token string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM blocklisted_tokens WHERE token = $1
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, token).Scan(&exists)
	return exists, err
}

func (r *tokenBlocklistRepo) CleanupOlderThan(ctx context.Context, cutoff time.Time) error {
	query := `DELETE FROM blocklisted_tokens WHERE created_at < $1`
	_, err := r.db.Exec(ctx, query, cutoff)
	return err
}
