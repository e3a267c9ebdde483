package services

import (
	"context"
	"time"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/repositories"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/utils"
)

// BlocklistCleanupService drops blocklist rows that can no longer matter:
// anything revoked longer ago than the token lifetime has already expired on
// its own, so removing the row never changes what the auth gate accepts.
type BlocklistCleanupService interface {
	CleanupDaily(ctx context.Context) error
}

type blocklistCleanupService struct {
	blocklistRepo repositories.TokenBlocklistRepository
	retention     time.Duration
}

func NewBlocklistCleanupService(
	blocklistRepo repositories.TokenBlocklistRepository,
	retention time.Duration,
) BlocklistCleanupService {
	return &blocklistCleanupService{
		blocklistRepo: blocklistRepo,
		retention:     retention,
	}
}

func (s *blocklistCleanupService) CleanupDaily(ctx context.Context) error {
	cutoff := time.Now().Add(-s.retention)
	if err := s.blocklistRepo.CleanupOlderThan(ctx, cutoff); err != nil {
		utils.Logger.WithError(err).Error("Failed to cleanup expired blocklisted_tokens")
		return err
	}
	utils.Logger.Info("Daily token blocklist cleanup completed successfully.")
	return nil
}
