package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/models"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/repositories"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/utils"
)

// FactorService exposes the medical factor catalog and per-user medical info.
type FactorService interface {
	// ListFactors returns the family-relevant subset and the full catalog.
	ListFactors(ctx context.Context) (family, user []*models.Factor, err error)

	// UpdateMedicalInfo upserts the user's medical profile. Factor id lists
	// must be subsets of the known catalog; violations are reported as
	// utils.ErrUnknownUserFactor / utils.ErrUnknownFamilyFactor.
	UpdateMedicalInfo(
		ctx context.Context,
		userID uuid.UUID,
		birthDate time.Time,
		gender string,
		userFactors, familyFactors []int,
	) error
}

type factorService struct {
	factorRepo      repositories.FactorRepository
	medicalInfoRepo repositories.MedicalInfoRepository
}

func NewFactorService(
	factorRepo repositories.FactorRepository,
	medicalInfoRepo repositories.MedicalInfoRepository,
) FactorService {
	return &factorService{
		factorRepo:      factorRepo,
		medicalInfoRepo: medicalInfoRepo,
	}
}

func (s *factorService) ListFactors(ctx context.Context) ([]*models.Factor, []*models.Factor, error) {
	family, err := s.factorRepo.ListFamily(ctx)
	if err != nil {
		return nil, nil, err
	}
	all, err := s.factorRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return family, all, nil
}

func (s *factorService) UpdateMedicalInfo(
	ctx context.Context,
	userID uuid.UUID,
	birthDate time.Time,
	gender string,
	userFactors, familyFactors []int,
) error {
	knownIDs, err := s.factorRepo.ListIDs(ctx)
	if err != nil {
		return err
	}
	known := make(map[int]struct{}, len(knownIDs))
	for _, id := range knownIDs {
		known[id] = struct{}{}
	}

	for _, id := range userFactors {
		if _, ok := known[id]; !ok {
			return utils.ErrUnknownUserFactor
		}
	}
	for _, id := range familyFactors {
		if _, ok := known[id]; !ok {
			return utils.ErrUnknownFamilyFactor
		}
	}

	existing, err := s.medicalInfoRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.medicalInfoRepo.UpdateFactors(ctx, existing.ID, userFactors, familyFactors)
	}

	mi := &models.MedicalInfo{
		ID:              uuid.New(),
		UserID:          userID,
		BirthDate:       birthDate,
		Gender:          gender,
		UserFactorIDs:   userFactors,
		FamilyFactorIDs: familyFactors,
	}
	return s.medicalInfoRepo.Create(ctx, mi)
}
