package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/models"
)

type MedicalInfoRepository interface {
	// GetByUserID returns nil, nil when the user has no medical info yet.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MedicalInfo, error)

	Create(ctx context.Context, mi *models.MedicalInfo) error

	// UpdateFactors replaces the factor id lists of an existing row.
	UpdateFactors(ctx context.Context, id uuid.UUID, userFactors, familyFactors []int) error
}

type medicalInfoRepo struct {
	db DB
}

func NewMedicalInfoRepository(db DB) MedicalInfoRepository {
	return &medicalInfoRepo{db: db}
}

func (r *medicalInfoRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MedicalInfo, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, user_id, birth_date, gender, user_factor_ids, family_factor_ids, created_at, updated_at
        FROM users_medical_info
        WHERE user_id=$1
    `, userID)

	var (
		mi            models.MedicalInfo
		userFactors   pgtype.Int4Array
		familyFactors pgtype.Int4Array
	)
	err := row.Scan(
		&mi.ID,
		&mi.UserID,
		&mi.BirthDate,
		&mi.Gender,
		&userFactors,
		&familyFactors,
		&mi.CreatedAt,
		&mi.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := userFactors.AssignTo(&mi.UserFactorIDs); err != nil {
		return nil, err
	}
	if err := familyFactors.AssignTo(&mi.FamilyFactorIDs); err != nil {
		return nil, err
	}
	return &mi, nil
}

func (r *medicalInfoRepo) Create(ctx context.Context, mi *models.MedicalInfo) error {
	userFactors, err := int4Array(mi.UserFactorIDs)
	if err != nil {
		return err
	}
	familyFactors, err := int4Array(mi.FamilyFactorIDs)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
        INSERT INTO users_medical_info (id, user_id, birth_date, gender, user_factor_ids, family_factor_ids)
        VALUES ($1, $2, $3, $4, $5, $6)
    `,
		mi.ID, mi.UserID, mi.BirthDate, mi.Gender, userFactors, familyFactors,
	)
	return err
}

func (r *medicalInfoRepo) UpdateFactors(ctx context.Context, id uuid.UUID, userFactors, familyFactors []int) error {
	uf, err := int4Array(userFactors)
	if err != nil {
		return err
	}
	ff, err := int4Array(familyFactors)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
        UPDATE users_medical_info SET
            user_factor_ids=$1,
            family_factor_ids=$2,
            updated_at=NOW()
        WHERE id=$3
    `, uf, ff, id)
	return err
}

func int4Array(ids []int) (*pgtype.Int4Array, error) {
	arr := &pgtype.Int4Array{}
	if ids == nil {
		ids = []int{}
	}
	if err := arr.Set(ids); err != nil {
		return nil, err
	}
	return arr, nil
}
