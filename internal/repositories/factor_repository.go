package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/models"
)

type FactorRepository interface {
	// ListAll returns the whole factor catalog.
	ListAll(ctx context.Context) ([]*models.Factor, error)

	// ListFamily returns the factors that can be reported as family history.
	ListFamily(ctx context.Context) ([]*models.Factor, error)

	// ListIDs returns every known factor id, for subset validation.
	ListIDs(ctx context.Context) ([]int, error)
}

type factorRepo struct {
	db DB
}

func NewFactorRepository(db DB) FactorRepository {
	return &factorRepo{db: db}
}

func baseSelectFactor() string {
	return `
        SELECT id, name, description, family_relevant
        FROM factors
    `
}

func (r *factorRepo) ListAll(ctx context.Context) ([]*models.Factor, error) {
	rows, err := r.db.Query(ctx, baseSelectFactor()+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFactors(rows)
}

func (r *factorRepo) ListFamily(ctx context.Context) ([]*models.Factor, error) {
	rows, err := r.db.Query(ctx, baseSelectFactor()+" WHERE family_relevant ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFactors(rows)
}

func (r *factorRepo) ListIDs(ctx context.Context) ([]int, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM factors`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanFactors(rows pgx.Rows) ([]*models.Factor, error) {
	var factors []*models.Factor
	for rows.Next() {
		var f models.Factor
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.FamilyRelevant); err != nil {
			return nil, err
		}
		factors = append(factors, &f)
	}
	return factors, rows.Err()
}
