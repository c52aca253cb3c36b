package repository

import (
	"context"

	"facultetus-sync/internal/database"
)

// SphereLinkRepository persists the two derived N:M relations. Association
// rows are insert-if-absent and never updated or removed, even when the
// owning record is later soft-deleted.
type SphereLinkRepository interface {
	EmployerLinkExists(ctx context.Context, employerID, sphereID int64) (bool, error)
	InsertEmployerLink(ctx context.Context, employerID, sphereID int64) error

	VacancyLinkExists(ctx context.Context, positionID, sphereID int64) (bool, error)
	InsertVacancyLink(ctx context.Context, positionID, sphereID int64) error
}

type PostgresSphereLinkRepository struct {
	db database.DB
}

func NewPostgresSphereLinkRepository(db database.DB) *PostgresSphereLinkRepository {
	return &PostgresSphereLinkRepository{db: db}
}

func (r *PostgresSphereLinkRepository) EmployerLinkExists(ctx context.Context, employerID, sphereID int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM facultetus_employer_sphere WHERE employer_id = $1 AND sphere_id = $2)`,
		employerID, sphereID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSphereLinkRepository) InsertEmployerLink(ctx context.Context, employerID, sphereID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO facultetus_employer_sphere (employer_id, sphere_id) VALUES ($1, $2)`,
		employerID, sphereID,
	)
	return err
}

func (r *PostgresSphereLinkRepository) VacancyLinkExists(ctx context.Context, positionID, sphereID int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM facultetus_vac_sphere WHERE position_id = $1 AND sphere_id = $2)`,
		positionID, sphereID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSphereLinkRepository) InsertVacancyLink(ctx context.Context, positionID, sphereID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO facultetus_vac_sphere (position_id, sphere_id) VALUES ($1, $2)`,
		positionID, sphereID,
	)
	return err
}
