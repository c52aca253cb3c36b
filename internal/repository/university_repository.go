package repository

import (
	"context"
	"time"

	"facultetus-sync/internal/database"
	"facultetus-sync/internal/domain"
)

type UniversityRepository interface {
	Exists(ctx context.Context, universityID int64) (bool, error)
	Insert(ctx context.Context, u domain.University, now time.Time) error
	Update(ctx context.Context, u domain.University, now time.Time) error

	Reactivate(ctx context.Context, ids []int64) (int64, error)
	SoftDeleteAbsent(ctx context.Context, ids []int64, now time.Time) (int64, error)

	// ListIDs feeds the per-university activity walk.
	ListIDs(ctx context.Context) ([]int64, error)
}

type PostgresUniversityRepository struct {
	db database.DB
}

func NewPostgresUniversityRepository(db database.DB) *PostgresUniversityRepository {
	return &PostgresUniversityRepository{db: db}
}

func (r *PostgresUniversityRepository) Exists(ctx context.Context, universityID int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM facultetus_university WHERE university_id = $1)`, universityID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUniversityRepository) Insert(ctx context.Context, u domain.University, now time.Time) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO facultetus_university (
	university_id, title, title_full, logo, region, city, type, link,
	instant_subscription, instant_student_access,
	date_added, date_updated, date_deleted
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULL, NULL)`,
		u.UniversityID, u.Title, u.TitleFull, u.Logo, u.Region, u.City, u.Type, u.Link,
		u.InstantSubscription, u.InstantStudentAccess,
		now,
	)
	return err
}

func (r *PostgresUniversityRepository) Update(ctx context.Context, u domain.University, now time.Time) error {
	_, err := r.db.Exec(ctx, `
UPDATE facultetus_university SET
	title = $2, title_full = $3, logo = $4, region = $5, city = $6, type = $7, link = $8,
	instant_subscription = $9, instant_student_access = $10,
	date_updated = $11
WHERE university_id = $1`,
		u.UniversityID, u.Title, u.TitleFull, u.Logo, u.Region, u.City, u.Type, u.Link,
		u.InstantSubscription, u.InstantStudentAccess,
		now,
	)
	return err
}

func (r *PostgresUniversityRepository) Reactivate(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return r.db.Exec(ctx, `
UPDATE facultetus_university
SET date_deleted = NULL
WHERE university_id = ANY($1)
  AND date_deleted IS NOT NULL`,
		ids,
	)
}

func (r *PostgresUniversityRepository) SoftDeleteAbsent(ctx context.Context, ids []int64, now time.Time) (int64, error) {
	return r.db.Exec(ctx, `
UPDATE facultetus_university
SET date_deleted = $2
WHERE NOT (university_id = ANY($1))
  AND date_deleted IS NULL`,
		ids, now,
	)
}

func (r *PostgresUniversityRepository) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT university_id FROM facultetus_university ORDER BY university_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
