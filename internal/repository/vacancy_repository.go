package repository

import (
	"context"
	"time"

	"facultetus-sync/internal/database"
	"facultetus-sync/internal/domain"
)

type VacancyRepository interface {
	Exists(ctx context.Context, positionID int64) (bool, error)
	Insert(ctx context.Context, v domain.Vacancy, now time.Time) error
	Update(ctx context.Context, v domain.Vacancy, now time.Time) error

	// Time-window sweep. Vacancy runs are filtered to one university, so
	// freshness is judged by last touch, not by exact set membership.
	ReactivateFresh(ctx context.Context, cutoff time.Time) (int64, error)
	SoftDeleteStale(ctx context.Context, cutoff, now time.Time) (int64, error)
}

type PostgresVacancyRepository struct {
	db database.DB
}

func NewPostgresVacancyRepository(db database.DB) *PostgresVacancyRepository {
	return &PostgresVacancyRepository{db: db}
}

func (r *PostgresVacancyRepository) Exists(ctx context.Context, positionID int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM facultetus_vac WHERE position_id = $1)`, positionID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresVacancyRepository) Insert(ctx context.Context, v domain.Vacancy, now time.Time) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO facultetus_vac (
	position_id, employer_id, employer_title, employer_slogan, employer_logo, employer_type,
	title, type, lookingfor, region, city, address, background_pic,
	description, requirements, cond,
	edu_trial_accept, tempjob, forinternationals, fornewbies, fordisabled, remoted,
	edu_combo_friendly, first_year_friendly, for_graduates, instant_paid,
	cash_from, cash_to, is_actual, position_link,
	spheres, langs, skills, tests, professions,
	date_added, date_updated, date_deleted
) VALUES (
	$1, $2, $3, $4, $5, $6,
	$7, $8, $9, $10, $11, $12, $13,
	$14, $15, $16,
	$17, $18, $19, $20, $21, $22,
	$23, $24, $25, $26,
	$27, $28, $29, $30,
	$31, $32, $33, $34, $35,
	$36, NULL, NULL
)`,
		v.PositionID, v.EmployerID, v.EmployerTitle, v.EmployerSlogan, v.EmployerLogo, v.EmployerType,
		v.Title, v.Type, v.LookingFor, v.Region, v.City, v.Address, v.BackgroundPic,
		v.Description, v.Requirements, v.Conditions,
		v.EduTrialAccept, v.TempJob, v.ForInternationals, v.ForNewbies, v.ForDisabled, v.Remoted,
		v.EduComboFriendly, v.FirstYearFriendly, v.ForGraduates, v.InstantPaid,
		v.CashFrom, v.CashTo, v.IsActual, v.PositionLink,
		v.Spheres, v.Langs, v.Skills, v.Tests, v.Professions,
		now,
	)
	return err
}

func (r *PostgresVacancyRepository) Update(ctx context.Context, v domain.Vacancy, now time.Time) error {
	_, err := r.db.Exec(ctx, `
UPDATE facultetus_vac SET
	employer_id = $2, employer_title = $3, employer_slogan = $4, employer_logo = $5, employer_type = $6,
	title = $7, type = $8, lookingfor = $9, region = $10, city = $11, address = $12, background_pic = $13,
	description = $14, requirements = $15, cond = $16,
	edu_trial_accept = $17, tempjob = $18, forinternationals = $19, fornewbies = $20, fordisabled = $21, remoted = $22,
	edu_combo_friendly = $23, first_year_friendly = $24, for_graduates = $25, instant_paid = $26,
	cash_from = $27, cash_to = $28, is_actual = $29, position_link = $30,
	spheres = $31, langs = $32, skills = $33, tests = $34, professions = $35,
	date_updated = $36
WHERE position_id = $1`,
		v.PositionID, v.EmployerID, v.EmployerTitle, v.EmployerSlogan, v.EmployerLogo, v.EmployerType,
		v.Title, v.Type, v.LookingFor, v.Region, v.City, v.Address, v.BackgroundPic,
		v.Description, v.Requirements, v.Conditions,
		v.EduTrialAccept, v.TempJob, v.ForInternationals, v.ForNewbies, v.ForDisabled, v.Remoted,
		v.EduComboFriendly, v.FirstYearFriendly, v.ForGraduates, v.InstantPaid,
		v.CashFrom, v.CashTo, v.IsActual, v.PositionLink,
		v.Spheres, v.Langs, v.Skills, v.Tests, v.Professions,
		now,
	)
	return err
}

func (r *PostgresVacancyRepository) ReactivateFresh(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.db.Exec(ctx, `
UPDATE facultetus_vac
SET date_deleted = NULL
WHERE COALESCE(date_updated, date_added) > $1
  AND date_deleted IS NOT NULL`,
		cutoff,
	)
}

func (r *PostgresVacancyRepository) SoftDeleteStale(ctx context.Context, cutoff, now time.Time) (int64, error) {
	return r.db.Exec(ctx, `
UPDATE facultetus_vac
SET date_deleted = $2
WHERE COALESCE(date_updated, date_added) <= $1
  AND date_deleted IS NULL`,
		cutoff, now,
	)
}
