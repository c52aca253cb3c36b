package repository

import (
	"context"
	"database/sql"
	"errors"

	"facultetus-sync/internal/database"
	"facultetus-sync/internal/domain"

	"github.com/jackc/pgx/v5"
)

type StatsRepository interface {
	ResourceStats(ctx context.Context) ([]domain.ResourceStat, error)
}

type PostgresStatsRepository struct {
	db database.DB
}

func NewPostgresStatsRepository(db database.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

var statTables = []struct {
	resource string
	table    string
}{
	{"vacancies", "facultetus_vac"},
	{"activities", "facultetus_activity"},
	{"universities", "facultetus_university"},
}

func (r *PostgresStatsRepository) ResourceStats(ctx context.Context) ([]domain.ResourceStat, error) {
	out := make([]domain.ResourceStat, 0, len(statTables))
	for _, t := range statTables {
		st := domain.ResourceStat{Resource: t.resource}

		row := r.db.QueryRow(ctx, `
SELECT
	COUNT(*) FILTER (WHERE date_deleted IS NULL),
	COUNT(*) FILTER (WHERE date_deleted IS NOT NULL)
FROM `+t.table)
		if err := row.Scan(&st.ActiveRows, &st.DeletedRows); err != nil {
			return nil, err
		}

		row = r.db.QueryRow(ctx, `
SELECT date_added, success
FROM sync_run_log
WHERE resource = $1
ORDER BY id DESC
LIMIT 1`, t.resource)

		var lastAt sql.NullTime
		var success sql.NullBool
		if err := row.Scan(&lastAt, &success); err != nil {
			if err != sql.ErrNoRows && !errors.Is(err, pgx.ErrNoRows) {
				return nil, err
			}
			// resource never synced
		}
		if lastAt.Valid {
			at := lastAt.Time
			st.LastRunAt = &at
		}
		if success.Valid {
			ok := success.Bool
			st.LastSuccess = &ok
		}

		out = append(out, st)
	}
	return out, nil
}
