package repository

import (
	"context"

	"facultetus-sync/internal/database"
	"facultetus-sync/internal/domain"
)

// RunLogRepository appends one row per sync run. Rows are never updated;
// this log is the only durable signal of run outcome for external monitors.
type RunLogRepository interface {
	Insert(ctx context.Context, rl domain.RunLog) error
	ListRecent(ctx context.Context, resource string, limit int) ([]domain.RunLog, error)
}

type PostgresRunLogRepository struct {
	db database.DB
}

func NewPostgresRunLogRepository(db database.DB) *PostgresRunLogRepository {
	return &PostgresRunLogRepository{db: db}
}

func (r *PostgresRunLogRepository) Insert(ctx context.Context, rl domain.RunLog) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO sync_run_log (run_id, resource, added, updated, deleted, success, started_at, finished_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rl.RunID, rl.Resource, rl.Added, rl.Updated, rl.Deleted, rl.Success, rl.StartedAt, rl.FinishedAt,
	)
	return err
}

func (r *PostgresRunLogRepository) ListRecent(ctx context.Context, resource string, limit int) ([]domain.RunLog, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var (
		rows database.Rows
		err  error
	)
	if resource != "" {
		rows, err = r.db.Query(ctx, `
SELECT id, run_id, resource, added, updated, deleted, success, started_at, finished_at, date_added
FROM sync_run_log
WHERE resource = $1
ORDER BY id DESC
LIMIT $2`,
			resource, limit,
		)
	} else {
		rows, err = r.db.Query(ctx, `
SELECT id, run_id, resource, added, updated, deleted, success, started_at, finished_at, date_added
FROM sync_run_log
ORDER BY id DESC
LIMIT $1`,
			limit,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.RunLog, 0)
	for rows.Next() {
		var rl domain.RunLog
		if err := rows.Scan(
			&rl.ID, &rl.RunID, &rl.Resource, &rl.Added, &rl.Updated, &rl.Deleted,
			&rl.Success, &rl.StartedAt, &rl.FinishedAt, &rl.DateAdded,
		); err != nil {
			return nil, err
		}
		out = append(out, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
