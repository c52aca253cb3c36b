package repository

import (
	"context"

	"facultetus-sync/internal/database"
)

// Sphere and activity-type tables share one shape: locally assigned numeric
// id plus a unique name. Both back a sync.Registry; the unique constraint on
// name is the authoritative duplicate guard, the registry cache is only an
// optimization.

type PostgresSphereRepository struct {
	db database.DB
}

func NewPostgresSphereRepository(db database.DB) *PostgresSphereRepository {
	return &PostgresSphereRepository{db: db}
}

func (r *PostgresSphereRepository) LoadAll(ctx context.Context) (map[string]int64, error) {
	return loadNameIDs(ctx, r.db, `SELECT id, name FROM facultetus_sphere`)
}

func (r *PostgresSphereRepository) Create(ctx context.Context, id int64, name string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO facultetus_sphere (id, name) VALUES ($1, $2)`, id, name)
	return err
}

type PostgresActivityTypeRepository struct {
	db database.DB
}

func NewPostgresActivityTypeRepository(db database.DB) *PostgresActivityTypeRepository {
	return &PostgresActivityTypeRepository{db: db}
}

func (r *PostgresActivityTypeRepository) LoadAll(ctx context.Context) (map[string]int64, error) {
	return loadNameIDs(ctx, r.db, `SELECT id, name FROM facultetus_activity_type`)
}

func (r *PostgresActivityTypeRepository) Create(ctx context.Context, id int64, name string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO facultetus_activity_type (id, name) VALUES ($1, $2)`, id, name)
	return err
}

func loadNameIDs(ctx context.Context, db database.DB, query string) (map[string]int64, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[name] = id
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
