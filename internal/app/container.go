package app

import (
	"context"
	"log"

	"facultetus-sync/internal/config"
	"facultetus-sync/internal/database"
	dbpostgres "facultetus-sync/internal/database/postgres"
	"facultetus-sync/internal/infrastructure/cache"
)

// Container holds the process-wide dependencies shared by the sync worker
// and the status server.
type Container struct {
	Config config.Config
	DB     database.DB
	Redis  *cache.Redis
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  cache.NewRedis(cfg.Redis, logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
