package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"facultetus-sync/internal/app"
	"facultetus-sync/internal/config"
	"facultetus-sync/internal/database/migration"
	"facultetus-sync/internal/facultetus"
	"facultetus-sync/internal/infrastructure/notify"
	"facultetus-sync/internal/repository"
	syncer "facultetus-sync/internal/sync"

	"github.com/joho/godotenv"
)

func main() {
	resource := flag.String("resource", "all", "resource to sync: all, vacancies, activities or universities")
	flag.Parse()

	_ = godotenv.Load()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	if err := run(*resource, logger); err != nil {
		logger.Printf("Sync failed | resource=%s error=%v", *resource, err)
		os.Exit(1)
	}
}

func run(resource string, logger *log.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	container, err := app.NewContainer(cfg, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.Printf("Cleanup error | error=%v", err)
		}
	}()

	ctx := context.Background()

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, container.DB.SQLDB()); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	runner := syncer.NewRunner(syncer.RunnerParams{
		Config:       cfg.Sync,
		API:          facultetus.NewClient(cfg.API.BaseURL, cfg.API.ClientID, cfg.API.ClientSecret, logger),
		UniversityID: cfg.API.UniversityID,

		Vacancies:    repository.NewPostgresVacancyRepository(container.DB),
		Activities:   repository.NewPostgresActivityRepository(container.DB),
		Universities: repository.NewPostgresUniversityRepository(container.DB),
		SphereLinks:  repository.NewPostgresSphereLinkRepository(container.DB),
		RunLogs:      repository.NewPostgresRunLogRepository(container.DB),

		SphereStore: repository.NewPostgresSphereRepository(container.DB),
		TypeStore:   repository.NewPostgresActivityTypeRepository(container.DB),

		Locks:    container.Redis,
		Notifier: notify.NewWebhookNotifier(cfg.Sync.NotifyBaseURL, cfg.Server.InternalToken, logger),
		Logger:   logger,
	})

	started := time.Now()
	switch resource {
	case "all":
		err = runner.SyncAll(ctx)
	case syncer.ResourceVacancies:
		err = runner.SyncVacancies(ctx)
	case syncer.ResourceActivities:
		err = runner.SyncActivities(ctx)
	case syncer.ResourceUniversities:
		err = runner.SyncUniversities(ctx)
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
	if err != nil {
		return err
	}

	logger.Printf("Sync finished | resource=%s elapsed=%s", resource, time.Since(started))
	return nil
}
