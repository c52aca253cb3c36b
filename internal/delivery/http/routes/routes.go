package routes

import (
	"facultetus-sync/internal/delivery/http/handler"
	"facultetus-sync/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health        *handler.HealthHandler
	runs          *handler.RunsHandler
	status        *handler.StatusHandler
	syncCompleted *handler.SyncCompletedHandler
	runsWS        *ws.Handler
}

func NewRegistry(
	health *handler.HealthHandler,
	runs *handler.RunsHandler,
	status *handler.StatusHandler,
	syncCompleted *handler.SyncCompletedHandler,
	runsWS *ws.Handler,
) *Registry {
	return &Registry{
		health:        health,
		runs:          runs,
		status:        status,
		syncCompleted: syncCompleted,
		runsWS:        runsWS,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", r.health.HandleHealth)

	v1 := app.Group("/api").Group("/v1")
	v1.Get("/runs", r.runs.HandleListRuns)
	v1.Get("/status", r.status.HandleStatus)

	app.Post("/internal/sync/completed", r.syncCompleted.HandleSyncCompleted)

	app.Get("/ws/runs", r.runsWS.HandleRunsWS)
}
