package app

import (
	"fmt"
	"strings"

	"facultetus-sync/internal/delivery/http/handler"
	"facultetus-sync/internal/delivery/http/middleware"
	"facultetus-sync/internal/delivery/http/routes"
	"facultetus-sync/internal/repository"
	"facultetus-sync/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

// Bootstrap wires the status server: repositories over the shared DB, the
// websocket hub and the HTTP surface. The returned cleanup closes the
// container.
func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}

	f := fiber.New(fiber.Config{})

	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	hub := ws.NewHub(c.Logger)
	ws.SetDefaultHub(hub)
	go hub.Run()

	runLogs := repository.NewPostgresRunLogRepository(c.DB)
	stats := repository.NewPostgresStatsRepository(c.DB)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Redis),
		handler.NewRunsHandler(runLogs, c.Logger),
		handler.NewStatusHandler(stats, c.Logger),
		handler.NewSyncCompletedHandler(c.Config.Server, c.Logger),
		ws.NewHandler(hub, c.Logger),
	)
	registry.Register(f)

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f, Hub: hub}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
