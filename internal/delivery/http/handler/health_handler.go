package handler

import (
	"context"

	"facultetus-sync/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    pinger
	cache pinger
}

func NewHealthHandler(db, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	checks := fiber.Map{
		"database": checkStatus(c.Context(), h.db),
		"redis":    checkStatus(c.Context(), h.cache),
	}

	if checks["database"] != "up" {
		return response.Error(c, fiber.StatusServiceUnavailable, "degraded", checks)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, checks)
}

func checkStatus(ctx context.Context, p pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
