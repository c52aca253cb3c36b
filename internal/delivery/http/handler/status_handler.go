package handler

import (
	"log"

	"facultetus-sync/internal/delivery/http/middleware"
	"facultetus-sync/internal/pkg/response"
	"facultetus-sync/internal/repository"

	"github.com/gofiber/fiber/v3"
)

type StatusHandler struct {
	stats  repository.StatsRepository
	logger *log.Logger
}

func NewStatusHandler(stats repository.StatsRepository, logger *log.Logger) *StatusHandler {
	return &StatusHandler{stats: stats, logger: logger}
}

// HandleStatus serves GET /api/v1/status: per-resource row counts and the
// outcome of the most recent run.
func (h *StatusHandler) HandleStatus(c fiber.Ctx) error {
	stats, err := h.stats.ResourceStats(c.Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("Status error | error=%v", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"resources": stats})
}
