package handler

import (
	"log"
	"strconv"
	"strings"

	"facultetus-sync/internal/delivery/http/middleware"
	"facultetus-sync/internal/pkg/response"
	"facultetus-sync/internal/repository"
	syncer "facultetus-sync/internal/sync"

	"github.com/gofiber/fiber/v3"
)

type RunsHandler struct {
	runLogs repository.RunLogRepository
	logger  *log.Logger
}

func NewRunsHandler(runLogs repository.RunLogRepository, logger *log.Logger) *RunsHandler {
	return &RunsHandler{runLogs: runLogs, logger: logger}
}

// HandleListRuns serves GET /api/v1/runs?resource=vacancies&limit=20.
func (h *RunsHandler) HandleListRuns(c fiber.Ctx) error {
	resource := strings.TrimSpace(c.Query("resource"))
	if resource != "" && !validResource(resource) {
		return middleware.NewAppError(fiber.StatusBadRequest, "unknown resource", fiber.Map{"resource": resource}, nil)
	}

	limit := 20
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "invalid limit", nil, err)
		}
		limit = n
	}

	runs, err := h.runLogs.ListRecent(c.Context(), resource, limit)
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("Runs list error | error=%v", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"runs": runs})
}

func validResource(resource string) bool {
	switch resource {
	case syncer.ResourceVacancies, syncer.ResourceActivities, syncer.ResourceUniversities:
		return true
	}
	return false
}
