package handler

import (
	"log"
	"strings"

	"facultetus-sync/internal/config"
	"facultetus-sync/internal/delivery/http/middleware"
	"facultetus-sync/internal/domain"
	"facultetus-sync/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// SyncCompletedHandler receives the sync worker's run-completed webhook and
// fans the event out to websocket subscribers.
type SyncCompletedHandler struct {
	cfg    config.ServerConfig
	logger *log.Logger
}

func NewSyncCompletedHandler(cfg config.ServerConfig, logger *log.Logger) *SyncCompletedHandler {
	return &SyncCompletedHandler{cfg: cfg, logger: logger}
}

func (h *SyncCompletedHandler) HandleSyncCompleted(c fiber.Ctx) error {
	tok := strings.TrimSpace(c.Get("X-Internal-Token"))
	if tok == "" || tok != h.cfg.InternalToken {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var rl domain.RunLog
	if err := c.Bind().Body(&rl); err != nil {
		if h.logger != nil {
			h.logger.Printf("Webhook error | error=%v", err)
		}
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	rl.RunID = strings.TrimSpace(rl.RunID)
	rl.Resource = strings.TrimSpace(rl.Resource)
	if rl.RunID == "" || rl.Resource == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	if h.logger != nil {
		h.logger.Printf("Sync completed | run=%s resource=%s added=%d updated=%d deleted=%d success=%t",
			rl.RunID, rl.Resource, rl.Added, rl.Updated, rl.Deleted, rl.Success)
	}

	ws.NotifySyncCompleted(rl)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "notified",
		"resource": rl.Resource,
	})
}
