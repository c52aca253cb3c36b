package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"facultetus-sync/internal/domain"
)

type SyncCompletedEvent struct {
	Type      string        `json:"type"`
	Run       domain.RunLog `json:"run"`
	Timestamp string        `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifySyncCompleted(rl domain.RunLog) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := SyncCompletedEvent{
		Type:      "sync_completed",
		Run:       rl,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
