package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"facultetus-sync/internal/domain"
)

// WebhookNotifier posts finished-run summaries to the status server, which
// fans them out to websocket subscribers. Delivery is best effort: a failed
// notification never fails the sync run.
type WebhookNotifier struct {
	baseURL       string
	internalToken string
	client        *http.Client
	logger        *log.Logger
}

func NewWebhookNotifier(baseURL, internalToken string, logger *log.Logger) *WebhookNotifier {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	return &WebhookNotifier{
		baseURL:       strings.TrimRight(baseURL, "/"),
		internalToken: strings.TrimSpace(internalToken),
		client:        &http.Client{Timeout: 5 * time.Second},
		logger:        logger,
	}
}

func (n *WebhookNotifier) RunCompleted(ctx context.Context, rl domain.RunLog) {
	if n == nil {
		return
	}

	b, err := json.Marshal(rl)
	if err != nil {
		return
	}

	endpoint := n.baseURL + "/internal/sync/completed"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if n.internalToken != "" {
		req.Header.Set("X-Internal-Token", n.internalToken)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		if n.logger != nil {
			n.logger.Printf("Notify error | endpoint=%s error=%v", endpoint, err)
		}
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if n.logger != nil {
			n.logger.Printf("Notify error | endpoint=%s status=%d", endpoint, resp.StatusCode)
		}
	}
}
