package facultetus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client talks to the Facultetus HTTP API. Endpoints are addressed as
// {base}/{credential}/{operation}; library endpoints authenticate with the
// client secret, resource endpoints with the client id.
//
// The client performs no retries: transport failures, non-2xx statuses and
// malformed bodies propagate to the caller, which aborts the sync run.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	http         *http.Client
	logger       *log.Logger
}

func NewClient(baseURL, clientID, clientSecret string, logger *log.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		clientID:     strings.TrimSpace(clientID),
		clientSecret: strings.TrimSpace(clientSecret),
		http:         &http.Client{},
		logger:       logger,
	}
}

type spheresResponse struct {
	Spheres []string `json:"spheres"`
}

type positionsResponse struct {
	Response []RawVacancy `json:"response"`
}

type activitiesResponse struct {
	Response []RawActivity `json:"response"`
}

type universitiesResponse struct {
	Response []RawUniversity `json:"response"`
}

// GetSpheres fetches the full sphere catalog. The catalog is not paginated.
func (c *Client) GetSpheres(ctx context.Context) ([]string, error) {
	q := url.Values{}
	q.Set("lib", "spheres")

	var out spheresResponse
	if err := c.get(ctx, c.clientSecret, "getlib", q, &out); err != nil {
		return nil, err
	}
	return out.Spheres, nil
}

// GetPositions fetches one page of vacancies relevant to the given
// university. An empty page signals end of pagination.
func (c *Client) GetPositions(ctx context.Context, universityID string, offset int) ([]RawVacancy, error) {
	q := url.Values{}
	if universityID != "" {
		q.Set("university_id", universityID)
	}
	q.Set("offset", strconv.Itoa(offset))

	var out positionsResponse
	if err := c.get(ctx, c.clientID, "getPositions", q, &out); err != nil {
		return nil, err
	}
	return out.Response, nil
}

// GetActivities fetches one page of events for the given university.
func (c *Client) GetActivities(ctx context.Context, universityID string, offset, limit int) ([]RawActivity, error) {
	q := url.Values{}
	q.Set("university_id", universityID)
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))

	var out activitiesResponse
	if err := c.get(ctx, c.clientID, "getActivities", q, &out); err != nil {
		return nil, err
	}
	return out.Response, nil
}

// GetUniversities fetches one page of the university catalog. The upstream
// ignores any limit parameter and returns fixed-size pages.
func (c *Client) GetUniversities(ctx context.Context, offset int) ([]RawUniversity, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))

	var out universitiesResponse
	if err := c.get(ctx, c.clientSecret, "getUniversities", q, &out); err != nil {
		return nil, err
	}
	return out.Response, nil
}

func (c *Client) get(ctx context.Context, credential, op string, query url.Values, out any) error {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, credential, op)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("API error | op=%s status=%d body=%q", op, resp.StatusCode, bodyStr)
		}
		return fmt.Errorf("facultetus %s failed: status=%d body=%s", op, resp.StatusCode, bodyStr)
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("facultetus %s: decode response: %w", op, err)
	}
	return nil
}
