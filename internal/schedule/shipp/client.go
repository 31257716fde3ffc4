package shipp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"injury-report-service/internal/domain"
	"injury-report-service/internal/timeutil"
)

// Config controls how the client reaches the schedule API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches game slates from the schedule API and maps them to
// domain matchups.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs a schedule client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Matchups retrieves the slate for one sport on one date.
func (c *Client) Matchups(ctx context.Context, sport domain.Sport, date time.Time) ([]domain.Matchup, error) {
	req, err := c.buildRequest(ctx, sport, date)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("schedule: rate limited (retry-after %s)", strings.TrimSpace(resp.Header.Get("Retry-After")))
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("schedule: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("schedule: decode payload: %w", err)
	}

	matchups := make([]domain.Matchup, 0, len(payload.Games))
	for _, g := range payload.Games {
		matchups = append(matchups, mapGame(g, sport))
	}
	return matchups, nil
}

func (c *Client) buildRequest(ctx context.Context, sport domain.Sport, date time.Time) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/games", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("sport", string(sport))
	q.Set("date", timeutil.FormatDate(date))
	req.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: 15 * time.Second}
}
