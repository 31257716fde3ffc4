package mlbwire

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"injury-report-service/internal/domain"
	"injury-report-service/internal/sources"
	"injury-report-service/internal/timeutil"
)

const providerName = "mlb-transactions"

// Config controls how the client reaches the MLB stats transactions API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Lookback widens the query window so placements announced late
	// still appear. Defaults to two days.
	Lookback time.Duration
}

// Client fetches the league transaction wire and maps injured-list
// moves to raw observations. The wire is authoritative for IL stints,
// which is why this origin outranks media feeds in dedupe.
type Client struct {
	baseURL    string
	httpClient httpDoer
	lookback   time.Duration
	now        func() time.Time
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs a transaction wire client.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		lookback:   resolveLookback(cfg.Lookback),
		now:        time.Now,
	}
}

func (c *Client) Origin() string      { return providerName }
func (c *Client) Sport() domain.Sport { return domain.SportMLB }

// Fetch pulls the transaction window ending today and keeps only
// injured-list placements.
func (c *Client) Fetch(ctx context.Context) ([]domain.RawObservation, error) {
	req, err := c.buildRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &sources.FetchError{Origin: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &sources.FetchError{
			Origin:     providerName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var payload transactionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &sources.FetchError{Origin: providerName, Err: fmt.Errorf("decode payload: %w", err)}
	}

	observations := make([]domain.RawObservation, 0, len(payload.Transactions))
	for _, tx := range payload.Transactions {
		obs, ok := mapTransaction(tx)
		if !ok {
			continue
		}
		observations = append(observations, obs)
	}
	return observations, nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/transactions", nil)
	if err != nil {
		return nil, err
	}

	today := c.now().UTC()
	q := req.URL.Query()
	q.Set("startDate", timeutil.FormatDate(today.Add(-c.lookback)))
	q.Set("endDate", timeutil.FormatDate(today))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	return req, nil
}

func normalizeBaseURL(base string) string {
	if base == "" {
		base = "https://statsapi.mlb.com"
	}
	return strings.TrimRight(base, "/")
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: 15 * time.Second}
}

func resolveLookback(d time.Duration) time.Duration {
	if d <= 0 {
		return 48 * time.Hour
	}
	return d
}
