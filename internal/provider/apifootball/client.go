// Package apifootball implements the provider adapter for the API-Football
// v3 API (api-sports.io).
//
// API-Football uses header-based auth (x-apisports-key), wraps every payload
// in a {response: [...]} envelope, and reports match state as short string
// codes ("1H", "FT", "PST", ...).
package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/calcioscope/calcio-data/internal/provider"
)

const defaultBaseURL = "https://v3.football.api-sports.io"

// Config holds the client settings. Credentials are injected here, never
// read from the environment by this package.
type Config struct {
	APIKey            string
	BaseURL           string // defaults to the production API-Football host
	RequestsPerMinute int    // defaults to 300
}

// client is the rate-limited HTTP client for API-Football endpoints.
type client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func newClient(cfg Config, logger *slog.Logger) *client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 300
	}
	rps := float64(cfg.RequestsPerMinute) / 60.0
	return &client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// envelope is the common API-Football response wrapper.
type envelope struct {
	Response json.RawMessage `json:"response"`
	Errors   interface{}     `json:"errors"`
}

// get performs a rate-limited GET and returns the decoded response array.
func (c *client) get(ctx context.Context, path string, params url.Values) ([]provider.Doc, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-apisports-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API-Football %s returned %d: %s", path, resp.StatusCode, truncate(body, 200))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var items []map[string]interface{}
	if err := json.Unmarshal(env.Response, &items); err != nil {
		return nil, fmt.Errorf("decode response items: %w", err)
	}

	docs := make([]provider.Doc, len(items))
	for i, item := range items {
		docs[i] = provider.Doc(item)
	}
	return docs, nil
}

// truncate returns a truncated string for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
