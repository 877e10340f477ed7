// Package soccersapi implements the provider adapter for the SoccersAPI
// v2.2 API.
//
// SoccersAPI authenticates with a user/token query credential pair, wraps
// every payload in a {data: ...} envelope (object or array depending on the
// endpoint), and reports match state as numeric codes 0..5.
package soccersapi

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

const defaultBaseURL = "https://api.soccersapi.com/v2.2"

// Config holds the client settings. Credentials are injected here, never
// read from the environment by this package.
type Config struct {
	User              string
	Token             string
	BaseURL           string // defaults to the production SoccersAPI host
	RequestsPerMinute int    // defaults to 60
}

// client is the rate-limited HTTP client for SoccersAPI endpoints.
type client struct {
	httpClient *http.Client
	user       string
	token      string
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func newClient(cfg Config, logger *slog.Logger) *client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 60
	}
	rps := float64(cfg.RequestsPerMinute) / 60.0
	return &client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		user:       cfg.User,
		token:      cfg.Token,
		baseURL:    cfg.BaseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// envelope is the common SoccersAPI response wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta"`
}

// get performs a rate-limited GET and returns the raw data payload.
func (c *client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("user", c.user)
	params.Set("token", c.token)

	u := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

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
		return nil, fmt.Errorf("SoccersAPI %s returned %d: %s", path, resp.StatusCode, truncate(body, 200))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return env.Data, nil
}

// getDoc fetches an endpoint whose data payload is a single object.
func (c *client) getDoc(ctx context.Context, path string, params url.Values) (provider.Doc, error) {
	data, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("decode data object: %w", err)
	}
	return provider.Doc(obj), nil
}

// getList fetches an endpoint whose data payload is an array of objects.
func (c *client) getList(ctx context.Context, path string, params url.Values) ([]provider.Doc, error) {
	data, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	var items []map[string]interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode data list: %w", err)
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
