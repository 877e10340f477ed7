// Package proxy implements the caching reverse proxy in front of the
// configured football data provider. It forwards arbitrary API paths
// upstream, attaches the provider credentials server-side, and applies the
// cache-policy resolver to every response so the CDN layer absorbs repeat
// traffic instead of the rate-limited upstream quota.
package proxy

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/calcioscope/calcio-data/internal/cache"
	"github.com/calcioscope/calcio-data/internal/cachepolicy"
	"github.com/calcioscope/calcio-data/internal/config"
)

// Upstream describes where proxied requests go and which credentials to
// attach: header entries for header-auth providers, query values for
// credential-pair providers.
type Upstream struct {
	BaseURL string
	Headers map[string]string
	Query   url.Values
}

// UpstreamFor builds the upstream descriptor for the configured provider.
func UpstreamFor(cfg *config.Config) Upstream {
	switch cfg.Provider {
	case config.ProviderSoccersAPI:
		return Upstream{
			BaseURL: "https://api.soccersapi.com/v2.2",
			Query: url.Values{
				"user":  {cfg.SoccersAPIUser},
				"token": {cfg.SoccersAPIToken},
			},
		}
	default:
		return Upstream{
			BaseURL: "https://v3.football.api-sports.io",
			Headers: map[string]string{"x-apisports-key": cfg.APIFootballKey},
		}
	}
}

// Handler forwards /api/* requests to the upstream provider.
type Handler struct {
	upstream   Upstream
	resolver   cachepolicy.Resolver
	cache      *cache.Cache
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHandler creates the proxy handler for one upstream.
func NewHandler(upstream Upstream, resolver cachepolicy.Resolver, appCache *cache.Cache, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		upstream:   upstream,
		resolver:   resolver,
		cache:      appCache,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// Proxy forwards the trailing path and query to the upstream provider and
// returns the upstream JSON body unchanged apart from the added cache and
// CORS headers.
// @Summary Proxy an upstream provider request
// @Description Forwards the path after /api/ to the configured provider with credentials attached. The response body is the upstream JSON; cache lifetime is assigned from the request's inferred volatility.
// @Tags proxy
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/{path} [get]
func (h *Handler) Proxy(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	rawQuery := r.URL.RawQuery
	cacheKey := path + "?" + rawQuery

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		h.write(w, r, path, rawQuery, data, etag, true)
		return
	}

	body, err := h.forward(r, path, rawQuery)
	if err != nil {
		h.logger.Error("proxy request failed", "path", path, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch from upstream provider")
		return
	}

	ttl := h.resolver.Resolve(path, rawQuery, body)
	etag := h.cache.Set(cacheKey, body, ttl)
	h.write(w, r, path, rawQuery, body, etag, false)
}

// forward issues the upstream GET with credentials attached.
func (h *Handler) forward(r *http.Request, path, rawQuery string) ([]byte, error) {
	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		params = url.Values{}
	}
	for key, vals := range h.upstream.Query {
		for _, v := range vals {
			params.Set(key, v)
		}
	}

	target := h.upstream.BaseURL + "/" + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	for key, v := range h.upstream.Headers {
		req.Header.Set(key, v)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return body, nil
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, path, rawQuery string, body []byte, etag string, hit bool) {
	ttl := h.resolver.Resolve(path, rawQuery, body)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", cachepolicy.Header(ttl))
	w.Header().Set("ETag", etag)
	if hit {
		w.Header().Set("X-Cache", "HIT")
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
