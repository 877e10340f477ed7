package proxy

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/calcioscope/calcio-data/internal/cache"
	"github.com/calcioscope/calcio-data/internal/cachepolicy"
	"github.com/calcioscope/calcio-data/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestProxy wires a handler to a stub upstream behind a chi route so
// the wildcard URL param resolves the same way it does in the real router.
func newTestProxy(t *testing.T, upstreamHandler http.HandlerFunc, creds Upstream) (http.Handler, *cache.Cache) {
	t.Helper()
	srv := httptest.NewServer(upstreamHandler)
	t.Cleanup(srv.Close)

	creds.BaseURL = srv.URL
	appCache := cache.New(true)
	h := NewHandler(creds, cachepolicy.APIFootball{}, appCache, discardLogger())

	router := chi.NewRouter()
	router.Get("/api/*", h.Proxy)
	return router, appCache
}

func TestProxyForwardsPathAndAttachesHeaderCredentials(t *testing.T) {
	var gotPath, gotKey, gotQuery string
	router, _ := newTestProxy(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-apisports-key")
		gotQuery = r.URL.Query().Get("season")
		w.Write([]byte(`{"response": []}`))
	}, Upstream{Headers: map[string]string{"x-apisports-key": "secret"}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/standings?season=2024", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if gotPath != "/standings" || gotQuery != "2024" {
		t.Fatalf("unexpected upstream request %s season=%q", gotPath, gotQuery)
	}
	if gotKey != "secret" {
		t.Fatalf("credential header not attached, got %q", gotKey)
	}
}

func TestProxyAttachesQueryCredentials(t *testing.T) {
	var gotUser, gotToken string
	router, _ := newTestProxy(t, func(w http.ResponseWriter, r *http.Request) {
		gotUser = r.URL.Query().Get("user")
		gotToken = r.URL.Query().Get("token")
		w.Write([]byte(`{"data": []}`))
	}, Upstream{Query: url.Values{"user": {"u1"}, "token": {"t1"}}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/teams?id=1280", nil))

	if gotUser != "u1" || gotToken != "t1" {
		t.Fatalf("query credentials not attached, got user=%q token=%q", gotUser, gotToken)
	}
}

func TestProxySetsCachePolicyHeaders(t *testing.T) {
	router, _ := newTestProxy(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": []}`))
	}, Upstream{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/standings?season=2024", nil))

	// Standings sit in the daily bucket: 86400s fresh, twice that stale.
	if got := rec.Header().Get("Cache-Control"); got != "public, s-maxage=86400, stale-while-revalidate=172800" {
		t.Fatalf("unexpected Cache-Control %q", got)
	}
	if rec.Header().Get("ETag") == "" {
		t.Fatal("expected an ETag")
	}
	if got := rec.Header().Get("X-Cache"); got != "MISS" {
		t.Fatalf("first request must be a MISS, got %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected Content-Type %q", got)
	}
}

func TestProxyServesSecondRequestFromCache(t *testing.T) {
	calls := 0
	router, _ := newTestProxy(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"response": []}`))
	}, Upstream{})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/teams?id=489", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/teams?id=489", nil))

	if calls != 1 {
		t.Fatalf("cached request must not reach upstream, got %d calls", calls)
	}
	if got := second.Header().Get("X-Cache"); got != "HIT" {
		t.Fatalf("second request must be a HIT, got %q", got)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatal("cached body must match the original")
	}
}

func TestProxyHonorsIfNoneMatch(t *testing.T) {
	router, _ := newTestProxy(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": []}`))
	}, Upstream{})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/teams?id=489", nil))
	etag := first.Header().Get("ETag")

	req := httptest.NewRequest(http.MethodGet, "/api/teams?id=489", nil)
	req.Header.Set("If-None-Match", etag)
	second := httptest.NewRecorder()
	router.ServeHTTP(second, req)

	if second.Code != http.StatusNotModified {
		t.Fatalf("matching ETag on a cache hit must yield 304, got %d", second.Code)
	}
	if second.Body.Len() != 0 {
		t.Fatalf("304 must carry no body, got %q", second.Body.String())
	}
}

func TestProxyUpstreamFailureYieldsFlatError(t *testing.T) {
	router, _ := newTestProxy(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}, Upstream{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fixtures?season=2024", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("upstream failure must map to 500, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body must be JSON: %v", err)
	}
	if body["error"] != "Failed to fetch from upstream provider" {
		t.Fatalf("unexpected error body %+v", body)
	}
	// Upstream status and body must never leak through.
	if len(body) != 1 {
		t.Fatalf("error body must carry only the error field, got %+v", body)
	}
}

func TestProxySingleFixtureTTLFollowsBodyStatus(t *testing.T) {
	router, _ := newTestProxy(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": [{"fixture": {"id": 123, "status": {"short": "1H"}}}]}`))
	}, Upstream{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fixtures?id=123", nil))

	// A live match gets the short lifetime even on a fixture path.
	if got := rec.Header().Get("Cache-Control"); got != "public, s-maxage=60, stale-while-revalidate=120" {
		t.Fatalf("unexpected Cache-Control %q", got)
	}
}

func TestUpstreamForSelectsCredentialStyle(t *testing.T) {
	af := UpstreamFor(&config.Config{Provider: config.ProviderAPIFootball, APIFootballKey: "key123"})
	if af.Headers["x-apisports-key"] != "key123" || af.Query != nil {
		t.Fatalf("unexpected apifootball upstream %+v", af)
	}

	sa := UpstreamFor(&config.Config{Provider: config.ProviderSoccersAPI, SoccersAPIUser: "u1", SoccersAPIToken: "t1"})
	if sa.Query.Get("user") != "u1" || sa.Query.Get("token") != "t1" || sa.Headers != nil {
		t.Fatalf("unexpected soccersapi upstream %+v", sa)
	}
}
