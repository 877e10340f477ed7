package proxy

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/calcioscope/calcio-data/internal/cache"
	"github.com/calcioscope/calcio-data/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(h *Handler, appCache *cache.Cache, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag", "Cache-Control"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Routes ---

	// Root
	r.Get("/", rootHandler(cfg))

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", healthCheck)
		r.Get("/cache", cacheHealth(appCache))
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Upstream proxy — every provider API path goes through here.
	r.Get("/api/*", h.Proxy)

	return r
}

// rootHandler serves API info at /.
// @Summary API root info
// @Description Returns service name, active provider, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func rootHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSONObject(w, http.StatusOK, map[string]interface{}{
			"name":     "Calcio Data Proxy",
			"version":  "1.0.0",
			"status":   "running",
			"provider": cfg.Provider,
			"docs":     "/docs",
		})
	}
}

// healthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// cacheHealth reports response cache statistics.
// @Summary Cache health check
// @Description Returns in-memory response cache statistics.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func cacheHealth(appCache *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSONObject(w, http.StatusOK, map[string]interface{}{
			"status": "healthy",
			"cache":  appCache.Stats(),
		})
	}
}
