// Package httpapi wires the HTTP transport (Gin) to the application service,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// compression, CORS, security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/ouvidoria-digital/esic-backend/docs"
	"github.com/ouvidoria-digital/esic-backend/internal/config"
	"github.com/ouvidoria-digital/esic-backend/internal/domain"
	"github.com/ouvidoria-digital/esic-backend/internal/http/handlers"
	"github.com/ouvidoria-digital/esic-backend/internal/http/middleware"
	"github.com/ouvidoria-digital/esic-backend/internal/repo"
	"github.com/ouvidoria-digital/esic-backend/internal/services"
)

// requestRepoShim adapts the repository free functions to the
// services.RequestRepo interface expected by the RequestService. This keeps
// the service decoupled from the concrete repo package while reusing the
// existing functions.
type requestRepoShim struct{}

// CreateRequest proxies repo.CreateRequest.
func (requestRepoShim) CreateRequest(ctx context.Context, db *gorm.DB, r *domain.Request) error {
	return repo.CreateRequest(ctx, db, r)
}

// GetRequestByProtocol proxies repo.GetRequestByProtocol.
func (requestRepoShim) GetRequestByProtocol(ctx context.Context, db *gorm.DB, protocol string) (*domain.Request, error) {
	return repo.GetRequestByProtocol(ctx, db, protocol)
}

// ListRequests proxies repo.ListRequests.
func (requestRepoShim) ListRequests(ctx context.Context, db *gorm.DB, f repo.ListFilter) ([]domain.Request, error) {
	return repo.ListRequests(ctx, db, f)
}

// CountRequests proxies repo.CountRequests.
func (requestRepoShim) CountRequests(ctx context.Context, db *gorm.DB, f repo.ListFilter) (int64, error) {
	return repo.CountRequests(ctx, db, f)
}

// UpdateResponseByProtocol proxies repo.UpdateResponseByProtocol.
func (requestRepoShim) UpdateResponseByProtocol(ctx context.Context, db *gorm.DB, protocol string, response string, attachments domain.AttachmentList, status domain.Status, respondedAt time.Time) (*domain.Request, error) {
	return repo.UpdateResponseByProtocol(ctx, db, protocol, response, attachments, status, respondedAt)
}

// RequestStats proxies repo.RequestStats.
func (requestRepoShim) RequestStats(ctx context.Context, db *gorm.DB) (int64, map[domain.Status]int64, error) {
	return repo.RequestStats(ctx, db)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), compression, rate
// limiting, CORS and security headers, health and metrics endpoints, and then
// mounts the versioned API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Response compression
//  7. Metrics
//  8. Rate limiter (per client IP)
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction (citizen PII never reaches logs)
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			"X-Api-Key",
		},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Response compression
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: service ← repo/db
	svc := services.NewRequestService(db, requestRepoShim{})
	h := handlers.New(svc)

	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Public: submissions and protocol lookup
		api.POST("/requests", h.SubmitRequest)
		api.GET("/requests/:protocol", h.LookupRequest)

		// Public: static content
		api.GET("/content/faq", h.GetFAQ)
		api.GET("/content/legislation", h.GetLegislation)

		// Admin: behind bearer-token auth
		admin := api.Group("/admin", middleware.AdminAuth(cfg.AdminToken))
		{
			admin.GET("/requests", h.ListRequestsAdmin)
			admin.GET("/requests/stats", h.RequestStats)
			admin.PUT("/requests/:protocol/response", h.RespondRequest)
		}
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
