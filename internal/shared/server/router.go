package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-scoring/internal/shared/config"
	"resume-scoring/internal/shared/metrics"
	"resume-scoring/internal/shared/server/middleware"
	"resume-scoring/internal/shared/server/respond"
)

const (
	rateGroupDefault = "DEFAULT"
	rateGroupScoring = "SCORING"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// HealthReporter reports per-dependency health plus an overall "ok" key.
type HealthReporter interface {
	Status(ctx context.Context) map[string]bool
}

// RouterDeps carries what NewRouter needs to mount the API.
type RouterDeps struct {
	Config   config.Config
	Handlers []RouteRegistrar
	// Health reports readiness; nil means always healthy.
	Health HealthReporter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	cfg := deps.Config

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: rateGroupDefault,
			GroupFor:     rateGroupFor,
			Rules: map[string]middleware.RateLimitRule{
				rateGroupDefault: {Rate: cfg.RateLimitRate, Burst: cfg.RateLimitBurst},
				rateGroupScoring: {Rate: cfg.ScoringRate, Burst: cfg.ScoringBurst},
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		status := deps.Health.Status(c.Request.Context())
		if !status["ok"] {
			respond.Error(c, http.StatusServiceUnavailable, "unavailable", "dependency check failed", status)
			return
		}
		respond.JSON(c, http.StatusOK, status)
	})
	api.GET("/metrics", metrics.Handler())

	for _, h := range deps.Handlers {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}
	return r
}

func rateGroupFor(c *gin.Context) string {
	if strings.HasPrefix(c.FullPath(), "/api/v1/scoring/") {
		return rateGroupScoring
	}
	return rateGroupDefault
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
