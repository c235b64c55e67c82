package jobconfigs

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-scoring/internal/shared/server/middleware"
	"resume-scoring/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the job config service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job config routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/job-configs")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/sync-logs", h.syncLogs)
	g.GET("/stats", h.stats)
	g.GET("/platforms", h.platforms)
	g.GET("/platforms/:platform/defaults", h.platformDefaults)
	g.GET("/platforms/:platform/actors", h.platformActors)
	g.GET("/actors/:actorId", h.actorInfo)
	g.POST("/search-config/validate", h.validateSearchConfig)
	g.POST("/connection-test", h.connectionTest)
	g.GET("/:id", h.get)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.POST("/:id/toggle", h.toggle)
	g.POST("/:id/sync", h.sync)
}

func (h *Handler) list(c *gin.Context) {
	configs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list configurations", nil)
		return
	}
	respond.OK(c, configs)
}

func (h *Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	cfg, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, "failed to create configuration")
		return
	}
	c.Set(middleware.ConfigIDKey, cfg.ID)
	respond.Created(c, cfg)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ConfigIDKey, id)
	cfg, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "failed to fetch configuration")
		return
	}
	respond.OK(c, cfg)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ConfigIDKey, id)
	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	cfg, err := h.Svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.writeError(c, err, "failed to update configuration")
		return
	}
	respond.OK(c, cfg)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ConfigIDKey, id)
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "failed to delete configuration")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) toggle(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ConfigIDKey, id)
	cfg, err := h.Svc.Toggle(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "failed to toggle configuration")
		return
	}
	respond.OK(c, cfg)
}

func (h *Handler) sync(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ConfigIDKey, id)
	res := h.Svc.TriggerSync(c.Request.Context(), id)
	status := http.StatusOK
	switch res.Kind {
	case SyncKindNotFound:
		status = http.StatusNotFound
	case SyncKindInactive:
		status = http.StatusConflict
	case SyncKindRemoteFailure:
		status = http.StatusBadGateway
	case SyncKindStoreFailure:
		status = http.StatusInternalServerError
	}
	respond.JSON(c, status, res)
}

func (h *Handler) syncLogs(c *gin.Context) {
	limit := 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be an integer", []map[string]string{
				{"field": "limit", "issue": "invalid"},
			})
			return
		}
		limit = parsed
	}
	configID := c.Query("configId")
	if configID != "" {
		c.Set(middleware.ConfigIDKey, configID)
	}
	logs, err := h.Svc.ListSyncLogs(c.Request.Context(), configID, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list sync logs", nil)
		return
	}
	respond.OK(c, logs)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute stats", nil)
		return
	}
	respond.OK(c, stats)
}

func (h *Handler) platforms(c *gin.Context) {
	respond.OK(c, gin.H{"platforms": Platforms()})
}

func (h *Handler) platformDefaults(c *gin.Context) {
	platform := normalizePlatform(c.Param("platform"))
	cfg := DefaultSearchConfig(platform)
	respond.OK(c, gin.H{
		"platform":     platform,
		"searchConfig": cfg,
		"display":      FormatSearchConfigForDisplay(cfg),
		"defaultActor": DefaultActor(platform),
	})
}

func (h *Handler) platformActors(c *gin.Context) {
	platform := normalizePlatform(c.Param("platform"))
	respond.OK(c, gin.H{"platform": platform, "actors": ActorsFor(platform)})
}

func (h *Handler) actorInfo(c *gin.Context) {
	info, err := h.Svc.ActorInfo(c.Request.Context(), c.Param("actorId"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "actor not found", nil)
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "not_configured", "platform API is not configured", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusBadGateway, "upstream_error", "failed to fetch actor info", nil)
		}
		return
	}
	respond.OK(c, info)
}

func (h *Handler) validateSearchConfig(c *gin.Context) {
	var cfg SearchConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	res := ValidateSearchConfig(cfg)
	respond.OK(c, gin.H{
		"valid":   res.Valid,
		"errors":  res.Errors,
		"display": FormatSearchConfigForDisplay(cfg),
	})
}

type connectionTestRequest struct {
	Token string `json:"token"`
}

func (h *Handler) connectionTest(c *gin.Context) {
	var req connectionTestRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}
	respond.OK(c, h.Svc.TestConnection(c.Request.Context(), req.Token))
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "configuration not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
