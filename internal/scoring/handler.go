package scoring

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-scoring/internal/extract"
	"resume-scoring/internal/shared/metrics"
	"resume-scoring/internal/shared/server/middleware"
	"resume-scoring/internal/shared/server/respond"
	"resume-scoring/internal/shared/telemetry"
	"resume-scoring/internal/shared/util"
)

const defaultMaxUploadBytes = 10 << 20

// Handler exposes the scoring functions over HTTP.
type Handler struct {
	MaxUploadBytes int64
}

// NewHandler constructs a Handler. A non-positive limit uses 10 MiB.
func NewHandler(maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches scoring routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/scoring")
	g.POST("/assess", h.assess)
	g.POST("/evaluate", h.evaluate)
	g.GET("/weights/:level", h.weights)
	g.POST("/weights/:level/apply", h.applyWeights)
	g.GET("/bands", h.bands)
}

type assessRequest struct {
	ResumeText string      `json:"resumeText"`
	ResumeData *ResumeData `json:"resumeData"`
}

type evaluateRequest struct {
	ResumeText        string               `json:"resumeText"`
	ResumeData        *ResumeData          `json:"resumeData"`
	BaseScore         *float64             `json:"baseScore" binding:"required"`
	Level             string               `json:"level"`
	TierScores        map[string]TierScore `json:"tierScores"`
	HasJobDescription bool                 `json:"hasJobDescription"`
}

type applyWeightsRequest struct {
	TierScores map[string]TierScore `json:"tierScores" binding:"required"`
}

func (h *Handler) assess(c *gin.Context) {
	var req assessRequest
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		text, status, err := h.readUpload(c)
		if err != nil {
			respond.Error(c, status, "validation_error", err.Error(), nil)
			return
		}
		req.ResumeText = text
	} else if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", []map[string]string{
			{"field": "body", "issue": err.Error()},
		})
		return
	}

	quality := Assess(req.ResumeText, req.ResumeData)
	metrics.IncScoringAssessed()
	if !quality.IsValid {
		metrics.IncScoringInvalid()
	}
	respond.OK(c, quality)
}

// readUpload pulls the "file" form part and extracts its text.
func (h *Handler) readUpload(c *gin.Context) (string, int, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		return "", http.StatusBadRequest, errors.New("file is required")
	}
	fileName, err := util.SanitizeFileName(fh.Filename)
	if err != nil {
		return "", http.StatusBadRequest, err
	}
	if fh.Size > h.MaxUploadBytes {
		return "", http.StatusRequestEntityTooLarge, errors.New("file too large")
	}
	f, err := fh.Open()
	if err != nil {
		return "", http.StatusBadRequest, errors.New("failed to read file")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.MaxUploadBytes+1))
	if err != nil {
		return "", http.StatusBadRequest, errors.New("failed to read file")
	}
	if int64(len(data)) > h.MaxUploadBytes {
		return "", http.StatusRequestEntityTooLarge, errors.New("file too large")
	}

	text, err := extract.ResumeText(c.Request.Context(), data, fh.Header.Get("Content-Type"), fileName)
	if err != nil {
		telemetry.Warn("scoring.extract_failed", map[string]any{
			"file_name":    fileName,
			"content_hash": util.ContentHash(data),
			"error":        err,
		})
		if errors.Is(err, extract.ErrUnsupported) {
			return "", http.StatusUnsupportedMediaType, errors.New("unsupported file type; upload PDF, DOCX or plain text")
		}
		return "", http.StatusUnprocessableEntity, errors.New("could not extract text from file")
	}
	return text, http.StatusOK, nil
}

func (h *Handler) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", []map[string]string{
			{"field": "body", "issue": err.Error()},
		})
		return
	}

	level := ParseCandidateLevel(req.Level)
	c.Set(middleware.CandidateLevelKey, string(level))

	result := Evaluate(EvaluateInput{
		ResumeText:        req.ResumeText,
		ResumeData:        req.ResumeData,
		BaseScore:         *req.BaseScore,
		Level:             level,
		TierScores:        req.TierScores,
		HasJobDescription: req.HasJobDescription,
	})
	metrics.IncScoringAssessed()
	metrics.IncScoringEvaluated()
	if !result.Quality.IsValid {
		metrics.IncScoringInvalid()
	}
	respond.OK(c, result)
}

func (h *Handler) weights(c *gin.Context) {
	level := ParseCandidateLevel(c.Param("level"))
	c.Set(middleware.CandidateLevelKey, string(level))
	table := WeightsFor(level)
	respond.OK(c, gin.H{
		"level":   level,
		"weights": table,
		"total":   table.Total(),
	})
}

func (h *Handler) applyWeights(c *gin.Context) {
	var req applyWeightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "tierScores is required", nil)
		return
	}
	level := ParseCandidateLevel(c.Param("level"))
	c.Set(middleware.CandidateLevelKey, string(level))
	respond.OK(c, gin.H{
		"level":      level,
		"tierScores": ApplyWeights(req.TierScores, level),
	})
}

func (h *Handler) bands(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("score"))
	score, err := strconv.Atoi(raw)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "score must be an integer", []map[string]string{
			{"field": "score", "issue": "invalid"},
		})
		return
	}
	respond.OK(c, gin.H{
		"score":                score,
		"matchBand":            MatchBand(score),
		"interviewProbability": InterviewProbability(score),
	})
}
