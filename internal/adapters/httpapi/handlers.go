package httpapi

import (
	"math"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shieldsms/smishing-filter/internal/core"
	"github.com/shieldsms/smishing-filter/internal/rules"
	"github.com/shieldsms/smishing-filter/internal/urlcheck"
)

// serviceName appears in health responses
const serviceName = "smishing-filter"

// Handler serves the classification API. All request validation happens
// here; the core never sees empty or oversized input from this surface.
type Handler struct {
	service       *core.ClassifierService
	scorer        *rules.Scorer
	urlAnalyzer   *urlcheck.Analyzer
	logger        *zap.Logger
	maxTextLength int
}

// NewHandler creates a new API handler
func NewHandler(
	service *core.ClassifierService,
	scorer *rules.Scorer,
	urlAnalyzer *urlcheck.Analyzer,
	logger *zap.Logger,
	maxTextLength int,
) *Handler {
	return &Handler{
		service:       service,
		scorer:        scorer,
		urlAnalyzer:   urlAnalyzer,
		logger:        logger,
		maxTextLength: maxTextLength,
	}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: serviceName,
	})
}

// Classify handles POST /classify
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "field 'text' is required"})
		return
	}

	if !hasContent(req.Text) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "field 'text' must not be empty"})
		return
	}
	if utf8.RuneCountInString(req.Text) > h.maxTextLength {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "field 'text' exceeds maximum length"})
		return
	}

	result, err := h.service.Classify(c.Request.Context(), req.Text)
	if err != nil {
		h.logger.Error("Classification failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "classification failed"})
		return
	}

	c.JSON(http.StatusOK, ClassifyResponse{
		Label:   result.Label,
		Score:   roundScore(result.Score),
		Reasons: result.Reasons,
		Text:    req.Text,
	})
}

// ModelInfo handles GET /api/v1/model/info
func (h *Handler) ModelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.scorer.Info())
}

// AnalyzeURL handles POST /api/v1/urls/analyze
func (h *Handler) AnalyzeURL(c *gin.Context) {
	var req AnalyzeURLRequest
	if err := c.ShouldBindJSON(&req); err != nil || !hasContent(req.URL) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "field 'url' is required"})
		return
	}

	result := h.urlAnalyzer.Analyze(req.URL)
	c.JSON(http.StatusOK, AnalyzeURLResponse{
		URL:          req.URL,
		Domain:       result.Domain,
		IsSuspicious: result.IsSuspicious,
		IsShortened:  result.IsShortened,
		RiskScore:    roundScore(result.RiskScore),
	})
}

func hasContent(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}

// roundScore rounds to 4 decimals for display; the core keeps full precision
func roundScore(score float64) float64 {
	return math.Round(score*10000) / 10000
}
