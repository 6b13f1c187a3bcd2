package handlers

import (
	"net/http"
	"strings"

	"labelguard-backend/models"
	"labelguard-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComplianceHandler handles HTTP requests for label compliance reviews
type ComplianceHandler struct {
	compliance *service.ComplianceService
}

// NewComplianceHandler creates a new compliance handler
func NewComplianceHandler(compliance *service.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{compliance: compliance}
}

type evaluateRequest struct {
	Record models.LabelRecord `json:"record"`
	Text   string             `json:"text"`
}

// Evaluate handles POST /api/compliance/evaluate
// The body carries either a structured record (Korean alias headings
// accepted) or pasted "항목: 값" label text.
func (h *ComplianceHandler) Evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_BODY",
				"message": "Request body must be JSON with a record or text field",
			},
		})
		return
	}

	var record models.LabelRecord
	switch {
	case len(req.Record) > 0:
		record = req.Record.Normalize()
	case strings.TrimSpace(req.Text) != "":
		record = models.ParseLabelText(req.Text)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMPTY_LABEL",
				"message": "Either record or text is required",
			},
		})
		return
	}

	results := h.compliance.Evaluate(record)
	summary := h.compliance.Summarize(results)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"review_id": uuid.New(),
			"results":   results,
			"summary":   summary,
		},
	})
}

// Schema handles GET /api/compliance/schema
func (h *ComplianceHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"domains":   models.RegulationSchema,
			"allergens": models.Allergens22,
		},
	})
}

// Samples handles GET /api/compliance/samples
func (h *ComplianceHandler) Samples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"samples": models.SampleLabels,
		},
	})
}
