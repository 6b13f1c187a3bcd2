package handlers

import (
	"errors"
	"net/http"
	"strings"

	"labelguard-backend/service"

	"github.com/gin-gonic/gin"
)

// AdvisorHandler handles HTTP requests for the regulatory Q&A advisor
type AdvisorHandler struct {
	advisor *service.AdvisorService
}

// NewAdvisorHandler creates a new advisor handler
func NewAdvisorHandler(advisor *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisor: advisor}
}

type askRequest struct {
	Question string `json:"question"`
}

// Ask handles POST /api/advisor/ask
func (h *AdvisorHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_QUESTION",
				"message": "Question is required",
			},
		})
		return
	}

	answer, contextUsed, err := h.advisor.Ask(c.Request.Context(), strings.TrimSpace(req.Question))
	if err != nil {
		if errors.Is(err, service.ErrAdvisorUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ADVISOR_UNAVAILABLE",
					"message": "Advisor is not configured. Set GEMINI_API_KEY to enable it.",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ADVISOR_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"question":     req.Question,
			"answer":       answer,
			"context_used": contextUsed,
		},
	})
}
