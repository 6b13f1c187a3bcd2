package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"labelguard-backend/service"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles HTTP requests for registered product lookups
type ProductHandler struct {
	products *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// Lookup handles GET /api/products
func (h *ProductHandler) Lookup(c *gin.Context) {
	foodType := c.Query("food_type")
	max := 10
	if raw := c.Query("max"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_MAX",
					"message": "max must be a positive integer",
				},
			})
			return
		}
		max = parsed
	}

	products, err := h.products.Lookup(c.Request.Context(), foodType, max)
	if err != nil {
		if errors.Is(err, service.ErrProductAPIKeyNotSet) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "LOOKUP_UNAVAILABLE",
					"message": "Product lookup is not configured. Set FOOD_SAFETY_API_KEY to enable it.",
				},
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LOOKUP_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"food_type": foodType,
			"products":  products,
			"count":     len(products),
		},
	})
}
