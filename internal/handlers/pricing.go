package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"printperfect-backend/internal/pricing"
)

// PricingHandler godoc
// @Summary     Get product pricing
// @Description Returns the unit price table for all product types and sizes
// @Tags        pricing
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]map[string]float64
// @Router      /api/pricing [get]
func PricingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, pricing.ProductPricing)
}
