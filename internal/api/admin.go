package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/models"
	"storefront-api/internal/seed"
)

// adminStats handles GET /api/admin/stats. Everything is computed on each
// call; revenue is summed here over the capped totals scan.
func (h *Handler) adminStats(c *gin.Context) {
	ctx := c.Request.Context()

	totalProducts, err := h.store.CountProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to compute stats",
			"details": err.Error(),
		})
		return
	}

	totalOrders, err := h.store.CountOrders(ctx, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to compute stats",
			"details": err.Error(),
		})
		return
	}

	pendingOrders, err := h.store.CountOrders(ctx, models.OrderStatusPending)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to compute stats",
			"details": err.Error(),
		})
		return
	}

	totals, err := h.store.OrderTotals(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to compute stats",
			"details": err.Error(),
		})
		return
	}

	var totalRevenue float64
	for _, t := range totals {
		totalRevenue += t
	}

	c.JSON(http.StatusOK, gin.H{
		"total_products": totalProducts,
		"total_orders":   totalOrders,
		"pending_orders": pendingOrders,
		"total_revenue":  totalRevenue,
	})
}

// seedData handles POST /api/seed-data
func (h *Handler) seedData(c *gin.Context) {
	result, err := seed.Run(c.Request.Context(), h.store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to seed database",
			"details": err.Error(),
		})
		return
	}

	if result.AlreadySeeded {
		c.JSON(http.StatusOK, gin.H{
			"message": "Database already seeded",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Database seeded successfully",
		"products":   result.Products,
		"categories": result.Categories,
	})
}
