package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/models"
	"storefront-api/internal/util"
)

// listCategories handles GET /api/categories
func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.store.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list categories",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// createCategory handles POST /api/categories
func (h *Handler) createCategory(c *gin.Context) {
	var req models.CategoryCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	category := req.NewCategory()
	if err := h.store.InsertCategory(c.Request.Context(), category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create category",
			"details": err.Error(),
		})
		return
	}

	util.CategoriesCreatedTotal.Inc()
	c.JSON(http.StatusCreated, category)
}
