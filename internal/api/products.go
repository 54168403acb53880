package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/models"
	"storefront-api/internal/store"
	"storefront-api/internal/util"
)

const featuredLimit = 8

// listProducts handles GET /api/products
func (h *Handler) listProducts(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	products, err := h.store.ListProducts(c.Request.Context(), category, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list products",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// getProduct handles GET /api/products/:id
func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.store.GetProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get product",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// createProduct handles POST /api/products
func (h *Handler) createProduct(c *gin.Context) {
	var req models.ProductCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product := req.NewProduct()
	if err := h.store.InsertProduct(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create product",
			"details": err.Error(),
		})
		return
	}

	util.ProductsCreatedTotal.Inc()
	c.JSON(http.StatusCreated, product)
}

// featuredProducts handles GET /api/products/featured/list
func (h *Handler) featuredProducts(c *gin.Context) {
	products, err := h.store.FeaturedProducts(c.Request.Context(), featuredLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list featured products",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}
