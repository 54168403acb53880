package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-api/internal/models"
	"storefront-api/internal/store"
	"storefront-api/internal/util"
)

// createOrder handles POST /api/orders
func (h *Handler) createOrder(c *gin.Context) {
	var req models.OrderCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	order := req.NewOrder()
	if err := h.store.InsertOrder(c.Request.Context(), order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create order",
			"details": err.Error(),
		})
		return
	}

	util.OrdersCreatedTotal.Inc()

	// Notification failures never fail the order.
	if err := h.notifier.OrderCreated(c.Request.Context(), order); err != nil {
		util.GetLogger().Error("Failed to send order notification",
			zap.String("order_id", order.ID),
			zap.Error(err))
	}

	c.JSON(http.StatusCreated, order)
}

// listOrders handles GET /api/orders
func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.store.ListOrders(c.Request.Context(), c.Query("user_email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list orders",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// getOrder handles GET /api/orders/:id
func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.store.GetOrder(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get order",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// updateOrderStatus handles PATCH /api/orders/:id/status
func (h *Handler) updateOrderStatus(c *gin.Context) {
	status := c.Query("status")
	if !models.ValidOrderStatus(status) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid order status",
		})
		return
	}

	err := h.store.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update order status",
			"details": err.Error(),
		})
		return
	}

	util.OrderStatusUpdatesTotal.WithLabelValues(status).Inc()
	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"status":  status,
	})
}
