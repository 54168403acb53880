package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront-api/config"
	"storefront-api/internal/models"
	"storefront-api/internal/notify"
	"storefront-api/internal/util"
)

// Store is the storage surface the handlers depend on.
type Store interface {
	ListProducts(ctx context.Context, category, search string) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	InsertProduct(ctx context.Context, product *models.Product) error
	FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	InsertCategory(ctx context.Context, category *models.Category) error
	InsertOrder(ctx context.Context, order *models.Order) error
	ListOrders(ctx context.Context, userEmail string) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error
	CountOrders(ctx context.Context, status string) (int64, error)
	OrderTotals(ctx context.Context) ([]float64, error)
	InsertChatMessage(ctx context.Context, msg *models.ChatMessage) error
}

// Generator is the text-generation surface the AI handlers depend on.
type Generator interface {
	Generate(ctx context.Context, sessionID, systemPrompt, userMessage string) (string, error)
}

// Handler contains HTTP handlers
type Handler struct {
	store    Store
	gen      Generator
	notifier notify.Notifier
}

// NewHandler creates a new HTTP handler
func NewHandler(store Store, gen Generator, notifier notify.Notifier) *Handler {
	return &Handler{
		store:    store,
		gen:      gen,
		notifier: notifier,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine, corsCfg config.CORSConfig) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())
	router.Use(cors.New(corsConfig(corsCfg)))

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/", h.welcome)

		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.POST("/products", h.createProduct)
		api.GET("/products/featured/list", h.featuredProducts)

		api.GET("/categories", h.listCategories)
		api.POST("/categories", h.createCategory)

		api.POST("/orders", h.createOrder)
		api.GET("/orders", h.listOrders)
		api.GET("/orders/:id", h.getOrder)
		api.PATCH("/orders/:id/status", h.updateOrderStatus)

		api.POST("/ai/generate-description", h.generateDescription)
		api.POST("/ai/chatbot", h.chatbot)
		api.POST("/ai/social-post", h.socialPost)

		api.GET("/admin/stats", h.adminStats)
		api.POST("/seed-data", h.seedData)
	}
}

// corsConfig builds the cross-origin policy: a configurable allow-list with
// all methods and headers permitted and credentials allowed. A "*" entry
// switches to an allow-everything origin func, since the cors middleware
// rejects wildcard origins combined with credentials.
func corsConfig(cfg config.CORSConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	wildcard := false
	for _, origin := range cfg.Origins {
		if origin == "*" {
			wildcard = true
			break
		}
	}

	if wildcard {
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsCfg.AllowOrigins = cfg.Origins
	}

	return corsCfg
}

// welcome handles the API root
func (h *Handler) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Aurelia storefront API",
	})
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
