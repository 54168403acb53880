package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-api/internal/genai"
	"storefront-api/internal/models"
	"storefront-api/internal/util"
)

// Provider failures propagate as 502 on every AI endpoint; nothing is
// masked as generated content.

type generateDescriptionRequest struct {
	ProductName string   `json:"product_name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Keywords    []string `json:"keywords"`
}

type chatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}

type socialPostRequest struct {
	ProductName string   `json:"product_name" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description" binding:"required"`
	Platform    string   `json:"platform" binding:"required"`
}

// generateDescription handles POST /api/ai/generate-description. Two
// independent calls: the description body and a comma-separated tag list.
func (h *Handler) generateDescription(c *gin.Context) {
	var req generateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	description, err := h.gen.Generate(ctx, genai.SessionDescription,
		genai.AssistantPersona,
		genai.DescriptionPrompt(req.ProductName, req.Category, req.Keywords))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Text generation failed",
			"details": err.Error(),
		})
		return
	}

	tagsResponse, err := h.gen.Generate(ctx, genai.SessionTags,
		genai.AssistantPersona,
		genai.TagsPrompt(req.ProductName, req.Category))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Text generation failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"description": description,
		"tags":        genai.SplitTags(tagsResponse),
	})
}

// chatbot handles POST /api/ai/chatbot. Each exchange is appended to the
// chat_messages log keyed by the caller's session id.
func (h *Handler) chatbot(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	response, err := h.gen.Generate(ctx, req.SessionID, genai.SupportPersona, req.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Text generation failed",
			"details": err.Error(),
		})
		return
	}

	msg := models.NewChatMessage(req.SessionID, req.Message, response)
	if err := h.store.InsertChatMessage(ctx, msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to save chat message",
			"details": err.Error(),
		})
		return
	}

	util.ChatMessagesTotal.Inc()
	util.GetLogger().Info("Chat exchange recorded",
		zap.String("session_id", req.SessionID))

	c.JSON(http.StatusOK, gin.H{
		"response": response,
	})
}

// socialPost handles POST /api/ai/social-post
func (h *Handler) socialPost(c *gin.Context) {
	var req socialPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	post, err := h.gen.Generate(c.Request.Context(), genai.SessionSocial,
		genai.AssistantPersona,
		genai.SocialPostPrompt(req.ProductName, *req.Price, req.Description, req.Platform))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Text generation failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"platform": req.Platform,
	})
}
