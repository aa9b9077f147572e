package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gen01-ai/interview-assistant/internal/assistant"
)

// AssistantHandler exposes the interview assistant HTTP surface.
type AssistantHandler struct {
	svc    *assistant.Service
	logger *zap.SugaredLogger
}

// NewAssistantHandler builds a new AssistantHandler.
func NewAssistantHandler(svc *assistant.Service, logger *zap.SugaredLogger) *AssistantHandler {
	return &AssistantHandler{svc: svc, logger: logger}
}

func (h *AssistantHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.handleHome)
	router.POST("/process-text/", h.handleProcessText)
}

func (h *AssistantHandler) handleHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server is running!"})
}

type processTextRequest struct {
	UserID   string `form:"user_id" binding:"required"`
	Question string `form:"question" binding:"required"`
}

func (h *AssistantHandler) handleProcessText(c *gin.Context) {
	var req processTextRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and question are required"})
		return
	}

	result, err := h.svc.ProcessText(c.Request.Context(), req.UserID, req.Question)
	if err != nil {
		// Failures ride on a 200 body; the deployed frontend only inspects
		// the "error" key, so the transport status stays successful.
		if errors.Is(err, assistant.ErrEmptyReply) {
			c.JSON(http.StatusOK, gin.H{"error": err.Error()})
			return
		}
		h.logger.Errorf("error processing response: %v", err)
		c.JSON(http.StatusOK, gin.H{"error": "Error processing response: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answer":        result.Answer,
		"response_time": result.ResponseTime,
	})
}
