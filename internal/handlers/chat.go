package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uchannel/uchannel-backend/internal/dto"
	"github.com/uchannel/uchannel-backend/internal/errors"
	"github.com/uchannel/uchannel-backend/internal/logger"
	"github.com/uchannel/uchannel-backend/internal/services"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SendMessage stores the message and replies via the model or fallback
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "message is required")
		return
	}

	response, err := h.chatService.ProcessMessage(c.Request.Context(), req)
	if err != nil {
		logger.Log.Errorw("chat processing failed", "error", err)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetHistory returns one conversation's messages oldest first
func (h *ChatHandler) GetHistory(c *gin.Context) {
	conversationID := c.Param("id")

	messages, err := h.chatService.History(conversationID)
	if err != nil {
		logger.Log.Errorw("chat history lookup failed", "error", err)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"conversationId": conversationID,
		"messages":       messages,
		"count":          len(messages),
	})
}

// Health reports chat subsystem liveness
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewChatResponse(true, "聊天服务运行正常"))
}
