package dto

import (
	"github.com/uchannel/uchannel-backend/internal/models"
)

// ChatRequest is a free-text message, optionally continuing an existing
// conversation.
type ChatRequest struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversation_id"`
}

// ChatResponse is the assistant's reply plus extracted metadata
// (conversation id, recognized schedule fields).
type ChatResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// NewChatResponse creates a ChatResponse with an empty data map
func NewChatResponse(success bool, message string) *ChatResponse {
	return &ChatResponse{
		Success: success,
		Message: message,
		Data:    map[string]interface{}{},
	}
}

// WithData attaches one data entry and returns the response for chaining
func (r *ChatResponse) WithData(key string, value interface{}) *ChatResponse {
	r.Data[key] = value
	return r
}

// MessageDTO represents a stored chat message in API responses
type MessageDTO struct {
	ID             int64          `json:"id"`
	Content        string         `json:"content"`
	Sender         string         `json:"sender"`
	ConversationID string         `json:"conversation_id"`
	Timestamp      models.ISOTime `json:"timestamp"`
}

// ToMessageDTO converts a Message model to MessageDTO
func ToMessageDTO(msg models.Message) MessageDTO {
	return MessageDTO{
		ID:             msg.ID,
		Content:        msg.Content,
		Sender:         msg.Sender,
		ConversationID: msg.ConversationID,
		Timestamp:      msg.Timestamp,
	}
}

// ToMessageDTOs converts a slice of messages
func ToMessageDTOs(messages []models.Message) []MessageDTO {
	dtos := make([]MessageDTO, len(messages))
	for i, msg := range messages {
		dtos[i] = ToMessageDTO(msg)
	}
	return dtos
}
