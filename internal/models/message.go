package models

// Message is one side of a chat exchange within a conversation.
type Message struct {
	ID             int64   `gorm:"primarykey" json:"id"`
	Content        string  `gorm:"type:text;not null" json:"content"`
	Sender         string  `gorm:"type:varchar(20);not null" json:"sender"`
	ConversationID string  `gorm:"not null;index:idx_messages_conversation_id" json:"conversation_id"`
	Timestamp      ISOTime `gorm:"not null" json:"timestamp"`
}

const (
	SenderUser      = "USER"
	SenderAssistant = "ASSISTANT"
)
