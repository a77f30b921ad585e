package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/uchannel/uchannel-backend/internal/dto"
	"github.com/uchannel/uchannel-backend/internal/logger"
	"github.com/uchannel/uchannel-backend/internal/models"
	"github.com/uchannel/uchannel-backend/internal/repository"
)

// ChatService persists conversations and answers with the language model
// when configured, otherwise with a rule-based scheduling fallback.
type ChatService struct {
	messageRepo repository.MessageRepository
	aiService   *AIService
}

// NewChatService creates a new ChatService; aiService may be nil when no
// API key is configured.
func NewChatService(messageRepo repository.MessageRepository, aiService *AIService) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
		aiService:   aiService,
	}
}

// ProcessMessage stores the user message, produces a reply and stores it,
// returning the reply plus conversation id and any recognized schedule.
func (s *ChatService) ProcessMessage(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	logger.Log.Infow("processing chat message", "conversation", req.ConversationID)

	conversationID := strings.TrimSpace(req.ConversationID)
	if conversationID == "" {
		conversationID = uuid.New().String()
		logger.Log.Infow("created new conversation", "id", conversationID)
	}

	if err := s.saveMessage(req.Message, models.SenderUser, conversationID); err != nil {
		return nil, err
	}

	reply := s.reply(ctx, req.Message)

	if err := s.saveMessage(reply, models.SenderAssistant, conversationID); err != nil {
		return nil, err
	}

	response := dto.NewChatResponse(true, reply).WithData("conversationId", conversationID)

	if schedule := s.extractScheduleInfo(req.Message, reply); len(schedule) > 0 {
		response.WithData("schedule", schedule)
	}

	return response, nil
}

// History returns a conversation's messages oldest first; a blank id
// yields an empty slice.
func (s *ChatService) History(conversationID string) ([]dto.MessageDTO, error) {
	if strings.TrimSpace(conversationID) == "" {
		return []dto.MessageDTO{}, nil
	}

	messages, err := s.messageRepo.ListByConversation(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	return dto.ToMessageDTOs(messages), nil
}

func (s *ChatService) reply(ctx context.Context, message string) string {
	if s.aiService != nil {
		reply, err := s.aiService.Reply(ctx, message)
		if err == nil {
			return reply
		}
		logger.Log.Warnw("qwen call failed, using fallback", "error", err)
	} else {
		logger.Log.Warn("qwen service not configured, using fallback")
	}
	return s.analyzeScheduleMessage(message)
}

func (s *ChatService) saveMessage(content, sender, conversationID string) error {
	msg := &models.Message{
		Content:        content,
		Sender:         sender,
		ConversationID: conversationID,
		Timestamp:      models.NewISOTime(time.Now()),
	}
	if err := s.messageRepo.Create(msg); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	logger.Log.Debugw("saved message", "conversation", conversationID, "sender", sender)
	return nil
}

// Rule-based fallback: recognize scheduling intent from keywords and echo
// a confirmation, or greet, or acknowledge.
func (s *ChatService) analyzeScheduleMessage(message string) string {
	lower := strings.ToLower(message)

	if containsAny(lower, scheduleKeywords) {
		if t := extractTimeInfo(message); t != "" {
			return fmt.Sprintf("已记录您的日程安排：%s。时间：%s。我会在适当的时候提醒您。", message, t)
		}
		return fmt.Sprintf("已记录您的日程安排：%s。我会在适当的时候提醒您。", message)
	}

	if containsAny(lower, greetingKeywords) {
		return "你好！我是日程安排助手。请告诉我你的日程安排，例如：明天下午3点开会、下周一上午10点面试等。"
	}

	return fmt.Sprintf("已收到您的消息：%s。我会帮您处理日程安排相关的事务。", message)
}

var scheduleKeywords = []string{
	"会议", "开会", "面试", "约会", "提醒", "日程", "安排", "明天", "后天",
	"下周", "下周一", "下周二", "下周三", "下周四", "下周五", "上午", "下午",
	"晚上", "点", "时",
}

var greetingKeywords = []string{
	"你好", "您好", "hello", "hi", "在吗", "在", "help", "帮助",
}

var scheduleTitleKeywords = []string{
	"开会", "会议", "meeting", "面试", "interview", "谈话", "talk",
	"约会", "appointment", "课程", "class", "考试", "exam",
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

var timePattern = regexp.MustCompile(`(\d{1,2})[点:]?(\d{0,2})`)

// extractTimeInfo normalizes patterns like 8点, 8:00 or 8点30 into HH:MM.
func extractTimeInfo(text string) string {
	matches := timePattern.FindStringSubmatch(text)
	if matches == nil {
		return ""
	}
	hour := matches[1]
	minute := matches[2]
	if minute == "" {
		return hour + ":00"
	}
	if len(minute) == 1 {
		minute = "0" + minute
	}
	return hour + ":" + minute
}

// extractScheduleInfo pulls time/date/title hints out of a confirmed
// exchange; returns an empty map when nothing was recognized.
func (s *ChatService) extractScheduleInfo(userMessage, assistantResponse string) map[string]interface{} {
	confirmed := strings.Contains(assistantResponse, "安排") ||
		strings.Contains(assistantResponse, "记录") ||
		strings.Contains(assistantResponse, "提醒") ||
		strings.Contains(assistantResponse, "设置") ||
		strings.Contains(assistantResponse, "确认")
	if !confirmed {
		return nil
	}

	combined := strings.ToLower(userMessage + " " + assistantResponse)
	info := map[string]interface{}{}

	if t := extractTimeInfo(combined); t != "" {
		info["time"] = t
	}
	if d := extractDateInfo(combined); d != "" {
		info["date"] = d
	}
	if title := extractTitle(userMessage); title != "" {
		info["title"] = title
	}
	if len(info) > 0 {
		info["valid"] = "true"
	}

	return info
}

func extractDateInfo(text string) string {
	for _, d := range []string{"明天", "后天", "今天", "下周"} {
		if strings.Contains(text, d) {
			return d
		}
	}
	return ""
}

func extractTitle(message string) string {
	lower := strings.ToLower(message)
	for _, keyword := range scheduleTitleKeywords {
		if strings.Contains(lower, keyword) {
			return keyword
		}
	}

	runes := []rune(message)
	if len(runes) >= 3 {
		if len(runes) > 50 {
			runes = runes[:50]
		}
		return string(runes)
	}

	return "日程安排"
}
