package services

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// AIService talks to Qwen through DashScope's OpenAI-compatible endpoint.
type AIService struct {
	client *openai.Client
	model  string
}

const schedulingSystemPrompt = `你是一个专业的日程安排助手。你的任务是帮助用户管理日程安排。
当用户提供日程信息时，你需要：
1. 理解用户的日程安排意图
2. 提取关键信息（时间、地点、事件等）
3. 给出友好的确认，并告知用户日程已添加（不要说"我会帮你添加"，而是说"已为您添加"）
4. 如果信息不完整，礼貌地询问缺失的信息
5. 提醒用户可以在"日程"Tab中查看和管理日程
请用简洁、友好的语言回复用户。`

// NewAIService creates an AIService against the given endpoint and model.
func NewAIService(apiKey, baseURL, model string) *AIService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &AIService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Reply sends the user's message with the scheduling system prompt and
// returns the model's answer.
func (s *AIService) Reply(ctx context.Context, message string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: schedulingSystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: message,
				},
			},
			Temperature: 0.7,
			MaxTokens:   1000,
			TopP:        0.8,
		},
	)
	if err != nil {
		return "", fmt.Errorf("qwen API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from qwen")
	}

	return resp.Choices[0].Message.Content, nil
}
