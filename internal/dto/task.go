package dto

import (
	"encoding/json"

	"github.com/uchannel/uchannel-backend/internal/constants"
	"github.com/uchannel/uchannel-backend/internal/models"
)

// TaskRequest carries the client-mutable task fields. Clients send either
// snake_case or camelCase for the aliased fields, so decoding goes
// through a custom UnmarshalJSON instead of plain struct tags.
type TaskRequest struct {
	Title              string
	Description        string
	Category           string
	CategoryColor      string
	StartTime          string
	EndTime            string
	TaskDate           string
	Priority           string
	Tag                string
	AIBreakdownEnabled bool
	IconName           string
	UserID             string
}

type taskRequestWire struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Priority    *string `json:"priority"`
	Tag         string  `json:"tag"`

	CategoryColor      *string `json:"category_color"`
	CategoryColorCamel *string `json:"categoryColor"`
	StartTime          *string `json:"start_time"`
	StartTimeCamel     *string `json:"startTime"`
	EndTime            *string `json:"end_time"`
	EndTimeCamel       *string `json:"endTime"`
	TaskDate           *string `json:"task_date"`
	TaskDateCamel      *string `json:"taskDate"`
	AIBreakdown        *bool   `json:"ai_breakdown_enabled"`
	AIBreakdownCamel   *bool   `json:"aiBreakdownEnabled"`
	IconName           *string `json:"icon_name"`
	IconNameCamel      *string `json:"iconName"`
	UserID             *string `json:"user_id"`
	UserIDCamel        *string `json:"userId"`
}

func pickString(snake, camel *string) string {
	if snake != nil {
		return *snake
	}
	if camel != nil {
		return *camel
	}
	return ""
}

func pickBool(snake, camel *bool) bool {
	if snake != nil {
		return *snake
	}
	if camel != nil {
		return *camel
	}
	return false
}

// UnmarshalJSON decodes both naming conventions; the snake_case spelling
// wins when a field appears twice. Priority falls back to 普通 when the
// client omits it.
func (r *TaskRequest) UnmarshalJSON(data []byte) error {
	var wire taskRequestWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	r.Title = wire.Title
	r.Description = wire.Description
	r.Category = wire.Category
	r.Tag = wire.Tag
	r.CategoryColor = pickString(wire.CategoryColor, wire.CategoryColorCamel)
	r.StartTime = pickString(wire.StartTime, wire.StartTimeCamel)
	r.EndTime = pickString(wire.EndTime, wire.EndTimeCamel)
	r.TaskDate = pickString(wire.TaskDate, wire.TaskDateCamel)
	r.AIBreakdownEnabled = pickBool(wire.AIBreakdown, wire.AIBreakdownCamel)
	r.IconName = pickString(wire.IconName, wire.IconNameCamel)
	r.UserID = pickString(wire.UserID, wire.UserIDCamel)

	if wire.Priority != nil && *wire.Priority != "" {
		r.Priority = *wire.Priority
	} else {
		r.Priority = constants.PriorityNormal
	}

	return nil
}

// TaskDTO represents a task in API responses. cancelled_at is internal
// bookkeeping and never serialized, matching the existing client contract.
type TaskDTO struct {
	ID                 int64             `json:"id"`
	Category           string            `json:"category"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	StartTime          string            `json:"start_time"`
	EndTime            string            `json:"end_time"`
	TaskDate           string            `json:"task_date"`
	Priority           string            `json:"priority"`
	Status             models.TaskStatus `json:"status"`
	IconName           string            `json:"icon_name"`
	CategoryColor      string            `json:"category_color"`
	Tag                string            `json:"tag"`
	AIBreakdownEnabled bool              `json:"ai_breakdown_enabled"`
	CreatedAt          models.ISOTime    `json:"created_at"`
	CompletedAt        *models.ISOTime   `json:"completed_at,omitempty"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:                 task.ID,
		Category:           task.Category,
		Title:              task.Title,
		Description:        task.Description,
		StartTime:          task.StartTime,
		EndTime:            task.EndTime,
		TaskDate:           task.TaskDate,
		Priority:           task.Priority,
		Status:             task.Status,
		IconName:           task.IconName,
		CategoryColor:      task.CategoryColor,
		Tag:                task.Tag,
		AIBreakdownEnabled: bool(task.AIBreakdownEnabled),
		CreatedAt:          task.CreatedAt,
		CompletedAt:        task.CompletedAt,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
