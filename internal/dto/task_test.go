package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRequestSnakeCase(t *testing.T) {
	body := `{
		"title": "晨间冥想",
		"category": "晨间冥想",
		"category_color": "#9DC695",
		"start_time": "07:00",
		"end_time": "07:30",
		"task_date": "2024-06-01",
		"priority": "普通",
		"ai_breakdown_enabled": true,
		"icon_name": "meditation",
		"user_id": "default-user"
	}`

	var req TaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "晨间冥想", req.Title)
	assert.Equal(t, "#9DC695", req.CategoryColor)
	assert.Equal(t, "07:00", req.StartTime)
	assert.Equal(t, "07:30", req.EndTime)
	assert.Equal(t, "2024-06-01", req.TaskDate)
	assert.True(t, req.AIBreakdownEnabled)
	assert.Equal(t, "meditation", req.IconName)
	assert.Equal(t, "default-user", req.UserID)
}

func TestTaskRequestCamelCaseAliases(t *testing.T) {
	body := `{
		"title": "Deep work",
		"category": "深度工作",
		"categoryColor": "#5A8A83",
		"startTime": "09:00",
		"endTime": "11:00",
		"taskDate": "2024-06-02",
		"aiBreakdownEnabled": true,
		"iconName": "auto_awesome",
		"userId": "someone"
	}`

	var req TaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "#5A8A83", req.CategoryColor)
	assert.Equal(t, "09:00", req.StartTime)
	assert.Equal(t, "11:00", req.EndTime)
	assert.Equal(t, "2024-06-02", req.TaskDate)
	assert.True(t, req.AIBreakdownEnabled)
	assert.Equal(t, "auto_awesome", req.IconName)
	assert.Equal(t, "someone", req.UserID)
}

func TestTaskRequestSnakeCaseWins(t *testing.T) {
	body := `{"title": "x", "category": "y", "start_time": "08:00", "startTime": "09:00"}`

	var req TaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, "08:00", req.StartTime)
}

func TestTaskRequestPriorityDefault(t *testing.T) {
	var req TaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title": "x"}`), &req))
	assert.Equal(t, "普通", req.Priority)

	require.NoError(t, json.Unmarshal([]byte(`{"title": "x", "priority": ""}`), &req))
	assert.Equal(t, "普通", req.Priority)

	require.NoError(t, json.Unmarshal([]byte(`{"title": "x", "priority": "紧急"}`), &req))
	assert.Equal(t, "紧急", req.Priority)
}
