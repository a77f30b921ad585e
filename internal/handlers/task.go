package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uchannel/uchannel-backend/internal/constants"
	"github.com/uchannel/uchannel-backend/internal/dto"
	"github.com/uchannel/uchannel-backend/internal/errors"
	"github.com/uchannel/uchannel-backend/internal/logger"
	"github.com/uchannel/uchannel-backend/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// requestUserID resolves the task owner: the request may name one, the
// single-tenant default applies otherwise.
func requestUserID(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return constants.DefaultUserID
}

func parseTaskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errors.BadRequest(c, "Invalid task id")
		return 0, false
	}
	return id, true
}

// respondServiceError distinguishes malformed input from storage
// failures; storage detail is logged, not echoed.
func respondServiceError(c *gin.Context, err error) {
	if services.IsValidationError(err) {
		errors.BadRequest(c, err.Error())
		return
	}
	logger.Log.Errorw("task operation failed", "error", err)
	errors.InternalError(c, "")
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(requestUserID(req.UserID), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "任务创建成功",
		"task":    task,
	})
}

// GetAllTasks returns every task in chronological order
func (h *TaskHandler) GetAllTasks(c *gin.Context) {
	tasks, err := h.taskService.ListAll(constants.DefaultUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tasks":   tasks,
		"count":   len(tasks),
	})
}

// GetTasksByDate returns the tasks on one date ordered by start_time
func (h *TaskHandler) GetTasksByDate(c *gin.Context) {
	date := c.Param("date")

	tasks, err := h.taskService.ListByDate(constants.DefaultUserID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"date":    date,
		"tasks":   tasks,
		"count":   len(tasks),
	})
}

// GetPendingTasks returns all pending tasks
func (h *TaskHandler) GetPendingTasks(c *gin.Context) {
	tasks, err := h.taskService.ListPending(constants.DefaultUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tasks":   tasks,
		"count":   len(tasks),
	})
}

// GetCompletedTasks returns all completed tasks
func (h *TaskHandler) GetCompletedTasks(c *gin.Context) {
	tasks, err := h.taskService.ListCompleted(constants.DefaultUserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tasks":   tasks,
		"count":   len(tasks),
	})
}

// GetTaskByID returns one task; absence is a normal payload, not a 404
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if task == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   "任务不存在",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"task":    task,
	})
}

// UpdateTask overwrites the mutable fields of an existing task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if task == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   "任务不存在",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "任务更新成功",
		"task":    task,
	})
}

// CompleteTask transitions a pending task to completed
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	done, err := h.taskService.Complete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !done {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   "任务不存在或无法完成",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "任务已完成",
	})
}

// CancelTask transitions a pending task to cancelled
func (h *TaskHandler) CancelTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	done, err := h.taskService.Cancel(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !done {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   "任务不存在或无法取消",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "任务已取消",
	})
}

// DeleteTask hard-deletes a task regardless of status
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	deleted, err := h.taskService.Delete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   "任务不存在",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "任务已删除",
	})
}

// BreakdownTask generates persisted sub-tasks from a parent title
func (h *TaskHandler) BreakdownTask(c *gin.Context) {
	var query struct {
		Title       string `form:"title" binding:"required"`
		Description string `form:"description"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		errors.BadRequest(c, "title is required")
		return
	}

	subTasks, err := h.taskService.Breakdown(constants.DefaultUserID, query.Title, query.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "任务拆解成功",
		"subTasks": subTasks,
		"count":    len(subTasks),
	})
}
