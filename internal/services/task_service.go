package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/uchannel/uchannel-backend/internal/constants"
	"github.com/uchannel/uchannel-backend/internal/dto"
	"github.com/uchannel/uchannel-backend/internal/logger"
	"github.com/uchannel/uchannel-backend/internal/models"
	"github.com/uchannel/uchannel-backend/internal/repository"
	"github.com/uchannel/uchannel-backend/internal/utils"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidTaskDate = errors.New("task_date must be formatted as YYYY-MM-DD")
)

// IsValidationError reports whether err describes malformed input rather
// than a storage failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) || errors.Is(err, ErrInvalidTaskDate)
}

// TaskService owns the task lifecycle rules: input validation, default
// derivation, the status state machine and the counting primitives. All
// row access goes through the repository; nothing else mutates tasks.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func validateRequest(req *dto.TaskRequest) error {
	if req.Title == "" {
		return ErrTitleRequired
	}
	if _, err := time.Parse(constants.DateLayout, req.TaskDate); err != nil {
		return ErrInvalidTaskDate
	}
	return nil
}

// Create persists a new pending task, applying the default-derivation
// rules, and returns the freshly read-back record.
func (s *TaskService) Create(userID string, req dto.TaskRequest) (*dto.TaskDTO, error) {
	logger.Log.Infow("creating task", "title", req.Title, "user", userID)

	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	color, icon, tag := models.ResolveDefaults(req.Category, req.Priority, req.CategoryColor, req.IconName, req.Tag)

	task := &models.Task{
		UserID:             userID,
		Category:           req.Category,
		Title:              req.Title,
		Description:        req.Description,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		TaskDate:           req.TaskDate,
		Priority:           req.Priority,
		Status:             models.TaskStatusPending,
		IconName:           icon,
		CategoryColor:      color,
		Tag:                tag,
		AIBreakdownEnabled: models.IntBool(req.AIBreakdownEnabled),
		CreatedAt:          models.NewISOTime(time.Now()),
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	// Read-after-write: return exactly what was stored.
	stored, err := s.taskRepo.FindByID(task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created task: %w", err)
	}

	logger.Log.Infow("task created", "id", stored.ID)
	result := dto.ToTaskDTO(*stored)
	return &result, nil
}

// ListAll returns every task for the user ordered by (task_date, start_time).
func (s *TaskService) ListAll(userID string) ([]dto.TaskDTO, error) {
	tasks, err := s.taskRepo.List(repository.TaskFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return dto.ToTaskDTOs(tasks), nil
}

// ListByDate returns the user's tasks on one date ordered by start_time.
func (s *TaskService) ListByDate(userID, date string) ([]dto.TaskDTO, error) {
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return nil, ErrInvalidTaskDate
	}
	tasks, err := s.taskRepo.List(repository.TaskFilter{UserID: userID, Date: &date})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by date: %w", err)
	}
	return dto.ToTaskDTOs(tasks), nil
}

// ListPending returns the user's pending tasks in chronological order.
func (s *TaskService) ListPending(userID string) ([]dto.TaskDTO, error) {
	return s.listByStatus(userID, models.TaskStatusPending)
}

// ListCompleted returns the user's completed tasks in chronological order.
func (s *TaskService) ListCompleted(userID string) ([]dto.TaskDTO, error) {
	return s.listByStatus(userID, models.TaskStatusCompleted)
}

func (s *TaskService) listByStatus(userID string, status models.TaskStatus) ([]dto.TaskDTO, error) {
	tasks, err := s.taskRepo.List(repository.TaskFilter{UserID: userID, Status: &status})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by status: %w", err)
	}
	return dto.ToTaskDTOs(tasks), nil
}

// GetByID returns a task or (nil, nil) when the id has no row; absence is
// a normal outcome, not an error.
func (s *TaskService) GetByID(id int64) (*dto.TaskDTO, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	result := dto.ToTaskDTO(*task)
	return &result, nil
}

// Update re-applies the defaulting rules to the mutable fields and
// persists them. Status, created_at and the transition stamps are never
// touched. Returns (nil, nil) when the id has no row.
func (s *TaskService) Update(id int64, req dto.TaskRequest) (*dto.TaskDTO, error) {
	logger.Log.Infow("updating task", "id", id)

	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	if _, err := s.taskRepo.FindByID(id); err != nil {
		if repository.IsNotFound(err) {
			logger.Log.Warnw("task not found", "id", id)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	color, icon, tag := models.ResolveDefaults(req.Category, req.Priority, req.CategoryColor, req.IconName, req.Tag)

	fields := map[string]interface{}{
		"title":                req.Title,
		"description":          req.Description,
		"category":             req.Category,
		"category_color":       color,
		"icon_name":            icon,
		"start_time":           req.StartTime,
		"end_time":             req.EndTime,
		"task_date":            req.TaskDate,
		"priority":             req.Priority,
		"ai_breakdown_enabled": models.IntBool(req.AIBreakdownEnabled),
		"tag":                  tag,
	}
	if _, err := s.taskRepo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	stored, err := s.taskRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			// Deleted concurrently between check and re-read.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch updated task: %w", err)
	}

	logger.Log.Infow("task updated", "id", id)
	result := dto.ToTaskDTO(*stored)
	return &result, nil
}

// Complete transitions pending→completed, stamping completed_at once.
// The guard is a single conditional update, so a second call (or a
// concurrent rival) observes false rather than re-stamping.
func (s *TaskService) Complete(id int64) (bool, error) {
	logger.Log.Infow("completing task", "id", id)

	done, err := s.taskRepo.MarkCompleted(id, models.NewISOTime(time.Now()))
	if err != nil {
		return false, fmt.Errorf("failed to complete task: %w", err)
	}
	if !done {
		logger.Log.Warnw("task not found or not pending", "id", id)
	}
	return done, nil
}

// Cancel transitions pending→cancelled, symmetric to Complete.
func (s *TaskService) Cancel(id int64) (bool, error) {
	logger.Log.Infow("cancelling task", "id", id)

	done, err := s.taskRepo.MarkCancelled(id, models.NewISOTime(time.Now()))
	if err != nil {
		return false, fmt.Errorf("failed to cancel task: %w", err)
	}
	if !done {
		logger.Log.Warnw("task not found or not pending", "id", id)
	}
	return done, nil
}

// Delete removes a row unconditionally, whatever its status.
func (s *TaskService) Delete(id int64) (bool, error) {
	logger.Log.Infow("deleting task", "id", id)

	deleted, err := s.taskRepo.Delete(id)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		logger.Log.Warnw("task not found for deletion", "id", id)
	}
	return deleted, nil
}

// Breakdown creates real persisted sub-tasks from a parent title: two by
// default, three when the description runs past the length threshold.
func (s *TaskService) Breakdown(userID, title, description string) ([]dto.TaskDTO, error) {
	logger.Log.Infow("breaking down task", "title", title)

	count := constants.BreakdownShortCount
	if len(description) > constants.BreakdownLongThreshold {
		count = constants.BreakdownLongCount
	}

	today := utils.Today()
	created := make([]dto.TaskDTO, 0, count)
	for i := 1; i <= count; i++ {
		req := dto.TaskRequest{
			Title:     fmt.Sprintf("%s - 第%d步", title, i),
			Category:  constants.CategoryDeepWork,
			StartTime: constants.BreakdownStartTime,
			EndTime:   constants.BreakdownEndTime,
			TaskDate:  today,
			Priority:  constants.PriorityImportant,
			Tag:       constants.TagWork,
			IconName:  constants.IconWork,
		}

		task, err := s.Create(userID, req)
		if err != nil {
			return nil, err
		}
		created = append(created, *task)
	}

	logger.Log.Infow("task breakdown complete", "count", len(created))
	return created, nil
}

// Stats aggregates today's, this week's and all-time counters. Each
// counter is an independent query; the snapshot is not transactional.
func (s *TaskService) Stats(userID string) (*dto.TaskStats, error) {
	logger.Log.Debugw("getting task statistics", "user", userID)

	today := utils.Today()
	weekAgo := utils.DaysAgo(6)

	stats := &dto.TaskStats{}
	var err error

	if stats.TotalTasks, err = s.taskRepo.CountByDateRange(userID, today, today); err != nil {
		return nil, fmt.Errorf("failed to count today's tasks: %w", err)
	}
	if stats.CompletedTasks, err = s.taskRepo.CountByStatusAndDateRange(userID, models.TaskStatusCompleted, today, today); err != nil {
		return nil, fmt.Errorf("failed to count today's completed tasks: %w", err)
	}
	if stats.WeeklyTotal, err = s.taskRepo.CountByDateRange(userID, weekAgo, today); err != nil {
		return nil, fmt.Errorf("failed to count weekly tasks: %w", err)
	}
	if stats.WeeklyCompleted, err = s.taskRepo.CountByStatusAndDateRange(userID, models.TaskStatusCompleted, weekAgo, today); err != nil {
		return nil, fmt.Errorf("failed to count weekly completed tasks: %w", err)
	}
	if stats.PendingTasks, err = s.taskRepo.CountByStatus(userID, models.TaskStatusPending); err != nil {
		return nil, fmt.Errorf("failed to count pending tasks: %w", err)
	}

	if stats.UrgentTasks, err = s.taskRepo.CountByPriority(userID, constants.PriorityUrgent); err != nil {
		return nil, fmt.Errorf("failed to count urgent tasks: %w", err)
	}
	if stats.ImportantTasks, err = s.taskRepo.CountByPriority(userID, constants.PriorityImportant); err != nil {
		return nil, fmt.Errorf("failed to count important tasks: %w", err)
	}
	if stats.NormalTasks, err = s.taskRepo.CountByPriority(userID, constants.PriorityNormal); err != nil {
		return nil, fmt.Errorf("failed to count normal tasks: %w", err)
	}

	if stats.MeditationTasks, err = s.taskRepo.CountByCategory(userID, constants.CategoryMeditation); err != nil {
		return nil, fmt.Errorf("failed to count meditation tasks: %w", err)
	}
	if stats.WorkTasks, err = s.taskRepo.CountByCategory(userID, constants.CategoryDeepWork); err != nil {
		return nil, fmt.Errorf("failed to count work tasks: %w", err)
	}
	if stats.SocialTasks, err = s.taskRepo.CountByCategory(userID, constants.CategorySocial); err != nil {
		return nil, fmt.Errorf("failed to count social tasks: %w", err)
	}
	if stats.ReviewTasks, err = s.taskRepo.CountByCategory(userID, constants.CategoryReview); err != nil {
		return nil, fmt.Errorf("failed to count review tasks: %w", err)
	}

	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100.0
	}

	return stats, nil
}

// CompletionByDate exposes the per-date counting primitive to the
// statistics layer without opening up the repository.
func (s *TaskService) CompletionByDate(userID, start, end string) ([]repository.DateCount, error) {
	counts, err := s.taskRepo.CountPerDate(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks per date: %w", err)
	}
	return counts, nil
}
