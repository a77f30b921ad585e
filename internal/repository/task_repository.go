package repository

import (
	"errors"

	"github.com/uchannel/uchannel-backend/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by id
func (r *GormTaskRepository) FindByID(id int64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks matching the filter in chronological order
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{}).Where("user_id = ?", filter.UserID)

	if filter.Date != nil {
		query = query.Where("task_date = ?", *filter.Date).Order("start_time ASC")
	} else {
		query = query.Order("task_date ASC, start_time ASC")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateFields overwrites the given mutable columns on one row
func (r *GormTaskRepository) UpdateFields(id int64, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Task{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

// MarkCompleted transitions pending→completed. The status guard lives in
// the WHERE clause so two concurrent completions cannot both win.
func (r *GormTaskRepository) MarkCompleted(id int64, at models.ISOTime) (bool, error) {
	return r.transition(id, models.TaskStatusCompleted, "completed_at", at)
}

// MarkCancelled transitions pending→cancelled, same guard as MarkCompleted.
func (r *GormTaskRepository) MarkCancelled(id int64, at models.ISOTime) (bool, error) {
	return r.transition(id, models.TaskStatusCancelled, "cancelled_at", at)
}

func (r *GormTaskRepository) transition(id int64, to models.TaskStatus, stampColumn string, at models.ISOTime) (bool, error) {
	result := r.db.Model(&models.Task{}).
		Where("id = ? AND status = ?", id, models.TaskStatusPending).
		Updates(map[string]interface{}{
			"status":    to,
			stampColumn: at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete hard-deletes a row regardless of status
func (r *GormTaskRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&models.Task{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByDateRange counts tasks with task_date in [start, end]
func (r *GormTaskRepository) CountByDateRange(userID, start, end string) (int, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("user_id = ? AND task_date >= ? AND task_date <= ?", userID, start, end).
		Count(&count).Error
	return int(count), err
}

// CountByStatusAndDateRange counts tasks by status within [start, end]
func (r *GormTaskRepository) CountByStatusAndDateRange(userID string, status models.TaskStatus, start, end string) (int, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("user_id = ? AND status = ? AND task_date >= ? AND task_date <= ?", userID, status, start, end).
		Count(&count).Error
	return int(count), err
}

// CountByStatus counts tasks by status across all dates
func (r *GormTaskRepository) CountByStatus(userID string, status models.TaskStatus) (int, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return int(count), err
}

// CountByPriority counts tasks by exact priority label
func (r *GormTaskRepository) CountByPriority(userID, priority string) (int, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("user_id = ? AND priority = ?", userID, priority).
		Count(&count).Error
	return int(count), err
}

// CountByCategory counts tasks by exact category label
func (r *GormTaskRepository) CountByCategory(userID, category string) (int, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("user_id = ? AND category = ?", userID, category).
		Count(&count).Error
	return int(count), err
}

// CountPerDate returns total and completed counts grouped by task_date
func (r *GormTaskRepository) CountPerDate(userID, start, end string) ([]DateCount, error) {
	var rows []DateCount
	err := r.db.Model(&models.Task{}).
		Select("task_date AS date, COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed", models.TaskStatusCompleted).
		Where("user_id = ? AND task_date >= ? AND task_date <= ?", userID, start, end).
		Group("task_date").
		Order("task_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// IsNotFound reports whether err is the store's absent-row signal.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
