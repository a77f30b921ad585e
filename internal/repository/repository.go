package repository

import (
	"github.com/uchannel/uchannel-backend/internal/models"
)

// TaskFilter holds filtering options for listing tasks. Results are
// ordered by (task_date ASC, start_time ASC), or by start_time alone
// when Date pins a single day.
type TaskFilter struct {
	UserID string
	Date   *string
	Status *models.TaskStatus
}

// DateCount is a per-day aggregate used by the weekly and heatmap views.
type DateCount struct {
	Date      string
	Total     int
	Completed int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task and fills in its assigned id
	Create(task *models.Task) error

	// FindByID finds a task by id; returns gorm.ErrRecordNotFound when absent
	FindByID(id int64) (*models.Task, error)

	// List retrieves tasks matching the filter in chronological order
	List(filter TaskFilter) ([]models.Task, error)

	// UpdateFields overwrites the given mutable columns on one row and
	// reports how many rows matched
	UpdateFields(id int64, fields map[string]interface{}) (int64, error)

	// MarkCompleted transitions pending→completed with a single
	// conditional update; false when the row is missing or not pending
	MarkCompleted(id int64, at models.ISOTime) (bool, error)

	// MarkCancelled transitions pending→cancelled, same contract as
	// MarkCompleted
	MarkCancelled(id int64, at models.ISOTime) (bool, error)

	// Delete hard-deletes a row regardless of status; false when no row
	// was removed
	Delete(id int64) (bool, error)

	// CountByDateRange counts tasks with task_date in [start, end]
	CountByDateRange(userID, start, end string) (int, error)

	// CountByStatusAndDateRange counts tasks by status within [start, end]
	CountByStatusAndDateRange(userID string, status models.TaskStatus, start, end string) (int, error)

	// CountByStatus counts tasks by status across all dates
	CountByStatus(userID string, status models.TaskStatus) (int, error)

	// CountByPriority counts tasks by exact priority label
	CountByPriority(userID, priority string) (int, error)

	// CountByCategory counts tasks by exact category label
	CountByCategory(userID, category string) (int, error)

	// CountPerDate returns total and completed counts grouped by
	// task_date for dates in [start, end]; days without rows are omitted
	CountPerDate(userID, start, end string) ([]DateCount, error)
}

// MessageRepository defines the interface for chat message data access
type MessageRepository interface {
	// Create inserts a new message
	Create(msg *models.Message) error

	// ListByConversation returns a conversation's messages ordered by
	// timestamp ascending
	ListByConversation(conversationID string) ([]models.Message, error)
}
