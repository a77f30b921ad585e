package models

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// IsTerminal reports whether no further status transition is defined.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

// Task is a titled, time-boxed unit of work owned by a single user.
// start_time/end_time are free-form time-of-day strings; task_date is a
// zero-padded YYYY-MM-DD string so range queries can compare
// lexicographically. completed_at and cancelled_at are mutually
// exclusive and stamped exactly once by the status transition.
type Task struct {
	ID                 int64      `gorm:"primarykey" json:"id"`
	UserID             string     `gorm:"not null;index:idx_tasks_user_id" json:"user_id"`
	Category           string     `gorm:"not null" json:"category"`
	Title              string     `gorm:"not null" json:"title"`
	Description        string     `gorm:"type:text" json:"description"`
	StartTime          string     `gorm:"not null" json:"start_time"`
	EndTime            string     `gorm:"not null" json:"end_time"`
	TaskDate           string     `gorm:"not null;index:idx_tasks_task_date" json:"task_date"`
	Priority           string     `json:"priority"`
	Status             TaskStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_tasks_status" json:"status"`
	IconName           string     `json:"icon_name"`
	CategoryColor      string     `json:"category_color"`
	Tag                string     `json:"tag"`
	AIBreakdownEnabled IntBool    `gorm:"column:ai_breakdown_enabled;not null;default:0" json:"ai_breakdown_enabled"`
	SubTaskIDs         string     `gorm:"column:sub_task_ids" json:"sub_task_ids,omitempty"`
	CreatedAt          ISOTime    `gorm:"not null" json:"created_at"`
	CompletedAt        *ISOTime   `json:"completed_at,omitempty"`
	CancelledAt        *ISOTime   `json:"cancelled_at,omitempty"`
}

func (t *Task) IsPending() bool {
	return t.Status == TaskStatusPending
}

func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

func (t *Task) IsCancelled() bool {
	return t.Status == TaskStatusCancelled
}
