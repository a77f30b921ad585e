package dto

// TaskStats aggregates today's, this week's and all-time counters for the
// overview dashboard.
type TaskStats struct {
	TotalTasks      int     `json:"total_tasks"`
	CompletedTasks  int     `json:"completed_tasks"`
	PendingTasks    int     `json:"pending_tasks"`
	UrgentTasks     int     `json:"urgent_tasks"`
	ImportantTasks  int     `json:"important_tasks"`
	NormalTasks     int     `json:"normal_tasks"`
	MeditationTasks int     `json:"meditation_tasks"`
	WorkTasks       int     `json:"work_tasks"`
	SocialTasks     int     `json:"social_tasks"`
	ReviewTasks     int     `json:"review_tasks"`
	WeeklyTotal     int     `json:"weekly_total"`
	WeeklyCompleted int     `json:"weekly_completed"`
	CompletionRate  float64 `json:"completion_rate"`
}

// CategoryData is one labeled, colored slice of the category chart.
type CategoryData struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// PriorityData is one labeled, colored slice of the priority chart.
type PriorityData struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// WeeklyDay is one day of the Monday-aligned week series.
type WeeklyDay struct {
	Date           string `json:"date"`
	DayOfWeek      string `json:"day_of_week"`
	DayName        string `json:"day_name"`
	TasksCompleted int    `json:"tasks_completed"`
}

// WeeklyStats combines the week counters with the per-day series.
type WeeklyStats struct {
	WeeklyTotal     int         `json:"weekly_total"`
	WeeklyCompleted int         `json:"weekly_completed"`
	WeeklyData      []WeeklyDay `json:"weekly_data"`
	CompletionRate  float64     `json:"completion_rate"`
}

// HeatmapDay is one cell of the calendar heatmap.
type HeatmapDay struct {
	Date           string `json:"date"`
	DayOfWeek      string `json:"day_of_week"`
	TaskCount      int    `json:"task_count"`
	CompletedCount int    `json:"completed_count"`
}

// FocusTime is a placeholder payload; real focus tracking is out of scope.
type FocusTime struct {
	TotalHours   float64 `json:"total_hours"`
	Trend        string  `json:"trend"`
	DailyAverage float64 `json:"daily_average"`
}
