package services

import (
	"time"

	"github.com/uchannel/uchannel-backend/internal/constants"
	"github.com/uchannel/uchannel-backend/internal/dto"
	"github.com/uchannel/uchannel-backend/internal/logger"
	"github.com/uchannel/uchannel-backend/internal/utils"
)

// StatsService composes the TaskService counters into presentation-ready
// aggregates. It owns no persisted state of its own.
type StatsService struct {
	taskService *TaskService
}

// NewStatsService creates a new StatsService
func NewStatsService(taskService *TaskService) *StatsService {
	return &StatsService{taskService: taskService}
}

// Overview is a passthrough of the task statistics snapshot.
func (s *StatsService) Overview(userID string) (*dto.TaskStats, error) {
	logger.Log.Debug("getting stats overview")
	return s.taskService.Stats(userID)
}

// Weekly returns the Monday-aligned 7-day window containing today, with
// a real per-day completed count for each day.
func (s *StatsService) Weekly(userID string) (*dto.WeeklyStats, error) {
	logger.Log.Debug("getting weekly stats")

	stats, err := s.taskService.Stats(userID)
	if err != nil {
		return nil, err
	}

	weekStart := utils.WeekStart(time.Now())
	start := weekStart.Format(constants.DateLayout)
	end := weekStart.AddDate(0, 0, 6).Format(constants.DateLayout)

	completedByDate, err := s.completedByDate(userID, start, end)
	if err != nil {
		return nil, err
	}

	days := make([]dto.WeeklyDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)
		dateStr := date.Format(constants.DateLayout)
		days = append(days, dto.WeeklyDay{
			Date:           dateStr,
			DayOfWeek:      utils.ShortDayName(date.Weekday()),
			DayName:        utils.ChineseDayName(date.Weekday()),
			TasksCompleted: completedByDate[dateStr],
		})
	}

	return &dto.WeeklyStats{
		WeeklyTotal:     stats.WeeklyTotal,
		WeeklyCompleted: stats.WeeklyCompleted,
		WeeklyData:      days,
		CompletionRate:  stats.CompletionRate,
	}, nil
}

// Categories maps the four fixed category counters into chart entries,
// colored with the same constants the defaulting rules use.
func (s *StatsService) Categories(userID string) ([]dto.CategoryData, error) {
	logger.Log.Debug("getting category stats")

	stats, err := s.taskService.Stats(userID)
	if err != nil {
		return nil, err
	}

	return []dto.CategoryData{
		{Name: constants.CategoryMeditation, Count: stats.MeditationTasks, Color: constants.ColorMeditation},
		{Name: constants.CategoryDeepWork, Count: stats.WorkTasks, Color: constants.ColorWork},
		{Name: constants.CategorySocial, Count: stats.SocialTasks, Color: constants.ColorSocial},
		{Name: constants.CategoryReview, Count: stats.ReviewTasks, Color: constants.ColorReview},
	}, nil
}

// Priorities maps the three fixed priority counters into chart entries.
func (s *StatsService) Priorities(userID string) ([]dto.PriorityData, error) {
	logger.Log.Debug("getting priority stats")

	stats, err := s.taskService.Stats(userID)
	if err != nil {
		return nil, err
	}

	return []dto.PriorityData{
		{Name: constants.PriorityUrgent, Count: stats.UrgentTasks, Color: constants.ColorHighPriority},
		{Name: constants.PriorityImportant, Count: stats.ImportantTasks, Color: constants.ColorReview},
		{Name: constants.PriorityNormal, Count: stats.NormalTasks, Color: constants.ColorMeditation},
	}, nil
}

// Heatmap returns real per-date counts for the last `days` dates
// including today, oldest first, zero-filled for days without rows.
func (s *StatsService) Heatmap(userID string, days int) ([]dto.HeatmapDay, error) {
	logger.Log.Debugw("getting heatmap data", "days", days)

	today := time.Now()
	first := today.AddDate(0, 0, -(days - 1))
	start := first.Format(constants.DateLayout)
	end := today.Format(constants.DateLayout)

	counts, err := s.taskService.CompletionByDate(userID, start, end)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int, len(counts))
	completed := make(map[string]int, len(counts))
	for _, c := range counts {
		totals[c.Date] = c.Total
		completed[c.Date] = c.Completed
	}

	data := make([]dto.HeatmapDay, 0, days)
	for i := 0; i < days; i++ {
		date := first.AddDate(0, 0, i)
		dateStr := date.Format(constants.DateLayout)
		data = append(data, dto.HeatmapDay{
			Date:           dateStr,
			DayOfWeek:      utils.ShortDayName(date.Weekday()),
			TaskCount:      totals[dateStr],
			CompletedCount: completed[dateStr],
		})
	}

	return data, nil
}

// FocusTime returns a fixed placeholder payload; no focus signal is
// recorded anywhere yet.
func (s *StatsService) FocusTime(days int) (*dto.FocusTime, error) {
	logger.Log.Debugw("getting focus time stats", "days", days)

	return &dto.FocusTime{
		TotalHours:   24.5,
		Trend:        "+12%",
		DailyAverage: 3.5,
	}, nil
}

func (s *StatsService) completedByDate(userID, start, end string) (map[string]int, error) {
	counts, err := s.taskService.CompletionByDate(userID, start, end)
	if err != nil {
		return nil, err
	}
	result := make(map[string]int, len(counts))
	for _, c := range counts {
		result[c.Date] = c.Completed
	}
	return result, nil
}
