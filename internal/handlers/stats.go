package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uchannel/uchannel-backend/internal/constants"
	"github.com/uchannel/uchannel-backend/internal/errors"
	"github.com/uchannel/uchannel-backend/internal/logger"
	"github.com/uchannel/uchannel-backend/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func respondStatsError(c *gin.Context, err error) {
	logger.Log.Errorw("stats aggregation failed", "error", err)
	errors.InternalError(c, "")
}

func daysQuery(c *gin.Context, fallback int) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(fallback)))
	if err != nil || days < 1 {
		return fallback
	}
	return days
}

// GetOverview returns today's/this week's counters and the fixed buckets
func (h *StatsHandler) GetOverview(c *gin.Context) {
	stats, err := h.statsService.Overview(constants.DefaultUserID)
	if err != nil {
		respondStatsError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"stats":       stats,
		"lastUpdated": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetWeeklyStats returns the Monday-aligned week series
func (h *StatsHandler) GetWeeklyStats(c *gin.Context) {
	weekly, err := h.statsService.Weekly(constants.DefaultUserID)
	if err != nil {
		respondStatsError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"weeklyTotal":     weekly.WeeklyTotal,
		"weeklyCompleted": weekly.WeeklyCompleted,
		"weeklyData":      weekly.WeeklyData,
		"completionRate":  weekly.CompletionRate,
	})
}

// GetCategoryStats returns the labeled category chart entries
func (h *StatsHandler) GetCategoryStats(c *gin.Context) {
	categories, err := h.statsService.Categories(constants.DefaultUserID)
	if err != nil {
		respondStatsError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

// GetPriorityStats returns the labeled priority chart entries
func (h *StatsHandler) GetPriorityStats(c *gin.Context) {
	priorities, err := h.statsService.Priorities(constants.DefaultUserID)
	if err != nil {
		respondStatsError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"priorities": priorities,
	})
}

// GetHeatmapData returns per-date counts for the last N days
func (h *StatsHandler) GetHeatmapData(c *gin.Context) {
	days := daysQuery(c, constants.HeatmapDefaultDays)

	data, err := h.statsService.Heatmap(constants.DefaultUserID, days)
	if err != nil {
		respondStatsError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"days":    days,
	})
}

// GetFocusTimeStats returns the focus-time placeholder payload
func (h *StatsHandler) GetFocusTimeStats(c *gin.Context) {
	days := daysQuery(c, 7)

	focusTime, err := h.statsService.FocusTime(days)
	if err != nil {
		respondStatsError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"focusTime": focusTime,
		"days":      days,
	})
}
