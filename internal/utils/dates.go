package utils

import (
	"time"

	"github.com/uchannel/uchannel-backend/internal/constants"
)

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(constants.DateLayout)
}

// DaysAgo returns the local date n days before today as YYYY-MM-DD.
func DaysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(constants.DateLayout)
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return t.AddDate(0, 0, -offset)
}

var chineseDayNames = map[time.Weekday]string{
	time.Monday:    "周一",
	time.Tuesday:   "周二",
	time.Wednesday: "周三",
	time.Thursday:  "周四",
	time.Friday:    "周五",
	time.Saturday:  "周六",
	time.Sunday:    "周日",
}

// ChineseDayName returns the localized weekday label used by the charts.
func ChineseDayName(day time.Weekday) string {
	return chineseDayNames[day]
}

// ShortDayName returns the three-letter English weekday name ("Mon").
func ShortDayName(day time.Weekday) string {
	return day.String()[:3]
}
