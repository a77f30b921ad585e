package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday stays", time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC), "2024-06-03"},
		{"wednesday rewinds", time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), "2024-06-03"},
		{"sunday belongs to preceding monday", time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC), "2024-06-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in).Format("2006-01-02"))
		})
	}
}

func TestDayNames(t *testing.T) {
	assert.Equal(t, "周一", ChineseDayName(time.Monday))
	assert.Equal(t, "周日", ChineseDayName(time.Sunday))
	assert.Equal(t, "Mon", ShortDayName(time.Monday))
	assert.Equal(t, "Sun", ShortDayName(time.Sunday))
}
