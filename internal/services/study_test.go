package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name         string
		current      int
		lastStudyDay string
		today        string
		expected     int
	}{
		{"first session ever", 0, "", "2026-08-28", 1},
		{"same day keeps streak", 4, "2026-08-28", "2026-08-28", 4},
		{"same day repairs zero streak", 0, "2026-08-28", "2026-08-28", 1},
		{"consecutive day extends", 4, "2026-08-27", "2026-08-28", 5},
		{"gap resets to one", 9, "2026-08-25", "2026-08-28", 1},
		{"month boundary extends", 2, "2026-07-31", "2026-08-01", 3},
		{"year boundary extends", 30, "2025-12-31", "2026-01-01", 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextStreak(tt.current, tt.lastStudyDay, tt.today))
		})
	}
}

func TestYesterdayOf(t *testing.T) {
	assert.Equal(t, "2026-08-27", yesterdayOf("2026-08-28"))
	assert.Equal(t, "2026-02-28", yesterdayOf("2026-03-01"))
	assert.Equal(t, "", yesterdayOf("not-a-day"))
}
