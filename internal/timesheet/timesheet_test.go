package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDurationHours(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		startTime string
		endDate   string
		endTime   string
		want      int
	}{
		{"same day full hours", "2024-01-01", "09:00", "2024-01-01", "17:00", 8},
		{"half hour rounds up", "2024-01-01", "09:00", "2024-01-01", "17:30", 9},
		{"under half hour rounds down", "2024-01-01", "09:00", "2024-01-01", "17:20", 8},
		{"spans midnight", "2024-01-01", "22:00", "2024-01-02", "06:00", 8},
		{"multi day", "2024-01-01", "09:00", "2024-01-03", "09:00", 48},
		{"missing start time is midnight", "2024-01-01", "", "2024-01-01", "12:00", 12},
		{"zero interval", "2024-01-01", "09:00", "2024-01-01", "09:00", 0},
		{"end before start", "2024-01-02", "09:00", "2024-01-01", "09:00", 0},
		{"malformed start date", "not-a-date", "09:00", "2024-01-01", "17:00", 0},
		{"malformed end time", "2024-01-01", "09:00", "2024-01-01", "banana", 0},
		{"empty everything", "", "", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDurationHours(tt.startDate, tt.startTime, tt.endDate, tt.endTime)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		clock string
		want  string
	}{
		{"afternoon", "2024-03-15", "14:30", "15/03/2024 02:30 PM"},
		{"morning", "2024-03-15", "09:05", "15/03/2024 09:05 AM"},
		{"missing time is midnight", "2024-03-15", "", "15/03/2024 12:00 AM"},
		{"missing date", "", "14:30", "-"},
		{"malformed date", "15/03/2024", "14:30", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDisplay(tt.date, tt.clock))
		})
	}
}
