package utils_test

import (
	"testing"
	"time"

	"itradebook/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateToDay(t *testing.T) {
	ts := time.Date(2024, 8, 15, 17, 42, 13, 99, time.UTC)
	assert.Equal(t, time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC), utils.TruncateToDay(ts))
}

func TestEndOfDay(t *testing.T) {
	ts := time.Date(2024, 8, 15, 9, 0, 0, 0, time.UTC)
	end := utils.EndOfDay(ts)
	assert.Equal(t, 15, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.True(t, end.Before(time.Date(2024, 8, 16, 0, 0, 0, 0, time.UTC)))
}

func TestPreviousDay(t *testing.T) {
	assert.Equal(t,
		time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC),
		utils.PreviousDay(time.Date(2024, 8, 1, 13, 30, 0, 0, time.UTC)))
}

func TestMonthRange(t *testing.T) {
	start, end := utils.MonthRange(2024, time.February)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)

	start, end = utils.MonthRange(2023, time.December)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestGenerateDates(t *testing.T) {
	tests := []struct {
		startDate   time.Time
		endDate     time.Time
		interval    time.Duration
		expected    []time.Time
		expectError bool
	}{
		{
			startDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			endDate:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			interval:  24 * time.Hour,
			expected: []time.Time{
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			},
			expectError: false,
		},
		{
			startDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			endDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			interval:  24 * time.Hour,
			expected: []time.Time{
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			expectError: false,
		},
		{
			startDate:   time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC),
			endDate:     time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
			interval:    24 * time.Hour,
			expected:    nil,
			expectError: true,
		},
	}

	for _, tt := range tests {
		dates, err := utils.GenerateDates(tt.startDate, tt.endDate, tt.interval)
		if tt.expectError {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, dates)
	}
}
