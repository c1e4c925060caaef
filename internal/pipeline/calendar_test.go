package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalendar_InvalidTimezone(t *testing.T) {
	_, err := NewCalendar("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestCalendar_At_DerivesWeekdayAndMonth(t *testing.T) {
	c, err := NewCalendar("America/Sao_Paulo")
	require.NoError(t, err)

	// 2025-03-10 12:00 UTC is a Monday in São Paulo as well.
	tc := c.At(time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "Monday", tc.Weekday)
	assert.Equal(t, "March", tc.Month)
	assert.False(t, tc.IsHoliday)
}

func TestCalendar_At_NationalHoliday(t *testing.T) {
	c, err := NewCalendar("America/Sao_Paulo")
	require.NoError(t, err)

	tc := c.At(time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC))
	assert.True(t, tc.IsHoliday)

	// Independence day.
	tc = c.At(time.Date(2025, time.September, 7, 12, 0, 0, 0, time.UTC))
	assert.True(t, tc.IsHoliday)
}

func TestCalendar_At_ConvertsTimezone(t *testing.T) {
	c, err := NewCalendar("America/Sao_Paulo")
	require.NoError(t, err)

	// 01:00 UTC on a Tuesday is still Monday in São Paulo (UTC-3).
	tc := c.At(time.Date(2025, time.March, 11, 1, 0, 0, 0, time.UTC))
	assert.Equal(t, "Monday", tc.Weekday)
}
