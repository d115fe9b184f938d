package leave

import (
	"testing"
	"time"

	"github.com/openleave/leave-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestSpanDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2024, time.March, 10), date(2024, time.March, 10), 1},
		{"three days", date(2024, time.January, 1), date(2024, time.January, 3), 3},
		{"across month boundary", date(2024, time.February, 25), date(2024, time.March, 5), 10},
		{"across leap day", date(2024, time.February, 28), date(2024, time.March, 1), 3},
		{"non leap year", date(2023, time.February, 28), date(2023, time.March, 1), 2},
		{"across year boundary", date(2024, time.December, 30), date(2025, time.January, 2), 4},
		{"inverted range", date(2024, time.March, 10), date(2024, time.March, 8), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpanDays(tt.start, tt.end))
		})
	}
}

func TestSpanDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.March, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 3, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 3, SpanDays(start, end))
}

func TestHoursBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"full working day", "09:00", "17:30", 8.5},
		{"short slot", "09:00", "12:00", 3},
		{"quarter hour", "10:00", "10:15", 0.25},
		{"same time", "09:00", "09:00", 0},
		{"inverted", "17:00", "09:00", -8},
		{"bad start", "late", "17:00", 0},
		{"bad end", "09:00", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HoursBetween(tt.start, tt.end), 1e-9)
		})
	}
}

func TestDurationOfFullDay(t *testing.T) {
	d := DurationOf(leave.LeaveRequest{
		LeaveType: leave.LeaveTypeFullDay,
		StartDate: date(2024, time.March, 10),
		EndDate:   date(2024, time.March, 10),
	})

	assert.Equal(t, Duration{Days: 1, FullDays: 1}, d)
}

func TestDurationOfHalfDay(t *testing.T) {
	d := DurationOf(leave.LeaveRequest{
		LeaveType: leave.LeaveTypeHalfDay,
		StartDate: date(2024, time.June, 3),
		EndDate:   date(2024, time.June, 6),
	})

	assert.Equal(t, Duration{Days: 2, HalfDays: 2}, d)
}

func TestDurationOfHourly(t *testing.T) {
	t.Run("single day", func(t *testing.T) {
		d := DurationOf(leave.LeaveRequest{
			LeaveType: leave.LeaveTypeHourly,
			StartDate: date(2024, time.April, 2),
			EndDate:   date(2024, time.April, 2),
			StartTime: strPtr("09:00"),
			EndTime:   strPtr("17:30"),
		})
		assert.Equal(t, Duration{Hours: 8.5, HourlyHours: 8.5}, d)
	})

	t.Run("hours multiply across the span", func(t *testing.T) {
		d := DurationOf(leave.LeaveRequest{
			LeaveType: leave.LeaveTypeHourly,
			StartDate: date(2024, time.April, 2),
			EndDate:   date(2024, time.April, 4),
			StartTime: strPtr("09:00"),
			EndTime:   strPtr("17:30"),
		})
		assert.InDelta(t, 25.5, d.Hours, 1e-9)
		assert.InDelta(t, 25.5, d.HourlyHours, 1e-9)
	})

	t.Run("missing times contribute nothing", func(t *testing.T) {
		d := DurationOf(leave.LeaveRequest{
			LeaveType: leave.LeaveTypeHourly,
			StartDate: date(2024, time.April, 2),
			EndDate:   date(2024, time.April, 2),
		})
		assert.Equal(t, Duration{}, d)
	})

	t.Run("inverted range clamps to zero", func(t *testing.T) {
		d := DurationOf(leave.LeaveRequest{
			LeaveType: leave.LeaveTypeHourly,
			StartDate: date(2024, time.April, 5),
			EndDate:   date(2024, time.April, 2),
			StartTime: strPtr("09:00"),
			EndTime:   strPtr("17:00"),
		})
		assert.Equal(t, Duration{}, d)
	})
}

func TestDurationOfInvertedDayRangesPassThrough(t *testing.T) {
	full := DurationOf(leave.LeaveRequest{
		LeaveType: leave.LeaveTypeFullDay,
		StartDate: date(2024, time.March, 10),
		EndDate:   date(2024, time.March, 8),
	})
	assert.Equal(t, float64(-1), full.Days)

	half := DurationOf(leave.LeaveRequest{
		LeaveType: leave.LeaveTypeHalfDay,
		StartDate: date(2024, time.March, 10),
		EndDate:   date(2024, time.March, 8),
	})
	assert.Equal(t, -0.5, half.Days)
}
