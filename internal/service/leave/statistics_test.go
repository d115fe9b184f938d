package leave

import (
	"testing"
	"time"

	"github.com/openleave/leave-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateStatisticsEmpty(t *testing.T) {
	assert.Empty(t, AggregateStatistics(nil))
}

func TestAggregateStatisticsSingleEmployee(t *testing.T) {
	stats := AggregateStatistics([]leave.LeaveRequest{
		fullDayRequest("EMP-1", "Ana", date(2024, time.March, 4), date(2024, time.March, 6)),
		{
			EmployeeID:   "EMP-1",
			EmployeeName: "Ana",
			Department:   "Engineering",
			LeaveType:    leave.LeaveTypeHalfDay,
			StartDate:    date(2024, time.March, 11), EndDate: date(2024, time.March, 11),
			Status: leave.StatusApproved,
		},
		{
			EmployeeID:   "EMP-1",
			EmployeeName: "Ana",
			Department:   "Engineering",
			LeaveType:    leave.LeaveTypeHourly,
			StartDate:    date(2024, time.March, 13), EndDate: date(2024, time.March, 13),
			StartTime:    strPtr("09:00"), EndTime: strPtr("17:30"),
			Status: leave.StatusApproved,
		},
	})

	require.Len(t, stats, 1)
	row := stats[0]
	assert.Equal(t, "EMP-1", row.EmployeeID)
	assert.Equal(t, "Ana", row.EmployeeName)
	assert.Equal(t, "Engineering", row.Department)
	assert.InDelta(t, 3.5, row.TotalDays, 1e-9)
	assert.InDelta(t, 3, row.FullDays, 1e-9)
	assert.InDelta(t, 0.5, row.HalfDays, 1e-9)
	assert.InDelta(t, 8.5, row.TotalHours, 1e-9)
	assert.InDelta(t, 8.5, row.HourlyLeaves, 1e-9)
}

func TestAggregateStatisticsFirstSeenOrder(t *testing.T) {
	stats := AggregateStatistics([]leave.LeaveRequest{
		fullDayRequest("EMP-2", "Ben", date(2024, time.March, 1), date(2024, time.March, 1)),
		fullDayRequest("EMP-1", "Ana", date(2024, time.January, 1), date(2024, time.January, 1)),
		fullDayRequest("EMP-2", "Ben", date(2024, time.April, 1), date(2024, time.April, 1)),
	})

	require.Len(t, stats, 2)
	assert.Equal(t, "EMP-2", stats[0].EmployeeID)
	assert.Equal(t, "EMP-1", stats[1].EmployeeID)
	assert.InDelta(t, 2, stats[0].TotalDays, 1e-9)
}

func TestAggregateStatisticsFirstRecordSeedsSnapshot(t *testing.T) {
	// A renamed employee keeps one row under the first name seen.
	first := fullDayRequest("EMP-1", "Ana", date(2024, time.March, 1), date(2024, time.March, 1))
	second := fullDayRequest("EMP-1", "Ana Souza", date(2024, time.April, 1), date(2024, time.April, 1))
	second.Department = "Platform"

	stats := AggregateStatistics([]leave.LeaveRequest{first, second})

	require.Len(t, stats, 1)
	assert.Equal(t, "Ana", stats[0].EmployeeName)
	assert.Equal(t, "Engineering", stats[0].Department)
	assert.InDelta(t, 2, stats[0].TotalDays, 1e-9)
}

func TestAggregateStatisticsPermutationIndependentTotals(t *testing.T) {
	requests := []leave.LeaveRequest{
		fullDayRequest("EMP-1", "Ana", date(2024, time.March, 4), date(2024, time.March, 6)),
		fullDayRequest("EMP-2", "Ben", date(2024, time.March, 5), date(2024, time.March, 5)),
		{
			EmployeeID: "EMP-1", EmployeeName: "Ana", Department: "Engineering",
			LeaveType: leave.LeaveTypeHourly,
			StartDate: date(2024, time.March, 7), EndDate: date(2024, time.March, 7),
			StartTime: strPtr("13:00"), EndTime: strPtr("16:00"),
			Status: leave.StatusApproved,
		},
	}
	reversed := []leave.LeaveRequest{requests[2], requests[1], requests[0]}

	forward := AggregateStatistics(requests)
	backward := AggregateStatistics(reversed)

	totals := func(stats []leave.EmployeeStatistic) map[string]leave.EmployeeStatistic {
		m := make(map[string]leave.EmployeeStatistic)
		for _, s := range stats {
			m[s.EmployeeID] = s
		}
		return m
	}

	assert.Equal(t, totals(forward), totals(backward))
}

func TestAggregateStatisticsHalfDayAcrossDays(t *testing.T) {
	stats := AggregateStatistics([]leave.LeaveRequest{
		{
			EmployeeID: "EMP-1", EmployeeName: "Ana", Department: "Engineering",
			LeaveType: leave.LeaveTypeHalfDay,
			StartDate: date(2024, time.June, 3), EndDate: date(2024, time.June, 6),
			Status: leave.StatusApproved,
		},
	})

	require.Len(t, stats, 1)
	assert.InDelta(t, 2, stats[0].TotalDays, 1e-9)
	assert.InDelta(t, 2, stats[0].HalfDays, 1e-9)
}

func TestAggregateStatisticsHourlyWithoutTimes(t *testing.T) {
	stats := AggregateStatistics([]leave.LeaveRequest{
		{
			EmployeeID: "EMP-1", EmployeeName: "Ana", Department: "Engineering",
			LeaveType: leave.LeaveTypeHourly,
			StartDate: date(2024, time.June, 3), EndDate: date(2024, time.June, 3),
			Status: leave.StatusApproved,
		},
	})

	require.Len(t, stats, 1)
	assert.Zero(t, stats[0].TotalHours)
	assert.Zero(t, stats[0].HourlyLeaves)
	assert.Zero(t, stats[0].TotalDays)
}

// Two records, both views: a three-day full-day leave plus a morning of
// hourly leave inside it.
func TestCalendarAndStatisticsEndToEnd(t *testing.T) {
	requests := []leave.LeaveRequest{
		fullDayRequest("EMP-1", "Ana", date(2024, time.January, 1), date(2024, time.January, 3)),
		{
			EmployeeID: "EMP-1", EmployeeName: "Ana", Department: "Engineering",
			LeaveType: leave.LeaveTypeHourly,
			StartDate: date(2024, time.January, 2), EndDate: date(2024, time.January, 2),
			StartTime: strPtr("09:00"), EndTime: strPtr("12:00"),
			Status: leave.StatusApproved,
		},
	}

	days := ExpandCalendar(requests)
	require.Len(t, days, 3)
	assert.Equal(t, "2024-01-01", days[0].Date)
	assert.Len(t, days[0].Events, 1)
	assert.Equal(t, "2024-01-02", days[1].Date)
	assert.Len(t, days[1].Events, 2)
	assert.Equal(t, "2024-01-03", days[2].Date)
	assert.Len(t, days[2].Events, 1)

	stats := AggregateStatistics(requests)
	require.Len(t, stats, 1)
	row := stats[0]
	assert.InDelta(t, 3, row.TotalDays, 1e-9)
	assert.InDelta(t, 3, row.FullDays, 1e-9)
	assert.Zero(t, row.HalfDays)
	assert.InDelta(t, 3, row.TotalHours, 1e-9)
	assert.InDelta(t, 3, row.HourlyLeaves, 1e-9)
}
