package leave

import (
	"testing"
	"time"

	"github.com/openleave/leave-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDayRequest(employeeID, name string, start, end time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		EmployeeID:   employeeID,
		EmployeeName: name,
		Department:   "Engineering",
		LeaveType:    leave.LeaveTypeFullDay,
		StartDate:    start,
		EndDate:      end,
		Status:       leave.StatusApproved,
	}
}

func TestExpandCalendarEmpty(t *testing.T) {
	assert.Empty(t, ExpandCalendar(nil))
	assert.Empty(t, ExpandCalendar([]leave.LeaveRequest{}))
}

func TestExpandCalendarMultiDayRecord(t *testing.T) {
	days := ExpandCalendar([]leave.LeaveRequest{
		fullDayRequest("EMP-1", "Ana", date(2024, time.March, 4), date(2024, time.March, 6)),
	})

	require.Len(t, days, 3)
	assert.Equal(t, "2024-03-04", days[0].Date)
	assert.Equal(t, "2024-03-05", days[1].Date)
	assert.Equal(t, "2024-03-06", days[2].Date)
	for _, day := range days {
		require.Len(t, day.Events, 1)
		assert.Equal(t, "EMP-1", day.Events[0].EmployeeID)
	}
}

func TestExpandCalendarSharedDays(t *testing.T) {
	days := ExpandCalendar([]leave.LeaveRequest{
		fullDayRequest("EMP-1", "Ana", date(2024, time.March, 4), date(2024, time.March, 5)),
		fullDayRequest("EMP-2", "Ben", date(2024, time.March, 5), date(2024, time.March, 6)),
	})

	require.Len(t, days, 3)

	shared := days[1]
	assert.Equal(t, "2024-03-05", shared.Date)
	require.Len(t, shared.Events, 2)
	// Events inside a bucket keep input order.
	assert.Equal(t, "EMP-1", shared.Events[0].EmployeeID)
	assert.Equal(t, "EMP-2", shared.Events[1].EmployeeID)
}

func TestExpandCalendarBucketOrderFollowsFirstTouch(t *testing.T) {
	// The later record starts before the earlier one; its days are appended
	// after the first record's buckets, not sorted in between.
	days := ExpandCalendar([]leave.LeaveRequest{
		fullDayRequest("EMP-1", "Ana", date(2024, time.March, 10), date(2024, time.March, 10)),
		fullDayRequest("EMP-2", "Ben", date(2024, time.March, 8), date(2024, time.March, 8)),
	})

	require.Len(t, days, 2)
	assert.Equal(t, "2024-03-10", days[0].Date)
	assert.Equal(t, "2024-03-08", days[1].Date)
}

func TestExpandCalendarSkipsUncoveredDays(t *testing.T) {
	days := ExpandCalendar([]leave.LeaveRequest{
		fullDayRequest("EMP-1", "Ana", date(2024, time.March, 4), date(2024, time.March, 4)),
		fullDayRequest("EMP-1", "Ana", date(2024, time.March, 8), date(2024, time.March, 8)),
	})

	require.Len(t, days, 2)
	assert.Equal(t, "2024-03-04", days[0].Date)
	assert.Equal(t, "2024-03-08", days[1].Date)
}

func TestExpandCalendarNeverClipsSpans(t *testing.T) {
	// A record crossing a month boundary expands over its whole span even
	// when the caller only asked about one of the months.
	days := ExpandCalendar([]leave.LeaveRequest{
		fullDayRequest("EMP-1", "Ana", date(2024, time.February, 25), date(2024, time.March, 5)),
	})

	require.Len(t, days, 10)
	assert.Equal(t, "2024-02-25", days[0].Date)
	assert.Equal(t, "2024-03-05", days[9].Date)
}

func TestExpandCalendarInvertedRangeYieldsNothing(t *testing.T) {
	days := ExpandCalendar([]leave.LeaveRequest{
		fullDayRequest("EMP-1", "Ana", date(2024, time.March, 10), date(2024, time.March, 8)),
	})
	assert.Empty(t, days)
}

func TestExpandCalendarCarriesEventFields(t *testing.T) {
	slot := leave.HalfDayMorning
	days := ExpandCalendar([]leave.LeaveRequest{
		{
			EmployeeID:   "EMP-3",
			EmployeeName: "Cleo",
			Department:   "Sales",
			LeaveType:    leave.LeaveTypeHalfDay,
			HalfDayType:  &slot,
			StartDate:    date(2024, time.May, 2),
			EndDate:      date(2024, time.May, 2),
			Status:       leave.StatusApproved,
		},
		{
			EmployeeID:   "EMP-4",
			EmployeeName: "Dan",
			Department:   "Sales",
			LeaveType:    leave.LeaveTypeHourly,
			StartDate:    date(2024, time.May, 2),
			EndDate:      date(2024, time.May, 2),
			StartTime:    strPtr("09:00"),
			EndTime:      strPtr("12:00"),
			Status:       leave.StatusApproved,
		},
	})

	require.Len(t, days, 1)
	require.Len(t, days[0].Events, 2)

	half := days[0].Events[0]
	assert.Equal(t, leave.LeaveTypeHalfDay, half.LeaveType)
	require.NotNil(t, half.HalfDayType)
	assert.Equal(t, leave.HalfDayMorning, *half.HalfDayType)

	hourly := days[0].Events[1]
	assert.Equal(t, leave.LeaveTypeHourly, hourly.LeaveType)
	require.NotNil(t, hourly.StartTime)
	assert.Equal(t, "09:00", *hourly.StartTime)
}

func TestExpandCalendarIdempotentPerRecord(t *testing.T) {
	req := fullDayRequest("EMP-1", "Ana", date(2024, time.March, 4), date(2024, time.March, 6))

	once := ExpandCalendar([]leave.LeaveRequest{req})
	again := ExpandCalendar([]leave.LeaveRequest{req})

	assert.Equal(t, once, again)
}
