package leave

import (
	"time"

	"github.com/openleave/leave-backend-go/internal/domain/leave"
)

// Duration is one request's contribution to the statistics rollup. Fields
// mirror the accumulator buckets: Days and Hours feed the totals, the typed
// fields feed the per-variant breakdown.
type Duration struct {
	Days        float64
	Hours       float64
	FullDays    float64
	HalfDays    float64
	HourlyHours float64
}

// SpanDays returns the inclusive calendar day count between two dates, on
// date-normalized values so time-of-day components never shift the count.
// An inverted range yields a span of zero or less, which callers treat per
// variant rather than erroring.
func SpanDays(start, end time.Time) int {
	s := dateOnly(start)
	e := dateOnly(end)
	return int(e.Sub(s).Hours()/24) + 1
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// HoursBetween returns the fractional wall-clock hours between two HH:mm
// times on the same day. Unparseable input counts as zero hours.
func HoursBetween(startTime, endTime string) float64 {
	st, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0
	}
	et, err := time.Parse("15:04", endTime)
	if err != nil {
		return 0
	}
	return et.Sub(st).Minutes() / 60
}

// DurationOf computes a request's statistics contribution from its dates and
// times. Durations are never read from storage; recomputing here means an
// edited request is reflected in every report immediately.
//
// Hourly requests without a stored time pair contribute zero hours, and an
// hourly request with an inverted date range is clamped to zero. Day-based
// variants pass their span through unclamped.
func DurationOf(req leave.LeaveRequest) Duration {
	span := SpanDays(req.StartDate, req.EndDate)

	switch req.LeaveType {
	case leave.LeaveTypeFullDay:
		days := float64(span)
		return Duration{Days: days, FullDays: days}

	case leave.LeaveTypeHalfDay:
		days := float64(span) * 0.5
		return Duration{Days: days, HalfDays: days}

	case leave.LeaveTypeHourly:
		if req.StartTime == nil || req.EndTime == nil || span <= 0 {
			return Duration{}
		}
		hours := HoursBetween(*req.StartTime, *req.EndTime) * float64(span)
		return Duration{Hours: hours, HourlyHours: hours}
	}

	return Duration{}
}
