package leave

import (
	"github.com/openleave/leave-backend-go/internal/domain/leave"
)

// ExpandCalendar turns leave requests into per-day buckets. Each request is
// expanded over its inclusive date span; a day's bucket is created the first
// time any request touches it, so bucket order follows first touch and the
// events inside a bucket follow the input order. Days nothing touches are
// simply absent. Records overlapping a window edge expand over their full
// span, never clipped.
func ExpandCalendar(requests []leave.LeaveRequest) []leave.CalendarDay {
	buckets := make(map[string]*leave.CalendarDay)
	var order []string

	for _, req := range requests {
		event := leave.EventSummary{
			EmployeeID:   req.EmployeeID,
			EmployeeName: req.EmployeeName,
			Department:   req.Department,
			LeaveType:    req.LeaveType,
			HalfDayType:  req.HalfDayType,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
		}

		start := dateOnly(req.StartDate)
		end := dateOnly(req.EndDate)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			key := d.Format("2006-01-02")
			bucket, ok := buckets[key]
			if !ok {
				bucket = &leave.CalendarDay{Date: key}
				buckets[key] = bucket
				order = append(order, key)
			}
			bucket.Events = append(bucket.Events, event)
		}
	}

	days := make([]leave.CalendarDay, 0, len(order))
	for _, key := range order {
		days = append(days, *buckets[key])
	}
	return days
}
