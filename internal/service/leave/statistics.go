package leave

import (
	"github.com/openleave/leave-backend-go/internal/domain/leave"
)

// AggregateStatistics rolls requests up into one row per employee, in
// first-seen order. The first record seen for an employee seeds the name and
// department snapshot; later records only add to the numeric buckets, so a
// renamed employee keeps one row.
func AggregateStatistics(requests []leave.LeaveRequest) []leave.EmployeeStatistic {
	rows := make(map[string]*leave.EmployeeStatistic)
	var order []string

	for _, req := range requests {
		row, ok := rows[req.EmployeeID]
		if !ok {
			row = &leave.EmployeeStatistic{
				EmployeeID:   req.EmployeeID,
				EmployeeName: req.EmployeeName,
				Department:   req.Department,
			}
			rows[req.EmployeeID] = row
			order = append(order, req.EmployeeID)
		}

		d := DurationOf(req)
		row.TotalDays += d.Days
		row.TotalHours += d.Hours
		row.FullDays += d.FullDays
		row.HalfDays += d.HalfDays
		row.HourlyLeaves += d.HourlyHours
	}

	stats := make([]leave.EmployeeStatistic, 0, len(order))
	for _, id := range order {
		stats = append(stats, *rows[id])
	}
	return stats
}
