package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository is the storage boundary of the leave domain. The
// reporting queries apply the overlap filter (start_date <= to AND end_date
// >= from) so partially-overlapping records reach the aggregation core in
// full, never clipped to the period.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListForCalendar returns approved requests overlapping [from, to],
	// ordered by start_date ascending. Nil bounds mean unrestricted.
	ListForCalendar(ctx context.Context, from, to *time.Time) ([]LeaveRequest, error)

	// ListForStatistics returns approved requests overlapping [from, to],
	// optionally narrowed to one employee, in stable creation order.
	ListForStatistics(ctx context.Context, from, to *time.Time, employeeID *string) ([]LeaveRequest, error)

	Update(ctx context.Context, request LeaveRequest) error
	Delete(ctx context.Context, id string) error
}
