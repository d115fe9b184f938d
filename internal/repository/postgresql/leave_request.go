package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/openleave/leave-backend-go/internal/domain/leave"
	"github.com/openleave/leave-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.employee_name, lr.department,
	lr.leave_type, lr.half_day_type, lr.start_date, lr.end_date,
	lr.start_time, lr.end_time, lr.reason, lr.attachments,
	lr.status, lr.approved_by, lr.approved_at, lr.rejection_reason,
	lr.created_at, lr.updated_at
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.EmployeeName, &lr.Department,
		&lr.LeaveType, &lr.HalfDayType, &lr.StartDate, &lr.EndDate,
		&lr.StartTime, &lr.EndTime, &lr.Reason, &lr.Attachments,
		&lr.Status, &lr.ApprovedBy, &lr.ApprovedAt, &lr.RejectionReason,
		&lr.CreatedAt, &lr.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.EmployeeName, &lr.Department,
			&lr.LeaveType, &lr.HalfDayType, &lr.StartDate, &lr.EndDate,
			&lr.StartTime, &lr.EndTime, &lr.Reason, &lr.Attachments,
			&lr.Status, &lr.ApprovedBy, &lr.ApprovedAt, &lr.RejectionReason,
			&lr.CreatedAt, &lr.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, employee_name, department,
			leave_type, half_day_type, start_date, end_date,
			start_time, end_time, reason, attachments,
			status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6, $7,
			$8, $9, $10, $11,
			$12,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.EmployeeName, request.Department,
		request.LeaveType, request.HalfDayType, request.StartDate, request.EndDate,
		request.StartTime, request.EndTime, request.Reason, request.Attachments,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.id = $1
	`
	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND lr.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	if filter.EmployeeID != nil {
		whereClause += fmt.Sprintf(" AND lr.employee_id = $%d", argIndex)
		args = append(args, *filter.EmployeeID)
		argIndex++
	}

	if filter.StartDate != nil {
		whereClause += fmt.Sprintf(" AND lr.start_date >= $%d", argIndex)
		args = append(args, *filter.StartDate)
		argIndex++
	}

	if filter.EndDate != nil {
		whereClause += fmt.Sprintf(" AND lr.end_date <= $%d", argIndex)
		args = append(args, *filter.EndDate)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		%s
		ORDER BY lr.created_at DESC
	`, leaveRequestColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListForCalendar(ctx context.Context, from, to *time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE lr.status = 'approved'"
	args := []interface{}{}
	argIndex := 1

	// Overlap filter: a record qualifies when its span touches the window,
	// even partially. The full record is returned, never clipped.
	if to != nil {
		whereClause += fmt.Sprintf(" AND lr.start_date <= $%d", argIndex)
		args = append(args, *to)
		argIndex++
	}
	if from != nil {
		whereClause += fmt.Sprintf(" AND lr.end_date >= $%d", argIndex)
		args = append(args, *from)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		%s
		ORDER BY lr.start_date ASC, lr.created_at ASC
	`, leaveRequestColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListForStatistics(ctx context.Context, from, to *time.Time, employeeID *string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE lr.status = 'approved'"
	args := []interface{}{}
	argIndex := 1

	if to != nil {
		whereClause += fmt.Sprintf(" AND lr.start_date <= $%d", argIndex)
		args = append(args, *to)
		argIndex++
	}
	if from != nil {
		whereClause += fmt.Sprintf(" AND lr.end_date >= $%d", argIndex)
		args = append(args, *from)
		argIndex++
	}
	if employeeID != nil {
		whereClause += fmt.Sprintf(" AND lr.employee_id = $%d", argIndex)
		args = append(args, *employeeID)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		%s
		ORDER BY lr.created_at ASC
	`, leaveRequestColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	// Full-row write: nil optional fields clear their columns, which keeps
	// variant fields consistent after a leave type change.
	query := `
		UPDATE leave_requests
		SET leave_type = $2, half_day_type = $3,
			start_date = $4, end_date = $5,
			start_time = $6, end_time = $7,
			reason = $8, attachments = $9,
			status = $10, approved_by = $11, approved_at = $12,
			rejection_reason = $13,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		request.ID, request.LeaveType, request.HalfDayType,
		request.StartDate, request.EndDate,
		request.StartTime, request.EndTime,
		request.Reason, request.Attachments,
		request.Status, request.ApprovedBy, request.ApprovedAt,
		request.RejectionReason,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM leave_requests
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
