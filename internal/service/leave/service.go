package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/openleave/leave-backend-go/internal/domain/employee"
	"github.com/openleave/leave-backend-go/internal/domain/leave"
	"github.com/openleave/leave-backend-go/internal/service/file"
)

// StatisticsQuery selects the reporting window. Month wins over quarter when
// both are sent; neither means the whole year. A zero Year means no window at
// all: the summary covers every approved request on record.
type StatisticsQuery struct {
	Year       int
	Month      *int
	Quarter    *int
	EmployeeID *string
}

// Resolve maps the query onto a concrete period. Callers must check Window
// first when a zero Year is possible.
func (q StatisticsQuery) Resolve() Period {
	switch {
	case q.Month != nil:
		return MonthPeriod(q.Year, time.Month(*q.Month))
	case q.Quarter != nil:
		return QuarterPeriod(q.Year, *q.Quarter)
	default:
		return YearPeriod(q.Year)
	}
}

// Window returns the resolved period, or nil when the query is unrestricted.
func (q StatisticsQuery) Window() *Period {
	if q.Year == 0 {
		return nil
	}
	p := q.Resolve()
	return &p
}

type LeaveService interface {
	CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error)
	AdminCreateRequest(ctx context.Context, req leave.AdminCreateLeaveRequestRequest) (leave.LeaveRequest, error)
	List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error)
	ListMine(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error)
	Get(ctx context.Context, id string) (leave.LeaveRequest, error)
	UpdateDetails(ctx context.Context, req leave.UpdateLeaveDetailsRequest) (leave.LeaveRequest, error)
	UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveRequest, error)
	Delete(ctx context.Context, id string) error
	CompanyCalendar(ctx context.Context, year int, month *int) ([]leave.CalendarDay, error)
	StatisticsSummary(ctx context.Context, query StatisticsQuery) ([]leave.EmployeeStatistic, error)
}

type leaveServiceImpl struct {
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
	fileService  file.FileService
}

func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	fileService file.FileService,
) LeaveService {
	return &leaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		fileService:  fileService,
	}
}

func (s *leaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	var attachments leave.Attachments
	for _, fh := range req.Files {
		att, err := s.fileService.UploadAttachment(ctx, fh, req.EmployeeID)
		if err != nil {
			// Roll back files already written for this request.
			for _, uploaded := range attachments {
				_ = s.fileService.DeleteAttachment(ctx, uploaded)
			}
			return leave.LeaveRequest{}, err
		}
		attachments = append(attachments, att)
	}

	record := leave.LeaveRequest{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Department:   req.Department,
		LeaveType:    leave.LeaveType(req.LeaveType),
		HalfDayType:  toHalfDaySlot(req.HalfDayType),
		StartDate:    startDate,
		EndDate:      endDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Reason:       req.Reason,
		Attachments:  attachments,
		Status:       leave.StatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, record)
	if err != nil {
		for _, uploaded := range attachments {
			_ = s.fileService.DeleteAttachment(ctx, uploaded)
		}
		return leave.LeaveRequest{}, fmt.Errorf("create leave request: %w", err)
	}

	return created, nil
}

func (s *leaveServiceImpl) AdminCreateRequest(ctx context.Context, req leave.AdminCreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	// Name and department snapshots come from the current employee record.
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if emp.Status != employee.StatusActive {
		return leave.LeaveRequest{}, employee.ErrEmployeeInactive
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	record := leave.LeaveRequest{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.Name,
		Department:   emp.Department,
		LeaveType:    leave.LeaveType(req.LeaveType),
		HalfDayType:  toHalfDaySlot(req.HalfDayType),
		StartDate:    startDate,
		EndDate:      endDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Reason:       req.Reason,
		Status:       leave.StatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, record)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("create leave request: %w", err)
	}

	return created, nil
}

func (s *leaveServiceImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.leaveRepo.List(ctx, filter)
}

func (s *leaveServiceImpl) ListMine(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return s.leaveRepo.ListByEmployee(ctx, employeeID)
}

func (s *leaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return s.leaveRepo.GetByID(ctx, id)
}

func (s *leaveServiceImpl) UpdateDetails(ctx context.Context, req leave.UpdateLeaveDetailsRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	record, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if req.LeaveType != nil {
		record.LeaveType = leave.LeaveType(*req.LeaveType)
	}
	if req.HalfDayType != nil {
		record.HalfDayType = toHalfDaySlot(req.HalfDayType)
	}
	if req.StartDate != nil {
		record.StartDate, _ = time.Parse("2006-01-02", *req.StartDate)
	}
	if req.EndDate != nil {
		record.EndDate, _ = time.Parse("2006-01-02", *req.EndDate)
	}
	if req.StartTime != nil {
		record.StartTime = nilIfEmpty(*req.StartTime)
	}
	if req.EndTime != nil {
		record.EndTime = nilIfEmpty(*req.EndTime)
	}
	if req.Reason != nil {
		record.Reason = req.Reason
	}

	// A type change drops the fields the new variant does not carry.
	if record.LeaveType != leave.LeaveTypeHalfDay {
		record.HalfDayType = nil
	}
	if record.LeaveType != leave.LeaveTypeHourly {
		record.StartTime = nil
		record.EndTime = nil
	}

	// Re-check the variant invariants on the merged record.
	var slot *string
	if record.HalfDayType != nil {
		v := string(*record.HalfDayType)
		slot = &v
	}
	if errs := leave.ValidateLeaveFields(
		string(record.LeaveType), slot,
		record.StartDate.Format("2006-01-02"), record.EndDate.Format("2006-01-02"),
		record.StartTime, record.EndTime,
	); len(errs) > 0 {
		return leave.LeaveRequest{}, errs
	}

	if err := s.leaveRepo.Update(ctx, record); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("update leave request: %w", err)
	}

	return s.leaveRepo.GetByID(ctx, req.ID)
}

func (s *leaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	record, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	record.Status = leave.LeaveRequestStatus(req.Status)
	switch record.Status {
	case leave.StatusApproved:
		now := time.Now()
		record.ApprovedBy = &req.ApprovedBy
		record.ApprovedAt = &now
		record.RejectionReason = nil
	case leave.StatusRejected:
		record.ApprovedBy = nil
		record.ApprovedAt = nil
		record.RejectionReason = req.RejectionReason
	default:
		record.ApprovedBy = nil
		record.ApprovedAt = nil
		record.RejectionReason = nil
	}

	if err := s.leaveRepo.Update(ctx, record); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("update leave request status: %w", err)
	}

	return s.leaveRepo.GetByID(ctx, req.ID)
}

func (s *leaveServiceImpl) Delete(ctx context.Context, id string) error {
	record, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.leaveRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete leave request: %w", err)
	}

	// Stored files go after the row so a failed delete never orphans the row.
	for _, att := range record.Attachments {
		_ = s.fileService.DeleteAttachment(ctx, att)
	}

	return nil
}

func (s *leaveServiceImpl) CompanyCalendar(ctx context.Context, year int, month *int) ([]leave.CalendarDay, error) {
	// The window narrows only when both year and month are sent; otherwise
	// every approved request lands on the calendar.
	var from, to *time.Time
	if year != 0 && month != nil {
		period := MonthPeriod(year, time.Month(*month))
		from, to = &period.Start, &period.End
	}

	requests, err := s.leaveRepo.ListForCalendar(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list calendar requests: %w", err)
	}

	return ExpandCalendar(requests), nil
}

func (s *leaveServiceImpl) StatisticsSummary(ctx context.Context, query StatisticsQuery) ([]leave.EmployeeStatistic, error) {
	var from, to *time.Time
	if w := query.Window(); w != nil {
		from, to = &w.Start, &w.End
	}

	requests, err := s.leaveRepo.ListForStatistics(ctx, from, to, query.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("list statistics requests: %w", err)
	}

	return AggregateStatistics(requests), nil
}

func toHalfDaySlot(s *string) *leave.HalfDaySlot {
	if s == nil || *s == "" {
		return nil
	}
	slot := leave.HalfDaySlot(*s)
	return &slot
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
