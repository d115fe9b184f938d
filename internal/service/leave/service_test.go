package leave

import (
	"context"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"github.com/openleave/leave-backend-go/internal/domain/employee"
	"github.com/openleave/leave-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	records map[string]leave.LeaveRequest
	nextID  int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{records: make(map[string]leave.LeaveRequest)}
}

func (r *fakeLeaveRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.nextID++
	req.ID = fmt.Sprintf("req-%d", r.nextID)
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	r.records[req.ID] = req
	return req, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := r.records[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *fakeLeaveRepo) List(_ context.Context, _ leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range r.records {
		out = append(out, req)
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range r.records {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListForCalendar(_ context.Context, from, to *time.Time) ([]leave.LeaveRequest, error) {
	return r.approvedOverlapping(from, to, nil), nil
}

func (r *fakeLeaveRepo) ListForStatistics(_ context.Context, from, to *time.Time, employeeID *string) ([]leave.LeaveRequest, error) {
	return r.approvedOverlapping(from, to, employeeID), nil
}

func (r *fakeLeaveRepo) approvedOverlapping(from, to *time.Time, employeeID *string) []leave.LeaveRequest {
	var out []leave.LeaveRequest
	for _, req := range r.records {
		if req.Status != leave.StatusApproved {
			continue
		}
		if to != nil && req.StartDate.After(*to) {
			continue
		}
		if from != nil && req.EndDate.Before(*from) {
			continue
		}
		if employeeID != nil && req.EmployeeID != *employeeID {
			continue
		}
		out = append(out, req)
	}
	return out
}

func (r *fakeLeaveRepo) Update(_ context.Context, req leave.LeaveRequest) error {
	if _, ok := r.records[req.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	req.UpdatedAt = time.Now()
	r.records[req.ID] = req
	return nil
}

func (r *fakeLeaveRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	delete(r.records, id)
	return nil
}

type fakeEmployeeRepo struct {
	byCode map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(context.Context, *employee.Employee) error { return nil }
func (r *fakeEmployeeRepo) GetByID(context.Context, string) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}
func (r *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, code string) (*employee.Employee, error) {
	emp, ok := r.byCode[code]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return &emp, nil
}
func (r *fakeEmployeeRepo) GetActiveByEmployeeID(ctx context.Context, code string) (*employee.Employee, error) {
	return r.GetByEmployeeID(ctx, code)
}
func (r *fakeEmployeeRepo) List(context.Context, employee.EmployeeFilter) ([]employee.Employee, error) {
	return nil, nil
}
func (r *fakeEmployeeRepo) Update(context.Context, *employee.Employee) error { return nil }
func (r *fakeEmployeeRepo) Delete(context.Context, string) error             { return nil }
func (r *fakeEmployeeRepo) ExistsByEmployeeID(context.Context, string) (bool, error) {
	return false, nil
}
func (r *fakeEmployeeRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (r *fakeEmployeeRepo) CountByDepartment(context.Context, string) (int, error) {
	return 0, nil
}
func (r *fakeEmployeeRepo) CountByPosition(context.Context, string) (int, error) { return 0, nil }

type fakeFileService struct {
	deleted []string
}

func (s *fakeFileService) UploadAttachment(_ context.Context, fh *multipart.FileHeader, employeeID string) (leave.Attachment, error) {
	return leave.Attachment{
		URL:          "/uploads/leave/" + employeeID + "/" + fh.Filename,
		StorageKey:   "leave/" + employeeID + "/" + fh.Filename,
		OriginalName: fh.Filename,
	}, nil
}

func (s *fakeFileService) DeleteAttachment(_ context.Context, att leave.Attachment) error {
	s.deleted = append(s.deleted, att.StorageKey)
	return nil
}

func newTestService(repo *fakeLeaveRepo) LeaveService {
	return NewLeaveService(repo, &fakeEmployeeRepo{
		byCode: map[string]employee.Employee{
			"EMP-1": {EmployeeID: "EMP-1", Name: "Ana", Department: "Engineering", Status: employee.StatusActive},
		},
	}, &fakeFileService{})
}

func TestCreateRequestSnapshotsIdentity(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo)

	created, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID:   "EMP-1",
		EmployeeName: "Ana",
		Department:   "Engineering",
		LeaveType:    "full_day",
		StartDate:    "2024-03-04",
		EndDate:      "2024-03-06",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ana", created.EmployeeName)
	assert.Equal(t, "Engineering", created.Department)
	assert.Equal(t, leave.StatusPending, created.Status)
}

func TestCreateRequestRejectsBrokenVariants(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo())

	tests := []struct {
		name string
		req  leave.CreateLeaveRequestRequest
	}{
		{
			"half day without slot",
			leave.CreateLeaveRequestRequest{
				EmployeeID: "EMP-1", LeaveType: "half_day",
				StartDate: "2024-03-04", EndDate: "2024-03-04",
			},
		},
		{
			"hourly without times",
			leave.CreateLeaveRequestRequest{
				EmployeeID: "EMP-1", LeaveType: "hourly",
				StartDate: "2024-03-04", EndDate: "2024-03-04",
			},
		},
		{
			"hourly with inverted times",
			leave.CreateLeaveRequestRequest{
				EmployeeID: "EMP-1", LeaveType: "hourly",
				StartDate: "2024-03-04", EndDate: "2024-03-04",
				StartTime: strPtr("17:00"), EndTime: strPtr("09:00"),
			},
		},
		{
			"end before start",
			leave.CreateLeaveRequestRequest{
				EmployeeID: "EMP-1", LeaveType: "full_day",
				StartDate: "2024-03-06", EndDate: "2024-03-04",
			},
		},
		{
			"unknown type",
			leave.CreateLeaveRequestRequest{
				EmployeeID: "EMP-1", LeaveType: "sabbatical",
				StartDate: "2024-03-04", EndDate: "2024-03-04",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRequest(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestAdminCreateRequestLooksUpSnapshot(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo)

	created, err := svc.AdminCreateRequest(context.Background(), leave.AdminCreateLeaveRequestRequest{
		EmployeeID: "EMP-1",
		LeaveType:  "full_day",
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-04",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", created.EmployeeName)
	assert.Equal(t, "Engineering", created.Department)

	_, err = svc.AdminCreateRequest(context.Background(), leave.AdminCreateLeaveRequestRequest{
		EmployeeID: "EMP-404",
		LeaveType:  "full_day",
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-04",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAdminCreateRequestRejectsInactiveEmployee(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, &fakeEmployeeRepo{
		byCode: map[string]employee.Employee{
			"EMP-2": {EmployeeID: "EMP-2", Name: "Bo", Department: "Sales", Status: employee.StatusInactive},
		},
	}, &fakeFileService{})

	_, err := svc.AdminCreateRequest(context.Background(), leave.AdminCreateLeaveRequestRequest{
		EmployeeID: "EMP-2",
		LeaveType:  "full_day",
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-04",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestUpdateDetailsTypeChangeClearsVariantFields(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo)

	created, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "EMP-1", EmployeeName: "Ana", Department: "Engineering",
		LeaveType: "hourly",
		StartDate: "2024-03-04", EndDate: "2024-03-04",
		StartTime: strPtr("09:00"), EndTime: strPtr("12:00"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateDetails(context.Background(), leave.UpdateLeaveDetailsRequest{
		ID:        created.ID,
		LeaveType: strPtr("full_day"),
	})
	require.NoError(t, err)

	assert.Equal(t, leave.LeaveTypeFullDay, updated.LeaveType)
	assert.Nil(t, updated.StartTime)
	assert.Nil(t, updated.EndTime)
	assert.Nil(t, updated.HalfDayType)
}

func TestUpdateDetailsRejectsInvalidMerge(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo)

	created, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "EMP-1", EmployeeName: "Ana", Department: "Engineering",
		LeaveType: "full_day",
		StartDate: "2024-03-04", EndDate: "2024-03-06",
	})
	require.NoError(t, err)

	// Switching to half_day without supplying a slot must fail.
	_, err = svc.UpdateDetails(context.Background(), leave.UpdateLeaveDetailsRequest{
		ID:        created.ID,
		LeaveType: strPtr("half_day"),
	})
	assert.Error(t, err)

	// Moving the end before the start must fail.
	_, err = svc.UpdateDetails(context.Background(), leave.UpdateLeaveDetailsRequest{
		ID:      created.ID,
		EndDate: strPtr("2024-03-01"),
	})
	assert.Error(t, err)
}

func TestUpdateStatusWorkflow(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo)

	created, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "EMP-1", EmployeeName: "Ana", Department: "Engineering",
		LeaveType: "full_day",
		StartDate: "2024-03-04", EndDate: "2024-03-04",
	})
	require.NoError(t, err)

	approved, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		ID: created.ID, ApprovedBy: "admin-1", Status: "approved",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "admin-1", *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)
	assert.Nil(t, approved.RejectionReason)

	rejected, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		ID: created.ID, ApprovedBy: "admin-1", Status: "rejected",
		RejectionReason: strPtr("header missing"),
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, rejected.Status)
	assert.Nil(t, rejected.ApprovedBy)
	assert.Nil(t, rejected.ApprovedAt)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "header missing", *rejected.RejectionReason)
}

func TestCompanyCalendarOnlyApproved(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo)

	created, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "EMP-1", EmployeeName: "Ana", Department: "Engineering",
		LeaveType: "full_day",
		StartDate: "2024-03-04", EndDate: "2024-03-04",
	})
	require.NoError(t, err)

	month := 3
	days, err := svc.CompanyCalendar(context.Background(), 2024, &month)
	require.NoError(t, err)
	assert.Empty(t, days, "pending requests stay off the calendar")

	_, err = svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		ID: created.ID, ApprovedBy: "admin-1", Status: "approved",
	})
	require.NoError(t, err)

	days, err = svc.CompanyCalendar(context.Background(), 2024, &month)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-03-04", days[0].Date)
}

func TestStatisticsSummaryOverlapWindow(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo)

	created, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "EMP-1", EmployeeName: "Ana", Department: "Engineering",
		LeaveType: "full_day",
		StartDate: "2024-02-25", EndDate: "2024-03-05",
	})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		ID: created.ID, ApprovedBy: "admin-1", Status: "approved",
	})
	require.NoError(t, err)

	// The record only partially overlaps March but contributes its full span.
	month := 3
	stats, err := svc.StatisticsSummary(context.Background(), StatisticsQuery{Year: 2024, Month: &month})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.InDelta(t, 10, stats[0].TotalDays, 1e-9)

	// And it is invisible to a window it never touches.
	month = 6
	stats, err = svc.StatisticsSummary(context.Background(), StatisticsQuery{Year: 2024, Month: &month})
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestUnrestrictedReportingWindow(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo)

	for _, dates := range [][2]string{
		{"2019-07-01", "2019-07-01"},
		{"2024-03-04", "2024-03-04"},
	} {
		created, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequestRequest{
			EmployeeID: "EMP-1", EmployeeName: "Ana", Department: "Engineering",
			LeaveType: "full_day",
			StartDate: dates[0], EndDate: dates[1],
		})
		require.NoError(t, err)
		_, err = svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
			ID: created.ID, ApprovedBy: "admin-1", Status: "approved",
		})
		require.NoError(t, err)
	}

	// No year: the summary spans every approved request on record.
	stats, err := svc.StatisticsSummary(context.Background(), StatisticsQuery{})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.InDelta(t, 2, stats[0].TotalDays, 1e-9)

	// The calendar narrows only when year and month arrive together.
	days, err := svc.CompanyCalendar(context.Background(), 0, nil)
	require.NoError(t, err)
	assert.Len(t, days, 2)

	days, err = svc.CompanyCalendar(context.Background(), 2024, nil)
	require.NoError(t, err)
	assert.Len(t, days, 2)

	month := 3
	days, err = svc.CompanyCalendar(context.Background(), 2024, &month)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-03-04", days[0].Date)
}

func TestStatisticsQueryWindow(t *testing.T) {
	month := 2
	w := (StatisticsQuery{Year: 2024, Month: &month}).Window()
	require.NotNil(t, w)
	assert.Equal(t, date(2024, 2, 1), w.Start)
	assert.Equal(t, date(2024, 2, 29), w.End)

	assert.Nil(t, (StatisticsQuery{}).Window())
	assert.Nil(t, (StatisticsQuery{Month: &month}).Window())
}
