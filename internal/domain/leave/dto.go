package leave

import (
	"mime/multipart"

	"github.com/openleave/leave-backend-go/internal/pkg/validator"
)

// CreateLeaveRequestRequest is the employee-facing submission. EmployeeID,
// EmployeeName and Department come from the access token, never the body.
type CreateLeaveRequestRequest struct {
	EmployeeID   string `json:"-"`
	EmployeeName string `json:"-"`
	Department   string `json:"-"`

	LeaveType   string  `json:"leaveType"`
	HalfDayType *string `json:"halfDayType,omitempty"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	Reason      *string `json:"reason,omitempty"`

	Files []*multipart.FileHeader `json:"-"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, ValidateLeaveFields(r.LeaveType, r.HalfDayType, r.StartDate, r.EndDate, r.StartTime, r.EndTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AdminCreateLeaveRequestRequest lets an administrator file leave on behalf
// of any employee, without attachments.
type AdminCreateLeaveRequestRequest struct {
	EmployeeID  string  `json:"employeeId"`
	LeaveType   string  `json:"leaveType"`
	HalfDayType *string `json:"halfDayType,omitempty"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

func (r *AdminCreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	errs = append(errs, ValidateLeaveFields(r.LeaveType, r.HalfDayType, r.StartDate, r.EndDate, r.StartTime, r.EndTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateLeaveFields enforces the per-variant invariants: halfDayType iff
// half_day, start/end time iff hourly, startDate <= endDate, startTime <
// endTime. The reporting core assumes these hold and does not re-check.
// Exported so the service can re-run it on a merged record after an edit.
func ValidateLeaveFields(leaveType string, halfDayType *string, startDate, endDate string, startTime, endTime *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !LeaveType(leaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "leaveType must be one of full_day, half_day, hourly",
		})
	}

	start, startOK := validator.IsValidDate(startDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be a valid YYYY-MM-DD date",
		})
	}
	end, endOK := validator.IsValidDate(endDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be a valid YYYY-MM-DD date",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "startDate cannot be after endDate",
		})
	}

	switch LeaveType(leaveType) {
	case LeaveTypeHalfDay:
		if halfDayType == nil || !HalfDaySlot(*halfDayType).Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   "halfDayType",
				Message: "halfDayType must be one of morning, afternoon, evening for half_day leave",
			})
		}
	case LeaveTypeHourly:
		var st, et string
		if startTime != nil {
			st = *startTime
		}
		if endTime != nil {
			et = *endTime
		}
		startT, stOK := validator.IsValidTimeOfDay(st)
		if !stOK {
			errs = append(errs, validator.ValidationError{
				Field:   "startTime",
				Message: "startTime must be a valid HH:mm time for hourly leave",
			})
		}
		endT, etOK := validator.IsValidTimeOfDay(et)
		if !etOK {
			errs = append(errs, validator.ValidationError{
				Field:   "endTime",
				Message: "endTime must be a valid HH:mm time for hourly leave",
			})
		}
		if stOK && etOK && !startT.Before(endT) {
			errs = append(errs, validator.ValidationError{
				Field:   "endTime",
				Message: "startTime must be before endTime",
			})
		}
	}

	return errs
}

// UpdateLeaveDetailsRequest is the admin edit of a stored request. Only the
// provided fields change; the service re-checks the variant invariants on the
// merged record.
type UpdateLeaveDetailsRequest struct {
	ID          string  `json:"-"`
	LeaveType   *string `json:"leaveType,omitempty"`
	HalfDayType *string `json:"halfDayType,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

func (r *UpdateLeaveDetailsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.LeaveType != nil && !LeaveType(*r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "leaveType must be one of full_day, half_day, hourly",
		})
	}
	if r.HalfDayType != nil && *r.HalfDayType != "" && !HalfDaySlot(*r.HalfDayType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "halfDayType",
			Message: "halfDayType must be one of morning, afternoon, evening",
		})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be a valid YYYY-MM-DD date",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be a valid YYYY-MM-DD date",
			})
		}
	}
	if r.StartTime != nil && *r.StartTime != "" {
		if _, ok := validator.IsValidTimeOfDay(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "startTime",
				Message: "startTime must be a valid HH:mm time",
			})
		}
	}
	if r.EndTime != nil && *r.EndTime != "" {
		if _, ok := validator.IsValidTimeOfDay(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "endTime",
				Message: "endTime must be a valid HH:mm time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStatusRequest moves a request through the approval workflow.
type UpdateStatusRequest struct {
	ID              string  `json:"-"`
	ApprovedBy      string  `json:"-"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if !LeaveRequestStatus(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LeaveRequestFilter narrows the admin listing. All fields optional.
type LeaveRequestFilter struct {
	Status     *string
	EmployeeID *string
	StartDate  *string
	EndDate    *string
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !LeaveRequestStatus(*f.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected",
		})
	}
	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid YYYY-MM-DD date",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EventSummary is one record's appearance on one calendar day. No duration:
// calendar views show presence, statistics show amounts.
type EventSummary struct {
	EmployeeID   string       `json:"employeeId"`
	EmployeeName string       `json:"employeeName"`
	Department   string       `json:"department"`
	LeaveType    LeaveType    `json:"leaveType"`
	HalfDayType  *HalfDaySlot `json:"halfDayType,omitempty"`
	StartTime    *string      `json:"startTime,omitempty"`
	EndTime      *string      `json:"endTime,omitempty"`
}

// CalendarDay groups the events touching one calendar date. Days without
// events are absent from calendar output, not present with zero events.
type CalendarDay struct {
	Date   string         `json:"date"`
	Events []EventSummary `json:"events"`
}

// EmployeeStatistic is the per-employee rollup for a reporting period.
type EmployeeStatistic struct {
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Department   string  `json:"department"`
	TotalDays    float64 `json:"totalDays"`
	TotalHours   float64 `json:"totalHours"`
	FullDays     float64 `json:"fullDays"`
	HalfDays     float64 `json:"halfDays"`
	HourlyLeaves float64 `json:"hourlyLeaves"`
}
