package leave

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// LeaveType is the closed set of leave variants. Every variant carries only
// the optional fields legal for it: half_day has a slot, hourly has a
// start/end time pair, full_day has neither.
type LeaveType string

const (
	LeaveTypeFullDay LeaveType = "full_day"
	LeaveTypeHalfDay LeaveType = "half_day"
	LeaveTypeHourly  LeaveType = "hourly"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypeFullDay, LeaveTypeHalfDay, LeaveTypeHourly:
		return true
	}
	return false
}

// HalfDaySlot qualifies a half_day request.
type HalfDaySlot string

const (
	HalfDayMorning   HalfDaySlot = "morning"
	HalfDayAfternoon HalfDaySlot = "afternoon"
	HalfDayEvening   HalfDaySlot = "evening"
)

func (s HalfDaySlot) Valid() bool {
	switch s {
	case HalfDayMorning, HalfDayAfternoon, HalfDayEvening:
		return true
	}
	return false
}

type LeaveRequestStatus string

const (
	StatusPending  LeaveRequestStatus = "pending"
	StatusApproved LeaveRequestStatus = "approved"
	StatusRejected LeaveRequestStatus = "rejected"
)

func (s LeaveRequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Attachment references an uploaded file backing a leave request.
type Attachment struct {
	URL          string `json:"url"`
	StorageKey   string `json:"storageKey"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimeType"`
}

// Attachments is stored as a JSONB column.
type Attachments []Attachment

// Value implements driver.Valuer for database storage
func (a Attachments) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal(Attachments{})
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for database retrieval
func (a *Attachments) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Attachments: invalid type")
	}

	return json.Unmarshal(bytes, a)
}

// LeaveRequest entity. EmployeeName and Department are snapshots captured at
// creation time, never re-derived from the employee record. Durations are not
// stored; reports recompute them from dates and times so a backdated edit is
// reflected everywhere.
type LeaveRequest struct {
	ID           string             `json:"id"`
	EmployeeID   string             `json:"employeeId"`
	EmployeeName string             `json:"employeeName"`
	Department   string             `json:"department"`
	LeaveType    LeaveType          `json:"leaveType"`
	HalfDayType  *HalfDaySlot       `json:"halfDayType,omitempty"`
	StartDate    time.Time          `json:"startDate"`
	EndDate      time.Time          `json:"endDate"`
	StartTime    *string            `json:"startTime,omitempty"`
	EndTime      *string            `json:"endTime,omitempty"`
	Reason       *string            `json:"reason,omitempty"`
	Attachments  Attachments        `json:"attachments"`
	Status       LeaveRequestStatus `json:"status"`

	ApprovedBy      *string    `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
