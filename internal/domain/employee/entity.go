package employee

import "time"

type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "active"
	StatusInactive EmployeeStatus = "inactive"
)

func (s EmployeeStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Employee is a staff record. EmployeeID is the business code employees log
// in with and the key leave requests are filed under.
type Employee struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employeeId"`
	Name       string         `json:"name"`
	Department string         `json:"department"`
	Position   string         `json:"position"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Status     EmployeeStatus `json:"status"`
	JoinDate   time.Time      `json:"joinDate"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
