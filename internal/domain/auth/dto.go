package auth

import (
	"github.com/openleave/leave-backend-go/internal/domain/admin"
	"github.com/openleave/leave-backend-go/internal/domain/employee"
	"github.com/openleave/leave-backend-go/internal/pkg/validator"
)

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *AdminLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeLoginRequest authenticates by employee business code alone, the
// kiosk-style flow the frontend uses.
type EmployeeLoginRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (r *EmployeeLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdminLoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expiresAt"`
	Admin     admin.Admin `json:"admin"`
}

type EmployeeLoginResponse struct {
	Token     string            `json:"token"`
	ExpiresAt int64             `json:"expiresAt"`
	Employee  employee.Employee `json:"employee"`
}
