package response

import (
	"errors"
	"net/http"

	"github.com/openleave/leave-backend-go/internal/domain/auth"
	"github.com/openleave/leave-backend-go/internal/domain/employee"
	"github.com/openleave/leave-backend-go/internal/domain/leave"
	"github.com/openleave/leave-backend-go/internal/domain/master/department"
	"github.com/openleave/leave-backend-go/internal/domain/master/halfday"
	"github.com/openleave/leave-backend-go/internal/domain/master/position"
	"github.com/openleave/leave-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrEmployeeCodeUnknown):
		Unauthorized(w, "Employee code does not exist")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrSSONotConfigured):
		BadRequest(w, "Google SSO is not configured", nil)
	case errors.Is(err, auth.ErrSSOEmailNotAdmin):
		Forbidden(w, "Google account is not linked to an admin")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAttachmentTooLarge):
		BadRequest(w, "Attachment exceeds the size limit", nil)

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrCodeExists):
		Conflict(w, "Department code already exists")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department has assigned employees")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrNameExists):
		Conflict(w, "Position name already exists")
	case errors.Is(err, position.ErrCodeExists):
		Conflict(w, "Position code already exists")
	case errors.Is(err, position.ErrPositionInUse):
		Conflict(w, "Position has assigned employees")
	case errors.Is(err, halfday.ErrOptionNotFound):
		NotFound(w, "Half day option not found")
	case errors.Is(err, halfday.ErrCodeExists):
		Conflict(w, "Half day option code already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
