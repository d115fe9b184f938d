package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/openleave/leave-backend-go/internal/domain/auth"
	"github.com/openleave/leave-backend-go/internal/handler/http/response"
)

func EmployeeOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != "employee" {
			response.Forbidden(w, "Employee token required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// EmployeeIdentity carries the snapshot fields an employee token holds.
type EmployeeIdentity struct {
	EmployeeID string
	Name       string
	Department string
}

// EmployeeFromRequest reads the employee snapshot out of the token claims.
func EmployeeFromRequest(r *http.Request) (EmployeeIdentity, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return EmployeeIdentity{}, false
	}

	code, ok := claims["employee_id"].(string)
	if !ok || code == "" {
		return EmployeeIdentity{}, false
	}
	name, _ := claims["name"].(string)
	department, _ := claims["department"].(string)

	return EmployeeIdentity{
		EmployeeID: code,
		Name:       name,
		Department: department,
	}, true
}
