package response

import (
	"errors"
	"net/http"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/auth"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/department"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/leave"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/payroll"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/user"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Rows outside the
// caller's visibility scope were already reported as not found by the
// repositories, so no forbidden case exists for single-record reads.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors. The login failure modes are deliberately
	// distinguished.
	case errors.Is(err, auth.ErrEmployeeNotFound):
		NotFound(w, "No employee registered with this email")
	case errors.Is(err, auth.ErrEmployeeNotLinked):
		BadRequest(w, "Employee is not linked to a user account", nil)
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrDepartmentNotLinked):
		BadRequest(w, "Referenced department does not exist", nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		ValidationError(w, map[string]string{"end_date": "end_date must not be before start_date"})

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
