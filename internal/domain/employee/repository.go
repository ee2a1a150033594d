package employee

import (
	"context"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
)

// EmployeeRepository defines data access for employees. List and single-row
// reads take the caller's visibility scope so rows outside it are
// indistinguishable from absent rows.
type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// GetByID returns ErrEmployeeNotFound when the row does not exist or lies
	// outside the scope.
	GetByID(ctx context.Context, id string, scope access.Scope) (Employee, error)

	// GetByEmail is unscoped; used by the login path before any identity
	// exists.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// GetByUserID is unscoped; used when rebuilding identity claims from a
	// refresh token.
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	// List returns employees inside the scope ordered by descending id.
	List(ctx context.Context, filter EmployeeFilter, scope access.Scope) ([]Employee, int64, error)

	Update(ctx context.Context, emp Employee) (Employee, error)

	// Delete cascades to attendance, leave, and payroll rows.
	Delete(ctx context.Context, id string) error

	ExistsByCodeOrEmail(ctx context.Context, employeeCode, email string) (codeTaken bool, emailTaken bool, err error)
}
