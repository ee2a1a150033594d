package payroll

import (
	"context"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
)

type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)

	// GetByID returns ErrPayrollNotFound when the row does not exist or lies
	// outside the scope.
	GetByID(ctx context.Context, id string, scope access.Scope) (Payroll, error)

	// List returns payroll rows inside the scope ordered by descending id.
	List(ctx context.Context, filter PayrollFilter, scope access.Scope) ([]Payroll, int64, error)

	Update(ctx context.Context, p Payroll) (Payroll, error)

	Delete(ctx context.Context, id string, scope access.Scope) error
}
