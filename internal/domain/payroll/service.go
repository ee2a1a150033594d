package payroll

import (
	"context"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
)

type PayrollService interface {
	// Create records a payroll entry; privileged callers only.
	Create(ctx context.Context, identity access.Identity, req CreatePayrollRequest) (PayrollResponse, error)

	Get(ctx context.Context, identity access.Identity, id string) (PayrollResponse, error)

	// List retrieves payroll rows within the caller's scope, newest id first.
	List(ctx context.Context, identity access.Identity, filter PayrollFilter) (ListPayrollResponse, error)

	Update(ctx context.Context, identity access.Identity, req UpdatePayrollRequest) (PayrollResponse, error)

	Delete(ctx context.Context, identity access.Identity, id string) error
}
