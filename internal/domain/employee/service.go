package employee

import (
	"context"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
)

type EmployeeService interface {
	// Create registers a new employee; privileged callers only.
	Create(ctx context.Context, identity access.Identity, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves one employee within the caller's scope.
	Get(ctx context.Context, identity access.Identity, id string) (EmployeeResponse, error)

	// List retrieves employees within the caller's scope, newest id first.
	List(ctx context.Context, identity access.Identity, filter EmployeeFilter) (ListEmployeeResponse, error)

	Update(ctx context.Context, identity access.Identity, req UpdateEmployeeRequest) (EmployeeResponse, error)

	Delete(ctx context.Context, identity access.Identity, id string) error
}
