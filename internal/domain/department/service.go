package department

import (
	"context"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
)

// DepartmentService exposes department reference data. Reads are open to any
// authenticated caller; mutations are privileged-only.
type DepartmentService interface {
	Create(ctx context.Context, identity access.Identity, req CreateDepartmentRequest) (DepartmentResponse, error)
	Get(ctx context.Context, id string) (DepartmentResponse, error)
	List(ctx context.Context) (ListDepartmentResponse, error)
	Update(ctx context.Context, identity access.Identity, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, identity access.Identity, id string) error
}
