package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	// List returns all departments; reference data, no visibility filtering.
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, dept Department) (Department, error)
	// Delete removes the department; employee references are cleared by the
	// ON DELETE SET NULL constraint.
	Delete(ctx context.Context, id string) error
}
