package department

import (
	"context"
	"fmt"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/department"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/user"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(departmentRepository department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepository,
	}
}

// Create implements department.DepartmentService.
func (d *DepartmentServiceImpl) Create(ctx context.Context, identity access.Identity, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if !identity.IsPrivileged() {
		return department.DepartmentResponse{}, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := d.DepartmentRepository.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return department.ToDepartmentResponse(created), nil
}

// Get implements department.DepartmentService.
func (d *DepartmentServiceImpl) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := d.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToDepartmentResponse(dept), nil
}

// List implements department.DepartmentService. Departments are reference
// data and visible to every authenticated caller.
func (d *DepartmentServiceImpl) List(ctx context.Context) (department.ListDepartmentResponse, error) {
	departments, err := d.DepartmentRepository.List(ctx)
	if err != nil {
		return department.ListDepartmentResponse{}, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, department.ToDepartmentResponse(dept))
	}
	return department.ListDepartmentResponse{Departments: responses}, nil
}

// Update implements department.DepartmentService.
func (d *DepartmentServiceImpl) Update(ctx context.Context, identity access.Identity, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if !identity.IsPrivileged() {
		return department.DepartmentResponse{}, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept, err := d.DepartmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = req.Description
	}

	updated, err := d.DepartmentRepository.Update(ctx, dept)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}
	return department.ToDepartmentResponse(updated), nil
}

// Delete implements department.DepartmentService. Employees referencing the
// department keep their rows; the reference is cleared by the schema.
func (d *DepartmentServiceImpl) Delete(ctx context.Context, identity access.Identity, id string) error {
	if !identity.IsPrivileged() {
		return user.ErrAdminPrivilegeRequired
	}
	return d.DepartmentRepository.Delete(ctx, id)
}
