package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/user"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/database"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/validator"
	"github.com/staffhub-dev/hrm-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db       *database.DB
	userRepo user.UserRepository
	employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepository employee.EmployeeRepository, userRepository user.UserRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		userRepo:           userRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Create implements employee.EmployeeService. Only privileged callers may
// register employees; a new row is never "owned" by anyone yet.
func (e *EmployeeServiceImpl) Create(ctx context.Context, identity access.Identity, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !identity.IsPrivileged() {
		return employee.EmployeeResponse{}, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	codeTaken, emailTaken, err := e.ExistsByCodeOrEmail(ctx, req.EmployeeCode, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee uniqueness: %w", err)
	}
	if codeTaken {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}
	if emailTaken {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	newEmployee := employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
		Role:         employee.Role(req.Role),
		Position:     req.Position,
		Salary:       req.Salary,
		IsAdmin:      req.IsAdmin,
		Status:       employee.StatusActive,
		Address:      req.Address,
	}
	if req.Role == "" {
		newEmployee.Role = employee.RoleEmployee
	}
	if req.Status != nil {
		newEmployee.Status = *req.Status
	}
	if req.DateOfJoining != nil {
		d, _ := validator.IsValidDate(*req.DateOfJoining)
		newEmployee.DateOfJoining = &d
	}

	var created employee.Employee
	if req.Password != nil {
		// Provision a login account alongside the employee record. Both rows
		// commit together or not at all.
		if _, err := e.userRepo.GetByEmail(ctx, req.Email); err == nil {
			return employee.EmployeeResponse{}, user.ErrUserEmailExists
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check user email: %w", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash := string(hash)

		err = postgresql.WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
			txCtx := postgresql.WithTx(ctx, tx)

			account, err := e.userRepo.Create(txCtx, user.User{
				Email:        req.Email,
				PasswordHash: &passwordHash,
			})
			if err != nil {
				return err
			}

			newEmployee.UserID = &account.ID
			created, err = e.EmployeeRepository.Create(txCtx, newEmployee)
			return err
		})
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
	} else {
		created, err = e.EmployeeRepository.Create(ctx, newEmployee)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	// Re-read for the joined department name.
	created, err = e.EmployeeRepository.GetByID(ctx, created.ID, access.Scope{All: true})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload created employee: %w", err)
	}

	return employee.ToEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService. Rows outside the caller's scope
// surface as not found.
func (e *EmployeeServiceImpl) Get(ctx context.Context, identity access.Identity, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id, access.ScopeFor(identity))
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService. An unlinked, non-privileged
// caller gets an empty list, never an error.
func (e *EmployeeServiceImpl) List(ctx context.Context, identity access.Identity, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	employees, total, err := e.EmployeeRepository.List(ctx, filter, access.ScopeFor(identity))
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToEmployeeResponse(emp))
	}
	return employee.ListEmployeeResponse{Employees: responses, TotalItems: total}, nil
}

// Update implements employee.EmployeeService. Non-privileged callers may
// edit their own row, but privilege, role, and salary changes stay with
// privileged callers.
func (e *EmployeeServiceImpl) Update(ctx context.Context, identity access.Identity, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	scope := access.ScopeFor(identity)
	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID, scope)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if !identity.IsPrivileged() && (req.IsAdmin != nil || req.Role != nil || req.Salary != nil) {
		return employee.EmployeeResponse{}, user.ErrAdminPrivilegeRequired
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.DepartmentID != nil {
		if *req.DepartmentID == "" {
			emp.DepartmentID = nil
		} else {
			emp.DepartmentID = req.DepartmentID
		}
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.DateOfJoining != nil {
		d, _ := validator.IsValidDate(*req.DateOfJoining)
		emp.DateOfJoining = &d
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	if req.IsAdmin != nil {
		emp.IsAdmin = *req.IsAdmin
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}
	if req.Address != nil {
		emp.Address = req.Address
	}

	updated, err := e.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err = e.EmployeeRepository.GetByID(ctx, updated.ID, access.Scope{All: true})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload updated employee: %w", err)
	}

	return employee.ToEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService. The scoped read makes rows
// outside the caller's scope report not found rather than forbidden.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, identity access.Identity, id string) error {
	emp, err := e.EmployeeRepository.GetByID(ctx, id, access.ScopeFor(identity))
	if err != nil {
		return err
	}
	return e.EmployeeRepository.Delete(ctx, emp.ID)
}
