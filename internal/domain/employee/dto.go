package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode  string          `json:"employee_code"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	Phone         *string         `json:"phone"`
	DepartmentID  *string         `json:"department_id"`
	Role          string          `json:"role"`
	Position      *string         `json:"position"`
	DateOfJoining *string         `json:"date_of_joining"`
	Salary        decimal.Decimal `json:"salary"`
	IsAdmin       bool            `json:"is_admin"`
	Status        *string         `json:"status"`
	Address       *string         `json:"address"`
	// Password, when set, provisions a login account linked to the new
	// employee record.
	Password *string `json:"password"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}
	if len(r.EmployeeCode) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must not exceed 50 characters",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}
	if r.DepartmentID != nil && !validator.IsEmpty(*r.DepartmentID) && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}
	if !validator.IsEmpty(r.Role) && !validator.IsInSlice(r.Role, []string{string(RoleEmployee), string(RoleManager), string(RoleHR)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: employee, manager, hr",
		})
	}
	if r.DateOfJoining != nil {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_joining",
				Message: "date_of_joining must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string           `json:"-"`
	FirstName     *string          `json:"first_name"`
	LastName      *string          `json:"last_name"`
	Phone         *string          `json:"phone"`
	DepartmentID  *string          `json:"department_id"`
	Role          *string          `json:"role"`
	Position      *string          `json:"position"`
	DateOfJoining *string          `json:"date_of_joining"`
	Salary        *decimal.Decimal `json:"salary"`
	IsAdmin       *bool            `json:"is_admin"`
	Status        *string          `json:"status"`
	Address       *string          `json:"address"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}
	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}
	// An empty department_id clears the reference, so only non-empty values
	// need to look like ids.
	if r.DepartmentID != nil && !validator.IsEmpty(*r.DepartmentID) && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleEmployee), string(RoleManager), string(RoleHR)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: employee, manager, hr",
		})
	}
	if r.DateOfJoining != nil {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_joining",
				Message: "date_of_joining must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeFilter narrows list results; scope filtering is applied separately
// by the repository.
type EmployeeFilter struct {
	DepartmentID *string
	Role         *string
	Status       *string
	Search       *string
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	EmployeeCode   string          `json:"employee_code"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Phone          *string         `json:"phone"`
	DepartmentID   *string         `json:"department_id"`
	DepartmentName *string         `json:"department_name"`
	Role           Role            `json:"role"`
	Position       *string         `json:"position"`
	DateOfJoining  *time.Time      `json:"date_of_joining"`
	Salary         decimal.Decimal `json:"salary"`
	IsAdmin        bool            `json:"is_admin"`
	Status         string          `json:"status"`
	Address        *string         `json:"address"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		Role:           e.Role,
		Position:       e.Position,
		DateOfJoining:  e.DateOfJoining,
		Salary:         e.Salary,
		IsAdmin:        e.IsAdmin,
		Status:         e.Status,
		Address:        e.Address,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalItems int64              `json:"total_items"`
}
