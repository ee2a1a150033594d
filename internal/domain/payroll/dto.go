package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/validator"
)

type CreatePayrollRequest struct {
	EmployeeID  string           `json:"employee_id"`
	Month       string           `json:"month"`
	Year        int              `json:"year"`
	BasicSalary decimal.Decimal  `json:"basic_salary"`
	Allowances  decimal.Decimal  `json:"allowances"`
	Deductions  decimal.Decimal  `json:"deductions"`
	NetSalary   *decimal.Decimal `json:"net_salary"`
	Status      *string          `json:"status"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}
	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	}
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2200",
		})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}
	if r.Allowances.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "allowances",
			Message: "allowances must not be negative",
		})
	}
	if r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ComputedNetSalary returns the submitted net salary, or derives it from the
// components when the client leaves it out.
func (r *CreatePayrollRequest) ComputedNetSalary() decimal.Decimal {
	if r.NetSalary != nil {
		return *r.NetSalary
	}
	return r.BasicSalary.Add(r.Allowances).Sub(r.Deductions)
}

type UpdatePayrollRequest struct {
	ID          string           `json:"-"`
	Month       *string          `json:"month"`
	Year        *int             `json:"year"`
	BasicSalary *decimal.Decimal `json:"basic_salary"`
	Allowances  *decimal.Decimal `json:"allowances"`
	Deductions  *decimal.Decimal `json:"deductions"`
	NetSalary   *decimal.Decimal `json:"net_salary"`
	Status      *string          `json:"status"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != nil && validator.IsEmpty(*r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must not be empty",
		})
	}
	if r.Year != nil && (*r.Year < 2000 || *r.Year > 2200) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2200",
		})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}
	if r.Allowances != nil && r.Allowances.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "allowances",
			Message: "allowances must not be negative",
		})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollFilter struct {
	EmployeeID *string
	Month      *string
	Year       *int
	Status     *string
	Page       int
	Limit      int
}

type PayrollResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	Month        string          `json:"month"`
	Year         int             `json:"year"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func ToPayrollResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Month:        p.Month,
		Year:         p.Year,
		BasicSalary:  p.BasicSalary,
		Allowances:   p.Allowances,
		Deductions:   p.Deductions,
		NetSalary:    p.NetSalary,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type ListPayrollResponse struct {
	Payrolls   []PayrollResponse `json:"payrolls"`
	TotalItems int64             `json:"total_items"`
}
