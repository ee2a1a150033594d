package payroll

import (
	"context"
	"fmt"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/payroll"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
}

func NewPayrollService(payrollRepository payroll.PayrollRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository: payrollRepository,
	}
}

// Create implements payroll.PayrollService. Payroll entry is a privileged
// action. Net salary is derived from the components when the client leaves
// it out.
func (p *PayrollServiceImpl) Create(ctx context.Context, identity access.Identity, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if !identity.IsPrivileged() {
		return payroll.PayrollResponse{}, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	newPayroll := payroll.Payroll{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		NetSalary:   req.ComputedNetSalary(),
		Status:      payroll.StatusPending,
	}
	if req.Status != nil {
		newPayroll.Status = *req.Status
	}

	created, err := p.PayrollRepository.Create(ctx, newPayroll)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.ToPayrollResponse(created), nil
}

// Get implements payroll.PayrollService.
func (p *PayrollServiceImpl) Get(ctx context.Context, identity access.Identity, id string) (payroll.PayrollResponse, error) {
	pr, err := p.PayrollRepository.GetByID(ctx, id, access.ScopeFor(identity))
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.ToPayrollResponse(pr), nil
}

// List implements payroll.PayrollService.
func (p *PayrollServiceImpl) List(ctx context.Context, identity access.Identity, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	payrolls, total, err := p.PayrollRepository.List(ctx, filter, access.ScopeFor(identity))
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payroll: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, pr := range payrolls {
		responses = append(responses, payroll.ToPayrollResponse(pr))
	}
	return payroll.ListPayrollResponse{Payrolls: responses, TotalItems: total}, nil
}

// Update implements payroll.PayrollService. Privileged-only, like Create.
func (p *PayrollServiceImpl) Update(ctx context.Context, identity access.Identity, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if !identity.IsPrivileged() {
		return payroll.PayrollResponse{}, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	pr, err := p.PayrollRepository.GetByID(ctx, req.ID, access.ScopeFor(identity))
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	if req.Month != nil {
		pr.Month = *req.Month
	}
	if req.Year != nil {
		pr.Year = *req.Year
	}
	if req.BasicSalary != nil {
		pr.BasicSalary = *req.BasicSalary
	}
	if req.Allowances != nil {
		pr.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		pr.Deductions = *req.Deductions
	}
	if req.NetSalary != nil {
		pr.NetSalary = *req.NetSalary
	} else if req.BasicSalary != nil || req.Allowances != nil || req.Deductions != nil {
		pr.NetSalary = pr.BasicSalary.Add(pr.Allowances).Sub(pr.Deductions)
	}
	if req.Status != nil {
		pr.Status = *req.Status
	}

	updated, err := p.PayrollRepository.Update(ctx, pr)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.ToPayrollResponse(updated), nil
}

// Delete implements payroll.PayrollService. Privileged-only.
func (p *PayrollServiceImpl) Delete(ctx context.Context, identity access.Identity, id string) error {
	if !identity.IsPrivileged() {
		return user.ErrAdminPrivilegeRequired
	}
	return p.PayrollRepository.Delete(ctx, id, access.ScopeFor(identity))
}
