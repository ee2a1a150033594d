package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreatePayrollRequestValidate(t *testing.T) {
	req := CreatePayrollRequest{
		EmployeeID:  "7b6e2c0a-41d5-4c52-9f0e-8d3a6b1c2e4f",
		Month:       "June",
		Year:        2025,
		BasicSalary: decimal.NewFromInt(5000),
	}
	assert.NoError(t, req.Validate())

	req.EmployeeID = "not-a-uuid"
	assert.Error(t, req.Validate())

	req.EmployeeID = "7b6e2c0a-41d5-4c52-9f0e-8d3a6b1c2e4f"
	req.Year = 1990
	assert.Error(t, req.Validate())

	req.Year = 2025
	req.Deductions = decimal.NewFromInt(-100)
	assert.Error(t, req.Validate())
}

func TestComputedNetSalary(t *testing.T) {
	req := CreatePayrollRequest{
		BasicSalary: decimal.NewFromInt(5000),
		Allowances:  decimal.NewFromInt(800),
		Deductions:  decimal.NewFromInt(300),
	}
	assert.True(t, decimal.NewFromInt(5500).Equal(req.ComputedNetSalary()))

	// An explicit net salary wins over the derived value.
	explicit := decimal.NewFromInt(4900)
	req.NetSalary = &explicit
	assert.True(t, explicit.Equal(req.ComputedNetSalary()))
}
