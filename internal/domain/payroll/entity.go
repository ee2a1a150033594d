package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payroll struct {
	ID          string
	EmployeeID  string
	Month       string
	Year        int
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
}

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)
