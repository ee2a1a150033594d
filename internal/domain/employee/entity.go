package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	UserID        *string
	EmployeeCode  string
	FirstName     string
	LastName      string
	Email         string
	Phone         *string
	DepartmentID  *string
	Role          Role
	Position      *string
	DateOfJoining *time.Time
	Salary        decimal.Decimal
	IsAdmin       bool
	Status        string
	Address       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	DepartmentName *string
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHR       Role = "hr"
)

// StatusActive is the default employment status; the column itself is free
// text.
const StatusActive = "active"

// FullName joins first and last name for display.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
