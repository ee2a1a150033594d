package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.employee_code, e.first_name, e.last_name, e.email, e.phone,
	e.department_id, e.role, e.position, e.date_of_joining, e.salary, e.is_admin,
	e.status, e.address, e.created_at, e.updated_at,
	d.name AS department_name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.EmployeeCode, &emp.FirstName, &emp.LastName,
		&emp.Email, &emp.Phone, &emp.DepartmentID, &emp.Role, &emp.Position,
		&emp.DateOfJoining, &emp.Salary, &emp.IsAdmin, &emp.Status, &emp.Address,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			user_id, employee_code, first_name, last_name, email, phone,
			department_id, role, position, date_of_joining, salary, is_admin,
			status, address
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.UserID, newEmployee.EmployeeCode, newEmployee.FirstName,
		newEmployee.LastName, newEmployee.Email, newEmployee.Phone,
		newEmployee.DepartmentID, newEmployee.Role, newEmployee.Position,
		newEmployee.DateOfJoining, newEmployee.Salary, newEmployee.IsAdmin,
		newEmployee.Status, newEmployee.Address,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(constraintName(err), "email") {
				return employee.Employee{}, employee.ErrEmailExists
			}
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		if isForeignKeyViolation(err) {
			return employee.Employee{}, employee.ErrDepartmentNotLinked
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository. Rows outside the scope are
// reported as not found.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string, scope access.Scope) (employee.Employee, error) {
	if scope.IsEmpty() {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`
	args := []interface{}{id}

	if !scope.All {
		query += " AND e.id = $2"
		args = append(args, scope.EmployeeID)
	}

	emp, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository. Unscoped: used by the
// login path.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.email = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return emp, nil
}

// GetByUserID implements employee.EmployeeRepository. Unscoped: used when
// rebuilding identity claims from a refresh token.
func (e *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.user_id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user id: %w", err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository. Results are ordered by
// descending id inside the caller's scope.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter, scope access.Scope) ([]employee.Employee, int64, error) {
	if scope.IsEmpty() {
		return nil, 0, nil
	}

	q := GetQuerier(ctx, e.db)

	// Build WHERE clause
	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if !scope.All {
		baseWhere += fmt.Sprintf(" AND e.id = $%d", argIdx)
		args = append(args, scope.EmployeeID)
		argIdx++
	}

	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		baseWhere += fmt.Sprintf(" AND e.department_id = $%d", argIdx)
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.Role != nil && *filter.Role != "" {
		baseWhere += fmt.Sprintf(" AND e.role = $%d", argIdx)
		args = append(args, *filter.Role)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND e.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.email ILIKE $%d OR e.employee_code ILIKE $%d)", argIdx, argIdx, argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM employees e WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+employeeColumns+`
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE %s
		ORDER BY e.id DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, phone = $3, department_id = $4,
			role = $5, position = $6, date_of_joining = $7, salary = $8,
			is_admin = $9, status = $10, address = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.Phone, emp.DepartmentID,
		emp.Role, emp.Position, emp.DateOfJoining, emp.Salary,
		emp.IsAdmin, emp.Status, emp.Address, emp.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isForeignKeyViolation(err) {
			return employee.Employee{}, employee.ErrDepartmentNotLinked
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return e.GetByID(ctx, updatedID, access.Scope{All: true})
}

// Delete implements employee.EmployeeRepository. Attendance, leave, and
// payroll rows go with the employee via ON DELETE CASCADE.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ExistsByCodeOrEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByCodeOrEmail(ctx context.Context, employeeCode, email string) (bool, bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT
			EXISTS(SELECT 1 FROM employees WHERE employee_code = $1),
			EXISTS(SELECT 1 FROM employees WHERE email = $2)
	`

	var codeTaken, emailTaken bool
	if err := q.QueryRow(ctx, query, employeeCode, email).Scan(&codeTaken, &emailTaken); err != nil {
		return false, false, fmt.Errorf("failed to check employee uniqueness: %w", err)
	}
	return codeTaken, emailTaken, nil
}
