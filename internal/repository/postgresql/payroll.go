package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/payroll"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// Create implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) Create(ctx context.Context, pr payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payrolls (employee_id, month, year, basic_salary, allowances, deductions, net_salary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		pr.EmployeeID, pr.Month, pr.Year, pr.BasicSalary,
		pr.Allowances, pr.Deductions, pr.NetSalary, pr.Status,
	).Scan(&pr.ID, &pr.CreatedAt, &pr.UpdatedAt)

	if err != nil {
		if isForeignKeyViolation(err) {
			return payroll.Payroll{}, employee.ErrEmployeeNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return pr, nil
}

// GetByID implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetByID(ctx context.Context, id string, scope access.Scope) (payroll.Payroll, error) {
	if scope.IsEmpty() {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}

	q := GetQuerier(ctx, p.db)

	query := `
		SELECT p.id, p.employee_id, p.month, p.year, p.basic_salary,
			p.allowances, p.deductions, p.net_salary, p.status,
			p.created_at, p.updated_at,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`
	args := []interface{}{id}

	if !scope.All {
		query += " AND p.employee_id = $2"
		args = append(args, scope.EmployeeID)
	}

	var pr payroll.Payroll
	err := q.QueryRow(ctx, query, args...).Scan(
		&pr.ID, &pr.EmployeeID, &pr.Month, &pr.Year, &pr.BasicSalary,
		&pr.Allowances, &pr.Deductions, &pr.NetSalary, &pr.Status,
		&pr.CreatedAt, &pr.UpdatedAt, &pr.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by id: %w", err)
	}

	return pr, nil
}

// List implements payroll.PayrollRepository. Results are ordered by
// descending id inside the caller's scope.
func (p *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter, scope access.Scope) ([]payroll.Payroll, int64, error) {
	if scope.IsEmpty() {
		return nil, 0, nil
	}

	q := GetQuerier(ctx, p.db)

	// Build WHERE clause
	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if !scope.All {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, scope.EmployeeID)
		argIdx++
	}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil && *filter.Month != "" {
		baseWhere += fmt.Sprintf(" AND p.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		baseWhere += fmt.Sprintf(" AND p.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM payrolls p WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.month, p.year, p.basic_salary,
			p.allowances, p.deductions, p.net_salary, p.status,
			p.created_at, p.updated_at,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.id DESC
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
		return nil, 0, fmt.Errorf("failed to query payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		var pr payroll.Payroll
		err := rows.Scan(
			&pr.ID, &pr.EmployeeID, &pr.Month, &pr.Year, &pr.BasicSalary,
			&pr.Allowances, &pr.Deductions, &pr.NetSalary, &pr.Status,
			&pr.CreatedAt, &pr.UpdatedAt, &pr.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, pr)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return payrolls, total, nil
}

// Update implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) Update(ctx context.Context, pr payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payrolls
		SET month = $1, year = $2, basic_salary = $3, allowances = $4,
			deductions = $5, net_salary = $6, status = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id, employee_id, month, year, basic_salary, allowances,
			deductions, net_salary, status, created_at, updated_at
	`

	var updated payroll.Payroll
	err := q.QueryRow(ctx, query,
		pr.Month, pr.Year, pr.BasicSalary, pr.Allowances,
		pr.Deductions, pr.NetSalary, pr.Status, pr.ID,
	).Scan(
		&updated.ID, &updated.EmployeeID, &updated.Month, &updated.Year,
		&updated.BasicSalary, &updated.Allowances, &updated.Deductions,
		&updated.NetSalary, &updated.Status, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to update payroll: %w", err)
	}

	return updated, nil
}

// Delete implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) Delete(ctx context.Context, id string, scope access.Scope) error {
	if scope.IsEmpty() {
		return payroll.ErrPayrollNotFound
	}

	q := GetQuerier(ctx, p.db)

	query := `DELETE FROM payrolls WHERE id = $1`
	args := []interface{}{id}

	if !scope.All {
		query += " AND employee_id = $2"
		args = append(args, scope.EmployeeID)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return payroll.ErrPayrollNotFound
		}
		return fmt.Errorf("failed to delete payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}
