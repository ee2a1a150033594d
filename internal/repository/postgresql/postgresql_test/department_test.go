package postgresql_test

import (
	"context"
	"testing"

	"github.com/staffhub-dev/hrm-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentDeleteClearsEmployeeReference(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	deptID := createTestDepartment(t, ctx, "Engineering")
	empID := createTestEmployee(t, ctx, nil, "EMP201", "emp201@example.com", false)
	_, err := db.Exec(ctx, `UPDATE employees SET department_id = $1 WHERE id = $2`, deptID, empID)
	require.NoError(t, err)

	repo := postgresql.NewDepartmentRepository(db)
	require.NoError(t, repo.Delete(ctx, deptID))

	// The employee row survives with its reference cleared.
	var departmentID *string
	err = db.QueryRow(ctx, `SELECT department_id FROM employees WHERE id = $1`, empID).Scan(&departmentID)
	require.NoError(t, err)
	assert.Nil(t, departmentID)
}

func TestEmployeeDeleteCascades(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	empID := createTestEmployee(t, ctx, nil, "EMP202", "emp202@example.com", false)

	_, err := db.Exec(ctx, `
		INSERT INTO attendances (employee_id, date, status) VALUES ($1, '2025-06-02', 'present')
	`, empID)
	require.NoError(t, err)
	_, err = db.Exec(ctx, `
		INSERT INTO leaves (employee_id, leave_type, start_date, end_date, days, reason)
		VALUES ($1, 'annual', '2025-07-01', '2025-07-03', 3, 'vacation')
	`, empID)
	require.NoError(t, err)
	_, err = db.Exec(ctx, `
		INSERT INTO payrolls (employee_id, month, year, basic_salary, net_salary)
		VALUES ($1, 'June', 2025, 5000, 5000)
	`, empID)
	require.NoError(t, err)

	repo := postgresql.NewEmployeeRepository(db)
	require.NoError(t, repo.Delete(ctx, empID))

	for _, table := range []string{"attendances", "leaves", "payrolls"} {
		var count int
		err := db.QueryRow(ctx, `SELECT COUNT(*) FROM `+table+` WHERE employee_id = $1`, empID).Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count, table)
	}
}
