package postgresql_test

import (
	"context"
	"testing"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/hrm-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeGetByIDScope(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewEmployeeRepository(db)
	ownID := createTestEmployee(t, ctx, nil, "EMP101", "emp101@example.com", false)
	otherID := createTestEmployee(t, ctx, nil, "EMP102", "emp102@example.com", false)

	ownScope := access.Scope{EmployeeID: ownID}

	emp, err := repo.GetByID(ctx, ownID, ownScope)
	require.NoError(t, err)
	assert.Equal(t, "EMP101", emp.EmployeeCode)

	// Another employee's row is indistinguishable from an absent one.
	_, err = repo.GetByID(ctx, otherID, ownScope)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	// An empty scope never reaches any row.
	_, err = repo.GetByID(ctx, ownID, access.Scope{})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = repo.GetByID(ctx, otherID, access.Scope{All: true})
	assert.NoError(t, err)
}

func TestEmployeeGetByIDMalformedID(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewEmployeeRepository(db)

	// An id that cannot even be parsed names no row; it must not surface as
	// an internal error.
	_, err := repo.GetByID(ctx, "abc", access.Scope{All: true})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	err = repo.Delete(ctx, "abc")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeListScope(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewEmployeeRepository(db)
	ownID := createTestEmployee(t, ctx, nil, "EMP103", "emp103@example.com", false)
	createTestEmployee(t, ctx, nil, "EMP104", "emp104@example.com", false)

	rows, total, err := repo.List(ctx, employee.EmployeeFilter{Page: 1, Limit: 10}, access.Scope{EmployeeID: ownID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, ownID, rows[0].ID)

	rows, total, err = repo.List(ctx, employee.EmployeeFilter{Page: 1, Limit: 10}, access.Scope{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)

	rows, total, err = repo.List(ctx, employee.EmployeeFilter{Page: 1, Limit: 10}, access.Scope{All: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	// Newest first.
	require.Len(t, rows, 2)
	assert.Equal(t, "EMP104", rows[0].EmployeeCode)
}

func TestEmployeeUniqueness(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewEmployeeRepository(db)
	createTestEmployee(t, ctx, nil, "EMP105", "emp105@example.com", false)

	codeTaken, emailTaken, err := repo.ExistsByCodeOrEmail(ctx, "EMP105", "new@example.com")
	require.NoError(t, err)
	assert.True(t, codeTaken)
	assert.False(t, emailTaken)

	codeTaken, emailTaken, err = repo.ExistsByCodeOrEmail(ctx, "EMP999", "emp105@example.com")
	require.NoError(t, err)
	assert.False(t, codeTaken)
	assert.True(t, emailTaken)

	_, err = repo.Create(ctx, employee.Employee{
		EmployeeCode: "EMP105",
		FirstName:    "Dup",
		LastName:     "Code",
		Email:        "dup105@example.com",
		Status:       employee.StatusActive,
		Role:         employee.RoleEmployee,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}
