package postgresql_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/hrm-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(ts time.Time) *time.Time { return &ts }

func TestAttendanceUpsertCreatesThenUpdates(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewAttendanceRepository(db)
	empID := createTestEmployee(t, ctx, nil, "EMP001", "emp001@example.com", false)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	first, created, err := repo.Upsert(ctx, empID, day, "present", timePtr(day.Add(8*time.Hour)))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "present", first.Status)
	require.NotNil(t, first.CheckIn)

	// Same employee and day again: the existing row is updated in place.
	second, created, err := repo.Upsert(ctx, empID, day, "half-day", nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "half-day", second.Status)

	// A nil check-in on resubmission keeps the stored one.
	require.NotNil(t, second.CheckIn)
	assert.Equal(t, first.CheckIn.UTC(), second.CheckIn.UTC())

	// A submitted check-in overwrites the stored one.
	third, created, err := repo.Upsert(ctx, empID, day, "present", timePtr(day.Add(9*time.Hour)))
	require.NoError(t, err)
	assert.False(t, created)
	require.NotNil(t, third.CheckIn)
	assert.Equal(t, day.Add(9*time.Hour), third.CheckIn.UTC())
}

func TestAttendanceUpsertConcurrentSameDay(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewAttendanceRepository(db)
	empID := createTestEmployee(t, ctx, nil, "EMP002", "emp002@example.com", false)
	day := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := repo.Upsert(ctx, empID, day, "present", nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var count int
	err := db.QueryRow(ctx, `SELECT COUNT(*) FROM attendances WHERE employee_id = $1 AND date = $2`, empID, day).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAttendanceUpsertUnknownEmployee(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewAttendanceRepository(db)
	day := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	_, _, err := repo.Upsert(ctx, "00000000-0000-0000-0000-000000000000", day, "present", nil)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceScopedVisibility(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewAttendanceRepository(db)
	ownID := createTestEmployee(t, ctx, nil, "EMP003", "emp003@example.com", false)
	otherID := createTestEmployee(t, ctx, nil, "EMP004", "emp004@example.com", false)
	day := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	ownAtt, _, err := repo.Upsert(ctx, ownID, day, "present", nil)
	require.NoError(t, err)
	otherAtt, _, err := repo.Upsert(ctx, otherID, day, "present", nil)
	require.NoError(t, err)

	ownScope := access.Scope{EmployeeID: ownID}

	// Own row is visible; the other employee's row answers as not found.
	_, err = repo.GetByID(ctx, ownAtt.ID, ownScope)
	assert.NoError(t, err)
	_, err = repo.GetByID(ctx, otherAtt.ID, ownScope)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	// Lists are filtered, not rejected.
	rows, total, err := repo.List(ctx, attendance.AttendanceFilter{Page: 1, Limit: 10}, ownScope)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, ownID, rows[0].EmployeeID)

	// An empty scope yields an empty list, never an error.
	rows, total, err = repo.List(ctx, attendance.AttendanceFilter{Page: 1, Limit: 10}, access.Scope{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)

	// Privileged scope sees both employees.
	_, total, err = repo.List(ctx, attendance.AttendanceFilter{Page: 1, Limit: 10}, access.Scope{All: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
