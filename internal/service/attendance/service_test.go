package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAttendanceRepo records Upsert calls; the policy checks under test run
// before any repository access.
type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	upsertCalls int
	created     bool
}

func (s *stubAttendanceRepo) Upsert(ctx context.Context, employeeID string, date time.Time, status string, checkIn *time.Time) (attendance.Attendance, bool, error) {
	s.upsertCalls++
	return attendance.Attendance{
		ID:         "att-1",
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		CheckIn:    checkIn,
	}, s.created, nil
}

const (
	selfEmployeeID  = "7b6e2c0a-41d5-4c52-9f0e-8d3a6b1c2e4f"
	otherEmployeeID = "3f1a9c8e-6b2d-4e70-a1c5-9d8e7f6a5b4c"
)

func strPtr(s string) *string { return &s }

func markRequest(employeeID string) attendance.MarkAttendanceRequest {
	return attendance.MarkAttendanceRequest{
		EmployeeID: employeeID,
		Date:       "2025-06-02",
		Status:     "present",
	}
}

func TestMarkOwnOnlyForUnprivileged(t *testing.T) {
	repo := &stubAttendanceRepo{}
	svc := NewAttendanceService(repo)
	caller := access.Identity{UserID: "u1", EmployeeID: strPtr(selfEmployeeID)}

	// Marking someone else answers exactly like an employee that does not
	// exist, and never reaches storage.
	_, err := svc.Mark(context.Background(), caller, markRequest(otherEmployeeID))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Zero(t, repo.upsertCalls)

	// Marking yourself goes through.
	resp, err := svc.Mark(context.Background(), caller, markRequest(selfEmployeeID))
	require.NoError(t, err)
	assert.Equal(t, 1, repo.upsertCalls)
	assert.Equal(t, "updated", resp.Result)
}

func TestMarkPrivilegedMarksAnyone(t *testing.T) {
	repo := &stubAttendanceRepo{created: true}
	svc := NewAttendanceService(repo)
	admin := access.Identity{UserID: "u1", EmployeeID: strPtr(selfEmployeeID), EmployeeIsAdmin: true}

	resp, err := svc.Mark(context.Background(), admin, markRequest(otherEmployeeID))
	require.NoError(t, err)
	assert.Equal(t, 1, repo.upsertCalls)
	assert.Equal(t, "created", resp.Result)
	assert.Equal(t, otherEmployeeID, resp.Attendance.EmployeeID)
}

func TestMarkUnlinkedCallerSeesNotFound(t *testing.T) {
	repo := &stubAttendanceRepo{}
	svc := NewAttendanceService(repo)
	unlinked := access.Identity{UserID: "u1"}

	_, err := svc.Mark(context.Background(), unlinked, markRequest(selfEmployeeID))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Zero(t, repo.upsertCalls)
}

func TestMarkValidationRunsFirst(t *testing.T) {
	repo := &stubAttendanceRepo{}
	svc := NewAttendanceService(repo)
	admin := access.Identity{UserID: "u1", IsSuperuser: true}

	req := markRequest(selfEmployeeID)
	req.Date = "June 2nd"
	_, err := svc.Mark(context.Background(), admin, req)

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	assert.Zero(t, repo.upsertCalls)
}
