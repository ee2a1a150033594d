package attendance

import (
	"context"
	"time"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Upsert atomically creates or updates the record for (employeeID, date).
	// It relies on the UNIQUE (employee_id, date) constraint so that two
	// concurrent submissions for the same day cannot produce two rows. A
	// submitted check-in overwrites the stored one; check-out is untouched.
	// created reports whether a new row was inserted.
	Upsert(ctx context.Context, employeeID string, date time.Time, status string, checkIn *time.Time) (att Attendance, created bool, err error)

	// GetByID returns ErrAttendanceNotFound when the row does not exist or
	// lies outside the scope.
	GetByID(ctx context.Context, id string, scope access.Scope) (Attendance, error)

	// List returns attendance rows inside the scope ordered by descending
	// date.
	List(ctx context.Context, filter AttendanceFilter, scope access.Scope) ([]Attendance, int64, error)

	Update(ctx context.Context, att Attendance) (Attendance, error)

	Delete(ctx context.Context, id string, scope access.Scope) error
}
