package attendance

import (
	"context"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
)

type AttendanceService interface {
	// Mark reconciles a daily attendance submission with any existing record
	// for the same (employee, date) pair. Non-privileged callers may only
	// mark their own attendance.
	Mark(ctx context.Context, identity access.Identity, req MarkAttendanceRequest) (MarkAttendanceResponse, error)

	Get(ctx context.Context, identity access.Identity, id string) (AttendanceResponse, error)

	// List retrieves attendance within the caller's scope, newest date first.
	List(ctx context.Context, identity access.Identity, filter AttendanceFilter) (ListAttendanceResponse, error)

	Update(ctx context.Context, identity access.Identity, req UpdateAttendanceRequest) (AttendanceResponse, error)

	Delete(ctx context.Context, identity access.Identity, id string) error
}
