package leave

import (
	"context"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
)

type LeaveService interface {
	// Submit files a leave request. Non-privileged callers may only file for
	// their own employee record.
	Submit(ctx context.Context, identity access.Identity, req CreateLeaveRequest) (LeaveResponse, error)

	Get(ctx context.Context, identity access.Identity, id string) (LeaveResponse, error)

	List(ctx context.Context, identity access.Identity, filter LeaveFilter) (ListLeaveResponse, error)

	// Update edits a request; status transitions are privileged-only.
	Update(ctx context.Context, identity access.Identity, req UpdateLeaveRequest) (LeaveResponse, error)

	Delete(ctx context.Context, identity access.Identity, id string) error
}
