package leave

import (
	"context"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
)

type LeaveRepository interface {
	Create(ctx context.Context, newLeave Leave) (Leave, error)

	// GetByID returns ErrLeaveNotFound when the row does not exist or lies
	// outside the scope.
	GetByID(ctx context.Context, id string, scope access.Scope) (Leave, error)

	List(ctx context.Context, filter LeaveFilter, scope access.Scope) ([]Leave, int64, error)

	Update(ctx context.Context, l Leave) (Leave, error)

	Delete(ctx context.Context, id string, scope access.Scope) error
}
