package leave

import (
	"context"
	"fmt"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/leave"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/user"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
}

func NewLeaveService(leaveRepository leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepository,
	}
}

// Submit implements leave.LeaveService. Non-privileged callers may only file
// for themselves; filing for anyone else answers the same as for an employee
// that does not exist. New requests always start out pending.
func (l *LeaveServiceImpl) Submit(ctx context.Context, identity access.Identity, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	scope := access.ScopeFor(identity)
	if !scope.All && !scope.Owns(req.EmployeeID) {
		return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
	}

	start, end := req.ParsedDates()
	created, err := l.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Days:       req.Days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToLeaveResponse(created), nil
}

// Get implements leave.LeaveService.
func (l *LeaveServiceImpl) Get(ctx context.Context, identity access.Identity, id string) (leave.LeaveResponse, error) {
	lv, err := l.LeaveRepository.GetByID(ctx, id, access.ScopeFor(identity))
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToLeaveResponse(lv), nil
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context, identity access.Identity, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	leaves, total, err := l.LeaveRepository.List(ctx, filter, access.ScopeFor(identity))
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		responses = append(responses, leave.ToLeaveResponse(lv))
	}
	return leave.ListLeaveResponse{Leaves: responses, TotalItems: total}, nil
}

// Update implements leave.LeaveService. Approving or rejecting is a
// privileged action; everything else stays within the caller's scope.
func (l *LeaveServiceImpl) Update(ctx context.Context, identity access.Identity, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	lv, err := l.LeaveRepository.GetByID(ctx, req.ID, access.ScopeFor(identity))
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if req.Status != nil && *req.Status != lv.Status && !identity.IsPrivileged() {
		return leave.LeaveResponse{}, user.ErrAdminPrivilegeRequired
	}

	if req.LeaveType != nil {
		lv.LeaveType = *req.LeaveType
	}
	if req.StartDate != nil {
		d, _ := validator.IsValidDate(*req.StartDate)
		lv.StartDate = d
	}
	if req.EndDate != nil {
		d, _ := validator.IsValidDate(*req.EndDate)
		lv.EndDate = d
	}
	if lv.EndDate.Before(lv.StartDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}
	if req.Days != nil {
		lv.Days = *req.Days
	}
	if req.Reason != nil {
		lv.Reason = *req.Reason
	}
	if req.Status != nil {
		lv.Status = *req.Status
	}

	updated, err := l.LeaveRepository.Update(ctx, lv)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToLeaveResponse(updated), nil
}

// Delete implements leave.LeaveService.
func (l *LeaveServiceImpl) Delete(ctx context.Context, identity access.Identity, id string) error {
	return l.LeaveRepository.Delete(ctx, id, access.ScopeFor(identity))
}
