package attendance

import (
	"context"
	"fmt"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
	}
}

// Mark implements attendance.AttendanceService. One call reconciles the
// submission against any existing record for the same employee and day; two
// concurrent submissions can never yield two rows. Non-privileged callers
// marking anyone but themselves get the same answer as for an employee that
// does not exist.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, identity access.Identity, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	scope := access.ScopeFor(identity)
	if !scope.All && !scope.Owns(req.EmployeeID) {
		return attendance.MarkAttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	att, created, err := a.AttendanceRepository.Upsert(ctx, req.EmployeeID, req.ParsedDate(), req.Status, req.ParsedCheckIn())
	if err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	result := "updated"
	if created {
		result = "created"
	}
	return attendance.MarkAttendanceResponse{
		Result:     result,
		Attendance: attendance.ToAttendanceResponse(att),
	}, nil
}

// Get implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Get(ctx context.Context, identity access.Identity, id string) (attendance.AttendanceResponse, error) {
	att, err := a.AttendanceRepository.GetByID(ctx, id, access.ScopeFor(identity))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToAttendanceResponse(att), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, identity access.Identity, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	attendances, total, err := a.AttendanceRepository.List(ctx, filter, access.ScopeFor(identity))
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, attendance.ToAttendanceResponse(att))
	}
	return attendance.ListAttendanceResponse{Attendances: responses, TotalItems: total}, nil
}

// Update implements attendance.AttendanceService. This is the only path that
// sets check-out.
func (a *AttendanceServiceImpl) Update(ctx context.Context, identity access.Identity, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.ID, access.ScopeFor(identity))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Status != nil {
		att.Status = *req.Status
	}
	if req.CheckIn != nil {
		t, _ := validator.IsValidDateTime(*req.CheckIn)
		att.CheckIn = &t
	}
	if req.CheckOut != nil {
		t, _ := validator.IsValidDateTime(*req.CheckOut)
		att.CheckOut = &t
	}

	updated, err := a.AttendanceRepository.Update(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToAttendanceResponse(updated), nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, identity access.Identity, id string) error {
	return a.AttendanceRepository.Delete(ctx, id, access.ScopeFor(identity))
}
