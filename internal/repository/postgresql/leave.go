package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/leave"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// Create implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leaves (employee_id, leave_type, start_date, end_date, days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newLeave.EmployeeID, newLeave.LeaveType, newLeave.StartDate,
		newLeave.EndDate, newLeave.Days, newLeave.Reason, newLeave.Status,
	).Scan(&newLeave.ID, &newLeave.CreatedAt, &newLeave.UpdatedAt)

	if err != nil {
		if isForeignKeyViolation(err) {
			return leave.Leave{}, employee.ErrEmployeeNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return newLeave, nil
}

// GetByID implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) GetByID(ctx context.Context, id string, scope access.Scope) (leave.Leave, error) {
	if scope.IsEmpty() {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}

	q := GetQuerier(ctx, l.db)

	query := `
		SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
			l.days, l.reason, l.status, l.created_at, l.updated_at,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM leaves l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`
	args := []interface{}{id}

	if !scope.All {
		query += " AND l.employee_id = $2"
		args = append(args, scope.EmployeeID)
	}

	var lv leave.Leave
	err := q.QueryRow(ctx, query, args...).Scan(
		&lv.ID, &lv.EmployeeID, &lv.LeaveType, &lv.StartDate, &lv.EndDate,
		&lv.Days, &lv.Reason, &lv.Status, &lv.CreatedAt, &lv.UpdatedAt,
		&lv.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave by id: %w", err)
	}

	return lv, nil
}

// List implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter, scope access.Scope) ([]leave.Leave, int64, error) {
	if scope.IsEmpty() {
		return nil, 0, nil
	}

	q := GetQuerier(ctx, l.db)

	// Build WHERE clause
	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if !scope.All {
		baseWhere += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, scope.EmployeeID)
		argIdx++
	}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.LeaveType != nil && *filter.LeaveType != "" {
		baseWhere += fmt.Sprintf(" AND l.leave_type = $%d", argIdx)
		args = append(args, *filter.LeaveType)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM leaves l WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
			l.days, l.reason, l.status, l.created_at, l.updated_at,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM leaves l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE %s
		ORDER BY l.id DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var lv leave.Leave
		err := rows.Scan(
			&lv.ID, &lv.EmployeeID, &lv.LeaveType, &lv.StartDate, &lv.EndDate,
			&lv.Days, &lv.Reason, &lv.Status, &lv.CreatedAt, &lv.UpdatedAt,
			&lv.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, lv)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return leaves, total, nil
}

// Update implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) Update(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leaves
		SET leave_type = $1, start_date = $2, end_date = $3, days = $4,
			reason = $5, status = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id, employee_id, leave_type, start_date, end_date, days,
			reason, status, created_at, updated_at
	`

	var updated leave.Leave
	err := q.QueryRow(ctx, query,
		lv.LeaveType, lv.StartDate, lv.EndDate, lv.Days, lv.Reason, lv.Status, lv.ID,
	).Scan(
		&updated.ID, &updated.EmployeeID, &updated.LeaveType, &updated.StartDate,
		&updated.EndDate, &updated.Days, &updated.Reason, &updated.Status,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave: %w", err)
	}

	return updated, nil
}

// Delete implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) Delete(ctx context.Context, id string, scope access.Scope) error {
	if scope.IsEmpty() {
		return leave.ErrLeaveNotFound
	}

	q := GetQuerier(ctx, l.db)

	query := `DELETE FROM leaves WHERE id = $1`
	args := []interface{}{id}

	if !scope.All {
		query += " AND employee_id = $2"
		args = append(args, scope.EmployeeID)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}
