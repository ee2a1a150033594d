package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository. The statement is atomic:
// the UNIQUE (employee_id, date) constraint resolves the race between the
// existence check and the write that two concurrent submissions would
// otherwise hit. A submitted check-in replaces the stored one, an omitted
// check-in keeps it, and check-out is never touched.
func (a *attendanceRepository) Upsert(ctx context.Context, employeeID string, date time.Time, status string, checkIn *time.Time) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (employee_id, date, status, check_in)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET status = EXCLUDED.status,
			check_in = COALESCE(EXCLUDED.check_in, attendances.check_in),
			updated_at = NOW()
		RETURNING id, employee_id, date, check_in, check_out, status,
			created_at, updated_at, (xmax = 0) AS inserted
	`

	var att attendance.Attendance
	var inserted bool
	err := q.QueryRow(ctx, query, employeeID, date, status, checkIn).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.CreatedAt, &att.UpdatedAt, &inserted,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return attendance.Attendance{}, false, employee.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return att, inserted, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string, scope access.Scope) (attendance.Attendance, error) {
	if scope.IsEmpty() {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}

	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status,
			a.created_at, a.updated_at,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`
	args := []interface{}{id}

	if !scope.All {
		query += " AND a.employee_id = $2"
		args = append(args, scope.EmployeeID)
	}

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, args...).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.CreatedAt, &att.UpdatedAt, &att.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return att, nil
}

// List implements attendance.AttendanceRepository. Results are ordered by
// descending date inside the caller's scope.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter, scope access.Scope) ([]attendance.Attendance, int64, error) {
	if scope.IsEmpty() {
		return nil, 0, nil
	}

	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if !scope.All {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, scope.EmployeeID)
		argIdx++
	}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status,
			a.created_at, a.updated_at,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC
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
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.Status, &att.CreatedAt, &att.UpdatedAt, &att.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET status = $1, check_in = $2, check_out = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, employee_id, date, check_in, check_out, status, created_at, updated_at
	`

	var updated attendance.Attendance
	err := q.QueryRow(ctx, query, att.Status, att.CheckIn, att.CheckOut, att.ID).Scan(
		&updated.ID, &updated.EmployeeID, &updated.Date, &updated.CheckIn,
		&updated.CheckOut, &updated.Status, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return updated, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string, scope access.Scope) error {
	if scope.IsEmpty() {
		return attendance.ErrAttendanceNotFound
	}

	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendances WHERE id = $1`
	args := []interface{}{id}

	if !scope.All {
		query += " AND employee_id = $2"
		args = append(args, scope.EmployeeID)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
