package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mawared/mawared-backend/internal/domain/attendance"
	"github.com/mawared/mawared-backend/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in_at, a.check_out_at, a.status,
	a.notes, a.created_at, a.updated_at, e.full_name AS employee_name
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckInAt, &a.CheckOutAt, &a.Status,
		&a.Notes, &a.CreatedAt, &a.UpdatedAt, &a.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, check_in_at, status, notes, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.CheckInAt, att.Status, att.Notes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, err
	}

	return att, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
	`
	return scanAttendance(q.QueryRow(ctx, query, employeeID, date))
}

func (r *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, id string, checkOutAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET check_out_at = $2, updated_at = NOW()
		WHERE id = $1 AND check_out_at IS NULL
	`
	tag, err := q.Exec(ctx, query, id, checkOutAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrNotCheckedIn
	}
	return nil
}

func (r *attendanceRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND EXTRACT(YEAR FROM a.date) = $2
		  AND EXTRACT(MONTH FROM a.date) = $3
		ORDER BY a.date
	`
	return r.queryAttendances(ctx, q, query, employeeID, year, month)
}

func (r *attendanceRepositoryImpl) ListByStoreDate(ctx context.Context, storeID string, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE e.store_id = $1 AND a.date = $2
		ORDER BY a.check_in_at
	`
	return r.queryAttendances(ctx, q, query, storeID, date)
}

func (r *attendanceRepositoryImpl) queryAttendances(ctx context.Context, q database.Querier, query string, args ...any) ([]attendance.Attendance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendances := []attendance.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		attendances = append(attendances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return attendances, nil
}
