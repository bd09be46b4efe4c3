package postgresql

import (
	"context"
	"time"

	"github.com/mawared/mawared-backend/internal/domain/dashboard"
	"github.com/mawared/mawared-backend/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) GetEmployeeSummary(ctx context.Context, storeID *string, since time.Time) (*dashboard.EmployeeSummaryStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE hire_date >= $1) AS new,
			COUNT(*) FILTER (WHERE status = 'active') AS active,
			COUNT(*) FILTER (WHERE status = 'resigned') AS resigned
		FROM employees
		WHERE deleted_at IS NULL AND ($2::uuid IS NULL OR store_id = $2)
	`

	stats := &dashboard.EmployeeSummaryStats{}
	err := q.QueryRow(ctx, query, since, storeID).
		Scan(&stats.Total, &stats.New, &stats.Active, &stats.Resigned)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *dashboardRepositoryImpl) GetAttendanceStatsByDay(ctx context.Context, storeID *string, date time.Time) (*dashboard.AttendanceStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE a.status = 'present') AS present,
			COUNT(*) FILTER (WHERE a.status = 'late') AS late,
			COUNT(*) FILTER (WHERE a.status = 'absent') AS absent
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1 AND ($2::uuid IS NULL OR e.store_id = $2)
	`

	stats := &dashboard.AttendanceStats{}
	err := q.QueryRow(ctx, query, date, storeID).
		Scan(&stats.Present, &stats.Late, &stats.Absent)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *dashboardRepositoryImpl) GetAttendanceStatsByMonth(ctx context.Context, storeID *string, year, month int) (*dashboard.AttendanceStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE a.status = 'present') AS present,
			COUNT(*) FILTER (WHERE a.status = 'late') AS late,
			COUNT(*) FILTER (WHERE a.status = 'absent') AS absent
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE EXTRACT(YEAR FROM a.date) = $1
		  AND EXTRACT(MONTH FROM a.date) = $2
		  AND ($3::uuid IS NULL OR e.store_id = $3)
	`

	stats := &dashboard.AttendanceStats{}
	err := q.QueryRow(ctx, query, year, month, storeID).
		Scan(&stats.Present, &stats.Late, &stats.Absent)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *dashboardRepositoryImpl) GetLeavePipeline(ctx context.Context, storeID *string) (*dashboard.LeavePipelineStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE lr.status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE lr.status = 'approved') AS approved,
			COUNT(*) FILTER (WHERE lr.status = 'rejected') AS rejected
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE $1::uuid IS NULL OR e.store_id = $1
	`

	stats := &dashboard.LeavePipelineStats{}
	err := q.QueryRow(ctx, query, storeID).
		Scan(&stats.Pending, &stats.Approved, &stats.Rejected)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
