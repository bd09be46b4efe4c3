package attendance

import (
	"context"
	"time"
)

// AttendanceRepository - interface for attendances table
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	SetCheckOut(ctx context.Context, id string, checkOutAt time.Time) error
	ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]Attendance, error)
	ListByStoreDate(ctx context.Context, storeID string, date time.Time) ([]Attendance, error)
}
