package attendance

import "context"

// AttendanceService defines business logic for daily attendance
type AttendanceService interface {
	// CheckIn opens today's attendance record for the employee
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's attendance record
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetMyMonth lists the employee's records for one month (YYYY-MM)
	GetMyMonth(ctx context.Context, employeeID string, month string) ([]AttendanceResponse, error)

	// GetStoreDay lists a store's records for one day (YYYY-MM-DD)
	GetStoreDay(ctx context.Context, storeID string, date string) ([]AttendanceResponse, error)
}
