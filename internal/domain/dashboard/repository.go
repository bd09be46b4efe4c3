package dashboard

import (
	"context"
	"time"
)

// EmployeeSummaryStats combines all employee summary counts in a single query
type EmployeeSummaryStats struct {
	Total    int64
	New      int64 // hired within 30 days
	Active   int64
	Resigned int64
}

// AttendanceStats combines present/late/absent counts for one day or month.
// Percentages are derived once here instead of on every client screen.
type AttendanceStats struct {
	Present int64
	Late    int64
	Absent  int64
}

// Expected returns the number of attendance outcomes counted.
func (s AttendanceStats) Expected() int64 {
	return s.Present + s.Late + s.Absent
}

// PresentRate returns the present percentage (0-100) of expected outcomes.
func (s AttendanceStats) PresentRate() float64 {
	expected := s.Expected()
	if expected == 0 {
		return 0
	}
	return float64(s.Present) / float64(expected) * 100
}

// LeavePipelineStats counts leave requests by status.
type LeavePipelineStats struct {
	Pending  int64
	Approved int64
	Rejected int64
}

// DashboardRepository defines the interface for dashboard aggregates
type DashboardRepository interface {
	// GetEmployeeSummary returns total, new (since), active, resigned counts in a single query
	GetEmployeeSummary(ctx context.Context, storeID *string, since time.Time) (*EmployeeSummaryStats, error)

	// GetAttendanceStatsByDay returns present/late/absent for a day, optionally scoped to a store
	GetAttendanceStatsByDay(ctx context.Context, storeID *string, date time.Time) (*AttendanceStats, error)

	// GetAttendanceStatsByMonth returns present/late/absent for a month, optionally scoped to a store
	GetAttendanceStatsByMonth(ctx context.Context, storeID *string, year, month int) (*AttendanceStats, error)

	// GetLeavePipeline returns leave request counts by status, optionally scoped to a store
	GetLeavePipeline(ctx context.Context, storeID *string) (*LeavePipelineStats, error)
}
