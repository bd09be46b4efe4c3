package dashboard

import "context"

type DashboardService interface {
	// GetOverview assembles the admin/HR dashboard. storeID scopes the stats
	// to one store; nil means platform-wide.
	GetOverview(ctx context.Context, storeID *string, date string) (OverviewResponse, error)
}

type OverviewResponse struct {
	Employees       EmployeeSummaryResponse `json:"employees"`
	AttendanceToday AttendanceStatsResponse `json:"attendance_today"`
	AttendanceMonth AttendanceStatsResponse `json:"attendance_month"`
	LeavePipeline   LeavePipelineResponse   `json:"leave_pipeline"`
}

type EmployeeSummaryResponse struct {
	Total    int64 `json:"total"`
	New      int64 `json:"new"`
	Active   int64 `json:"active"`
	Resigned int64 `json:"resigned"`
}

type AttendanceStatsResponse struct {
	Present     int64   `json:"present"`
	Late        int64   `json:"late"`
	Absent      int64   `json:"absent"`
	PresentRate float64 `json:"present_rate"`
}

type LeavePipelineResponse struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
