package dashboard

import (
	"context"
	"fmt"

	"github.com/mawared/mawared-backend/internal/domain/attendance"
	"github.com/mawared/mawared-backend/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

const newHireWindowDays = 30

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(dashboardRepository dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{DashboardRepository: dashboardRepository}
}

// GetOverview implements dashboard.DashboardService. The four aggregates are
// independent queries, so they run concurrently.
func (s *DashboardServiceImpl) GetOverview(ctx context.Context, storeID *string, date string) (dashboard.OverviewResponse, error) {
	day := attendance.ParseDate(date)
	since := day.AddDate(0, 0, -newHireWindowDays)

	var (
		employees *dashboard.EmployeeSummaryStats
		today     *dashboard.AttendanceStats
		month     *dashboard.AttendanceStats
		pipeline  *dashboard.LeavePipelineStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.DashboardRepository.GetEmployeeSummary(gctx, storeID, since)
		return err
	})
	g.Go(func() error {
		var err error
		today, err = s.DashboardRepository.GetAttendanceStatsByDay(gctx, storeID, day)
		return err
	})
	g.Go(func() error {
		var err error
		month, err = s.DashboardRepository.GetAttendanceStatsByMonth(gctx, storeID, day.Year(), int(day.Month()))
		return err
	})
	g.Go(func() error {
		var err error
		pipeline, err = s.DashboardRepository.GetLeavePipeline(gctx, storeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.OverviewResponse{}, fmt.Errorf("failed to build dashboard overview: %w", err)
	}

	return dashboard.OverviewResponse{
		Employees: dashboard.EmployeeSummaryResponse{
			Total:    employees.Total,
			New:      employees.New,
			Active:   employees.Active,
			Resigned: employees.Resigned,
		},
		AttendanceToday: newAttendanceStatsResponse(today),
		AttendanceMonth: newAttendanceStatsResponse(month),
		LeavePipeline: dashboard.LeavePipelineResponse{
			Pending:  pipeline.Pending,
			Approved: pipeline.Approved,
			Rejected: pipeline.Rejected,
		},
	}, nil
}

func newAttendanceStatsResponse(stats *dashboard.AttendanceStats) dashboard.AttendanceStatsResponse {
	return dashboard.AttendanceStatsResponse{
		Present:     stats.Present,
		Late:        stats.Late,
		Absent:      stats.Absent,
		PresentRate: stats.PresentRate(),
	}
}
