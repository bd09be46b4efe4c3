package attendance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mawared/mawared-backend/internal/domain/attendance"
	"github.com/mawared/mawared-backend/internal/domain/settings"
)

const (
	defaultWorkdayStart  = "09:00"
	defaultLateThreshold = 15 // minutes
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	settings.SettingsRepository
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	settingsRepository settings.SettingsRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		SettingsRepository:   settingsRepository,
		now:                  time.Now,
	}
}

// CheckIn implements attendance.AttendanceService. Arrivals after the
// configured workday start plus the late threshold are marked late.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if _, err := s.AttendanceRepository.GetByEmployeeDate(ctx, req.EmployeeID, today); err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	} else if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}

	status := attendance.StatusPresent
	if now.After(s.lateCutoff(ctx, now)) {
		status = attendance.StatusLate
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       today,
		CheckInAt:  now,
		Status:     status,
		Notes:      req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.NewAttendanceResponse(created), nil
}

// lateCutoff builds today's late boundary from system settings, falling back
// to the defaults when either setting is missing or malformed.
func (s *AttendanceServiceImpl) lateCutoff(ctx context.Context, now time.Time) time.Time {
	start := defaultWorkdayStart
	if setting, err := s.SettingsRepository.Get(ctx, settings.KeyWorkdayStart); err == nil {
		start = setting.Value
	}

	parsed, err := time.Parse("15:04", start)
	if err != nil {
		parsed, _ = time.Parse("15:04", defaultWorkdayStart)
	}

	threshold := defaultLateThreshold
	if setting, err := s.SettingsRepository.Get(ctx, settings.KeyLateThresholdMins); err == nil {
		if mins, err := strconv.Atoi(setting.Value); err == nil && mins >= 0 {
			threshold = mins
		}
	}

	cutoff := time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	return cutoff.Add(time.Duration(threshold) * time.Minute)
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	record, err := s.AttendanceRepository.GetByEmployeeDate(ctx, req.EmployeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if now.Before(record.CheckInAt) {
		return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	if err := s.AttendanceRepository.SetCheckOut(ctx, record.ID, now); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	record.CheckOutAt = &now

	return attendance.NewAttendanceResponse(record), nil
}

// GetMyMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyMonth(ctx context.Context, employeeID string, month string) ([]attendance.AttendanceResponse, error) {
	filter := attendance.ParseMonth(month)

	records, err := s.AttendanceRepository.ListByEmployeeMonth(ctx, employeeID, filter.Year, filter.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return buildResponses(records), nil
}

// GetStoreDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetStoreDay(ctx context.Context, storeID string, date string) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByStoreDate(ctx, storeID, attendance.ParseDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return buildResponses(records), nil
}

func buildResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, attendance.NewAttendanceResponse(a))
	}
	return responses
}
