package attendance

import (
	"time"

	"github.com/mawared/mawared-backend/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string  `json:"-"` // set from JWT claims
	Notes      *string `json:"notes,omitempty"`
}

type CheckOutRequest struct {
	EmployeeID string `json:"-"`
}

type MonthFilter struct {
	Year  int
	Month int
}

// ParseMonth parses YYYY-MM, defaulting to the current month.
func ParseMonth(month string) MonthFilter {
	now := time.Now()
	if month == "" {
		return MonthFilter{Year: now.Year(), Month: int(now.Month())}
	}
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return MonthFilter{Year: now.Year(), Month: int(now.Month())}
	}
	return MonthFilter{Year: parsed.Year(), Month: int(parsed.Month())}
}

// ParseDate parses YYYY-MM-DD, defaulting to today.
func ParseDate(date string) time.Time {
	if _, ok := validator.IsValidDate(date); !ok {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	parsed, _ := time.Parse("2006-01-02", date)
	return parsed
}

type AttendanceResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	Date         string     `json:"date"`
	CheckInAt    time.Time  `json:"check_in_at"`
	CheckOutAt   *time.Time `json:"check_out_at,omitempty"`
	Status       string     `json:"status"`
	Notes        *string    `json:"notes,omitempty"`
}

// NewAttendanceResponse maps the entity to its API shape.
func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		CheckInAt:    a.CheckInAt,
		CheckOutAt:   a.CheckOutAt,
		Status:       string(a.Status),
		Notes:        a.Notes,
	}
}
