package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

// Attendance is one employee-day record. CheckOutAt stays nil until the
// employee clocks out.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckInAt  time.Time
	CheckOutAt *time.Time
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relationships (for responses)
	EmployeeName *string
}
