package leave

import "time"

// LeaveType entity
type LeaveType struct {
	ID          string
	Name        string
	Code        *string
	Description *string

	IsActive    bool
	DefaultDays int // yearly allowance granted when a balance is opened

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveBalance entity. UsedDays is mutated only when a request is approved;
// the remaining balance is always derived, never stored.
type LeaveBalance struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	Year        int

	TotalDays int
	UsedDays  int

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	LeaveTypeName *string
}

// RemainingDays returns total_days - used_days.
func (b LeaveBalance) RemainingDays() int {
	return b.TotalDays - b.UsedDays
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time

	// Working days in [StartDate, EndDate], weekend excluded.
	RequestedDays int

	Reason string

	Status          LeaveRequestStatus
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	LeaveTypeName *string
	EmployeeName  *string
	StoreID       string // employee's store, for approver scoping
}

// Range returns the request's inclusive date range.
func (r LeaveRequest) Range() DateRange {
	return DateRange{Start: r.StartDate, End: r.EndDate}
}

// IsOpen reports whether the request still counts against overlap checks.
func (r LeaveRequest) IsOpen() bool {
	return r.Status == LeaveRequestStatusPending || r.Status == LeaveRequestStatusApproved
}
