package leave

import (
	"time"

	"github.com/mawared/mawared-backend/internal/pkg/validator"
)

// DateRange is an inclusive calendar date range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the two ranges share at least one calendar day:
// existing.start <= new.end AND existing.end >= new.start.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !r.End.Before(other.Start)
}

// Submission is a candidate leave request presented to the gate.
type Submission struct {
	EmployeeID    string
	LeaveTypeID   string
	Reason        string
	RequestedDays int
	Range         DateRange

	// RemainingDays is the balance left for the selected leave type. When the
	// balance could not be read it must be reported as 0 so the gate fails
	// closed (deny rather than over-grant).
	RemainingDays int
}

// EvaluateSubmission decides whether a new leave request may be submitted.
// existing holds the employee's requests that are still open (pending or
// approved); rows for other employees or in terminal states are ignored.
// Returns nil when the submission may proceed.
func EvaluateSubmission(sub Submission, existing []LeaveRequest) error {
	if validator.IsEmpty(sub.LeaveTypeID) {
		return ErrLeaveTypeRequired
	}
	if validator.IsEmpty(sub.Reason) {
		return ErrReasonRequired
	}
	if sub.RequestedDays > sub.RemainingDays {
		return ErrInsufficientBalance
	}

	for _, req := range existing {
		if req.EmployeeID != sub.EmployeeID || !req.IsOpen() {
			continue
		}
		if req.Range().Overlaps(sub.Range) {
			return ErrOverlappingRequest
		}
	}

	return nil
}
