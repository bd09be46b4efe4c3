package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validSubmission() Submission {
	return Submission{
		EmployeeID:    "emp-1",
		LeaveTypeID:   "annual",
		Reason:        "family travel",
		RequestedDays: 3,
		RemainingDays: 10,
		Range:         DateRange{Start: day(2024, time.June, 10), End: day(2024, time.June, 12)},
	}
}

func TestEvaluateSubmission_Accepts(t *testing.T) {
	err := EvaluateSubmission(validSubmission(), nil)
	assert.NoError(t, err)
}

func TestEvaluateSubmission_MissingLeaveType(t *testing.T) {
	sub := validSubmission()
	sub.LeaveTypeID = ""
	assert.ErrorIs(t, EvaluateSubmission(sub, nil), ErrLeaveTypeRequired)
}

func TestEvaluateSubmission_EmptyReason(t *testing.T) {
	sub := validSubmission()
	sub.Reason = "   "
	assert.ErrorIs(t, EvaluateSubmission(sub, nil), ErrReasonRequired)
}

func TestEvaluateSubmission_InsufficientBalance(t *testing.T) {
	sub := validSubmission()
	sub.RequestedDays = 6
	sub.RemainingDays = 5
	// Rejected regardless of overlap status.
	assert.ErrorIs(t, EvaluateSubmission(sub, nil), ErrInsufficientBalance)
}

func TestEvaluateSubmission_ZeroRemainingFailsClosed(t *testing.T) {
	sub := validSubmission()
	sub.RequestedDays = 1
	sub.RemainingDays = 0
	assert.ErrorIs(t, EvaluateSubmission(sub, nil), ErrInsufficientBalance)
}

func TestEvaluateSubmission_OverlapSameEmployee(t *testing.T) {
	sub := validSubmission() // 2024-06-10 .. 2024-06-12

	existing := []LeaveRequest{{
		EmployeeID: "emp-1",
		StartDate:  day(2024, time.June, 11),
		EndDate:    day(2024, time.June, 15),
		Status:     LeaveRequestStatusPending,
	}}

	assert.ErrorIs(t, EvaluateSubmission(sub, existing), ErrOverlappingRequest)
}

func TestEvaluateSubmission_SameDatesDifferentEmployee(t *testing.T) {
	sub := validSubmission()

	existing := []LeaveRequest{{
		EmployeeID: "emp-2",
		StartDate:  day(2024, time.June, 11),
		EndDate:    day(2024, time.June, 15),
		Status:     LeaveRequestStatusPending,
	}}

	assert.NoError(t, EvaluateSubmission(sub, existing))
}

func TestEvaluateSubmission_RejectedRequestsIgnored(t *testing.T) {
	sub := validSubmission()

	existing := []LeaveRequest{{
		EmployeeID: "emp-1",
		StartDate:  day(2024, time.June, 11),
		EndDate:    day(2024, time.June, 15),
		Status:     LeaveRequestStatusRejected,
	}}

	assert.NoError(t, EvaluateSubmission(sub, existing))
}

func TestEvaluateSubmission_ApprovedOverlapBlocks(t *testing.T) {
	sub := validSubmission()

	existing := []LeaveRequest{{
		EmployeeID: "emp-1",
		StartDate:  day(2024, time.June, 12),
		EndDate:    day(2024, time.June, 12),
		Status:     LeaveRequestStatusApproved,
	}}

	assert.ErrorIs(t, EvaluateSubmission(sub, existing), ErrOverlappingRequest)
}

func TestDateRange_Overlaps(t *testing.T) {
	base := DateRange{Start: day(2024, time.June, 10), End: day(2024, time.June, 12)}

	cases := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"contained", DateRange{day(2024, time.June, 11), day(2024, time.June, 11)}, true},
		{"touching start", DateRange{day(2024, time.June, 8), day(2024, time.June, 10)}, true},
		{"touching end", DateRange{day(2024, time.June, 12), day(2024, time.June, 20)}, true},
		{"surrounding", DateRange{day(2024, time.June, 1), day(2024, time.June, 30)}, true},
		{"before", DateRange{day(2024, time.June, 1), day(2024, time.June, 9)}, false},
		{"after", DateRange{day(2024, time.June, 13), day(2024, time.June, 20)}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, base.Overlaps(tc.other), tc.name)
		assert.Equal(t, tc.want, tc.other.Overlaps(base), tc.name+" (symmetric)")
	}
}
