package attendance

import "errors"

var (
	ErrAlreadyCheckedIn      = errors.New("Already checked in today")
	ErrNotCheckedIn          = errors.New("No open attendance record for today")
	ErrAttendanceNotFound    = errors.New("Attendance record not found")
	ErrCheckOutBeforeCheckIn = errors.New("Check-out cannot precede check-in")
)
