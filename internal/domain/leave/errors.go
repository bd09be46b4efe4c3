package leave

import "errors"

var (
	ErrLeaveTypeRequired   = errors.New("Leave type is required")
	ErrReasonRequired      = errors.New("Reason is required")
	ErrInsufficientBalance = errors.New("Insufficient leave balance")
	ErrOverlappingRequest  = errors.New("Overlapping leave request exists")
	ErrBalanceUnavailable  = errors.New("Leave balance unavailable")

	ErrLeaveTypeNotFound            = errors.New("Leave type not found")
	ErrLeaveTypeInactive            = errors.New("Leave type is inactive")
	ErrLeaveBalanceNotFound         = errors.New("Leave balance not found")
	ErrLeaveBalanceExists           = errors.New("Leave balance already exists for this year")
	ErrLeaveRequestNotFound         = errors.New("Leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("Leave request already processed")
)
