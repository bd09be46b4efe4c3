package leave

import (
	"context"
	"time"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) error
	Delete(ctx context.Context, id string) error
}

// LeaveBalanceRepository - interface for leave_balances table
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalance, error)
	ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	Update(ctx context.Context, balance LeaveBalance) error
	// IncrementUsed adds days to used_days; callers run it inside the same
	// transaction that approves the request.
	IncrementUsed(ctx context.Context, balanceID string, days int) error
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	ListByStore(ctx context.Context, storeID string, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	// LockEmployee takes a transaction-scoped lock on the employee so only
	// one submission at a time can run the overlap check and insert. Must be
	// called inside a transaction; the lock releases on commit or rollback.
	LockEmployee(ctx context.Context, employeeID string) error
	// ListOpenOverlapping returns the employee's pending/approved requests
	// whose date range shares at least one day with [startDate, endDate].
	ListOpenOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus, reviewedBy *string, rejectionReason *string) error
}
