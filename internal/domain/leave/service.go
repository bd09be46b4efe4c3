package leave

import "context"

type LeaveService interface {
	// Types
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveType, error)
	UpdateLeaveType(ctx context.Context, req UpdateLeaveTypeRequest) error
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	DeleteLeaveType(ctx context.Context, id string) error

	// Balances
	SetLeaveBalance(ctx context.Context, req SetLeaveBalanceRequest) (LeaveBalance, error)
	GetMyBalances(ctx context.Context, employeeID string, year int) ([]LeaveBalanceResponse, error)
	GetEmployeeBalances(ctx context.Context, employeeID string, year int) ([]LeaveBalanceResponse, error)

	// Requests
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	ApproveLeaveRequest(ctx context.Context, requestID string, reviewerID string) error
	RejectLeaveRequest(ctx context.Context, req RejectRequestRequest, reviewerID string) error
	GetLeaveRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)
	ListMyLeaveRequests(ctx context.Context, employeeID string, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)
	ListStoreLeaveRequests(ctx context.Context, storeID string, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)
}
