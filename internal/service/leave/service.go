package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mawared/mawared-backend/internal/domain/leave"
	"github.com/mawared/mawared-backend/internal/pkg/workdays"
)

// TransactionManager runs fn inside a database transaction; repository calls
// made with the context fn receives share that transaction.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type LeaveServiceImpl struct {
	tx TransactionManager
	leave.LeaveTypeRepository
	leave.LeaveBalanceRepository
	leave.LeaveRequestRepository
	calculator *workdays.Calculator
}

func NewLeaveService(
	tx TransactionManager,
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	calculator *workdays.Calculator,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:                     tx,
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		LeaveRequestRepository: leaveRequestRepository,
		calculator:             calculator,
	}
}

// CreateLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	leaveType := leave.LeaveType{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		DefaultDays: req.DefaultDays,
	}

	created, err := l.LeaveTypeRepository.Create(ctx, leaveType)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return created, nil
}

// UpdateLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateLeaveType(ctx context.Context, req leave.UpdateLeaveTypeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	leaveType, err := l.LeaveTypeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		leaveType.Name = *req.Name
	}
	if req.Description != nil {
		leaveType.Description = req.Description
	}
	if req.IsActive != nil {
		leaveType.IsActive = *req.IsActive
	}
	if req.DefaultDays != nil {
		leaveType.DefaultDays = *req.DefaultDays
	}

	if err := l.LeaveTypeRepository.Update(ctx, leaveType); err != nil {
		return fmt.Errorf("failed to update leave type: %w", err)
	}

	return nil
}

// ListLeaveTypes implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := l.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		responses = append(responses, leave.LeaveTypeResponse{
			ID:          lt.ID,
			Name:        lt.Name,
			Code:        lt.Code,
			Description: lt.Description,
			IsActive:    lt.IsActive,
			DefaultDays: lt.DefaultDays,
		})
	}

	return responses, nil
}

// DeleteLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) DeleteLeaveType(ctx context.Context, id string) error {
	return l.LeaveTypeRepository.Delete(ctx, id)
}

// SetLeaveBalance implements leave.LeaveService. An existing balance for the
// employee/type/year keeps its used_days; only the allowance changes.
func (l *LeaveServiceImpl) SetLeaveBalance(ctx context.Context, req leave.SetLeaveBalanceRequest) (leave.LeaveBalance, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveBalance{}, err
	}

	leaveType, err := l.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveBalance{}, err
	}
	if !leaveType.IsActive {
		return leave.LeaveBalance{}, leave.ErrLeaveTypeInactive
	}

	existing, err := l.LeaveBalanceRepository.GetByEmployeeTypeYear(ctx, req.EmployeeID, req.LeaveTypeID, req.Year)
	if err == nil {
		existing.TotalDays = req.TotalDays
		if err := l.LeaveBalanceRepository.Update(ctx, existing); err != nil {
			return leave.LeaveBalance{}, fmt.Errorf("failed to update leave balance: %w", err)
		}
		return existing, nil
	}
	if !errors.Is(err, leave.ErrLeaveBalanceNotFound) {
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	balance := leave.LeaveBalance{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		Year:        req.Year,
		TotalDays:   req.TotalDays,
	}
	created, err := l.LeaveBalanceRepository.Create(ctx, balance)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	return created, nil
}

// GetMyBalances implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyBalances(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalanceResponse, error) {
	return l.GetEmployeeBalances(ctx, employeeID, year)
}

// GetEmployeeBalances implements leave.LeaveService.
func (l *LeaveServiceImpl) GetEmployeeBalances(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalanceResponse, error) {
	balances, err := l.LeaveBalanceRepository.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}

	responses := make([]leave.LeaveBalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, leave.NewLeaveBalanceResponse(b))
	}

	return responses, nil
}

// CreateLeaveRequest implements leave.LeaveService. The balance and overlap
// checks run inside one transaction together with the insert, serialized per
// employee by an advisory lock, so two concurrent submissions for the same
// dates cannot both slip past the gate.
func (l *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	leaveType, err := l.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !leaveType.IsActive {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveTypeInactive
	}

	requestedDays, err := l.calculator.Count(startDate, endDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var created leave.LeaveRequest
	err = l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := l.LeaveRequestRepository.LockEmployee(ctx, req.EmployeeID); err != nil {
			return err
		}

		remaining, err := l.remainingDays(ctx, req.EmployeeID, req.LeaveTypeID, startDate.Year())
		if err != nil {
			return err
		}

		existing, err := l.LeaveRequestRepository.ListOpenOverlapping(ctx, req.EmployeeID, startDate, endDate)
		if err != nil {
			return fmt.Errorf("failed to list overlapping requests: %w", err)
		}

		sub := leave.Submission{
			EmployeeID:    req.EmployeeID,
			LeaveTypeID:   req.LeaveTypeID,
			Reason:        req.Reason,
			RequestedDays: requestedDays,
			Range:         leave.DateRange{Start: startDate, End: endDate},
			RemainingDays: remaining,
		}
		if err := leave.EvaluateSubmission(sub, existing); err != nil {
			return err
		}

		created, err = l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
			EmployeeID:    req.EmployeeID,
			LeaveTypeID:   req.LeaveTypeID,
			StartDate:     startDate,
			EndDate:       endDate,
			RequestedDays: requestedDays,
			Reason:        req.Reason,
			Status:        leave.LeaveRequestStatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created.LeaveTypeName = &leaveType.Name
	return leave.NewLeaveRequestResponse(created), nil
}

// remainingDays reads the employee's balance for the leave type. A missing
// balance counts as zero remaining days so the gate denies instead of
// over-granting; read failures surface as ErrBalanceUnavailable.
func (l *LeaveServiceImpl) remainingDays(ctx context.Context, employeeID, leaveTypeID string, year int) (int, error) {
	balance, err := l.LeaveBalanceRepository.GetByEmployeeTypeYear(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveBalanceNotFound) {
			return 0, nil
		}
		return 0, leave.ErrBalanceUnavailable
	}
	return balance.RemainingDays(), nil
}

// ApproveLeaveRequest implements leave.LeaveService. The status flip and the
// balance decrement commit together or not at all.
func (l *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, requestID string, reviewerID string) error {
	return l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if request.Status != leave.LeaveRequestStatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		balance, err := l.LeaveBalanceRepository.GetByEmployeeTypeYear(
			ctx, request.EmployeeID, request.LeaveTypeID, request.StartDate.Year())
		if err != nil {
			return err
		}

		if err := l.LeaveRequestRepository.UpdateStatus(
			ctx, requestID, leave.LeaveRequestStatusApproved, &reviewerID, nil); err != nil {
			return err
		}

		if err := l.LeaveBalanceRepository.IncrementUsed(ctx, balance.ID, request.RequestedDays); err != nil {
			return err
		}
		return nil
	})
}

// RejectLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, req leave.RejectRequestRequest, reviewerID string) error {
	if err := req.Validate(); err != nil {
		return err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return err
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return l.LeaveRequestRepository.UpdateStatus(
		ctx, req.RequestID, leave.LeaveRequestStatusRejected, &reviewerID, &req.Reason)
}

// GetLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.NewLeaveRequestResponse(request), nil
}

// ListMyLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyLeaveRequests(ctx context.Context, employeeID string, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	requests, total, err := l.LeaveRequestRepository.ListByEmployee(ctx, employeeID, normalizeFilter(filter))
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return buildListResponse(requests, total), nil
}

// ListStoreLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListStoreLeaveRequests(ctx context.Context, storeID string, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	requests, total, err := l.LeaveRequestRepository.ListByStore(ctx, storeID, normalizeFilter(filter))
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return buildListResponse(requests, total), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	requests, total, err := l.LeaveRequestRepository.List(ctx, normalizeFilter(filter))
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return buildListResponse(requests, total), nil
}

func normalizeFilter(filter leave.LeaveRequestFilter) leave.LeaveRequestFilter {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return filter
}

func buildListResponse(requests []leave.LeaveRequest, total int64) leave.ListLeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(r))
	}
	return leave.ListLeaveRequestResponse{Requests: responses, Total: total}
}
