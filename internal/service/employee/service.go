package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/domain/store"
	"github.com/mawared/mawared-backend/internal/domain/subscription"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	store.StoreRepository
	subscriptionService subscription.SubscriptionService
}

func NewEmployeeService(
	employeeRepository employee.EmployeeRepository,
	storeRepository store.StoreRepository,
	subscriptionService subscription.SubscriptionService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository:  employeeRepository,
		StoreRepository:     storeRepository,
		subscriptionService: subscriptionService,
	}
}

// CreateEmployee implements employee.EmployeeService. The store must be
// active and its subscription must have a free seat.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	st, err := s.StoreRepository.GetByID(ctx, req.StoreID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !st.IsActive {
		return employee.EmployeeResponse{}, store.ErrStoreInactive
	}

	ok, err := s.subscriptionService.CanAddEmployee(ctx, req.StoreID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !ok {
		return employee.EmployeeResponse{}, subscription.ErrSeatLimitExceeded
	}

	if _, err := s.EmployeeRepository.GetByCode(ctx, req.EmployeeCode); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}

	salary, err := decimal.NewFromString(req.BaseSalary)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse base salary: %w", err)
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		StoreID:      req.StoreID,
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		NationalID:   req.NationalID,
		PhoneNumber:  req.PhoneNumber,
		Position:     req.Position,
		HireDate:     req.ParseHireDate(),
		Status:       employee.StatusActive,
		BaseSalary:   salary,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	created.StoreName = &st.Name

	return employee.NewEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context, userID string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeHasNoProfile
		}
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = *req.PhoneNumber
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.StoreID != nil {
		st, err := s.StoreRepository.GetByID(ctx, *req.StoreID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if !st.IsActive {
			return employee.EmployeeResponse{}, store.ErrStoreInactive
		}
		emp.StoreID = st.ID
		emp.StoreName = &st.Name
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse base salary: %w", err)
		}
		emp.BaseSalary = salary
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.NewEmployeeResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.EmployeeRepository.SoftDelete(ctx, id)
}

// ListStoreEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListStoreEmployees(ctx context.Context, storeID string, filter employee.Filter) (employee.ListEmployeeResponse, error) {
	employees, total, err := s.EmployeeRepository.ListByStore(ctx, storeID, normalizeFilter(filter))
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	return buildListResponse(employees, total), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.Filter) (employee.ListEmployeeResponse, error) {
	employees, total, err := s.EmployeeRepository.List(ctx, normalizeFilter(filter))
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	return buildListResponse(employees, total), nil
}

func normalizeFilter(filter employee.Filter) employee.Filter {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return filter
}

func buildListResponse(employees []employee.Employee, total int64) employee.ListEmployeeResponse {
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return employee.ListEmployeeResponse{Employees: responses, Total: total}
}
