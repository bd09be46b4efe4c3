package employee

import "context"

// EmployeeService defines business logic for employee records
type EmployeeService interface {
	// CreateEmployee creates a new employee record (hr or store owner)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// GetMyProfile retrieves the employee record linked to a user account
	GetMyProfile(ctx context.Context, userID string) (EmployeeResponse, error)

	// UpdateEmployee updates an existing employee record
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee soft deletes an employee record
	DeleteEmployee(ctx context.Context, id string) error

	// ListStoreEmployees lists one store's employees with filters
	ListStoreEmployees(ctx context.Context, storeID string, filter Filter) (ListEmployeeResponse, error)

	// ListEmployees lists all employees with filters (hr and super admin)
	ListEmployees(ctx context.Context, filter Filter) (ListEmployeeResponse, error)
}
