package employee

import "context"

// EmployeeRepository - interface for employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	ListByStore(ctx context.Context, storeID string, filter Filter) ([]Employee, int64, error)
	// ListActiveByStore returns every active employee of the store,
	// unpaginated. Used by batch jobs that must not miss anyone.
	ListActiveByStore(ctx context.Context, storeID string) ([]Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) error
	SoftDelete(ctx context.Context, id string) error
	CountByStore(ctx context.Context, storeID string) (int64, error)
}
