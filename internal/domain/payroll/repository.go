package payroll

import "context"

// PayrollRepository - interface for payroll_entries table
type PayrollRepository interface {
	Upsert(ctx context.Context, entry PayrollEntry) (PayrollEntry, error)
	GetByEmployeeMonth(ctx context.Context, employeeID string, year, month int) (PayrollEntry, error)
	ListByEmployee(ctx context.Context, employeeID string, year int) ([]PayrollEntry, error)
	ListByStoreMonth(ctx context.Context, storeID string, year, month int) ([]PayrollEntry, error)
	SummarizeByStore(ctx context.Context, year, month int) ([]StoreSummary, error)
}
