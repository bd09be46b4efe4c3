package payroll

import "context"

// PayrollService defines business logic for payroll overviews
type PayrollService interface {
	// GenerateStoreMonth builds the month's entries from current base salaries
	GenerateStoreMonth(ctx context.Context, storeID string, year, month int) ([]PayrollEntryResponse, error)

	// GetMyEntries lists the employee's entries for one year
	GetMyEntries(ctx context.Context, employeeID string, year int) ([]PayrollEntryResponse, error)

	// GetStoreMonth lists a store's entries for one month
	GetStoreMonth(ctx context.Context, storeID string, year, month int) ([]PayrollEntryResponse, error)

	// GetMonthSummary aggregates every store's payroll for one month
	GetMonthSummary(ctx context.Context, year, month int) ([]StoreSummaryResponse, error)
}
