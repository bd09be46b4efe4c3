package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollEntry is a monthly salary line for one employee. Entries are built
// by the payroll service from the employee's base salary; this module only
// exposes read overviews, payment execution lives outside the system.
type PayrollEntry struct {
	ID         string
	EmployeeID string
	StoreID    string
	Year       int
	Month      int

	BaseSalary decimal.Decimal
	Allowances decimal.Decimal
	Deductions decimal.Decimal
	NetSalary  decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	EmployeeName *string
	StoreName    *string
}

// StoreSummary aggregates a store's payroll for one month.
type StoreSummary struct {
	StoreID       string
	StoreName     string
	Year          int
	Month         int
	EmployeeCount int64
	TotalNet      decimal.Decimal
}
