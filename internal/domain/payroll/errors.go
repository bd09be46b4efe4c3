package payroll

import "errors"

var (
	ErrPayrollEntryNotFound = errors.New("Payroll entry not found")
	ErrPayrollPeriodEmpty   = errors.New("No payroll entries for this period")
)
