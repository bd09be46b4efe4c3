package payroll

import (
	"context"
	"fmt"

	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.EmployeeRepository
}

func NewPayrollService(
	payrollRepository payroll.PayrollRepository,
	employeeRepository employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:  payrollRepository,
		EmployeeRepository: employeeRepository,
	}
}

// GenerateStoreMonth implements payroll.PayrollService. Entries are upserted
// from the current base salaries of the store's active employees; rerunning
// the month refreshes the figures.
func (s *PayrollServiceImpl) GenerateStoreMonth(ctx context.Context, storeID string, year, month int) ([]payroll.PayrollEntryResponse, error) {
	employees, err := s.EmployeeRepository.ListActiveByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list store employees: %w", err)
	}
	if len(employees) == 0 {
		return nil, payroll.ErrPayrollPeriodEmpty
	}

	responses := make([]payroll.PayrollEntryResponse, 0, len(employees))
	for _, emp := range employees {
		emp := emp
		entry, err := s.PayrollRepository.Upsert(ctx, payroll.PayrollEntry{
			EmployeeID: emp.ID,
			StoreID:    emp.StoreID,
			Year:       year,
			Month:      month,
			BaseSalary: emp.BaseSalary,
			Allowances: decimal.Zero,
			Deductions: decimal.Zero,
			NetSalary:  emp.BaseSalary,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upsert payroll entry: %w", err)
		}
		entry.EmployeeName = &emp.FullName
		entry.StoreName = emp.StoreName
		responses = append(responses, payroll.NewPayrollEntryResponse(entry))
	}

	return responses, nil
}

// GetMyEntries implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetMyEntries(ctx context.Context, employeeID string, year int) ([]payroll.PayrollEntryResponse, error) {
	entries, err := s.PayrollRepository.ListByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	return buildResponses(entries), nil
}

// GetStoreMonth implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetStoreMonth(ctx context.Context, storeID string, year, month int) ([]payroll.PayrollEntryResponse, error) {
	entries, err := s.PayrollRepository.ListByStoreMonth(ctx, storeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	return buildResponses(entries), nil
}

// GetMonthSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetMonthSummary(ctx context.Context, year, month int) ([]payroll.StoreSummaryResponse, error) {
	summaries, err := s.PayrollRepository.SummarizeByStore(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize payroll: %w", err)
	}

	responses := make([]payroll.StoreSummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		responses = append(responses, payroll.NewStoreSummaryResponse(sum))
	}
	return responses, nil
}

func buildResponses(entries []payroll.PayrollEntry) []payroll.PayrollEntryResponse {
	responses := make([]payroll.PayrollEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, payroll.NewPayrollEntryResponse(e))
	}
	return responses
}
