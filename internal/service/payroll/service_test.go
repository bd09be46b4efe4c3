package payroll

import (
	"context"
	"fmt"
	"testing"

	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	entries map[string]payroll.PayrollEntry // by employee id + period
}

func periodKey(employeeID string, year, month int) string {
	return fmt.Sprintf("%s/%d-%d", employeeID, year, month)
}

func (f *fakePayrollRepo) Upsert(_ context.Context, entry payroll.PayrollEntry) (payroll.PayrollEntry, error) {
	key := periodKey(entry.EmployeeID, entry.Year, entry.Month)
	if stored, ok := f.entries[key]; ok {
		entry.ID = stored.ID
	} else {
		entry.ID = "pay-" + entry.EmployeeID
	}
	f.entries[key] = entry
	return entry, nil
}

func (f *fakePayrollRepo) GetByEmployeeMonth(_ context.Context, employeeID string, year, month int) (payroll.PayrollEntry, error) {
	entry, ok := f.entries[periodKey(employeeID, year, month)]
	if !ok {
		return payroll.PayrollEntry{}, payroll.ErrPayrollEntryNotFound
	}
	return entry, nil
}

func (f *fakePayrollRepo) ListByEmployee(_ context.Context, employeeID string, year int) ([]payroll.PayrollEntry, error) {
	list := []payroll.PayrollEntry{}
	for _, e := range f.entries {
		if e.EmployeeID == employeeID && e.Year == year {
			list = append(list, e)
		}
	}
	return list, nil
}

func (f *fakePayrollRepo) ListByStoreMonth(_ context.Context, storeID string, year, month int) ([]payroll.PayrollEntry, error) {
	list := []payroll.PayrollEntry{}
	for _, e := range f.entries {
		if e.StoreID == storeID && e.Year == year && e.Month == month {
			list = append(list, e)
		}
	}
	return list, nil
}

func (f *fakePayrollRepo) SummarizeByStore(_ context.Context, year, month int) ([]payroll.StoreSummary, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository

	active map[string][]employee.Employee // by store id
}

func (f *fakeEmployeeRepo) ListActiveByStore(_ context.Context, storeID string) ([]employee.Employee, error) {
	return f.active[storeID], nil
}

func TestGenerateStoreMonth(t *testing.T) {
	storeName := "Downtown"
	active := make([]employee.Employee, 0, 150)
	for i := 0; i < 150; i++ {
		active = append(active, employee.Employee{
			ID:         fmt.Sprintf("emp-%03d", i),
			StoreID:    "store-1",
			FullName:   fmt.Sprintf("Employee %03d", i),
			Status:     employee.StatusActive,
			BaseSalary: decimal.NewFromInt(int64(3000 + i)),
			StoreName:  &storeName,
		})
	}

	payrollRepo := &fakePayrollRepo{entries: map[string]payroll.PayrollEntry{}}
	employeeRepo := &fakeEmployeeRepo{active: map[string][]employee.Employee{"store-1": active}}
	svc := NewPayrollService(payrollRepo, employeeRepo)

	t.Run("generates an entry for every active employee", func(t *testing.T) {
		responses, err := svc.GenerateStoreMonth(context.Background(), "store-1", 2026, 8)
		require.NoError(t, err)
		require.Len(t, responses, 150)
		assert.Len(t, payrollRepo.entries, 150)

		first := responses[0]
		assert.Equal(t, "3000.00", first.BaseSalary)
		assert.Equal(t, "3000.00", first.NetSalary)
		assert.Equal(t, "0.00", first.Allowances)
		assert.Equal(t, "0.00", first.Deductions)
		require.NotNil(t, first.EmployeeName)
		assert.Equal(t, "Employee 000", *first.EmployeeName)
	})

	t.Run("rerunning the month refreshes entries in place", func(t *testing.T) {
		active[0].BaseSalary = decimal.NewFromInt(5000)

		responses, err := svc.GenerateStoreMonth(context.Background(), "store-1", 2026, 8)
		require.NoError(t, err)
		assert.Len(t, payrollRepo.entries, 150)

		assert.Equal(t, "5000.00", responses[0].BaseSalary)
		assert.Equal(t, "pay-emp-000", responses[0].ID)
	})

	t.Run("store without active employees", func(t *testing.T) {
		_, err := svc.GenerateStoreMonth(context.Background(), "store-empty", 2026, 8)
		assert.ErrorIs(t, err, payroll.ErrPayrollPeriodEmpty)
	})
}
