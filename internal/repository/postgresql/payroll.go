package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/mawared/mawared-backend/internal/domain/payroll"
	"github.com/mawared/mawared-backend/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.store_id, p.year, p.month,
	p.base_salary, p.allowances, p.deductions, p.net_salary,
	p.created_at, p.updated_at, e.full_name AS employee_name, s.name AS store_name
`

func scanPayrollEntry(row pgx.Row) (payroll.PayrollEntry, error) {
	var p payroll.PayrollEntry
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.StoreID, &p.Year, &p.Month,
		&p.BaseSalary, &p.Allowances, &p.Deductions, &p.NetSalary,
		&p.CreatedAt, &p.UpdatedAt, &p.EmployeeName, &p.StoreName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollEntry{}, payroll.ErrPayrollEntryNotFound
		}
		return payroll.PayrollEntry{}, err
	}
	return p, nil
}

func (r *payrollRepositoryImpl) Upsert(ctx context.Context, entry payroll.PayrollEntry) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_entries (
			id, employee_id, store_id, year, month,
			base_salary, allowances, deductions, net_salary, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		)
		ON CONFLICT (employee_id, year, month) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			allowances = EXCLUDED.allowances,
			deductions = EXCLUDED.deductions,
			net_salary = EXCLUDED.net_salary,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.StoreID, entry.Year, entry.Month,
		entry.BaseSalary, entry.Allowances, entry.Deductions, entry.NetSalary,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return payroll.PayrollEntry{}, err
	}

	return entry, nil
}

func (r *payrollRepositoryImpl) GetByEmployeeMonth(ctx context.Context, employeeID string, year, month int) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_entries p
		JOIN employees e ON e.id = p.employee_id
		JOIN stores s ON s.id = p.store_id
		WHERE p.employee_id = $1 AND p.year = $2 AND p.month = $3
	`
	return scanPayrollEntry(q.QueryRow(ctx, query, employeeID, year, month))
}

func (r *payrollRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, year int) ([]payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_entries p
		JOIN employees e ON e.id = p.employee_id
		JOIN stores s ON s.id = p.store_id
		WHERE p.employee_id = $1 AND p.year = $2
		ORDER BY p.month
	`
	return r.queryEntries(ctx, q, query, employeeID, year)
}

func (r *payrollRepositoryImpl) ListByStoreMonth(ctx context.Context, storeID string, year, month int) ([]payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_entries p
		JOIN employees e ON e.id = p.employee_id
		JOIN stores s ON s.id = p.store_id
		WHERE p.store_id = $1 AND p.year = $2 AND p.month = $3
		ORDER BY e.full_name
	`
	return r.queryEntries(ctx, q, query, storeID, year, month)
}

func (r *payrollRepositoryImpl) queryEntries(ctx context.Context, q database.Querier, query string, args ...any) ([]payroll.PayrollEntry, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []payroll.PayrollEntry{}
	for rows.Next() {
		p, err := scanPayrollEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *payrollRepositoryImpl) SummarizeByStore(ctx context.Context, year, month int) ([]payroll.StoreSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.store_id, s.name, p.year, p.month,
			COUNT(*) AS employee_count, COALESCE(SUM(p.net_salary), 0) AS total_net
		FROM payroll_entries p
		JOIN stores s ON s.id = p.store_id
		WHERE p.year = $1 AND p.month = $2
		GROUP BY p.store_id, s.name, p.year, p.month
		ORDER BY s.name
	`
	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []payroll.StoreSummary{}
	for rows.Next() {
		var s payroll.StoreSummary
		err := rows.Scan(&s.StoreID, &s.StoreName, &s.Year, &s.Month, &s.EmployeeCount, &s.TotalNet)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
