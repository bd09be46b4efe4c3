package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.store_id, e.employee_code, e.full_name, e.national_id,
	e.phone_number, e.position, e.hire_date, e.status, e.base_salary,
	e.created_at, e.updated_at, e.deleted_at, s.name AS store_name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.StoreID, &e.EmployeeCode, &e.FullName, &e.NationalID,
		&e.PhoneNumber, &e.Position, &e.HireDate, &e.Status, &e.BaseSalary,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt, &e.StoreName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, store_id, employee_code, full_name, national_id,
			phone_number, position, hire_date, status, base_salary,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.UserID, emp.StoreID, emp.EmployeeCode, emp.FullName, emp.NationalID,
		emp.PhoneNumber, emp.Position, emp.HireDate, emp.Status, emp.BaseSalary,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN stores s ON s.id = e.store_id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN stores s ON s.id = e.store_id
		WHERE e.user_id = $1 AND e.deleted_at IS NULL
	`
	return scanEmployee(q.QueryRow(ctx, query, userID))
}

func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN stores s ON s.id = e.store_id
		WHERE e.employee_code = $1 AND e.deleted_at IS NULL
	`
	return scanEmployee(q.QueryRow(ctx, query, code))
}

func (r *employeeRepositoryImpl) ListByStore(ctx context.Context, storeID string, filter employee.Filter) ([]employee.Employee, int64, error) {
	return r.list(ctx, &storeID, filter)
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	return r.list(ctx, nil, filter)
}

// ListActiveByStore implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActiveByStore(ctx context.Context, storeID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN stores s ON s.id = e.store_id
		WHERE e.store_id = $1 AND e.status = 'active' AND e.deleted_at IS NULL
		ORDER BY e.full_name
	`
	rows, err := q.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) list(ctx context.Context, storeID *string, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `e.deleted_at IS NULL`
	args := []any{}
	argIdx := 1

	if storeID != nil {
		where += fmt.Sprintf(` AND e.store_id = $%d`, argIdx)
		args = append(args, *storeID)
		argIdx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(` AND e.status = $%d`, argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != nil {
		where += fmt.Sprintf(` AND (e.full_name ILIKE '%%' || $%d || '%%' OR e.employee_code ILIKE '%%' || $%d || '%%')`, argIdx, argIdx)
		args = append(args, *filter.Search)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN stores s ON s.id = e.store_id
		WHERE ` + where + `
		ORDER BY e.employee_code
	` + fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			user_id = $2, employee_code = $3, full_name = $4, national_id = $5,
			phone_number = $6, position = $7, hire_date = $8, status = $9,
			base_salary = $10, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := q.Exec(ctx, query,
		emp.ID, emp.UserID, emp.EmployeeCode, emp.FullName, emp.NationalID,
		emp.PhoneNumber, emp.Position, emp.HireDate, emp.Status, emp.BaseSalary,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) CountByStore(ctx context.Context, storeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees e WHERE e.store_id = $1 AND e.status = 'active' AND e.deleted_at IS NULL`, storeID).Scan(&count)
	return count, err
}
