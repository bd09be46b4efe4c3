package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/mawared/mawared-backend/internal/domain/store"
	"github.com/mawared/mawared-backend/internal/pkg/database"
)

type storeRepositoryImpl struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.StoreRepository {
	return &storeRepositoryImpl{db: db}
}

const storeColumns = `
	s.id, s.name, s.city, s.address, s.owner_id, s.is_active,
	s.created_at, s.updated_at, u.full_name AS owner_name,
	(
		SELECT COUNT(*) FROM employees e
		WHERE e.store_id = s.id AND e.status = 'active' AND e.deleted_at IS NULL
	) AS employee_count
`

func scanStore(row pgx.Row) (store.Store, error) {
	var s store.Store
	err := row.Scan(
		&s.ID, &s.Name, &s.City, &s.Address, &s.OwnerID, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt, &s.OwnerName, &s.EmployeeCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Store{}, store.ErrStoreNotFound
		}
		return store.Store{}, err
	}
	return s, nil
}

func (r *storeRepositoryImpl) Create(ctx context.Context, s store.Store) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stores (id, name, city, address, owner_id, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, true, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, s.Name, s.City, s.Address, s.OwnerID).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return store.Store{}, err
	}
	s.IsActive = true

	return s, nil
}

func (r *storeRepositoryImpl) GetByID(ctx context.Context, id string) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + storeColumns + `
		FROM stores s
		LEFT JOIN users u ON u.id = s.owner_id
		WHERE s.id = $1
	`
	return scanStore(q.QueryRow(ctx, query, id))
}

func (r *storeRepositoryImpl) GetByOwner(ctx context.Context, ownerID string) ([]store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + storeColumns + `
		FROM stores s
		LEFT JOIN users u ON u.id = s.owner_id
		WHERE s.owner_id = $1
		ORDER BY s.name
	`
	return r.queryStores(ctx, q, query, ownerID)
}

func (r *storeRepositoryImpl) List(ctx context.Context) ([]store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + storeColumns + `
		FROM stores s
		LEFT JOIN users u ON u.id = s.owner_id
		ORDER BY s.name
	`
	return r.queryStores(ctx, q, query)
}

func (r *storeRepositoryImpl) queryStores(ctx context.Context, q database.Querier, query string, args ...any) ([]store.Store, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := []store.Store{}
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}

func (r *storeRepositoryImpl) Update(ctx context.Context, s store.Store) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE stores SET
			name = $2, city = $3, address = $4, owner_id = $5, is_active = $6, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, s.ID, s.Name, s.City, s.Address, s.OwnerID, s.IsActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}
	return nil
}

func (r *storeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}
	return nil
}
