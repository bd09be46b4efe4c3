package store

import "context"

// StoreRepository - interface for stores table
type StoreRepository interface {
	Create(ctx context.Context, s Store) (Store, error)
	GetByID(ctx context.Context, id string) (Store, error)
	GetByOwner(ctx context.Context, ownerID string) ([]Store, error)
	List(ctx context.Context) ([]Store, error)
	Update(ctx context.Context, s Store) error
	Delete(ctx context.Context, id string) error
}
