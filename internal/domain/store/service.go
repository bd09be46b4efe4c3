package store

import "context"

// StoreService defines business logic for store management
type StoreService interface {
	// CreateStore registers a new store (super admin)
	CreateStore(ctx context.Context, req CreateStoreRequest) (StoreResponse, error)

	// GetStore retrieves a single store by ID
	GetStore(ctx context.Context, id string) (StoreResponse, error)

	// GetMyStores lists the stores owned by a user
	GetMyStores(ctx context.Context, ownerID string) ([]StoreResponse, error)

	// ListStores lists all stores (hr and super admin)
	ListStores(ctx context.Context) ([]StoreResponse, error)

	// UpdateStore updates an existing store
	UpdateStore(ctx context.Context, req UpdateStoreRequest) (StoreResponse, error)

	// DeleteStore removes a store that has no active employees
	DeleteStore(ctx context.Context, id string) error
}
