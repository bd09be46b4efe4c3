package store

import "errors"

var (
	ErrStoreNotFound     = errors.New("Store not found")
	ErrStoreNameExists   = errors.New("Store name already exists")
	ErrStoreInactive     = errors.New("Store is inactive")
	ErrStoreHasEmployees = errors.New("Store still has active employees")
	ErrNotStoreOwner     = errors.New("User does not own this store")
)
