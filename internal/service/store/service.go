package store

import (
	"context"
	"fmt"

	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/domain/store"
)

type StoreServiceImpl struct {
	store.StoreRepository
	employee.EmployeeRepository
}

func NewStoreService(
	storeRepository store.StoreRepository,
	employeeRepository employee.EmployeeRepository,
) store.StoreService {
	return &StoreServiceImpl{
		StoreRepository:    storeRepository,
		EmployeeRepository: employeeRepository,
	}
}

// CreateStore implements store.StoreService.
func (s *StoreServiceImpl) CreateStore(ctx context.Context, req store.CreateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	created, err := s.StoreRepository.Create(ctx, store.Store{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		return store.StoreResponse{}, fmt.Errorf("failed to create store: %w", err)
	}

	return store.NewStoreResponse(created), nil
}

// GetStore implements store.StoreService.
func (s *StoreServiceImpl) GetStore(ctx context.Context, id string) (store.StoreResponse, error) {
	st, err := s.StoreRepository.GetByID(ctx, id)
	if err != nil {
		return store.StoreResponse{}, err
	}
	return store.NewStoreResponse(st), nil
}

// GetMyStores implements store.StoreService.
func (s *StoreServiceImpl) GetMyStores(ctx context.Context, ownerID string) ([]store.StoreResponse, error) {
	stores, err := s.StoreRepository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned stores: %w", err)
	}
	return buildResponses(stores), nil
}

// ListStores implements store.StoreService.
func (s *StoreServiceImpl) ListStores(ctx context.Context) ([]store.StoreResponse, error) {
	stores, err := s.StoreRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return buildResponses(stores), nil
}

// UpdateStore implements store.StoreService.
func (s *StoreServiceImpl) UpdateStore(ctx context.Context, req store.UpdateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	st, err := s.StoreRepository.GetByID(ctx, req.ID)
	if err != nil {
		return store.StoreResponse{}, err
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.City != nil {
		st.City = *req.City
	}
	if req.Address != nil {
		st.Address = req.Address
	}
	if req.OwnerID != nil {
		st.OwnerID = req.OwnerID
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}

	if err := s.StoreRepository.Update(ctx, st); err != nil {
		return store.StoreResponse{}, fmt.Errorf("failed to update store: %w", err)
	}

	return store.NewStoreResponse(st), nil
}

// DeleteStore implements store.StoreService. Stores with active employees
// must be emptied first.
func (s *StoreServiceImpl) DeleteStore(ctx context.Context, id string) error {
	count, err := s.EmployeeRepository.CountByStore(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count store employees: %w", err)
	}
	if count > 0 {
		return store.ErrStoreHasEmployees
	}

	return s.StoreRepository.Delete(ctx, id)
}

func buildResponses(stores []store.Store) []store.StoreResponse {
	responses := make([]store.StoreResponse, 0, len(stores))
	for _, st := range stores {
		responses = append(responses, store.NewStoreResponse(st))
	}
	return responses
}
