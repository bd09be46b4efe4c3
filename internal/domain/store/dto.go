package store

import "github.com/mawared/mawared-backend/internal/pkg/validator"

type CreateStoreRequest struct {
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Address *string `json:"address,omitempty"`
	OwnerID *string `json:"owner_id,omitempty"`
}

func (r *CreateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.City) {
		errs = append(errs, validator.ValidationError{
			Field:   "city",
			Message: "city is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStoreRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name,omitempty"`
	City     *string `json:"city,omitempty"`
	Address  *string `json:"address,omitempty"`
	OwnerID  *string `json:"owner_id,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StoreResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Address       *string `json:"address,omitempty"`
	OwnerID       *string `json:"owner_id,omitempty"`
	OwnerName     *string `json:"owner_name,omitempty"`
	IsActive      bool    `json:"is_active"`
	EmployeeCount int64   `json:"employee_count"`
}

// NewStoreResponse maps the entity to its API shape.
func NewStoreResponse(s Store) StoreResponse {
	return StoreResponse{
		ID:            s.ID,
		Name:          s.Name,
		City:          s.City,
		Address:       s.Address,
		OwnerID:       s.OwnerID,
		OwnerName:     s.OwnerName,
		IsActive:      s.IsActive,
		EmployeeCount: s.EmployeeCount,
	}
}
