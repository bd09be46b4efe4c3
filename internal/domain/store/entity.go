package store

import "time"

type Store struct {
	ID        string
	Name      string
	City      string
	Address   *string
	OwnerID   *string // user id of the store owner
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	OwnerName     *string
	EmployeeCount int64
}
