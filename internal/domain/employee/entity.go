package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	UserID       *string
	StoreID      string
	EmployeeCode string
	FullName     string
	NationalID   string
	PhoneNumber  string
	Position     string
	HireDate     time.Time
	Status       Status
	BaseSalary   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// Relationships (for responses)
	StoreName *string
}

type Status string

const (
	StatusActive     Status = "active"
	StatusResigned   Status = "resigned"
	StatusTerminated Status = "terminated"
)
