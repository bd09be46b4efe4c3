package employee

import (
	"time"

	"github.com/mawared/mawared-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	StoreID      string `json:"store_id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	NationalID   string `json:"national_id"`
	PhoneNumber  string `json:"phone_number"`
	Position     string `json:"position"`
	HireDate     string `json:"hire_date"`
	BaseSalary   string `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id is required",
		})
	} else if !validator.IsValidUUID(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id must be a valid UUID",
		})
	}
	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match the YYYY-NNNN format",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if !validator.IsValidNationalID(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id must be a valid 10-digit ID",
		})
	}
	if !validator.IsEmpty(r.PhoneNumber) && !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be a valid Saudi mobile number",
		})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if salary, err := decimal.NewFromString(r.BaseSalary); err != nil || salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must be a non-negative amount",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string  `json:"id"`
	FullName    *string `json:"full_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Position    *string `json:"position,omitempty"`
	StoreID     *string `json:"store_id,omitempty"`
	Status      *string `json:"status,omitempty"`
	BaseSalary  *string `json:"base_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be a valid Saudi mobile number",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusActive), string(StatusResigned), string(StatusTerminated),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, resigned, terminated",
		})
	}
	if r.BaseSalary != nil {
		if salary, err := decimal.NewFromString(*r.BaseSalary); err != nil || salary.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a non-negative amount",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Filter narrows employee listings.
type Filter struct {
	Status *Status
	Search *string // matches name or employee code
	Page   int
	Limit  int
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	StoreID      string  `json:"store_id"`
	StoreName    *string `json:"store_name,omitempty"`
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	NationalID   string  `json:"national_id"`
	PhoneNumber  string  `json:"phone_number"`
	Position     string  `json:"position"`
	HireDate     string  `json:"hire_date"`
	Status       string  `json:"status"`
	BaseSalary   string  `json:"base_salary"`
}

type ListEmployeeResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
}

// NewEmployeeResponse maps the entity to its API shape.
func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		StoreID:      e.StoreID,
		StoreName:    e.StoreName,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		NationalID:   e.NationalID,
		PhoneNumber:  e.PhoneNumber,
		Position:     e.Position,
		HireDate:     e.HireDate.Format("2006-01-02"),
		Status:       string(e.Status),
		BaseSalary:   e.BaseSalary.StringFixed(2),
	}
}

// ParseHireDate converts the request's hire date; Validate must pass first.
func (r *CreateEmployeeRequest) ParseHireDate() time.Time {
	t, _ := time.Parse("2006-01-02", r.HireDate)
	return t
}
