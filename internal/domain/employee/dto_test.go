package employee

import (
	"testing"

	"github.com/mawared/mawared-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		StoreID:      "01900000-0000-7000-8000-000000000101",
		EmployeeCode: "2026-0001",
		FullName:     "Ahmed Al-Qahtani",
		NationalID:   "1234567890",
		PhoneNumber:  "0512345678",
		Position:     "Cashier",
		HireDate:     "2026-01-15",
		BaseSalary:   "4500.00",
	}
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := validCreateRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("store id must be a UUID", func(t *testing.T) {
		req := validCreateRequest()
		req.StoreID = "store-1"

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "store_id")
	})

	t.Run("missing store id is reported as required", func(t *testing.T) {
		req := validCreateRequest()
		req.StoreID = ""

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "store_id is required", errs.ToMap()["store_id"])
	})

	t.Run("bad employee code", func(t *testing.T) {
		req := validCreateRequest()
		req.EmployeeCode = "EMP-1"

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "employee_code")
	})
}
