package response

import (
	"errors"
	"net/http"

	"github.com/mawared/mawared-backend/internal/domain/attendance"
	"github.com/mawared/mawared-backend/internal/domain/auth"
	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/domain/leave"
	"github.com/mawared/mawared-backend/internal/domain/payroll"
	"github.com/mawared/mawared-backend/internal/domain/settings"
	"github.com/mawared/mawared-backend/internal/domain/store"
	"github.com/mawared/mawared-backend/internal/domain/subscription"
	"github.com/mawared/mawared-backend/internal/domain/user"
	"github.com/mawared/mawared-backend/internal/pkg/validator"
	"github.com/mawared/mawared-backend/internal/pkg/workdays"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth / user errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrOAuthEmailUnverified):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrUserInactive),
		errors.Is(err, user.ErrSuperAdminRequired),
		errors.Is(err, user.ErrApproverAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Employee errors
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, employee.ErrEmployeeHasNoProfile):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeCodeExists),
		errors.Is(err, employee.ErrNationalIDExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotInStore):
		Forbidden(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotActive):
		BadRequest(w, err.Error(), nil)

	// Store errors
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, store.ErrStoreNameExists),
		errors.Is(err, store.ErrStoreHasEmployees):
		Conflict(w, err.Error())
	case errors.Is(err, store.ErrStoreInactive):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, store.ErrNotStoreOwner):
		Forbidden(w, err.Error())

	// Leave errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound),
		errors.Is(err, leave.ErrLeaveBalanceNotFound),
		errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrOverlappingRequest),
		errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed),
		errors.Is(err, leave.ErrLeaveBalanceExists):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrLeaveTypeRequired),
		errors.Is(err, leave.ErrReasonRequired),
		errors.Is(err, leave.ErrInsufficientBalance),
		errors.Is(err, leave.ErrLeaveTypeInactive),
		errors.Is(err, workdays.ErrInvalidRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrBalanceUnavailable):
		InternalServerError(w, err.Error())

	// Attendance errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, err.Error(), nil)

	// Payroll errors
	case errors.Is(err, payroll.ErrPayrollEntryNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, payroll.ErrPayrollPeriodEmpty):
		BadRequest(w, err.Error(), nil)

	// Subscription errors
	case errors.Is(err, subscription.ErrPlanNotFound),
		errors.Is(err, subscription.ErrSubscriptionNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, subscription.ErrAlreadySubscribed),
		errors.Is(err, subscription.ErrNotInTrial):
		Conflict(w, err.Error())
	case errors.Is(err, subscription.ErrPlanInactive),
		errors.Is(err, subscription.ErrSubscriptionExpired),
		errors.Is(err, subscription.ErrSeatLimitExceeded):
		BadRequest(w, err.Error(), nil)

	// Settings errors
	case errors.Is(err, settings.ErrSettingNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, settings.ErrInvalidValue):
		BadRequest(w, err.Error(), nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
