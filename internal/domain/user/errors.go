package user

import "errors"

var (
	ErrUserNotFound            = errors.New("User not found")
	ErrEmailExists             = errors.New("Email already registered")
	ErrUserInactive            = errors.New("User account is deactivated")
	ErrSuperAdminRequired      = errors.New("Super admin access required")
	ErrApproverAccessRequired  = errors.New("Approver access required")
	ErrInsufficientPermissions = errors.New("Insufficient permissions")
)
