package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "super_admin" // Platform administrator - full access
	RoleHR         Role = "hr"          // HR team - manages employees and approvals across stores
	RoleStoreOwner Role = "store_owner" // Owns one or more stores, approves within them
	RoleEmployee   Role = "employee"    // Regular employee
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	FullName        string
	Role            Role
	StoreID         *string
	OAuthProvider   *string
	OAuthProviderID *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// IsSuperAdmin checks if user is the platform administrator
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsHR checks if user belongs to the HR team
func (u *User) IsHR() bool {
	return u.Role == RoleHR || u.Role == RoleSuperAdmin
}

// IsStoreOwner checks if user owns a store
func (u *User) IsStoreOwner() bool {
	return u.Role == RoleStoreOwner
}

// CanApprove checks if user can approve leave and attendance requests
func (u *User) CanApprove() bool {
	return u.IsHR() || u.IsStoreOwner()
}
