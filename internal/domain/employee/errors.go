package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("Employee not found")
	ErrEmployeeCodeExists   = errors.New("Employee code already exists")
	ErrNationalIDExists     = errors.New("National ID already registered")
	ErrEmployeeNotInStore   = errors.New("Employee does not belong to this store")
	ErrEmployeeNotActive    = errors.New("Employee is not active")
	ErrEmployeeHasNoProfile = errors.New("Employee has no linked user account")
)
