package settings

import "errors"

var (
	ErrSettingNotFound = errors.New("Setting not found")
	ErrInvalidValue    = errors.New("Setting value does not match its kind")
)
