package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailTaken             = errors.New("user with this email already exists")
	ErrInvalidRole            = errors.New("role must be admin or user")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
