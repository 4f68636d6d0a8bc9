package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrAdminRegistration  = errors.New("admin accounts cannot be self-registered")
)
