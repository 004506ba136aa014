package admin

import "errors"

var (
	// ErrUserNotFound indicates the admin user doesn't exist.
	ErrUserNotFound = errors.New("admin user not found")
	// ErrInvalidInput indicates invalid admin user input.
	ErrInvalidInput = errors.New("invalid admin user input")
	// ErrInvalidPassword indicates the password does not match.
	ErrInvalidPassword = errors.New("invalid password")
)
