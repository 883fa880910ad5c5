package domain

import "errors"

// Auth errors
var (
	ErrEmailExists        = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// Book errors
var (
	ErrBookNotFound = errors.New("book not found")
)
