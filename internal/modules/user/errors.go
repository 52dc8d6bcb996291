package user

import "errors"

var (
	ErrNotFound        = errors.New("user not found")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation error")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidPassword = errors.New("current password does not match")
)
