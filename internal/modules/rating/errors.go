package rating

import "errors"

var (
	ErrNotFound      = errors.New("rating not found")
	ErrUserNotFound  = errors.New("reviewed user not found")
	ErrPlaceNotFound = errors.New("reviewed place not found")
	ErrValidation    = errors.New("invalid rating payload")
	ErrForbidden     = errors.New("operation not allowed")
)
