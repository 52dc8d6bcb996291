package rent

import "errors"

var (
	ErrNotFound                = errors.New("rent not found")
	ErrPlaceNotFound           = errors.New("place not found")
	ErrValidation              = errors.New("validation error")
	ErrOwnPlace                = errors.New("cannot rent your own place")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
