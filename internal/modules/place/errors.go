package place

import "errors"

var (
	ErrNotFound          = errors.New("place not found")
	ErrAddressTaken      = errors.New("address already registered")
	ErrActiveRents       = errors.New("place has active rentals")
	ErrEquipmentTaken    = errors.New("equipment already registered for place")
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrValidation        = errors.New("validation error")
	ErrForbidden         = errors.New("forbidden")
)
