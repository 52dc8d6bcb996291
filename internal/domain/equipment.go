package domain

import "time"

// Equipment name is unique within its place; the place service rejects
// duplicates before insert.
type Equipment struct {
	ID                string    `json:"id"`
	Name              string    `json:"name" validate:"required"`
	Description       string    `json:"description,omitempty"`
	PricePerHour      float64   `json:"pricePerHour"`
	QuantityAvailable int       `json:"quantityAvailable"`
	PlaceID           string    `json:"placeId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
