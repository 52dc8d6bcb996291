package domain

import "time"

type Turn string

const (
	TurnManha     Turn = "manhã"
	TurnTarde     Turn = "tarde"
	TurnNoite     Turn = "noite"
	TurnMadrugada Turn = "madrugada"
)

func ParseTurn(s string) (Turn, bool) {
	switch Turn(s) {
	case TurnManha, TurnTarde, TurnNoite, TurnMadrugada:
		return Turn(s), true
	}
	return "", false
}

// Availability is one entry of a place's weekly offer: a day plus the turns
// open for rental on that day.
type Availability struct {
	Day            string `json:"day"`
	AvailableTurns []Turn `json:"availableTurns"`
}

type Place struct {
	ID            string         `json:"id"`
	Name          string         `json:"name" validate:"required"`
	AddressID     string         `json:"addressId"`
	Description   string         `json:"description,omitempty"`
	PricePerHour  float64        `json:"pricePerHour" validate:"required,gt=0"`
	Availability  []Availability `json:"availability"`
	OwnerID       string         `json:"ownerId"`
	AverageRating float64        `json:"averageRating"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`

	Address *Address `json:"address,omitempty"`
}
