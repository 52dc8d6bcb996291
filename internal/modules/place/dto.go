package place

import "github.com/bryerblack/projeto-principios-dev-web/internal/domain"

type AddressRequest struct {
	Cep         string `json:"cep" binding:"required" validate:"required"`
	Pais        string `json:"pais" binding:"required" validate:"required"`
	Estado      string `json:"estado" binding:"required" validate:"required"`
	Cidade      string `json:"cidade" binding:"required" validate:"required"`
	Bairro      string `json:"bairro" binding:"required" validate:"required"`
	Rua         string `json:"rua" binding:"required" validate:"required"`
	Numero      string `json:"numero" binding:"required" validate:"required"`
	Complemento string `json:"complemento"`
}

type AvailabilityRequest struct {
	Day            string   `json:"day" binding:"required"`
	AvailableTurns []string `json:"availableTurns" binding:"required"`
}

type CreatePlaceRequest struct {
	Name         string                `json:"name" binding:"required" validate:"required"`
	Address      AddressRequest        `json:"address" binding:"required"`
	Description  string                `json:"description"`
	PricePerHour float64               `json:"pricePerHour" binding:"required" validate:"gt=0"`
	Availability []AvailabilityRequest `json:"availability" binding:"required"`
}

type UpdatePlaceRequest struct {
	Name         *string               `json:"name,omitempty"`
	Description  *string               `json:"description,omitempty"`
	PricePerHour *float64              `json:"pricePerHour,omitempty"`
	Availability []AvailabilityRequest `json:"availability,omitempty"`
}

type AddEquipmentRequest struct {
	Name              string  `json:"name" binding:"required" validate:"required"`
	Description       string  `json:"description"`
	PricePerHour      float64 `json:"pricePerHour"`
	QuantityAvailable int     `json:"quantityAvailable" binding:"required" validate:"gt=0"`
}

// AvailablePlacesPage is the paginated listing payload, cached per page.
type AvailablePlacesPage struct {
	Total       int64          `json:"total"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	PageSize    int            `json:"pageSize"`
	Places      []domain.Place `json:"places"`
}
