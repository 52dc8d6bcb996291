package domain

import "time"

// Address is deduplicated by (cep, rua, numero); at most one Place may
// reference a given address.
type Address struct {
	ID          string    `json:"id"`
	Cep         string    `json:"cep" validate:"required"`
	Pais        string    `json:"pais" validate:"required"`
	Estado      string    `json:"estado" validate:"required"`
	Cidade      string    `json:"cidade" validate:"required"`
	Bairro      string    `json:"bairro" validate:"required"`
	Rua         string    `json:"rua" validate:"required"`
	Numero      string    `json:"numero" validate:"required"`
	Complemento string    `json:"complemento,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
