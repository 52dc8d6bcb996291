package domain

import "time"

type RentStatus string

const (
	RentPendente   RentStatus = "pendente"
	RentConfirmado RentStatus = "confirmado"
	RentRejeitado  RentStatus = "rejeitado"
	RentCancelado  RentStatus = "cancelado"
	RentFinalizado RentStatus = "finalizado"
)

func ParseRentStatus(s string) (RentStatus, bool) {
	switch RentStatus(s) {
	case RentPendente, RentConfirmado, RentRejeitado, RentCancelado, RentFinalizado:
		return RentStatus(s), true
	}
	return "", false
}

// CanTransition encodes the rent state machine:
// pendente → confirmado | rejeitado | cancelado, confirmado → finalizado.
// rejeitado, cancelado and finalizado are terminal.
func (s RentStatus) CanTransition(to RentStatus) bool {
	switch s {
	case RentPendente:
		return to == RentConfirmado || to == RentRejeitado || to == RentCancelado
	case RentConfirmado:
		return to == RentFinalizado
	}
	return false
}

type Rent struct {
	ID            string     `json:"id"`
	PlaceID       string     `json:"placeId"`
	OwnerID       string     `json:"ownerId"`
	RenterID      string     `json:"renterId"`
	TotalValue    float64    `json:"totalValue"`
	Status        RentStatus `json:"status"`
	PaymentMethod string     `json:"paymentMethod"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	Schedules []RentSchedule `json:"schedules,omitempty"`
}

// RentSchedule is one reserved time block of a rent. Rows are replaced
// wholesale when a rent's schedules change and cascade on rent delete.
type RentSchedule struct {
	ID        string    `json:"id"`
	RentID    string    `json:"rentId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}
