package rent

import (
	"time"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type ScheduleRequest struct {
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

type CreateRentRequest struct {
	PlaceID       string            `json:"placeId" binding:"required"`
	PaymentMethod string            `json:"paymentMethod" binding:"required"`
	Schedules     []ScheduleRequest `json:"schedules"`
}

type ReviewRentRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateRentRequest is the administrative update; schedules, when present,
// replace the existing ones wholesale.
type UpdateRentRequest struct {
	TotalValue    *float64          `json:"totalValue,omitempty"`
	Status        *string           `json:"status,omitempty"`
	PaymentMethod *string           `json:"paymentMethod,omitempty"`
	Schedules     []ScheduleRequest `json:"schedules,omitempty"`
}

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PlaceSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	PricePerHour float64 `json:"pricePerHour"`
}

// RentDetails is a rent enriched with summaries of its place and both
// parties, as returned by the "my rents" listing.
type RentDetails struct {
	ID            string                `json:"id"`
	Status        domain.RentStatus     `json:"status"`
	TotalValue    float64               `json:"totalValue"`
	PaymentMethod string                `json:"paymentMethod"`
	Schedules     []domain.RentSchedule `json:"schedules"`
	Place         *PlaceSummary         `json:"place,omitempty"`
	Owner         *UserSummary          `json:"owner,omitempty"`
	Renter        *UserSummary          `json:"renter,omitempty"`
}
