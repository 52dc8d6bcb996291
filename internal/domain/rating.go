package domain

import "time"

type Rating struct {
	ID          string    `json:"id"`
	ReviewerID  string    `json:"reviewerId"`
	ReviewedID  string    `json:"reviewedId"`
	RentID      string    `json:"rentId"`
	Description string    `json:"description,omitempty"`
	Rating      float64   `json:"rating" validate:"gte=0,lte=5"`
	Date        time.Time `json:"date"`
}
