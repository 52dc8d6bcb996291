package rating

type CreateRatingRequest struct {
	ReviewedID  string  `json:"reviewedId" binding:"required"`
	RentID      string  `json:"rentId"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}
