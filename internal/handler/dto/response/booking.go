package response

import (
	"time"

	"restaurant-api/internal/usecase/queries"
)

type BookingResponse struct {
	ID             string    `json:"id" example:"5f0c1e8a-2b9d-4c4f-8f63-0d3c7a3c9b12"`
	Name           string    `json:"name" example:"John Doe"`
	NumberOfGuests int       `json:"number_of_guests" example:"4"`
	BookingDate    time.Time `json:"booking_date" example:"2030-05-05T19:00:00Z"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	return copyView[BookingResponse](v)
}

func FromBookingViews(vs []*queries.BookingView) ([]*BookingResponse, error) {
	return copyViews[BookingResponse](vs)
}
