package request

import (
	"time"

	"restaurant-api/internal/domain/booking"
	"restaurant-api/internal/pkg/ptr"
)

// BookingRequest is used by POST and PUT; every field must be present.
type BookingRequest struct {
	Name           *string    `json:"name" binding:"required" example:"John Doe"`
	NumberOfGuests *int       `json:"number_of_guests" binding:"required" example:"4"`
	BookingDate    *time.Time `json:"booking_date" binding:"required" example:"2030-05-05T19:00:00Z"`
}

type PatchBookingRequest struct {
	Name           *string    `json:"name" example:"John Doe"`
	NumberOfGuests *int       `json:"number_of_guests" example:"4"`
	BookingDate    *time.Time `json:"booking_date" example:"2030-05-05T19:00:00Z"`

	nulls []string
}

func (r *PatchBookingRequest) UnmarshalJSON(b []byte) error {
	type fields PatchBookingRequest
	var f fields
	nulls, err := decodePartial(b, &f)
	if err != nil {
		return err
	}
	*r = PatchBookingRequest(f)
	r.nulls = nulls
	return nil
}

// Validate rejects fields sent as an explicit null.
func (r *PatchBookingRequest) Validate() error {
	return nullFieldsError(r.nulls)
}

func (r *BookingRequest) ToDraft() booking.Draft {
	return booking.Draft{
		Name:   ptr.Deref(r.Name),
		Guests: ptr.Deref(r.NumberOfGuests),
		Date:   ptr.Deref(r.BookingDate),
	}
}

func (r *PatchBookingRequest) ToChanges() booking.Changes {
	return booking.Changes{
		Name:   r.Name,
		Guests: r.NumberOfGuests,
		Date:   r.BookingDate,
	}
}
