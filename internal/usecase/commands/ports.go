package commands

import (
	"context"
	"time"

	"restaurant-api/internal/domain/booking"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

type BookingEventType string

const (
	BookingCreated BookingEventType = "booking.created"
	BookingUpdated BookingEventType = "booking.updated"
	BookingDeleted BookingEventType = "booking.deleted"
)

// BookingEvent is the payload published after a booking write commits.
// Deleted events only carry the id.
type BookingEvent struct {
	Type           BookingEventType `json:"type"`
	BookingID      uuid.UUID        `json:"booking_id"`
	Name           string           `json:"name,omitempty"`
	NumberOfGuests int              `json:"number_of_guests,omitempty"`
	BookingDate    *time.Time       `json:"booking_date,omitempty"`
	OccurredAt     time.Time        `json:"occurred_at"`
}

type BookingEventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

func newBookingEvent(t BookingEventType, b *booking.Booking, at time.Time) BookingEvent {
	date := b.Date().Time()
	return BookingEvent{
		Type:           t,
		BookingID:      b.ID(),
		Name:           b.Name().String(),
		NumberOfGuests: b.Guests().Value(),
		BookingDate:    &date,
		OccurredAt:     at,
	}
}
