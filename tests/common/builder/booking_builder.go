//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-api/internal/domain/booking"
	reqdto "restaurant-api/internal/handler/dto/request"
	sqlc "restaurant-api/internal/infra/sqlc/generated"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	Name      string
	Guests    int
	Date      time.Time
	CreatedBy uuid.UUID
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Name:      "John Doe",
		Guests:    4,
		Date:      time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second),
		CreatedBy: uuid.New(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.BuildDraft(), b.CreatedBy, time.Now())
}

func (b *BookingBuilder) BuildDraft() booking.Draft {
	return booking.Draft{
		Name:   b.Name,
		Guests: b.Guests,
		Date:   b.Date,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	now := time.Now().UTC()
	return sqlc.Bookings{
		ID:          uuid.New(),
		Name:        b.Name,
		NoOfGuests:  pgconv.IntToInt32(b.Guests),
		BookingDate: Timestamptz(b.Date),
		UserID:      pgconv.UUIDToPgtype(b.CreatedBy),
		CreatedAt:   Timestamptz(now),
		UpdatedAt:   Timestamptz(now),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now().UTC()
	createdBy := b.CreatedBy
	return &queries.BookingView{
		ID:             uuid.New(),
		Name:           b.Name,
		NumberOfGuests: b.Guests,
		BookingDate:    b.Date,
		CreatedBy:      &createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingRequest {
	name := b.Name
	guests := b.Guests
	date := b.Date
	return reqdto.BookingRequest{
		Name:           &name,
		NumberOfGuests: &guests,
		BookingDate:    &date,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithGuests(guests int) *BookingBuilder {
	b.Guests = guests
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}
