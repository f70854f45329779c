package booking

import (
	"time"

	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/patch"

	"github.com/google/uuid"
)

type Booking struct {
	id        uuid.UUID
	name      Name
	guests    Guests
	date      Date
	createdBy *uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

type Draft struct {
	Name   string
	Guests int
	Date   time.Time
}

// Changes describes a partial update; nil fields keep their current value.
type Changes struct {
	Name   *string
	Guests *int
	Date   *time.Time
}

func (c Changes) Empty() bool {
	return !patch.Provided(c.Name != nil, c.Guests != nil, c.Date != nil)
}

// NewBooking records createdBy as the caller who made the booking. It is
// stored for auditing only and never restricts who can read the booking.
func NewBooking(d Draft, createdBy uuid.UUID, now time.Time) (*Booking, error) {
	name, guests, date, err := validate(d)
	if err != nil {
		return nil, err
	}
	var owner *uuid.UUID
	if createdBy != uuid.Nil {
		owner = &createdBy
	}
	return &Booking{
		id:        uuid.New(),
		name:      name,
		guests:    guests,
		date:      date,
		createdBy: owner,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(id uuid.UUID, name Name, guests Guests, date Date, createdBy *uuid.UUID, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		name:      name,
		guests:    guests,
		date:      date,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) Apply(c Changes, now time.Time) error {
	d := Draft{
		Name:   patch.Coalesce(c.Name, b.name.String()),
		Guests: patch.Coalesce(c.Guests, b.guests.Value()),
		Date:   patch.Coalesce(c.Date, b.date.Time()),
	}
	name, guests, date, err := validate(d)
	if err != nil {
		return err
	}
	b.name = name
	b.guests = guests
	b.date = date
	b.updatedAt = now
	return nil
}

func validate(d Draft) (Name, Guests, Date, error) {
	fe := errs.NewFieldErrors()

	name, err := NewName(d.Name)
	fe.Add("name", err)
	guests, err := NewGuests(d.Guests)
	fe.Add("number_of_guests", err)
	date, err := NewDate(d.Date)
	fe.Add("booking_date", err)

	if err := fe.Err(); err != nil {
		return Name{}, Guests{}, Date{}, err
	}
	return name, guests, date, nil
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) Name() Name            { return b.name }
func (b *Booking) Guests() Guests        { return b.guests }
func (b *Booking) Date() Date            { return b.date }
func (b *Booking) CreatedBy() *uuid.UUID { return b.createdBy }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
