package converter

import (
	"restaurant-api/internal/domain/booking"
	sqlc "restaurant-api/internal/infra/sqlc/generated"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:          b.ID(),
		Name:        b.Name().String(),
		NoOfGuests:  pgconv.IntToInt32(b.Guests().Value()),
		BookingDate: pgconv.TimeToPgtype(b.Date().Time()),
		UserID:      pgconv.UUIDPtrToPgtype(b.CreatedBy()),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:          b.ID(),
		Name:        b.Name().String(),
		NoOfGuests:  pgconv.IntToInt32(b.Guests().Value()),
		BookingDate: pgconv.TimeToPgtype(b.Date().Time()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	name, err := booking.NewName(row.Name)
	if err != nil {
		return nil, errs.Wrapf(err, "stored booking %s has invalid name", row.ID)
	}
	guests, err := booking.NewGuests(int(row.NoOfGuests))
	if err != nil {
		return nil, errs.Wrapf(err, "stored booking %s has invalid guest count", row.ID)
	}
	date, err := booking.NewDate(pgconv.TimeFromPgtype(row.BookingDate))
	if err != nil {
		return nil, errs.Wrapf(err, "stored booking %s has invalid date", row.ID)
	}

	return booking.ReconstructBooking(
		row.ID,
		name,
		guests,
		date,
		pgconv.UUIDPtrFromPgtype(row.UserID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
