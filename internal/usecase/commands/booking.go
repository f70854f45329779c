package commands

import (
	"context"
	"log/slog"

	"restaurant-api/internal/domain/booking"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, d booking.Draft, actorID uuid.UUID) (*CreateBookingResult, error)
	Replace(ctx context.Context, id uuid.UUID, d booking.Draft) error
	Patch(ctx context.Context, id uuid.UUID, c booking.Changes) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher BookingEventPublisher
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, publisher BookingEventPublisher) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk, publisher: publisher}
}

// Create accepts any slot. Overlapping bookings for the same date are not
// detected.
func (uc *bookingCommandsImpl) Create(ctx context.Context, d booking.Draft, actorID uuid.UUID) (*CreateBookingResult, error) {
	now := uc.clock.Now()
	b, err := booking.NewBooking(d, actorID, now)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, tx.DB(), b)
	})
	if err != nil {
		return nil, errs.Wrap(err, "create booking")
	}

	uc.publish(ctx, newBookingEvent(BookingCreated, b, now))
	return &CreateBookingResult{BookingID: b.ID()}, nil
}

func (uc *bookingCommandsImpl) Replace(ctx context.Context, id uuid.UUID, d booking.Draft) error {
	return uc.Patch(ctx, id, booking.Changes{
		Name:   &d.Name,
		Guests: &d.Guests,
		Date:   &d.Date,
	})
}

func (uc *bookingCommandsImpl) Patch(ctx context.Context, id uuid.UUID, c booking.Changes) error {
	var updated *booking.Booking
	now := uc.clock.Now()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if c.Empty() {
			return nil
		}
		if err := b.Apply(c, now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return markNotFound(err, errs.ErrBookingNotFound)
	}

	if updated != nil {
		uc.publish(ctx, newBookingEvent(BookingUpdated, updated, now))
	}
	return nil
}

func (uc *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return markNotFound(err, errs.ErrBookingNotFound)
	}

	uc.publish(ctx, BookingEvent{Type: BookingDeleted, BookingID: id, OccurredAt: uc.clock.Now()})
	return nil
}

// publish never fails the request; the row is already committed.
func (uc *bookingCommandsImpl) publish(ctx context.Context, ev BookingEvent) {
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish booking event",
			"type", string(ev.Type),
			"booking_id", ev.BookingID.String(),
			"error", err.Error())
	}
}
