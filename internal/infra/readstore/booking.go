package readstore

import (
	"context"

	"restaurant-api/internal/infra"
	sqlc "restaurant-api/internal/infra/sqlc/generated"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	ListBookings(ctx context.Context, db sqlc.DBTX) ([]sqlc.Bookings, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) List(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	out := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBookingView(row))
	}
	return out, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return toBookingView(row), nil
}

func toBookingView(row sqlc.Bookings) *queries.BookingView {
	return &queries.BookingView{
		ID:             row.ID,
		Name:           row.Name,
		NumberOfGuests: int(row.NoOfGuests),
		BookingDate:    pgconv.TimeFromPgtype(row.BookingDate).UTC(),
		CreatedBy:      pgconv.UUIDPtrFromPgtype(row.UserID),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
