package shared

import (
	"context"
	"time"

	"restaurant-api/internal/domain/booking"
	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/domain/user"
	sqlc "restaurant-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	MenuItems() MenuItemRepository
	Bookings() BookingRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

type MenuItemRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, item *menu.MenuItem) error
	// FindForUpdate locks the row until the surrounding transaction ends.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*menu.MenuItem, error)
	Update(ctx context.Context, tx sqlc.DBTX, item *menu.MenuItem) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
}
