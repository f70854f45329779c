package queries

import (
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=menu.go -destination=../../../tests/mock/queries/menu.go -package=queriesmock
//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock
//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

// MenuItemView represents read-optimized menu item data
type MenuItemView struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Price      string    `json:"price"`
	PriceCents int64     `json:"price_cents"`
	Inventory  int       `json:"inventory"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BookingView represents read-optimized booking data
type BookingView struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	NumberOfGuests int        `json:"number_of_guests"`
	BookingDate    time.Time  `json:"booking_date"`
	CreatedBy      *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// UserView is the public profile of an account
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// UserCredentials carries the password hash and is never rendered
type UserCredentials struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	IsActive     bool
}
