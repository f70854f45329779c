//go:build unit

package commands_test

import (
	"context"
	"time"

	"restaurant-api/internal/usecase/shared"
	sharedmock "restaurant-api/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

type uowMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	menu     *sharedmock.MockMenuItemRepository
	bookings *sharedmock.MockBookingRepository
	users    *sharedmock.MockUserRepository
}

// newUoWMocks wires a unit of work whose Within runs the callback against a
// mocked transaction exposing mocked repositories.
func newUoWMocks(ctrl *gomock.Controller) *uowMocks {
	m := &uowMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		menu:     sharedmock.NewMockMenuItemRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().MenuItems().Return(m.menu).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	return m
}
