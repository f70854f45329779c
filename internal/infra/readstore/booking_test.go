//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"restaurant-api/internal/infra"
	sqlc "restaurant-api/internal/infra/sqlc/generated"
	"restaurant-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingViewQueries struct {
	mock.Mock
}

func (m *MockBookingViewQueries) ListBookings(ctx context.Context, db sqlc.DBTX) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func (m *MockBookingViewQueries) GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func TestBookingReadStore_List(t *testing.T) {
	mine := builder.NewBookingBuilder().BuildInfra()
	anonymous := builder.NewBookingBuilder().WithName("Walk-in").BuildInfra()
	anonymous.UserID.Valid = false

	mockQueries := new(MockBookingViewQueries)
	mockQueries.On("ListBookings", mock.Anything, mock.Anything).Return([]sqlc.Bookings{mine, anonymous}, nil)

	views, err := NewBookingReadStore(mockQueries, nil).List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	require.NotNil(t, views[0].CreatedBy)
	assert.Equal(t, uuid.UUID(mine.UserID.Bytes), *views[0].CreatedBy)
	assert.Nil(t, views[1].CreatedBy)
	assert.Equal(t, "Walk-in", views[1].Name)
	assert.Equal(t, time.UTC, views[0].BookingDate.Location())
	mockQueries.AssertExpectations(t)
}

func TestBookingReadStore_FindByID(t *testing.T) {
	row := builder.NewBookingBuilder().BuildInfra()

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ret := row
			if tt.mockError != nil {
				ret = sqlc.Bookings{}
			}
			mockQueries := new(MockBookingViewQueries)
			mockQueries.On("GetBookingByID", mock.Anything, mock.Anything, row.ID).Return(ret, tt.mockError)

			view, err := NewBookingReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

			if tt.wantKind != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, row.Name, view.Name)
				assert.Equal(t, int(row.NoOfGuests), view.NumberOfGuests)
				assert.True(t, row.BookingDate.Time.Equal(view.BookingDate))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
