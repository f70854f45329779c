//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"restaurant-api/internal/domain/booking"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "John Doe", actual.Name().String())
		assert.Equal(t, 4, actual.Guests().Value())
		assert.True(t, b.Date.Equal(actual.Date().Time()))
		require.NotNil(t, actual.CreatedBy())
		assert.Equal(t, b.CreatedBy, *actual.CreatedBy())
	})

	t.Run("anonymous creator is stored as nil", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.CreatedBy = uuid.Nil
		}).BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.CreatedBy())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "trimmed", mutate: func(b *builder.BookingBuilder) { b.WithName("  Jane  ") }},
			{name: "maximum length", mutate: func(b *builder.BookingBuilder) { b.WithName(strings.Repeat("n", booking.MaxNameLength)) }},
			{name: "empty", mutate: func(b *builder.BookingBuilder) { b.WithName("") }, errIs: booking.ErrNameBlank},
			{name: "whitespace only", mutate: func(b *builder.BookingBuilder) { b.WithName(" \t ") }, errIs: booking.ErrNameBlank},
			{name: "too long", mutate: func(b *builder.BookingBuilder) { b.WithName(strings.Repeat("n", booking.MaxNameLength+1)) }, errIs: booking.ErrNameTooLong},
		})
	})

	t.Run("guest count validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "minimum", mutate: func(b *builder.BookingBuilder) { b.WithGuests(booking.MinGuests) }},
			{name: "maximum", mutate: func(b *builder.BookingBuilder) { b.WithGuests(booking.MaxGuests) }},
			{name: "zero", mutate: func(b *builder.BookingBuilder) { b.WithGuests(0) }, errIs: booking.ErrGuestsRange},
			{name: "negative", mutate: func(b *builder.BookingBuilder) { b.WithGuests(-2) }, errIs: booking.ErrGuestsRange},
			{name: "above maximum", mutate: func(b *builder.BookingBuilder) { b.WithGuests(booking.MaxGuests + 1) }, errIs: booking.ErrGuestsRange},
		})
	})

	t.Run("date validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "past date is accepted", mutate: func(b *builder.BookingBuilder) { b.WithDate(time.Date(2001, 1, 1, 19, 0, 0, 0, time.UTC)) }},
			{name: "zero date", mutate: func(b *builder.BookingBuilder) { b.WithDate(time.Time{}) }, errIs: booking.ErrDateRequired},
		})
	})

	t.Run("date is normalized to UTC", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		local := time.Date(2025, 6, 1, 19, 30, 0, 0, jst)

		actual, err := builder.NewBookingBuilder().WithDate(local).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, time.UTC, actual.Date().Time().Location())
		assert.True(t, local.Equal(actual.Date().Time()))
	})

	t.Run("all invalid fields are reported together", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			WithName("").
			WithGuests(7).
			WithDate(time.Time{}).
			BuildDomain()
		require.Error(t, err)

		ve, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.ElementsMatch(t, []string{"name", "number_of_guests", "booking_date"}, keys(ve.Fields()))
	})
}

func TestBooking_Apply(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	later := created.Add(30 * time.Minute)
	slot := time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC)

	newBooking := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := booking.NewBooking(booking.Draft{Name: "Adrian", Guests: 2, Date: slot}, uuid.New(), created)
		require.NoError(t, err)
		return b
	}

	t.Run("partial change keeps other fields", func(t *testing.T) {
		b := newBooking(t)
		guests := 6

		require.NoError(t, b.Apply(booking.Changes{Guests: &guests}, later))

		assert.Equal(t, "Adrian", b.Name().String())
		assert.Equal(t, 6, b.Guests().Value())
		assert.Equal(t, slot, b.Date().Time())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("invalid change leaves booking untouched", func(t *testing.T) {
		b := newBooking(t)
		name := "Mario"
		guests := 10

		err := b.Apply(booking.Changes{Name: &name, Guests: &guests}, later)
		require.ErrorIs(t, err, booking.ErrGuestsRange)

		assert.Equal(t, "Adrian", b.Name().String())
		assert.Equal(t, 2, b.Guests().Value())
		assert.Equal(t, created, b.UpdatedAt())
	})

	t.Run("empty changes", func(t *testing.T) {
		assert.True(t, booking.Changes{}.Empty())
		d := slot.Add(time.Hour)
		assert.False(t, booking.Changes{Date: &d}.Empty())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
				require.ErrorIs(t, err, errs.ErrDomainValidation)
			}
		})
	}
}

func keys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
