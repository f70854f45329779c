//go:build unit

package pgconv_test

import (
	"database/sql"
	"math/big"
	"testing"

	"restaurant-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericToCents(t *testing.T) {
	tests := []struct {
		name    string
		in      pgtype.Numeric
		want    int64
		wantErr bool
	}{
		{name: "two decimals", in: pgtype.Numeric{Int: big.NewInt(1250), Exp: -2, Valid: true}, want: 1250},
		{name: "integer exponent", in: pgtype.Numeric{Int: big.NewInt(12), Exp: 0, Valid: true}, want: 1200},
		{name: "one decimal", in: pgtype.Numeric{Int: big.NewInt(125), Exp: -1, Valid: true}, want: 1250},
		{name: "trailing zeros beyond scale", in: pgtype.Numeric{Int: big.NewInt(125000), Exp: -4, Valid: true}, want: 1250},
		{name: "positive exponent", in: pgtype.Numeric{Int: big.NewInt(3), Exp: 2, Valid: true}, want: 30000},
		{name: "sub-cent precision", in: pgtype.Numeric{Int: big.NewInt(12501), Exp: -3, Valid: true}, wantErr: true},
		{name: "null", in: pgtype.Numeric{}, wantErr: true},
		{name: "nan", in: pgtype.Numeric{NaN: true, Valid: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pgconv.NumericToCents(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCentsToNumericRoundTrip(t *testing.T) {
	for _, cents := range []int64{1, 99, 1250, 9999999999} {
		n := pgconv.CentsToNumeric(cents)
		got, err := pgconv.NumericToCents(n)
		require.NoError(t, err)
		assert.Equal(t, cents, got)
	}
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}

func TestNullableText(t *testing.T) {
	assert.False(t, pgconv.NullableText("").Valid)

	v := pgconv.NullableText("a@b.co")
	assert.True(t, v.Valid)
	assert.Equal(t, "a@b.co", pgconv.StringFromPgtype(v))
	assert.Equal(t, "", pgconv.StringFromPgtype(pgtype.Text{}))
}
