//go:build unit

package password_test

import (
	"testing"

	"restaurant-api/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := password.HashWithCost("password123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	assert.NoError(t, password.ComparePassword(hashed, "password123"))
	assert.ErrorIs(t, password.ComparePassword(hashed, "wrongpassword"), password.ErrMismatch)
	assert.ErrorIs(t, password.ComparePassword("", "password123"), password.ErrEmpty)
	assert.ErrorIs(t, password.ComparePassword(hashed, ""), password.ErrEmpty)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrEmpty)
}

func TestBurnCompare(t *testing.T) {
	assert.NotPanics(t, func() { password.BurnCompare("anything") })
}
