//go:build unit

package ptr_test

import (
	"testing"
	"time"

	"restaurant-api/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestTo(t *testing.T) {
	v := 42
	p := ptr.To(v)
	v = 7

	assert.Equal(t, 42, *p)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "lemon", ptr.Deref(ptr.To("lemon")))
	assert.Equal(t, "", ptr.Deref[string](nil))
	assert.Equal(t, 0, ptr.Deref[int](nil))
	assert.True(t, ptr.Deref[time.Time](nil).IsZero())
}
