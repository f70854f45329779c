package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxNameLength = 255
	MinGuests     = 1
	MaxGuests     = 6
)

var (
	ErrNameBlank    = errors.New("may not be blank")
	ErrNameTooLong  = fmt.Errorf("ensure this field has no more than %d characters", MaxNameLength)
	ErrGuestsRange  = fmt.Errorf("ensure this value is between %d and %d", MinGuests, MaxGuests)
	ErrDateRequired = errors.New("this field is required")
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrNameBlank
	}
	if utf8.RuneCountInString(t) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

type Guests struct {
	value int
}

func NewGuests(v int) (Guests, error) {
	if v < MinGuests || v > MaxGuests {
		return Guests{}, ErrGuestsRange
	}
	return Guests{value: v}, nil
}

func (g Guests) Value() int { return g.value }

// Date is the reserved slot. No availability or overlap rules apply to it.
type Date struct {
	value time.Time
}

func NewDate(t time.Time) (Date, error) {
	if t.IsZero() {
		return Date{}, ErrDateRequired
	}
	return Date{value: t.UTC()}, nil
}

func (d Date) Time() time.Time { return d.value }
