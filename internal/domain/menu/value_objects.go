package menu

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleLength     = 255
	MaxPriceIntDigits  = 8 // NUMERIC(10,2)
	MaxPriceFracDigits = 2
	MinInventory       = 0
	MaxInventory       = 99999
)

var (
	ErrTitleBlank       = errors.New("may not be blank")
	ErrTitleTooLong     = fmt.Errorf("ensure this field has no more than %d characters", MaxTitleLength)
	ErrPriceRequired    = errors.New("this field is required")
	ErrPriceInvalid     = errors.New("a valid number is required")
	ErrPriceNotPositive = errors.New("ensure this value is greater than 0")
	ErrPriceDecimals    = fmt.Errorf("ensure that there are no more than %d decimal places", MaxPriceFracDigits)
	ErrPriceDigits      = fmt.Errorf("ensure that there are no more than %d digits before the decimal point", MaxPriceIntDigits)
	ErrInventoryRange   = fmt.Errorf("ensure this value is between %d and %d", MinInventory, MaxInventory)
)

var priceRegex = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Title{}, ErrTitleBlank
	}
	if utf8.RuneCountInString(t) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: t}, nil
}

func (t Title) String() string { return t.value }

// Price is held in hundredths of the currency unit.
type Price struct {
	cents int64
}

func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Price{}, ErrPriceRequired
	}
	if !priceRegex.MatchString(s) {
		return Price{}, ErrPriceInvalid
	}

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	fracPart = strings.TrimRight(fracPart, "0")
	if len(fracPart) > MaxPriceFracDigits {
		return Price{}, ErrPriceDecimals
	}
	intPart = strings.TrimLeft(intPart, "0")
	if len(intPart) > MaxPriceIntDigits {
		return Price{}, ErrPriceDigits
	}

	units := int64(0)
	if intPart != "" {
		n, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return Price{}, ErrPriceInvalid
		}
		units = n
	}
	cents := int64(0)
	if fracPart != "" {
		n, err := strconv.ParseInt(fracPart+strings.Repeat("0", MaxPriceFracDigits-len(fracPart)), 10, 64)
		if err != nil {
			return Price{}, ErrPriceInvalid
		}
		cents = n
	}

	total := units*100 + cents
	if negative || total == 0 {
		return Price{}, ErrPriceNotPositive
	}
	return Price{cents: total}, nil
}

func PriceFromCents(cents int64) (Price, error) {
	if cents <= 0 {
		return Price{}, ErrPriceNotPositive
	}
	if cents/100 >= 100_000_000 {
		return Price{}, ErrPriceDigits
	}
	return Price{cents: cents}, nil
}

func (p Price) Cents() int64 { return p.cents }

// String renders the price with exactly two decimals, e.g. "12.50".
func (p Price) String() string {
	return FormatCents(p.cents)
}

func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

type Inventory struct {
	value int
}

func NewInventory(v int) (Inventory, error) {
	if v < MinInventory || v > MaxInventory {
		return Inventory{}, ErrInventoryRange
	}
	return Inventory{value: v}, nil
}

func (i Inventory) Value() int { return i.value }
