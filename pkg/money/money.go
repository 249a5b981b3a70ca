// Package money implements exact fixed-point currency arithmetic.
// Amounts are stored as integer cents so that repeated computation
// never drifts; rounding happens only when formatting for display.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Cents represents a monetary amount with two decimal places,
// stored as an integer number of cents.
type Cents int64

var (
	// ErrInvalidAmount возвращается при некорректной строке суммы
	ErrInvalidAmount = errors.New("money: invalid amount")

	// ErrNegativeAmount возвращается, когда сумма не может быть отрицательной
	ErrNegativeAmount = errors.New("money: amount must not be negative")
)

// FromUnits converts whole currency units to Cents.
func FromUnits(units int64) Cents {
	return Cents(units * 100)
}

// Parse parses a decimal string ("600000", "1234.50") into Cents.
// At most two fractional digits are accepted.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole = s[:i]
		frac = s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: more than two decimal places in %q", ErrInvalidAmount, s)
	}
	// Дополняем дробную часть до двух знаков
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	cents := w*100 + f
	if neg {
		cents = -cents
	}
	return Cents(cents), nil
}

// Add returns the exact sum of two amounts.
func (c Cents) Add(other Cents) Cents {
	return c + other
}

// MulQty returns the exact product of the amount and an integer quantity.
func (c Cents) MulQty(qty int) Cents {
	return c * Cents(qty)
}

// IsZero reports whether the amount is exactly zero.
func (c Cents) IsZero() bool {
	return c == 0
}

// IsNegative reports whether the amount is below zero.
func (c Cents) IsNegative() bool {
	return c < 0
}

// Units returns the whole-unit part of the amount, truncated toward zero.
func (c Cents) Units() int64 {
	return int64(c) / 100
}

// String formats the amount with two decimal places ("600000.00").
// Display formatting is the only place precision may be dropped.
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
