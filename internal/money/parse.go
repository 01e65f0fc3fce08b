package money

import (
	"errors"
	"strconv"
	"strings"
)

// Parse errors. These signal malformed terminal input; callers treat them as
// recoverable validation failures, never as business errors.
var (
	ErrMalformedAmount = errors.New("malformed amount")
	ErrTooPrecise      = errors.New("amount has more decimal places than the currency allows")
	ErrMalformedPoints = errors.New("malformed point count")
)

// ParseAmount parses a user-entered decimal amount into minor units.
// The decimal separator is always "." regardless of the display currency,
// and the fractional part must fit the currency's decimal places.
func ParseAmount(s string, c Currency) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMalformedAmount
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	wholePart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		wholePart, fracPart = s[:i], s[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return 0, ErrMalformedAmount
		}
	}
	if wholePart == "" && fracPart == "" {
		return 0, ErrMalformedAmount
	}
	if wholePart == "" {
		wholePart = "0"
	}
	if len(fracPart) > c.DecimalPlaces {
		return 0, ErrTooPrecise
	}

	whole, err := strconv.ParseUint(wholePart, 10, 63)
	if err != nil {
		return 0, ErrMalformedAmount
	}

	frac := int64(0)
	if fracPart != "" {
		f, err := strconv.ParseUint(fracPart, 10, 63)
		if err != nil {
			return 0, ErrMalformedAmount
		}
		// Right-pad to the currency's precision: "1.5" in USD is 150 cents.
		frac = int64(f)
		for i := len(fracPart); i < c.DecimalPlaces; i++ {
			frac *= 10
		}
	}

	minor := int64(whole)*c.minorPerMajor() + frac
	if negative {
		minor = -minor
	}
	return Money(minor), nil
}

// ParsePoints parses a loyalty point count. Any fractional part is rejected.
func ParsePoints(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMalformedPoints
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrMalformedPoints
	}
	return n, nil
}
