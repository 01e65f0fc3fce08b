// Package money provides exact fixed-point monetary arithmetic in minor
// currency units, plus locale-aware formatting for terminal output.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is a monetary value in the smallest unit of its currency.
// int64 gives exact arithmetic far beyond any balance a teller handles.
type Money int64

// Currency holds the formatting rules for one ISO 4217 currency.
type Currency struct {
	Code          string // ISO 4217 code (e.g., "COP")
	Symbol        string // Display symbol (e.g., "$")
	SymbolFirst   bool   // True if symbol comes before the amount
	DecimalPlaces int    // 0 for COP/CLP, 2 for USD/EUR
	ThousandsSep  string
	DecimalSep    string
}

// Currencies lists the currencies the teller can be configured with.
var Currencies = map[string]Currency{
	"COP": {Code: "COP", Symbol: "$", SymbolFirst: true, DecimalPlaces: 0, ThousandsSep: ".", DecimalSep: ","},
	"CLP": {Code: "CLP", Symbol: "$", SymbolFirst: true, DecimalPlaces: 0, ThousandsSep: ".", DecimalSep: ","},
	"MXN": {Code: "MXN", Symbol: "$", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ",", DecimalSep: "."},
	"ARS": {Code: "ARS", Symbol: "$", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ".", DecimalSep: ","},
	"BRL": {Code: "BRL", Symbol: "R$", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ".", DecimalSep: ","},
	"USD": {Code: "USD", Symbol: "$", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ",", DecimalSep: "."},
	"EUR": {Code: "EUR", Symbol: "€", SymbolFirst: true, DecimalPlaces: 2, ThousandsSep: ".", DecimalSep: ","},
}

// DefaultCurrency is used when a configured code is not in the table.
var DefaultCurrency = Currencies["COP"]

// GetCurrency returns the currency for a code, or the default if unknown.
func GetCurrency(code string) Currency {
	if c, ok := Currencies[code]; ok {
		return c
	}
	return DefaultCurrency
}

// minorPerMajor returns the scale factor between major and minor units.
func (c Currency) minorPerMajor() int64 {
	scale := int64(1)
	for i := 0; i < c.DecimalPlaces; i++ {
		scale *= 10
	}
	return scale
}

// FromMinor creates a Money value from minor units.
func FromMinor(n int64) Money {
	return Money(n)
}

// Units creates a Money value from whole major units of the currency.
func Units(n int64, c Currency) Money {
	return Money(n * c.minorPerMajor())
}

// Minor returns the value in minor units (the underlying representation).
func (m Money) Minor() int64 {
	return int64(m)
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns the difference of two Money values.
func (m Money) Sub(other Money) Money {
	return m - other
}

// Mul multiplies by an integer.
func (m Money) Mul(n int64) Money {
	return Money(int64(m) * n)
}

// IsPositive returns true if the value is greater than zero.
func (m Money) IsPositive() bool {
	return m > 0
}

// Cmp compares two Money values: -1 if m < other, 0 if equal, 1 if m > other.
func (m Money) Cmp(other Money) int {
	switch {
	case m < other:
		return -1
	case m > other:
		return 1
	default:
		return 0
	}
}

// String returns a plain representation without currency decoration,
// e.g. "500000" or "-12.50" depending on nothing but the raw minor units.
func (m Money) String() string {
	return strconv.FormatInt(int64(m), 10)
}

// Format renders the value with the currency's symbol and separators.
func (m Money) Format(c Currency) string {
	negative := m < 0
	if negative {
		m = -m
	}

	scale := c.minorPerMajor()
	whole := int64(m) / scale
	frac := int64(m) % scale

	result := formatWithSeparator(whole, c.ThousandsSep)
	if c.DecimalPlaces > 0 {
		result += c.DecimalSep + fmt.Sprintf("%0*d", c.DecimalPlaces, frac)
	}

	if c.SymbolFirst {
		result = c.Symbol + result
	} else {
		result = result + " " + c.Symbol
	}

	if negative {
		result = "-" + result
	}
	return result
}

// formatWithSeparator adds thousands separators to a non-negative number.
func formatWithSeparator(n int64, sep string) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 || sep == "" {
		return str
	}

	var result strings.Builder
	startOffset := len(str) % 3
	if startOffset == 0 {
		startOffset = 3
	}

	result.WriteString(str[:startOffset])
	for i := startOffset; i < len(str); i += 3 {
		result.WriteString(sep)
		result.WriteString(str[i : i+3])
	}
	return result.String()
}
