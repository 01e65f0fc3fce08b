// Package bank holds the in-memory teller domain: accounts, customers, and
// the customer directory, together with the business error taxonomy.
package bank

import "errors"

// Business rule errors. The session treats every one of these as a terminal
// outcome: it prints the error and ends the session with a clean exit.
var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrDailyCapExceeded     = errors.New("daily withdrawal cap exceeded")
	ErrInsufficientPoints   = errors.New("insufficient points")
	ErrUnknownCustomer      = errors.New("unknown customer")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrSameAccount          = errors.New("source and destination accounts are the same")
)

// IsBusinessError reports whether err is an expected business rule failure
// rather than an internal fault. Business failures exit the process with
// code 0; everything else is an unexpected error and exits non-zero.
func IsBusinessError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrAuthenticationFailed) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrDailyCapExceeded) ||
		errors.Is(err, ErrInsufficientPoints) ||
		errors.Is(err, ErrUnknownCustomer) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrSameAccount)
}
