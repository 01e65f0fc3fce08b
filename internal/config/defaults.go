// Package config contains the teller configuration and its compile-time
// defaults. Edit these values and recompile to tune behavior, or override
// them with a config file / environment (see Load).
package config

// Business rule defaults
const (
	// DailyWithdrawalCap is the per-account ceiling on the sum of
	// successful withdrawals between daily resets, in minor currency units.
	DailyWithdrawalCap = 2_000_000

	// PointValue is the credit per redeemed loyalty point, in whole
	// currency units.
	PointValue = 7

	// CurrencyCode selects display formatting. COP has zero decimal
	// places, so minor units are whole pesos.
	CurrencyCode = "COP"
)

// DefaultCustomers is the demo customer set registered at startup when no
// config file provides one.
var DefaultCustomers = []CustomerSeed{
	{Handle: "Juan", Secret: "1234", AccountNumber: "123456", Balance: 500_000, Points: 100},
	{Handle: "Maria", Secret: "5678", AccountNumber: "654321", Balance: 5_000_000, Points: 200},
	{Handle: "Carlos", Secret: "9012", AccountNumber: "789012", Balance: 850_000, Points: 150},
}
