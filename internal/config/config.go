package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all configuration for the teller.
type Config struct {
	// Display currency (ISO 4217 code)
	Currency string `mapstructure:"currency" validate:"required,len=3,alpha"`

	// Daily withdrawal cap in minor currency units
	DailyWithdrawalCap int64 `mapstructure:"daily_withdrawal_cap" validate:"gt=0"`

	// Credit per redeemed loyalty point, in whole currency units
	PointValue int64 `mapstructure:"point_value" validate:"gt=0"`

	// Customers registered at startup
	Customers []CustomerSeed `mapstructure:"customers" validate:"min=1,dive"`

	// Logging
	Verbose bool `mapstructure:"verbose"`
}

// CustomerSeed describes one bootstrap customer.
type CustomerSeed struct {
	Handle        string `mapstructure:"handle" validate:"required"`
	Secret        string `mapstructure:"secret" validate:"required"`
	AccountNumber string `mapstructure:"account_number" validate:"required,numeric"`
	Balance       int64  `mapstructure:"balance" validate:"gte=0"`
	Points        int    `mapstructure:"points" validate:"gte=0"`
}

// DefaultConfig returns a configuration with the compile-time defaults.
// The customer slice is copied so callers can adjust it freely.
func DefaultConfig() *Config {
	customers := make([]CustomerSeed, len(DefaultCustomers))
	copy(customers, DefaultCustomers)
	return &Config{
		Currency:           CurrencyCode,
		DailyWithdrawalCap: DailyWithdrawalCap,
		PointValue:         PointValue,
		Customers:          customers,
	}
}

var validate = validator.New()

// Load reads configuration from viper into a Config struct, starting from
// defaults. An optional config file path may have been set on viper by the
// command layer; environment variables prefixed ATM_ override file values.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetEnvPrefix("atm")
	viper.AutomaticEnv()

	// The command layer points viper at a file with --config; without one
	// the compile-time defaults stand alone.
	if viper.ConfigFileUsed() != "" {
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tag constraints and
// the cross-field rules the tags cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seen := make(map[string]bool, len(c.Customers))
	for _, cust := range c.Customers {
		if seen[cust.Handle] {
			// Duplicate seeds are legal at the Directory level (first
			// wins), but in a config file they are almost certainly a
			// mistake worth rejecting early.
			return fmt.Errorf("invalid configuration: duplicate customer handle %q", cust.Handle)
		}
		seen[cust.Handle] = true
	}
	return nil
}
