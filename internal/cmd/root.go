package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool
var noColor bool
var cfgFile string

// rootCmd represents the base command. Running it with no subcommand starts
// an interactive teller session.
var rootCmd = &cobra.Command{
	Use:   "atm",
	Short: "Interactive console teller for a single bank customer",
	Long: `An ATM-style console session.

The teller authenticates one customer against an in-memory directory and
then drives a menu of account operations: balance and loyalty point
queries, withdrawals (subject to a daily cap), transfers to another
customer, and loyalty point redemption.

The demo customer set, the daily withdrawal cap, the redemption value and
the display currency are in internal/config/defaults.go; a config file can
override all of them.

Example usage:
  atm
  atm --config teller.yml
  atm version`,
	RunE: runStart,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors and animations")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: compile-time defaults)")

	// Silence usage on error - we'll print our own messages
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}
