package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vivebank/atm/internal/bank"
	"github.com/vivebank/atm/internal/config"
	"github.com/vivebank/atm/internal/logging"
	"github.com/vivebank/atm/internal/money"
	"github.com/vivebank/atm/internal/session"
	"github.com/vivebank/atm/internal/ui"
)

// runStart boots the directory from configuration and hands the terminal to
// a single teller session.
//
// Exit-code policy: a clean exit and a business-rule termination both exit
// zero (the error has already been reported on the session output); only
// configuration and internal failures surface as a non-zero exit.
func runStart(cmd *cobra.Command, args []string) error {
	logging.Setup(verbose)

	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, u.ErrorLine(err.Error()))
		return err
	}

	currency := money.GetCurrency(cfg.Currency)

	seeds := make([]bank.Seed, 0, len(cfg.Customers))
	for _, c := range cfg.Customers {
		seeds = append(seeds, bank.Seed{
			Handle:        c.Handle,
			Secret:        c.Secret,
			AccountNumber: c.AccountNumber,
			Balance:       money.FromMinor(c.Balance),
			Points:        c.Points,
		})
	}
	dir := bank.Bootstrap(seeds,
		money.FromMinor(cfg.DailyWithdrawalCap),
		money.Units(cfg.PointValue, currency))

	logging.Log.WithField("customers", dir.Len()).Debug("directory seeded")

	fmt.Println(u.Header("Vivebank Teller"))
	fmt.Println(u.KeyValue("Currency", currency.Code))
	fmt.Println(u.KeyValue("Customers", fmt.Sprintf("%d", dir.Len())))
	fmt.Println()

	opts := []session.Option{session.WithUI(u)}

	// On a real terminal the secret is read without echo.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, session.WithSecretReader(func() (string, bool) {
			b, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return "", false
			}
			return string(b), true
		}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := session.New(dir, currency, opts...)
	if err := s.Run(ctx); err != nil && !bank.IsBusinessError(err) {
		fmt.Fprintln(os.Stderr, u.ErrorLine("unexpected error: "+err.Error()))
		return err
	}
	return nil
}
