// Package session drives one authenticated teller conversation: it
// authenticates a customer against the directory, then dispatches menu
// operations onto the customer's account until the user exits.
//
// Failure semantics are asymmetric by contract: malformed input is reported
// and the loop continues, while business rule failures (insufficient funds,
// daily cap, insufficient points) terminate the session.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vivebank/atm/internal/bank"
	"github.com/vivebank/atm/internal/logging"
	"github.com/vivebank/atm/internal/money"
	"github.com/vivebank/atm/internal/ui"
)

// menuOptions is the operation menu, printed every iteration. Selector N
// maps to menuOptions[N-1].
var menuOptions = []string{
	"query balance",
	"withdraw",
	"transfer",
	"query points",
	"redeem points",
	"exit",
}

// Session is a single-threaded dispatch loop for one authenticated user.
type Session struct {
	dir      *bank.Directory
	currency money.Currency

	in  *bufio.Scanner
	out io.Writer
	ui  *ui.UI
	log *logrus.Logger

	// readSecret reads the credential at login. On a real TTY the command
	// layer swaps in a hidden password reader.
	readSecret func() (string, bool)

	customer *bank.Customer
	running  bool
}

// Option customizes a Session.
type Option func(*Session)

// WithInput sets the input stream (default os.Stdin).
func WithInput(r io.Reader) Option {
	return func(s *Session) { s.in = bufio.NewScanner(r) }
}

// WithOutput sets the output stream (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.out = w }
}

// WithUI sets the output styler.
func WithUI(u *ui.UI) Option {
	return func(s *Session) { s.ui = u }
}

// WithSecretReader overrides how the login secret is read.
func WithSecretReader(f func() (string, bool)) Option {
	return func(s *Session) { s.readSecret = f }
}

// New creates a session over the given directory.
func New(dir *bank.Directory, currency money.Currency, opts ...Option) *Session {
	s := &Session{
		dir:      dir,
		currency: currency,
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
		ui:       ui.New(),
		log:      logging.Log,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.readSecret == nil {
		s.readSecret = func() (string, bool) { return s.readLine() }
	}
	return s
}

// Run authenticates and drives the menu loop until exit, end of input,
// cancellation, or a terminal business error. The returned error is nil on
// clean exit; otherwise it has already been reported on the output stream.
func (s *Session) Run(ctx context.Context) error {
	customer, err := s.login()
	if err != nil {
		s.report(err)
		return err
	}

	s.customer = customer
	s.running = true
	defer func() { s.customer = nil }()

	s.log.WithField("handle", customer.Handle()).Info("session started")
	fmt.Fprintf(s.out, "welcome, %s\n", customer.Handle())

	for s.running {
		if ctx.Err() != nil {
			s.log.Info("session canceled")
			return nil
		}

		fmt.Fprintln(s.out, s.ui.Menu(menuOptions))

		line, ok := s.readLine()
		if !ok {
			// End of input is a clean exit.
			break
		}

		selector, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || selector < 1 || selector > len(menuOptions) {
			s.reportInvalid("invalid option")
			continue
		}

		s.log.WithFields(logrus.Fields{
			"handle":    customer.Handle(),
			"operation": menuOptions[selector-1],
		}).Debug("dispatching operation")

		if err := s.dispatch(selector); err != nil {
			s.report(err)
			s.log.WithError(err).Warn("session terminated by business error")
			return err
		}
	}

	s.log.WithField("handle", customer.Handle()).Info("session ended")
	return nil
}

// login prompts for handle and secret and authenticates against the
// directory. Missing input and failed authentication are deliberately the
// same error so a login failure never reveals whether the handle exists.
func (s *Session) login() (*bank.Customer, error) {
	fmt.Fprintln(s.out, s.ui.Prompt("handle:"))
	handle, ok := s.readLine()
	if !ok || strings.TrimSpace(handle) == "" {
		return nil, bank.ErrAuthenticationFailed
	}

	fmt.Fprintln(s.out, s.ui.Prompt("secret:"))
	secret, ok := s.readSecret()
	if !ok || secret == "" {
		return nil, bank.ErrAuthenticationFailed
	}

	return s.dir.Authenticate(strings.TrimSpace(handle), secret)
}

// dispatch runs one menu operation. A non-nil return is a terminal
// business error; local validation failures are handled inside the
// handlers and return nil.
func (s *Session) dispatch(selector int) error {
	account := s.customer.Account()

	switch selector {
	case 1:
		fmt.Fprintln(s.out, account.Balance().Format(s.currency))
	case 2:
		return s.withdraw(account)
	case 3:
		return s.transfer(account)
	case 4:
		fmt.Fprintln(s.out, strconv.Itoa(account.Points()))
	case 5:
		return s.redeem(account)
	case 6:
		s.running = false
	}
	return nil
}

func (s *Session) withdraw(account *bank.Account) error {
	amount, ok := s.promptAmount()
	if !ok {
		return nil
	}

	if err := account.Withdraw(amount); err != nil {
		return err
	}

	fmt.Fprintln(s.out, s.ui.Success("ok"))
	if gauge := s.ui.CapGauge(account.WithdrawnToday(), account.DailyCap(), s.currency); gauge != "" {
		fmt.Fprintln(s.out, gauge)
	}
	return nil
}

func (s *Session) transfer(account *bank.Account) error {
	fmt.Fprintln(s.out, s.ui.Prompt("destination handle:"))
	dest, ok := s.readLine()
	dest = strings.TrimSpace(dest)
	if !ok || dest == "" {
		s.reportInvalid("invalid destination")
		return nil
	}

	amount, ok := s.promptAmount()
	if !ok {
		return nil
	}

	if !s.dir.Exists(dest) {
		s.reportInvalid("destination not found")
		return nil
	}
	destCustomer, err := s.dir.Get(dest)
	if err != nil {
		return err
	}

	if err := account.Transfer(amount, destCustomer.Account()); err != nil {
		return err
	}

	fmt.Fprintln(s.out, s.ui.Success("ok"))
	return nil
}

func (s *Session) redeem(account *bank.Account) error {
	fmt.Fprintln(s.out, s.ui.Prompt("points:"))
	line, ok := s.readLine()
	if !ok {
		s.reportInvalid("invalid point count")
		return nil
	}

	points, err := money.ParsePoints(line)
	if err != nil || points <= 0 {
		s.reportInvalid("invalid point count")
		return nil
	}

	credit, err := account.RedeemPoints(points)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, s.ui.Success(fmt.Sprintf("redeemed %d points for %s", points, credit.Format(s.currency))))
	return nil
}

// promptAmount reads and validates a positive monetary amount. Returns
// ok=false after reporting if the input is unusable; the caller continues
// the loop.
func (s *Session) promptAmount() (money.Money, bool) {
	fmt.Fprintln(s.out, s.ui.Prompt("amount:"))
	line, ok := s.readLine()
	if !ok {
		s.reportInvalid("invalid amount")
		return 0, false
	}

	amount, err := money.ParseAmount(line, s.currency)
	if err != nil || !amount.IsPositive() {
		s.reportInvalid("invalid amount")
		return 0, false
	}
	return amount, true
}

// readLine reads one input line. ok is false at end of input.
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// report prints the one-line error contract for terminal errors.
func (s *Session) report(err error) {
	fmt.Fprintln(s.out, s.ui.ErrorLine(err.Error()))
}

// reportInvalid prints a recoverable validation message; the loop continues.
func (s *Session) reportInvalid(msg string) {
	fmt.Fprintln(s.out, s.ui.ErrorLine(msg))
	s.log.WithField("reason", msg).Debug("input validation failed")
}
