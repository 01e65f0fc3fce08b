package bank

import (
	"github.com/vivebank/atm/internal/money"
)

// Account is the value-bearing record behind one customer: a balance, a
// running daily-withdrawal accumulator, and a loyalty point balance.
// All mutations are check-then-commit: a failed operation leaves every
// field exactly as it was.
type Account struct {
	number     string
	balance    money.Money
	dailyCap   money.Money
	withdrawn  money.Money // sum of successful withdrawals since last reset
	points     int
	pointValue money.Money // credit per redeemed point
}

// NewAccount creates an account with an opaque account number, an opening
// balance, and an opening loyalty point balance. The daily withdrawal cap
// and per-point redemption value come from teller configuration.
func NewAccount(number string, balance money.Money, points int, dailyCap, pointValue money.Money) *Account {
	return &Account{
		number:     number,
		balance:    balance,
		dailyCap:   dailyCap,
		points:     points,
		pointValue: pointValue,
	}
}

// Number returns the immutable account number.
func (a *Account) Number() string { return a.number }

// Balance returns the current balance.
func (a *Account) Balance() money.Money { return a.balance }

// Points returns the current loyalty point balance.
func (a *Account) Points() int { return a.points }

// WithdrawnToday returns the sum of successful withdrawals since the last
// daily reset.
func (a *Account) WithdrawnToday() money.Money { return a.withdrawn }

// DailyCap returns the daily withdrawal cap.
func (a *Account) DailyCap() money.Money { return a.dailyCap }

// Deposit credits the account. The amount must be positive; deposits never
// fail on business rules.
func (a *Account) Deposit(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw debits the account and counts the amount against the daily cap.
// The debit and the accumulator update commit together or not at all.
func (a *Account) Withdraw(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.Cmp(a.balance) > 0 {
		return ErrInsufficientFunds
	}
	if a.withdrawn.Add(amount).Cmp(a.dailyCap) > 0 {
		return ErrDailyCapExceeded
	}
	a.balance = a.balance.Sub(amount)
	a.withdrawn = a.withdrawn.Add(amount)
	return nil
}

// Transfer moves funds to another account. Transfers are not counted
// against the daily withdrawal cap. Self-transfer is rejected by identity.
func (a *Account) Transfer(amount money.Money, dest *Account) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if dest == a {
		return ErrSameAccount
	}
	if amount.Cmp(a.balance) > 0 {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return dest.Deposit(amount)
}

// RedeemPoints converts loyalty points into balance at the configured
// per-point value. Returns the credited amount. The point debit and the
// balance credit commit together or not at all.
func (a *Account) RedeemPoints(points int) (money.Money, error) {
	if points <= 0 {
		return 0, ErrInvalidAmount
	}
	if points > a.points {
		return 0, ErrInsufficientPoints
	}
	credit := a.pointValue.Mul(int64(points))
	a.points -= points
	a.balance = a.balance.Add(credit)
	return credit, nil
}

// ResetDailyWithdrawal zeroes the daily withdrawal accumulator. The teller
// exposes this for an external day-boundary trigger; nothing in-process
// schedules it.
func (a *Account) ResetDailyWithdrawal() {
	a.withdrawn = 0
}
