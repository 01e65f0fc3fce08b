package bank

import (
	"github.com/vivebank/atm/internal/money"
)

// Directory is the process-local registry of customers, keyed by handle.
// It is built once at bootstrap and only grows.
type Directory struct {
	customers map[string]*Customer
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{customers: make(map[string]*Customer)}
}

// AddCustomer registers a customer. Duplicate handles are a silent no-op;
// the first-inserted customer wins.
func (d *Directory) AddCustomer(c *Customer) {
	if _, exists := d.customers[c.Handle()]; exists {
		return
	}
	d.customers[c.Handle()] = c
}

// Authenticate resolves a handle and checks its secret. An unknown handle
// and a wrong secret are deliberately indistinguishable to callers, so a
// login failure never leaks whether the handle exists.
func (d *Directory) Authenticate(handle, secret string) (*Customer, error) {
	c, ok := d.customers[handle]
	if !ok || !c.Authenticate(secret) {
		return nil, ErrAuthenticationFailed
	}
	return c, nil
}

// Exists reports whether a handle is registered.
func (d *Directory) Exists(handle string) bool {
	_, ok := d.customers[handle]
	return ok
}

// Get returns the customer for a handle.
func (d *Directory) Get(handle string) (*Customer, error) {
	c, ok := d.customers[handle]
	if !ok {
		return nil, ErrUnknownCustomer
	}
	return c, nil
}

// Len returns the number of registered customers.
func (d *Directory) Len() int {
	return len(d.customers)
}

// Seed describes one bootstrap customer.
type Seed struct {
	Handle        string
	Secret        string
	AccountNumber string
	Balance       money.Money
	Points        int
}

// Bootstrap builds a directory from seed entries. Each seed customer gets
// its own account with the shared daily cap and point value.
func Bootstrap(seeds []Seed, dailyCap, pointValue money.Money) *Directory {
	d := NewDirectory()
	for _, s := range seeds {
		account := NewAccount(s.AccountNumber, s.Balance, s.Points, dailyCap, pointValue)
		d.AddCustomer(NewCustomer(s.Handle, s.Secret, account))
	}
	return d
}
