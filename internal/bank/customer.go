package bank

// Customer binds a human-readable handle and a secret credential to exactly
// one account. Customers are immutable after bootstrap.
type Customer struct {
	handle  string
	secret  string
	account *Account
}

// NewCustomer creates a customer owning the given account.
func NewCustomer(handle, secret string, account *Account) *Customer {
	return &Customer{handle: handle, secret: secret, account: account}
}

// Handle returns the customer's unique handle.
func (c *Customer) Handle() string { return c.handle }

// Authenticate reports whether the candidate secret matches exactly.
func (c *Customer) Authenticate(secret string) bool {
	return c.secret == secret
}

// Account returns the customer's account.
func (c *Customer) Account() *Account { return c.account }
