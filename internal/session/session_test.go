package session_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivebank/atm/internal/bank"
	"github.com/vivebank/atm/internal/logging"
	"github.com/vivebank/atm/internal/money"
	"github.com/vivebank/atm/internal/session"
	"github.com/vivebank/atm/internal/ui"
)

func TestMain(m *testing.M) {
	logging.Discard()
	os.Exit(m.Run())
}

var cop = money.Currencies["COP"]

// seedDirectory reproduces the demo bootstrap: cap 2,000,000 and 7 pesos
// per loyalty point.
func seedDirectory() *bank.Directory {
	return bank.Bootstrap([]bank.Seed{
		{Handle: "Juan", Secret: "1234", AccountNumber: "123456", Balance: money.FromMinor(500_000), Points: 100},
		{Handle: "Maria", Secret: "5678", AccountNumber: "654321", Balance: money.FromMinor(5_000_000), Points: 200},
		{Handle: "Carlos", Secret: "9012", AccountNumber: "789012", Balance: money.FromMinor(850_000), Points: 150},
	}, money.FromMinor(2_000_000), money.Units(7, cop))
}

// runScript drives a session over scripted input lines and returns the
// plain-text transcript and the session outcome.
func runScript(t *testing.T, dir *bank.Directory, lines ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	s := session.New(dir, cop,
		session.WithInput(strings.NewReader(strings.Join(lines, "\n")+"\n")),
		session.WithOutput(&out),
		session.WithUI(ui.NewPlain()),
	)
	err := s.Run(context.Background())
	return out.String(), err
}

func account(t *testing.T, dir *bank.Directory, handle string) *bank.Account {
	t.Helper()
	c, err := dir.Get(handle)
	require.NoError(t, err)
	return c.Account()
}

func TestLoginAndBalance(t *testing.T) {
	dir := seedDirectory()
	out, err := runScript(t, dir, "Juan", "1234", "1", "6")

	require.NoError(t, err)
	assert.Contains(t, out, "$500.000")
	assert.NotContains(t, out, "error:")
}

func TestWithdrawWithinLimits(t *testing.T) {
	dir := seedDirectory()
	out, err := runScript(t, dir, "Juan", "1234", "2", "200000", "1", "6")

	require.NoError(t, err)
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "$300.000")

	juan := account(t, dir, "Juan")
	assert.Equal(t, money.FromMinor(300_000), juan.Balance())
	assert.Equal(t, money.FromMinor(200_000), juan.WithdrawnToday())
}

func TestWithdrawInsufficientFundsEndsSession(t *testing.T) {
	dir := seedDirectory()
	out, err := runScript(t, dir, "Juan", "1234", "2", "600000")

	assert.ErrorIs(t, err, bank.ErrInsufficientFunds)
	assert.Contains(t, out, "error: insufficient funds")
	assert.Equal(t, money.FromMinor(500_000), account(t, dir, "Juan").Balance())
}

func TestTransfer(t *testing.T) {
	dir := seedDirectory()
	out, err := runScript(t, dir, "Juan", "1234", "3", "Maria", "100000", "1", "6")

	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	juan := account(t, dir, "Juan")
	maria := account(t, dir, "Maria")
	assert.Equal(t, money.FromMinor(400_000), juan.Balance())
	assert.Equal(t, money.FromMinor(5_100_000), maria.Balance())
	// Transfers do not count against the daily withdrawal cap.
	assert.Equal(t, money.FromMinor(0), juan.WithdrawnToday())
}

func TestTransferDestinationNotFound(t *testing.T) {
	dir := seedDirectory()
	out, err := runScript(t, dir, "Juan", "1234", "3", "Nadie", "100000", "6")

	require.NoError(t, err, "a missing destination is a local validation failure, not a session-ending error")
	assert.Contains(t, out, "destination not found")
	assert.Equal(t, money.FromMinor(500_000), account(t, dir, "Juan").Balance())
}

func TestTransferToSelfEndsSession(t *testing.T) {
	dir := seedDirectory()
	out, err := runScript(t, dir, "Juan", "1234", "3", "Juan", "100000")

	assert.ErrorIs(t, err, bank.ErrSameAccount)
	assert.Contains(t, out, "error:")
	assert.Equal(t, money.FromMinor(500_000), account(t, dir, "Juan").Balance())
}

func TestRedeemPoints(t *testing.T) {
	dir := seedDirectory()
	out, err := runScript(t, dir, "Juan", "1234", "5", "40", "1", "6")

	require.NoError(t, err)
	assert.Contains(t, out, "redeemed 40 points for $280")
	assert.Contains(t, out, "$500.280")

	juan := account(t, dir, "Juan")
	assert.Equal(t, 60, juan.Points())
	assert.Equal(t, money.FromMinor(500_280), juan.Balance())
}

func TestQueryPoints(t *testing.T) {
	dir := seedDirectory()
	out, err := runScript(t, dir, "Juan", "1234", "4", "6")

	require.NoError(t, err)
	assert.Contains(t, out, "100")
}

func TestAuthenticationFailure(t *testing.T) {
	dir := seedDirectory()

	t.Run("wrong secret", func(t *testing.T) {
		out, err := runScript(t, dir, "Juan", "wrong")
		assert.ErrorIs(t, err, bank.ErrAuthenticationFailed)
		assert.Contains(t, out, "error: authentication failed")
	})

	t.Run("unknown handle reads identically", func(t *testing.T) {
		out, err := runScript(t, dir, "Nadie", "1234")
		assert.ErrorIs(t, err, bank.ErrAuthenticationFailed)
		assert.Contains(t, out, "error: authentication failed")
	})

	t.Run("empty handle", func(t *testing.T) {
		out, err := runScript(t, dir, "", "1234")
		assert.ErrorIs(t, err, bank.ErrAuthenticationFailed)
		assert.Contains(t, out, "error: authentication failed")
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := runScript(t, dir, "Juan")
		assert.ErrorIs(t, err, bank.ErrAuthenticationFailed)
	})
}

func TestInvalidInputContinuesTheLoop(t *testing.T) {
	dir := seedDirectory()

	t.Run("unparseable selector", func(t *testing.T) {
		out, err := runScript(t, dir, "Juan", "1234", "banana", "1", "6")
		require.NoError(t, err)
		assert.Contains(t, out, "invalid option")
		assert.Contains(t, out, "$500.000")
	})

	t.Run("selector out of range", func(t *testing.T) {
		out, err := runScript(t, dir, "Juan", "1234", "9", "0", "6")
		require.NoError(t, err)
		assert.Contains(t, out, "invalid option")
	})

	t.Run("unparseable withdrawal amount", func(t *testing.T) {
		out, err := runScript(t, dir, "Juan", "1234", "2", "mucho", "1", "6")
		require.NoError(t, err)
		assert.Contains(t, out, "invalid amount")
		assert.Equal(t, money.FromMinor(500_000), account(t, dir, "Juan").Balance())
	})

	t.Run("negative withdrawal amount", func(t *testing.T) {
		out, err := runScript(t, dir, "Juan", "1234", "2", "-100", "6")
		require.NoError(t, err)
		assert.Contains(t, out, "invalid amount")
	})

	t.Run("fractional point count", func(t *testing.T) {
		out, err := runScript(t, dir, "Juan", "1234", "5", "3.5", "6")
		require.NoError(t, err)
		assert.Contains(t, out, "invalid point count")
		assert.Equal(t, 100, account(t, dir, "Juan").Points())
	})
}

func TestEndOfInputIsACleanExit(t *testing.T) {
	dir := seedDirectory()
	out, err := runScript(t, dir, "Juan", "1234", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "$500.000")
}

func TestCanceledContextStopsTheLoop(t *testing.T) {
	dir := seedDirectory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	s := session.New(dir, cop,
		session.WithInput(strings.NewReader("Juan\n1234\n1\n6\n")),
		session.WithOutput(&out),
		session.WithUI(ui.NewPlain()),
	)
	require.NoError(t, s.Run(ctx))
	assert.NotContains(t, out.String(), "$500.000")
}

func TestSecretReaderOverride(t *testing.T) {
	dir := seedDirectory()
	var out bytes.Buffer
	s := session.New(dir, cop,
		session.WithInput(strings.NewReader("Juan\n1\n6\n")),
		session.WithOutput(&out),
		session.WithUI(ui.NewPlain()),
		session.WithSecretReader(func() (string, bool) { return "1234", true }),
	)
	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), "$500.000")
}
