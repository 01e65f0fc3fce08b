package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vivebank/atm/internal/money"
)

func TestPlainRendering(t *testing.T) {
	u := NewPlain()

	t.Run("menu is bare numbered lines", func(t *testing.T) {
		menu := u.Menu([]string{"query balance", "exit"})
		assert.Equal(t, "1. query balance\n2. exit", menu)
	})

	t.Run("error line keeps the contract prefix", func(t *testing.T) {
		assert.Equal(t, "error: insufficient funds", u.ErrorLine("insufficient funds"))
	})

	t.Run("prompts and confirmations pass through unstyled", func(t *testing.T) {
		assert.Equal(t, "handle:", u.Prompt("handle:"))
		assert.Equal(t, "ok", u.Success("ok"))
		assert.Equal(t, "hint", u.Muted("hint"))
	})

	t.Run("header falls back to ascii", func(t *testing.T) {
		assert.Equal(t, "=== Vivebank Teller ===", u.Header("Vivebank Teller"))
	})

	t.Run("key-value aligns plainly", func(t *testing.T) {
		assert.Equal(t, "Currency:  COP", u.KeyValue("Currency", "COP"))
	})

	t.Run("cap gauge is suppressed", func(t *testing.T) {
		c := money.Currencies["COP"]
		assert.Empty(t, u.CapGauge(money.FromMinor(100), money.FromMinor(1000), c))
	})
}

func TestCapGaugeGuardsZeroLimit(t *testing.T) {
	u := &UI{IsTTY: true, Width: 80}
	c := money.Currencies["COP"]
	assert.Empty(t, u.CapGauge(money.FromMinor(100), money.FromMinor(0), c))
}
