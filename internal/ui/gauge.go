package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vivebank/atm/internal/money"
)

// CapGauge renders a one-line gauge of daily withdrawal cap consumption.
// Returns the empty string on unstyled terminals so scripted sessions only
// see the bare contract lines.
func (u *UI) CapGauge(used, limit money.Money, c money.Currency) string {
	if !u.shouldStyle() || limit <= 0 {
		return ""
	}

	pct := float64(used.Minor()) / float64(limit.Minor())
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	labelStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	return fmt.Sprintf("%s %s %s",
		labelStyle.Render("daily cap"),
		bar.ViewAs(pct),
		labelStyle.Render(fmt.Sprintf("%s / %s", used.Format(c), limit.Format(c))),
	)
}
