// Package ui provides styled terminal output for the atm CLI.
// It uses the Charm.sh ecosystem for styling with automatic fallback to
// plain text for non-TTY environments, so scripted sessions and tests see
// the bare terminal contract.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// UI holds the terminal state and provides styled output methods.
type UI struct {
	IsTTY   bool
	Width   int
	NoColor bool
}

// noColorEnv is the standard environment variable to disable colors.
var noColorEnv = os.Getenv("NO_COLOR") != ""

// New creates a new UI instance with TTY detection.
func New() *UI {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	width := 80
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	return &UI{
		IsTTY:   isTTY,
		Width:   width,
		NoColor: noColorEnv,
	}
}

// NewPlain creates a UI that always renders plain text, for piped input
// and tests.
func NewPlain() *UI {
	return &UI{IsTTY: false, Width: 80, NoColor: true}
}

// SetNoColor disables colors and animations.
func (u *UI) SetNoColor(noColor bool) {
	u.NoColor = noColor
}

// shouldStyle returns true if we should use styled output.
func (u *UI) shouldStyle() bool {
	return u.IsTTY && !u.NoColor
}

// Header renders a bordered header box.
func (u *UI) Header(title string) string {
	if !u.shouldStyle() {
		return fmt.Sprintf("=== %s ===", title)
	}

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 2)

	return style.Render(title)
}

// KeyValue renders a styled key-value pair.
func (u *UI) KeyValue(key, value string) string {
	if !u.shouldStyle() {
		return fmt.Sprintf("%-10s %s", key+":", value)
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(12)
	valueStyle := lipgloss.NewStyle().
		Bold(true)

	return "  " + keyStyle.Render(key) + " " + valueStyle.Render(value)
}

// Prompt renders an input prompt label such as "handle:".
func (u *UI) Prompt(label string) string {
	if !u.shouldStyle() {
		return label
	}
	return StylePrompt.Render(label)
}

// Menu renders a numbered option list, one option per line.
func (u *UI) Menu(options []string) string {
	var sb strings.Builder
	for i, opt := range options {
		num := fmt.Sprintf("%d.", i+1)
		if u.shouldStyle() {
			num = StyleMenuNum.Render(num)
		}
		sb.WriteString(num + " " + opt + "\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// ErrorLine renders the single-line error contract: "error: <message>".
func (u *UI) ErrorLine(msg string) string {
	line := "error: " + msg
	if !u.shouldStyle() {
		return line
	}
	return StyleError.Render(line)
}

// Success renders a confirmation message.
func (u *UI) Success(msg string) string {
	if !u.shouldStyle() {
		return msg
	}
	return StyleSuccess.Render(msg)
}

// Muted renders muted/dim text.
func (u *UI) Muted(msg string) string {
	if !u.shouldStyle() {
		return msg
	}
	return StyleMuted.Render(msg)
}
