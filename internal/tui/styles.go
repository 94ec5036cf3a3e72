package tui

import "github.com/charmbracelet/lipgloss"

// StyleID names a cell style on the canvas.
type StyleID int

// Canvas styles. Key highlights follow the order required, pressed, flash.
const (
	StyleDefault StyleID = iota
	StyleRequired
	StylePressed
	StyleCorrect
	StyleMismatch
	StyleHeading
	StyleTarget
	StyleCursor
	StyleTyped
	StyleNotice
	StyleFooter
)

var (
	keyBackground = lipgloss.Color("#F0F0F0")

	defaultStyles = map[StyleID]lipgloss.Style{
		StyleRequired: lipgloss.NewStyle().Foreground(lipgloss.Color("#1F5FBF")).Background(keyBackground),
		StylePressed:  lipgloss.NewStyle().Foreground(lipgloss.Color("#A23CA2")).Background(keyBackground),
		StyleCorrect:  lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8B3A")).Background(keyBackground),
		StyleMismatch: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Background(keyBackground),
		StyleHeading:  lipgloss.NewStyle().Bold(true).Underline(true),
		StyleTarget:   lipgloss.NewStyle().Bold(true),
		StyleCursor:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#C89A3A")),
		StyleTyped:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		StyleNotice:   lipgloss.NewStyle().Bold(true),
		StyleFooter:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
	}
)
