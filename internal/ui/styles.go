// Package ui provides all Bubbletea components for the tsheet terminal
// spreadsheet presenter: the grid viewport, status bar, command line, and
// modal dialogs.
package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Colour palette
// ---------------------------------------------------------------------------

var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // violet-600
	ColorSecondary = lipgloss.Color("#06B6D4") // cyan-500
	ColorSuccess   = lipgloss.Color("#22C55E") // green-500
	ColorWarning   = lipgloss.Color("#F59E0B") // amber-500
	ColorDanger    = lipgloss.Color("#EF4444") // red-500
	ColorMuted     = lipgloss.Color("#6B7280") // gray-500
	ColorBG        = lipgloss.Color("#1E1E2E") // dark background
	ColorSurface   = lipgloss.Color("#313244") // slightly lighter
	ColorText      = lipgloss.Color("#CDD6F4") // light text
	ColorTextDim   = lipgloss.Color("#6C7086") // dim text
	ColorBorder    = lipgloss.Color("#45475A") // subtle border
	ColorHighlight = lipgloss.Color("#F5C2E7") // pink highlight
)

// ---------------------------------------------------------------------------
// Shared styles
// ---------------------------------------------------------------------------

// Grid styles: column/row headers and cell rendering.
var (
	GridHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTextDim).
			Background(ColorSurface).
			Align(lipgloss.Center)

	GridHeaderActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorBG).
				Background(ColorPrimary).
				Align(lipgloss.Center)

	CellNormal = lipgloss.NewStyle().
			Foreground(ColorText)

	CellSelected = lipgloss.NewStyle().
			Foreground(ColorBG).
			Background(ColorHighlight)

	CellCursor = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBG).
			Background(ColorPrimary)

	CellError = lipgloss.NewStyle().
			Foreground(ColorDanger)

	GridBorder = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Status bar styles.
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	StatusValStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	StatusDimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	StatusErrorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorDanger)

	StatusSepStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			SetString(" │ ")
)

// Command-line styles.
var (
	CommandLineStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	CommandLinePrefix = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)
)

// ColorFromIndex maps one of the 16 console color indices (see
// internal/color) to the matching lipgloss ANSI color.
func ColorFromIndex(idx int) lipgloss.Color {
	if idx < 0 || idx > 15 {
		return ColorText
	}
	return lipgloss.Color(strconv.Itoa(idx))
}

// Dialog styles (format picker).
var (
	DialogOverlay = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Width(52)

	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 0, 1, 0)

	DialogOption = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 2)

	DialogOptionSelected = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHighlight).
				Padding(0, 2)

	DialogHint = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)
)
