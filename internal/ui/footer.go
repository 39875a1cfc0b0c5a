package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterData holds the information displayed in the global status bar.
type FooterData struct {
	CellRef     string // e.g. "B7"
	FormulaSrc  string // raw formula source, empty for non-formula cells
	DisplayVal  string // the cell's rendered display value
	FormatName  string // e.g. "Currency", "Date (2)"
	ErrorToken  string // non-empty when the cell holds a formula error
	SelRows     int    // rows spanned by the active selection (0 = none)
	SelCols     int    // cols spanned by the active selection
	ThemeName   string // active theme name
	Message     string // transient status-line message (command result, notice)
}

// RenderFooter draws the global status bar at the bottom of the screen.
// It shows: cell reference, formula/value, format, selection size, any
// transient message, and the quick shortcut hint.
func RenderFooter(d FooterData, width int) string {
	var sections []string

	if d.CellRef != "" {
		sections = append(sections,
			StatusKeyStyle.Render(d.CellRef))
	}

	if d.ErrorToken != "" {
		sections = append(sections, StatusErrorStyle.Render(d.ErrorToken))
	} else if d.FormulaSrc != "" {
		sections = append(sections,
			StatusDimStyle.Render("=")+StatusValStyle.Render(d.FormulaSrc))
	} else if d.DisplayVal != "" {
		sections = append(sections, StatusValStyle.Render(d.DisplayVal))
	}

	if d.FormatName != "" {
		sections = append(sections,
			StatusKeyStyle.Render("format:")+StatusValStyle.Render(" "+d.FormatName))
	}

	if d.SelRows > 1 || d.SelCols > 1 {
		sections = append(sections,
			StatusDimStyle.Render(fmt.Sprintf("%dx%d selected", d.SelRows, d.SelCols)))
	}

	if d.Message != "" {
		sections = append(sections, StatusValStyle.Render(d.Message))
	}

	shortcuts := StatusDimStyle.Render("^S:save  ^O:open  :cmd  ?:help")

	left := strings.Join(sections, StatusSepStyle.Render(""))
	right := shortcuts

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := width - leftWidth - rightWidth - 2
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right

	return StatusBarStyle.Width(width).Render(line)
}
