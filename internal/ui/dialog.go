package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cellgrid/tsheet/internal/cellstore"
)

// FormatChoice describes what the user picked in the format dialog.
type FormatChoice struct {
	Format cellstore.Format
	Style  int
}

// DialogState describes the current step in the format dialog flow.
type DialogState int

const (
	DialogStepFormat DialogState = iota // choose a format family
	DialogStepStyle                     // choose a style variant (date/time/datetime only)
)

var formatFamilies = []struct {
	label  string
	format cellstore.Format
}{
	{"General", cellstore.FormatGeneral},
	{"Number", cellstore.FormatNumber},
	{"Percentage", cellstore.FormatPercentage},
	{"Currency", cellstore.FormatCurrency},
	{"Date", cellstore.FormatDate},
	{"Time", cellstore.FormatTime},
	{"Date + Time", cellstore.FormatDateTime},
}

var dateStyleLabels = []string{"MM/DD/YYYY", "DD/MM/YYYY", "YYYY-MM-DD", "MM/DD/YY", "Mon DD, YYYY", "DD Mon YYYY", "YYYY Mon DD"}
var timeStyleLabels = []string{"12-hour", "24-hour", "24-hour:seconds", "12-hour:seconds"}
var dateTimeStyleLabels = []string{"Short", "Long", "ISO 8601"}

// Dialog is the modal dialog used to pick a cell's format and style.
type Dialog struct {
	Visible bool
	Step    DialogState
	Options []string
	Cursor  int
	Choice  FormatChoice

	chosenFormat cellstore.Format
}

// NewDialog creates an unopened format-picker dialog.
func NewDialog() Dialog {
	return Dialog{}
}

// Open makes the dialog visible and resets state to the format step.
func (d *Dialog) Open() {
	d.Visible = true
	d.Step = DialogStepFormat
	d.Cursor = 0
	d.Options = make([]string, len(formatFamilies))
	for i, f := range formatFamilies {
		d.Options[i] = f.label
	}
	d.Choice = FormatChoice{}
}

// Close hides the dialog.
func (d *Dialog) Close() {
	d.Visible = false
}

// MoveUp moves the cursor up in the current option list.
func (d *Dialog) MoveUp() {
	if d.Cursor > 0 {
		d.Cursor--
	}
}

// MoveDown moves the cursor down in the current option list.
func (d *Dialog) MoveDown() {
	if d.Cursor < len(d.Options)-1 {
		d.Cursor++
	}
}

// Select confirms the current cursor choice.
// Returns true when the dialog flow is complete (Choice is populated).
func (d *Dialog) Select() bool {
	switch d.Step {
	case DialogStepFormat:
		d.chosenFormat = formatFamilies[d.Cursor].format
		styles := styleLabelsFor(d.chosenFormat)
		if styles == nil {
			d.Choice = FormatChoice{Format: d.chosenFormat, Style: 0}
			d.Close()
			return true
		}
		d.advanceToStyleStep(styles)
		return false
	case DialogStepStyle:
		d.Choice = FormatChoice{Format: d.chosenFormat, Style: d.Cursor}
		d.Close()
		return true
	}
	return false
}

// advanceToStyleStep switches the dialog to the style selection step.
func (d *Dialog) advanceToStyleStep(styles []string) {
	d.Step = DialogStepStyle
	d.Cursor = 0
	d.Options = styles
}

func styleLabelsFor(f cellstore.Format) []string {
	switch f {
	case cellstore.FormatDate:
		return dateStyleLabels
	case cellstore.FormatTime:
		return timeStyleLabels
	case cellstore.FormatDateTime:
		return dateTimeStyleLabels
	default:
		return nil
	}
}

// Render draws the dialog box.
func (d *Dialog) Render(screenW, screenH int) string {
	if !d.Visible {
		return ""
	}

	var b strings.Builder

	switch d.Step {
	case DialogStepFormat:
		b.WriteString(DialogTitle.Render("Cell Format"))
		b.WriteByte('\n')
		b.WriteString(DialogHint.Render("Choose a format:"))
	case DialogStepStyle:
		b.WriteString(DialogTitle.Render("Format Style"))
		b.WriteByte('\n')
		b.WriteString(DialogHint.Render("Choose a style:"))
	}
	b.WriteByte('\n')
	b.WriteByte('\n')

	for i, opt := range d.Options {
		prefix := "  "
		style := DialogOption
		if i == d.Cursor {
			prefix = "▸ "
			style = DialogOptionSelected
		}
		b.WriteString(style.Render(prefix + opt))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(DialogHint.Render("↑/↓: navigate  Enter: select  Esc: cancel"))

	box := DialogOverlay.Render(b.String())

	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}
