package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/ref"
	"github.com/cellgrid/tsheet/internal/ui"
)

// View renders the entire UI.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.width == 0 || m.height == 0 {
		return "Initialising…"
	}

	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, ShortcutHelp())
	}

	if m.dialog.Visible {
		return m.dialog.Render(m.width, m.height)
	}

	return m.renderNormal()
}

// renderNormal draws the grid viewport, the status bar, and (when active)
// the command or cell-edit line.
func (m Model) renderNormal() string {
	showCommand := m.state == modeCommand || m.state == modeEdit
	layout := ui.ComputeLayout(m.width, m.height, showCommand)

	grid := m.renderGrid(layout.Grid.Width, layout.Grid.Height)
	status := ui.RenderFooter(m.footerData(), layout.Status.Width)

	if !showCommand {
		return lipgloss.JoinVertical(lipgloss.Left, grid, status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, grid, status, m.renderInputLine(layout.Command.Width))
}

// renderInputLine draws the command line or cell-edit buffer.
func (m Model) renderInputLine(width int) string {
	prefix := ":"
	buf := m.cmdBuf
	if m.state == modeEdit {
		prefix = ref.IndexToLabel(m.eng.Cursor()) + " "
		buf = m.editBuf
	}
	line := ui.CommandLinePrefix.Render(prefix) + ui.CommandLineStyle.Render(buf)
	return lipgloss.NewStyle().Width(width).Render(line)
}

// renderGrid draws the column header row, the row-numbered cell rows, and
// scrolls the viewport so the cursor stays visible.
func (m Model) renderGrid(width, height int) string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	rows, cols := m.eng.Grid.Rows(), m.eng.Grid.Cols()
	lastCol := ui.VisibleColumns(m.colOffset, cols, width, m.eng.ColumnWidth)
	lastRow := ui.VisibleRows(m.rowOffset, rows, height)

	var b strings.Builder
	b.WriteString(m.renderColumnHeader(m.colOffset, lastCol))

	for row := m.rowOffset; row <= lastRow; row++ {
		b.WriteByte('\n')
		b.WriteString(m.renderRow(row, m.colOffset, lastCol))
	}

	return b.String()
}

func (m Model) renderColumnHeader(firstCol, lastCol int) string {
	_, curCol := m.eng.Cursor()
	header := ui.GridHeaderStyle.Width(ui.RowHeaderWidth).Render("")
	for col := firstCol; col <= lastCol; col++ {
		label := columnLabel(col)
		style := ui.GridHeaderStyle
		if col == curCol {
			style = ui.GridHeaderActive
		}
		header += style.Width(m.eng.ColumnWidth(col)).Render(label)
	}
	return header
}

func (m Model) renderRow(row, firstCol, lastCol int) string {
	curRow, curCol := m.eng.Cursor()
	rowStyle := ui.GridHeaderStyle
	if row == curRow {
		rowStyle = ui.GridHeaderActive
	}
	line := rowStyle.Width(ui.RowHeaderWidth).Render(fmt.Sprintf("%d", row+1))

	for col := firstCol; col <= lastCol; col++ {
		line += m.renderCell(row, col, row == curRow, col == curCol)
	}
	return line
}

func (m Model) renderCell(row, col int, curRow, curCol bool) string {
	w := m.eng.ColumnWidth(col)
	text := m.eng.DisplayValue(row, col)
	if len(text) > w {
		text = text[:w]
	}

	style := ui.CellNormal
	plain := true
	if kind, ok := m.eng.CellKind(row, col); ok && kind == cellstore.KindError {
		style = ui.CellError
		plain = false
	}
	if m.eng.IsInSelection(row, col) {
		style = ui.CellSelected
		plain = false
	}
	if curRow && curCol {
		style = ui.CellCursor
		plain = false
	}

	if plain {
		textColor, bgColor := m.eng.CellColors(row, col)
		if textColor != cellstore.ColorDefault {
			style = style.Foreground(ui.ColorFromIndex(textColor))
		}
		if bgColor != cellstore.ColorDefault {
			style = style.Background(ui.ColorFromIndex(bgColor))
		}
	}

	return style.Width(w).Render(text)
}

func columnLabel(col int) string {
	label := ref.IndexToLabel(0, col)
	return strings.TrimSuffix(label, "1")
}

// footerData assembles the status bar's contents from the cursor cell.
func (m Model) footerData() ui.FooterData {
	row, col := m.eng.Cursor()
	f, style := m.eng.CellFormat(row, col)
	selRows, selCols := 0, 0
	if r, ok := m.eng.Selection(); ok {
		c := r.Canonicalize()
		selRows = c.R1 - c.R0 + 1
		selCols = c.C1 - c.C0 + 1
	}

	return ui.FooterData{
		CellRef:    m.currentCellRef(),
		FormulaSrc: m.eng.FormulaSource(row, col),
		DisplayVal: m.eng.DisplayValue(row, col),
		FormatName: formatName(f, style),
		ErrorToken: m.eng.ErrorToken(row, col),
		SelRows:    selRows,
		SelCols:    selCols,
		ThemeName:  m.cfg.Theme,
		Message:    m.message,
	}
}

func formatName(f cellstore.Format, style int) string {
	switch f {
	case cellstore.FormatGeneral:
		return ""
	case cellstore.FormatNumber:
		return "Number"
	case cellstore.FormatPercentage:
		return "Percentage"
	case cellstore.FormatCurrency:
		return "Currency"
	case cellstore.FormatDate:
		return fmt.Sprintf("Date (%d)", style)
	case cellstore.FormatTime:
		return fmt.Sprintf("Time (%d)", style)
	case cellstore.FormatDateTime:
		return fmt.Sprintf("Date+Time (%d)", style)
	default:
		return ""
	}
}
