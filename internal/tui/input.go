package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cellgrid/tsheet/internal/cellstore"
	"github.com/cellgrid/tsheet/internal/csvio"
)

// handleKey routes keyboard input according to the current modal state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.state {
	case modeDialog:
		return m.handleDialogKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeEdit:
		return m.handleEditKey(msg)
	}

	return m.handleNormalKey(msg)
}

// handleNormalKey processes keys in navigation mode.
func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isKey(msg, tea.KeyCtrlQ) {
		m.quitting = true
		return m, tea.Quit
	}

	if isRune(msg, '?') {
		m.showHelp = true
		return m, nil
	}

	if isKey(msg, tea.KeyCtrlS) {
		if m.lastFile == "" {
			m.message = "No file yet — use :savecsv <path>"
			return m, nil
		}
		m.message = m.cmdSaveCSV([]string{m.lastFile, modeName(m.lastMode)})
		return m, nil
	}

	if isKey(msg, tea.KeyCtrlO) {
		if m.lastFile == "" {
			m.message = "No file yet — use :loadcsv <path>"
			return m, nil
		}
		m.message = m.cmdLoadCSV([]string{m.lastFile, modeName(m.lastMode)})
		return m, nil
	}

	if isKey(msg, tea.KeyCtrlZ) {
		if !m.eng.Undo() {
			m.message = "Nothing to undo"
		} else {
			m.message = ""
		}
		m.triggerRecalc()
		return m, nil
	}

	if isKey(msg, tea.KeyCtrlR) {
		if !m.eng.Redo() {
			m.message = "Nothing to redo"
		} else {
			m.message = ""
		}
		m.triggerRecalc()
		return m, nil
	}

	if isKey(msg, tea.KeyCtrlC) {
		m.doCopy()
		return m, nil
	}
	if isKey(msg, tea.KeyCtrlX) {
		m.doCopy()
		m.doClear()
		return m, nil
	}
	if isKey(msg, tea.KeyCtrlV) {
		m.doPaste()
		return m, nil
	}

	if isRune(msg, 'f') {
		m.dialog.Open()
		m.state = modeDialog
		return m, nil
	}

	if isRune(msg, 't') {
		row, col := m.eng.Cursor()
		m.eng.CycleDateTimeFormat(row, col)
		return m, nil
	}

	if isRune(msg, 'x') {
		m.doClear()
		return m, nil
	}

	if isRune(msg, ':') {
		m.state = modeCommand
		m.cmdBuf = ""
		return m, nil
	}

	if isAltArrow(msg) {
		m.doResize(msg.Type)
		return m, nil
	}

	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight:
		m.navigate(msg.Type, msg.Shift)
		return m, nil
	case tea.KeyTab:
		m.navigate(tea.KeyRight, false)
		return m, nil
	case tea.KeyEnter:
		m.navigate(tea.KeyDown, false)
		return m, nil
	case tea.KeyEsc:
		m.eng.ClearSelection()
		m.message = ""
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		m.state = modeEdit
		m.editBuf = string(msg.Runes)
		return m, nil
	}
	if isRune(msg, '=') {
		m.state = modeEdit
		m.editBuf = "="
		return m, nil
	}

	return m, nil
}

// handleEditKey processes keys while editing the current cell's content.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = modeNormal
		m.editBuf = ""
		return m, nil
	case tea.KeyEnter:
		m.commitEdit()
		m.navigate(tea.KeyDown, false)
		return m, nil
	case tea.KeyBackspace:
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
		return m, nil
	case tea.KeyRunes:
		m.editBuf += string(msg.Runes)
		return m, nil
	case tea.KeySpace:
		m.editBuf += " "
		return m, nil
	}
	return m, nil
}

// commitEdit writes the current edit buffer into the cursor cell, typing it
// per the CSV load contract: leading '=' → formula, else numeric → number,
// else text.
func (m *Model) commitEdit() {
	row, col := m.eng.Cursor()
	text := m.editBuf
	m.editBuf = ""
	m.state = modeNormal

	switch {
	case strings.HasPrefix(text, "="):
		m.eng.SetFormula(row, col, text[1:])
	default:
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			m.eng.SetNumber(row, col, v)
		} else {
			m.eng.SetText(row, col, text)
		}
	}
	m.triggerRecalc()
	m.eng.Recalculate()
}

// handleCommandKey processes keys while the ':' command line is active.
func (m Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = modeNormal
		m.cmdBuf = ""
		return m, nil
	case tea.KeyEnter:
		line := m.cmdBuf
		m.cmdBuf = ""
		m.state = modeNormal
		message, quit := m.runCommand(line)
		m.message = message
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyBackspace:
		if len(m.cmdBuf) > 0 {
			m.cmdBuf = m.cmdBuf[:len(m.cmdBuf)-1]
		}
		return m, nil
	case tea.KeyRunes:
		m.cmdBuf += string(msg.Runes)
		return m, nil
	case tea.KeySpace:
		m.cmdBuf += " "
		return m, nil
	}
	return m, nil
}

// handleDialogKey processes keys when the format-picker dialog is open.
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.dialog.Close()
		m.state = modeNormal
	case tea.KeyUp:
		m.dialog.MoveUp()
	case tea.KeyDown:
		m.dialog.MoveDown()
	case tea.KeyEnter:
		done := m.dialog.Select()
		if done {
			m.applyDialogChoice(m.dialog.Choice.Format, m.dialog.Choice.Style)
			m.state = modeNormal
		}
	}
	return m, nil
}

func (m *Model) applyDialogChoice(f cellstore.Format, style int) {
	if _, ok := m.eng.Selection(); ok {
		m.eng.SetFormatRange(f, style)
		m.message = "Format applied to selection"
		return
	}
	row, col := m.eng.Cursor()
	m.eng.SetFormat(row, col, f, style)
	m.message = "Format applied"
}

// navigate moves the cursor one step, starting or extending the selection
// when shift is held, or clearing it otherwise.
func (m *Model) navigate(key tea.KeyType, shift bool) {
	row, col := m.eng.Cursor()
	switch key {
	case tea.KeyUp:
		row--
	case tea.KeyDown:
		row++
	case tea.KeyLeft:
		col--
	case tea.KeyRight:
		col++
	}

	if shift {
		if _, ok := m.eng.Selection(); !ok {
			cr, cc := m.eng.Cursor()
			m.eng.StartSelection(cr, cc)
		}
		m.eng.ExtendSelection(row, col)
	} else {
		m.eng.ClearSelection()
	}
	m.eng.SetCursor(row, col)
	m.ensureCursorVisible()
}

// doResize adjusts the column/row under the cursor by one cell in the
// resize direction, debouncing the follow-up recalculation trigger so a
// held key doesn't recalculate on every repeat.
func (m *Model) doResize(key tea.KeyType) {
	row, col := m.eng.Cursor()
	switch key {
	case tea.KeyLeft:
		m.eng.ResizeColumns(col, col, -1)
	case tea.KeyRight:
		m.eng.ResizeColumns(col, col, 1)
	case tea.KeyUp:
		m.eng.ResizeRows(row, row, -1)
	case tea.KeyDown:
		m.eng.ResizeRows(row, row, 1)
	}
	m.triggerRecalc()
}

func (m *Model) doClear() {
	if r, ok := m.eng.Selection(); ok {
		for row := r.R0; row <= r.R1; row++ {
			for col := r.C0; col <= r.C1; col++ {
				m.eng.ClearCell(row, col)
			}
		}
	} else {
		row, col := m.eng.Cursor()
		m.eng.ClearCell(row, col)
	}
	m.triggerRecalc()
	m.eng.Recalculate()
}

func (m *Model) doCopy() {
	if _, ok := m.eng.Selection(); ok {
		m.eng.CopyRange()
		m.message = "Range copied"
		return
	}
	row, col := m.eng.Cursor()
	m.eng.CopyCellClipboard(row, col)
	m.message = "Cell copied"
}

func (m *Model) doPaste() {
	row, col := m.eng.Cursor()
	if r, ok := m.eng.Selection(); ok {
		row, col = r.R0, r.C0
	}
	if m.eng.HasRangeClipboard() {
		m.eng.PasteRange(row, col)
	} else {
		m.eng.PasteCellClipboard(row, col)
	}
	m.triggerRecalc()
	m.eng.Recalculate()
	m.message = "Pasted"
}

// ensureCursorVisible scrolls the viewport so the cursor stays on screen.
func (m *Model) ensureCursorVisible() {
	row, col := m.eng.Cursor()
	viewportH := m.height - 2
	if viewportH < 1 {
		viewportH = 1
	}
	if row < m.rowOffset {
		m.rowOffset = row
	} else if row >= m.rowOffset+viewportH-1 {
		m.rowOffset = row - viewportH + 2
	}
	if m.rowOffset < 0 {
		m.rowOffset = 0
	}
	if col < m.colOffset {
		m.colOffset = col
	} else if col >= m.colOffset+8 {
		m.colOffset = col - 8
	}
	if m.colOffset < 0 {
		m.colOffset = 0
	}
}

func modeName(mode csvio.Mode) string {
	if mode == csvio.ModePreserve {
		return "preserve"
	}
	return "flatten"
}
