// Package tui contains the Bubbletea model that drives the tsheet terminal
// spreadsheet presenter: the grid viewport, modal command line, cell editor,
// status bar, and format-picker dialog.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/bep/debounce"

	"github.com/cellgrid/tsheet/internal/chart"
	"github.com/cellgrid/tsheet/internal/color"
	"github.com/cellgrid/tsheet/internal/config"
	"github.com/cellgrid/tsheet/internal/csvio"
	"github.com/cellgrid/tsheet/internal/engine"
	"github.com/cellgrid/tsheet/internal/ref"
	"github.com/cellgrid/tsheet/internal/ui"
)

// mode enumerates the presenter's modal input states.
type mode int

const (
	modeNormal mode = iota
	modeEdit
	modeCommand
	modeDialog
)

// tickMsg fires periodically so the status bar and dirty-generation check
// can refresh without waiting on a key press.
type tickMsg time.Time

// Model is the root application model.
type Model struct {
	cfg    config.Config
	eng    *engine.Sheet
	log    *logrus.Entry

	width  int
	height int

	colOffset int // leftmost visible column
	rowOffset int // topmost visible row

	state mode

	editBuf  string
	cmdBuf   string
	message  string
	lastGen  uint64

	dialog   ui.Dialog
	showHelp bool

	lastFile string
	lastMode csvio.Mode

	quitting bool

	// recalcDebounce coalesces the recalculation trigger during bursts of
	// rapid navigation/resize keystrokes so Recalculate() is not invoked
	// synchronously on every single repeat.
	recalcDebounce func(func())
}

// New creates the initial Model around an already-constructed engine.
func New(cfg config.Config, eng *engine.Sheet, logger *logrus.Logger) Model {
	entry := logrus.NewEntry(logrus.New())
	if logger != nil {
		entry = logger.WithField("component", "tui")
	}
	return Model{
		cfg:            cfg,
		eng:            eng,
		log:            entry,
		dialog:         ui.NewDialog(),
		recalcDebounce: debounce.New(120 * time.Millisecond),
	}
}

// Init is the Bubbletea initialiser. We start a periodic tick to pick up
// generation changes from recalculation.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update processes incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.lastGen = m.eng.Grid.Generation()
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// triggerRecalc schedules a debounced recalculation pass.
func (m *Model) triggerRecalc() {
	m.recalcDebounce(m.eng.Recalculate)
}

// currentCellRef returns the A1-style label of the cursor cell.
func (m Model) currentCellRef() string {
	row, col := m.eng.Cursor()
	return ref.IndexToLabel(row, col)
}

// extractChart pulls a sample stream from the active selection (or the
// single cursor cell when no selection is active) for a chart command.
func (m Model) extractChart() ([]chart.Sample, error) {
	r, ok := m.eng.Selection()
	if !ok {
		row, col := m.eng.Cursor()
		r.R0, r.C0, r.R1, r.C1 = row, col, row, col
	}
	return chart.ExtractRange(m.eng, r)
}

// csvModeFromName parses a mode flag string, defaulting to flatten.
func csvModeFromName(name string) csvio.Mode {
	if name == "preserve" {
		return csvio.ModePreserve
	}
	return csvio.ModeFlatten
}

// parseColorArg validates a color name/hex argument via internal/color.
func parseColorArg(s string) (int, error) {
	return color.Parse(s)
}

// WithFile records path/mode as the model's last-touched file, used by
// Ctrl+S/Ctrl+O quick save/open and by SaveSession.
func (m Model) WithFile(path string, mode csvio.Mode) Model {
	m.lastFile = path
	m.lastMode = mode
	return m
}

// SaveSession persists the current file and cursor position so the next
// run can resume with --resume.
func (m Model) SaveSession() {
	if m.lastFile == "" {
		return
	}
	row, col := m.eng.Cursor()
	_ = config.SaveSession(config.SessionState{
		LastFile: m.lastFile,
		CursorR:  row,
		CursorC:  col,
	})
}
