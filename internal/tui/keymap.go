package tui

import tea "github.com/charmbracelet/bubbletea"

// ---------------------------------------------------------------------------
// Key-binding helpers
// ---------------------------------------------------------------------------

// isKey checks whether a tea.KeyMsg matches a given key type.
func isKey(msg tea.KeyMsg, k tea.KeyType) bool {
	return msg.Type == k
}

// isRune checks whether a tea.KeyMsg is a specific rune with no modifier.
func isRune(msg tea.KeyMsg, r rune) bool {
	return msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] == r && !msg.Alt
}

// isAltArrow reports whether msg is an arrow key held with Alt, used for
// the column/row resize shortcut.
func isAltArrow(msg tea.KeyMsg) bool {
	if !msg.Alt {
		return false
	}
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight:
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Shortcut help text (shown in the help overlay)
// ---------------------------------------------------------------------------

// ShortcutHelp returns the full help text displayed when the user presses '?'.
func ShortcutHelp() string {
	return `
╔════════════════════════════════════════════════════════════╗
║                     tsheet – Shortcuts                      ║
╠════════════════════════════════════════════════════════════╣
║                                                              ║
║  Navigation                                                 ║
║    Arrows          Move cursor                              ║
║    Shift+Arrows    Start/extend selection                   ║
║    Alt+Arrows      Resize column/row by 1 under cursor      ║
║    Tab / Enter     Move right / down                         ║
║                                                              ║
║  Editing                                                     ║
║    Any printable   Start editing the current cell           ║
║    =               Start a formula                          ║
║    x               Clear the current cell or selection      ║
║    Ctrl+C / Ctrl+V Copy / paste cell or range                ║
║    Ctrl+X          Cut (copy then clear)                    ║
║    Ctrl+Z / Ctrl+R Undo / redo                               ║
║    f               Open the format picker                   ║
║    t               Cycle the date/time display style        ║
║                                                              ║
║  Commands (press : to enter)                                ║
║    savecsv <path> [flatten|preserve]                        ║
║    loadcsv <path> [flatten|preserve]                        ║
║    format <type> [style]       range format <type>          ║
║    clrtx <color>                clrbg <color>               ║
║    chart line|bar|pie|scatter                                ║
║    q / quit                                                  ║
║                                                              ║
║  General                                                     ║
║    Ctrl+S          Quick-save to last file                  ║
║    Ctrl+O          Open the last file                       ║
║    ?               Show/hide this help                      ║
║    Ctrl+Q          Quit immediately                          ║
║    Esc             Cancel edit / command / dialog            ║
║                                                              ║
╚════════════════════════════════════════════════════════════╝`
}
