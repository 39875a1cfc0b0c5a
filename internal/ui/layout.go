package ui

// Rect describes a rectangular region on screen (0-indexed).
type Rect struct {
	X, Y          int // top-left corner
	Width, Height int
}

// RowHeaderWidth is the fixed width of the row-number gutter.
const RowHeaderWidth = 5

// ViewportLayout describes how the screen is divided between the grid
// viewport, status bar, and command line.
type ViewportLayout struct {
	Grid    Rect
	Status  Rect
	Command Rect
}

// ComputeLayout splits a screenWidth x screenHeight terminal into the grid
// viewport (top), a one-line status bar, and a one-line command line at the
// bottom. The command line is only reserved when showCommand is true.
func ComputeLayout(screenWidth, screenHeight int, showCommand bool) ViewportLayout {
	cmdHeight := 0
	if showCommand {
		cmdHeight = 1
	}
	statusHeight := 1
	gridHeight := screenHeight - statusHeight - cmdHeight
	if gridHeight < 0 {
		gridHeight = 0
	}

	layout := ViewportLayout{
		Grid: Rect{X: 0, Y: 0, Width: screenWidth, Height: gridHeight},
	}
	layout.Status = Rect{X: 0, Y: gridHeight, Width: screenWidth, Height: statusHeight}
	if showCommand {
		layout.Command = Rect{X: 0, Y: gridHeight + statusHeight, Width: screenWidth, Height: cmdHeight}
	}
	return layout
}

// VisibleColumns returns the last column index (inclusive) that fits within
// viewportWidth starting from startCol, given each column's width plus one
// separator character, after reserving RowHeaderWidth for the row gutter.
// widthOf returns a column's configured width.
func VisibleColumns(startCol, totalCols, viewportWidth int, widthOf func(col int) int) int {
	remaining := viewportWidth - RowHeaderWidth
	end := startCol
	for col := startCol; col < totalCols; col++ {
		w := widthOf(col) + 1
		if w > remaining && col > startCol {
			break
		}
		remaining -= w
		end = col
		if remaining <= 0 {
			break
		}
	}
	return end
}

// VisibleRows returns the last row index (inclusive) that fits within
// viewportHeight starting from startRow, reserving one line for the column
// header.
func VisibleRows(startRow, totalRows, viewportHeight int) int {
	usable := viewportHeight - 1
	if usable < 1 {
		usable = 1
	}
	end := startRow + usable - 1
	if end >= totalRows {
		end = totalRows - 1
	}
	if end < startRow {
		end = startRow
	}
	return end
}

// EnsureVisible adjusts the scroll offset so that cursor stays within
// [offset, offset+visible-1], scrolling the minimum amount necessary.
func EnsureVisible(cursor, offset, visible int) int {
	if cursor < offset {
		return cursor
	}
	if cursor > offset+visible-1 {
		return cursor - visible + 1
	}
	return offset
}
