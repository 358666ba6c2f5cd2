package internal

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/x/ansi"

	"github.com/LogFlames/etd"
)

type Mode string

const (
	// Editor modes.
	NORMAL_MODE Mode = "NORMAL"
	INSERT_MODE Mode = "INSERT"

	// Input bytes.
	ESC_KEY       = 0x1b
	DELETE_KEY    = 0x7f
	BACKSPACE_KEY = 0x08
	TAB_KEY       = 0x09
)

// NewEditor returns an editor for the tree rooted at root, with root selected. A nil logger
// discards all records.
func NewEditor(root *Item, logger *slog.Logger) etd.Editor {
	return newEditor(root, logger)
}

func newEditor(root *Item, logger *slog.Logger) *editorImpl {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e := &editorImpl{
		root:        root,
		currentItem: root,
		buf:         NewRenderBuffer(initialRenderBufferCapacity),
		rows:        1,
		cols:        1,
		cursorRow:   1,
		cursorCol:   1,
		logger:      logger,
	}
	// Initialize in NORMAL mode.
	e.swapEditorMode(NORMAL_MODE)
	return e
}

type editorImpl struct {
	root        *Item
	currentItem *Item // Always visible from root.

	buf *RenderBuffer

	// Terminal size.
	rows, cols int

	// The cursor is 1-indexed and always inside the terminal. The row is derived from the row
	// of currentItem after every command, see syncCursor.
	cursorRow, cursorCol int
	windowOffsetRows     int // Number of visible items scrolled off the top of the screen.

	// Mode info.
	mode Mode

	// Different modes are implemented here.
	activeEditorMode EditorMode

	logger *slog.Logger
}

var _ etd.Editor = (*editorImpl)(nil)

func (e *editorImpl) Handle(b byte) error {
	err := e.activeEditorMode.Handle(b)
	e.syncCursor()
	return err
}

func (e *editorImpl) EndOfInput() {
	e.activeEditorMode.EndOfInput()
}

func (e *editorImpl) Resize(rows, cols int) {
	e.rows = max(rows, 1)
	e.cols = max(cols, 1)
	e.syncCursor()
}

func (e *editorImpl) swapEditorMode(mode Mode) {
	e.logger.Debug("swap editor mode", "from", e.mode, "to", mode)
	e.mode = mode
	switch mode {
	case NORMAL_MODE:
		e.activeEditorMode = newNormalEditorMode(e)
	case INSERT_MODE:
		e.activeEditorMode = newInsertEditorMode(e)
		e.placeCursorAfterTitle()
	}
}

// Draw redraws the whole screen: clear, the visible window of the tree, then the cursor.
func (e *editorImpl) Draw(w io.Writer) error {
	e.buf.Reset()
	e.buf.AppendString(ansi.CursorHomePosition)
	e.buf.AppendString(ansi.EraseEntireScreen)

	e.root.RenderWindow(e.buf, 0 /*indent*/, e.currentItem, e.windowOffsetRows, e.rows)
	// A line feed on the bottom row would scroll the whole screen up by one.
	e.buf.TrimSuffix(lineTerminator)

	row, col := e.activeEditorMode.GetCursorRowCol()
	e.buf.AppendString(ansi.CursorPosition(col, row))
	return e.buf.Flush(w)
}

// Close releases the tree. The editor must not be used afterwards.
func (e *editorImpl) Close() {
	if e.root == nil {
		return
	}
	n := e.root.Free()
	e.logger.Debug("released outline", "items", n)
	e.root = nil
	e.currentItem = nil
}

// syncCursor scrolls so the selected item is on screen and moves the cursor row onto it.
func (e *editorImpl) syncCursor() {
	row, ok := e.root.VisibleRow(e.currentItem)
	if !ok {
		// Not reachable through open items; keep the cursor where it is.
		row = e.windowOffsetRows + e.cursorRow
	}

	// Don't leave empty rows at the bottom when the tree got shorter.
	if maxOffset := e.root.VisibleCount() - e.rows; e.windowOffsetRows > maxOffset {
		e.windowOffsetRows = max(maxOffset, 0)
	}
	if row-e.windowOffsetRows > e.rows {
		e.windowOffsetRows = row - e.rows
	} else if row <= e.windowOffsetRows {
		e.windowOffsetRows = row - 1
	}

	e.cursorRow = clamp(row-e.windowOffsetRows, 1, e.rows)
	e.cursorCol = clamp(e.cursorCol, 1, e.cols)
}

// placeCursorAfterTitle puts the cursor column on the cell right after the selected title.
func (e *editorImpl) placeCursorAfterTitle() {
	col := e.currentItem.Depth()*indentWidth + e.currentItem.title.Width() + 1
	e.cursorCol = clamp(col, 1, e.cols)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
