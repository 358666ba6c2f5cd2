package internal

import (
	"io"
)

// Progress through an "ESC [ <final>" sequence.
type escapeState int

const (
	escIdle  escapeState = iota
	escStart             // Read ESC.
	escCSI               // Read ESC [.
)

func newNormalEditorMode(baseEditor *editorImpl) *normalModeEditor {
	return &normalModeEditor{editorImpl: baseEditor}
}

type normalModeEditor struct {
	*editorImpl
	esc escapeState
}

func (ne *normalModeEditor) Handle(b byte) error {
	switch ne.esc {
	case escStart:
		if b == '[' {
			ne.esc = escCSI
		} else {
			// Not a CSI sequence, swallow it.
			ne.esc = escIdle
		}
		return nil
	case escCSI:
		ne.esc = escIdle
		ne.handleFinalByte(b)
		return nil
	}

	switch b {
	case '.':
		// Quit the program.
		return io.EOF
	case 'e':
		ne.moveDown()
		return nil
	case 'u':
		ne.moveUp()
		return nil
	case 'h':
		ne.moveLeft()
		return nil
	case 't':
		ne.moveRight()
		return nil
	case 'o':
		ne.openCurrent()
		return nil
	case 'i':
		// Swap to INSERT mode.
		ne.swapEditorMode(INSERT_MODE)
		return nil
	case TAB_KEY:
		ne.expandCurrent()
		return nil
	case ESC_KEY:
		ne.esc = escStart
		return nil
	default:
		// Do nothing.
		return nil
	}
}

func (ne *normalModeEditor) handleFinalByte(b byte) {
	switch b {
	case 'Z':
		// Shift+Tab.
		ne.closeCurrent()
	default:
		ne.logger.Debug("unmapped escape sequence", "final", string(rune(b)))
	}
}

// An escape sequence only counts if all of it arrived in the same batch of input.
func (ne *normalModeEditor) EndOfInput() {
	ne.esc = escIdle
}

func (ne *normalModeEditor) GetCursorRowCol() (int, int) {
	// The column is pinned to the start of the line outside INSERT mode.
	return ne.cursorRow, 1
}
