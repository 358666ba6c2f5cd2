package internal

import (
	"errors"
	"io"
)

func newInsertEditorMode(baseEditor *editorImpl) *insertModeEditor {
	return &insertModeEditor{editorImpl: baseEditor}
}

type insertModeEditor struct {
	*editorImpl
}

func (ie *insertModeEditor) Handle(b byte) error {
	switch b {
	case ESC_KEY:
		// Swap to NORMAL mode.
		ie.swapEditorMode(NORMAL_MODE)
		return nil
	case '.':
		return io.EOF
	case DELETE_KEY, BACKSPACE_KEY:
		// Delete the last char of the title.
		if ie.currentItem.title.Backspace() {
			ie.placeCursorAfterTitle()
		}
		return nil
	default:
		if b < ' ' {
			// Tabs, line breaks and other control bytes would break the one line per item
			// layout.
			ie.logger.Debug("dropped control byte", "byte", b)
			return nil
		}
		ie.insertByte(b)
		return nil
	}
}

// insertByte appends b to the selected title. A full title silently drops the byte.
func (ie *insertModeEditor) insertByte(b byte) {
	if err := ie.currentItem.title.Append(b); err != nil {
		if errors.Is(err, ErrTitleOverflow) {
			ie.logger.Debug("dropped keystroke", "err", err, "len", ie.currentItem.title.Len())
		}
		return
	}
	ie.placeCursorAfterTitle()
}

func (ie *insertModeEditor) EndOfInput() {}

func (ie *insertModeEditor) GetCursorRowCol() (int, int) {
	return ie.cursorRow, ie.cursorCol
}
