package internal

type EditorMode interface {
	Handle(b byte) error
	EndOfInput()

	// Each mode has a different implementation of how the cursor viewed.
	GetCursorRowCol() (int, int)
}
