package etd

import "io"

// Editor - The main interface that represents the program. At any point there will be just one
// instantiation of Editor. The frame loop passes every byte the user types (read from the
// terminal in raw mode) to Handle, and asks the Editor to draw itself once per frame.
type Editor interface {
	// Handle consumes one input byte. Returning io.EOF means the user asked to quit.
	Handle(b byte) error
	// EndOfInput is called once no more input bytes are ready in the current frame.
	EndOfInput()
	// Resize informs the editor of the current terminal size.
	Resize(rows, cols int)
	// Draw renders a full frame and writes it to w in a single call.
	Draw(w io.Writer) error
	Close()
}
