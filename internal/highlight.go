package internal

import "github.com/charmbracelet/x/ansi"

// The selected item's title is printed in bold.
var selectedHighlight = newHighlight(ansi.Style{}.Bold().String(), ansi.ResetStyle)

func newHighlight(on, off string) *Highlight {
	return &Highlight{on: on, off: off}
}

// Highlight wraps a span of output in a pair of SGR sequences.
type Highlight struct {
	on, off string
}

func (h *Highlight) wrap(buf *RenderBuffer, text []byte) {
	buf.AppendString(h.on)
	buf.Append(text)
	buf.AppendString(h.off)
}
