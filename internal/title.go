package internal

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// TitleCapacity is the maximum number of bytes a title holds.
const TitleCapacity = 255

// Title is a length-checked bounded text buffer. Writes past TitleCapacity are rejected
// rather than truncated.
type Title struct {
	b []byte
}

func NewTitle(s string) (Title, error) {
	var t Title
	if err := t.AppendString(s); err != nil {
		return Title{}, err
	}
	return t, nil
}

func (t *Title) Append(b byte) error {
	if len(t.b)+1 > TitleCapacity {
		return ErrTitleOverflow
	}
	t.b = append(t.b, b)
	return nil
}

func (t *Title) AppendString(s string) error {
	if len(t.b)+len(s) > TitleCapacity {
		return ErrTitleOverflow
	}
	t.b = append(t.b, s...)
	return nil
}

// Backspace removes the last rune. A trailing incomplete UTF-8 sequence counts as one
// byte per call. Reports whether anything was removed.
func (t *Title) Backspace() bool {
	if len(t.b) == 0 {
		return false
	}
	_, size := utf8.DecodeLastRune(t.b)
	t.b = t.b[:len(t.b)-size]
	return true
}

func (t *Title) Len() int {
	return len(t.b)
}

// Width is the number of terminal cells the title occupies.
func (t *Title) Width() int {
	return runewidth.StringWidth(string(t.b))
}

func (t *Title) Bytes() []byte {
	return t.b
}

func (t *Title) String() string {
	return string(t.b)
}
