package internal

import "errors"

var (
	// ErrTerminalConfiguration is returned when raw mode or the terminal size cannot be
	// queried or set.
	ErrTerminalConfiguration = errors.New("terminal configuration")
	// ErrInputRead is a genuine failure reading from the terminal. No data being available
	// is not an error.
	ErrInputRead = errors.New("input read")
	// ErrTitleOverflow is returned when appending to a title would exceed its capacity.
	ErrTitleOverflow = errors.New("title overflow")
)
