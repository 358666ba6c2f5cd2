package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/term"
	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"

	"github.com/LogFlames/etd"
)

const ttyPath = "/dev/tty"

// OpenTerminal puts the controlling terminal in raw mode with non-blocking reads. The
// original settings are restored by Close.
func OpenTerminal() (etd.TerminalSession, error) {
	return openTerminal(ttyPath, int(os.Stdout.Fd()))
}

// openTerminal reads and writes through the terminal at path and takes the window size from
// sizeFd.
func openTerminal(path string, sizeFd int) (*ttySession, error) {
	if !xterm.IsTerminal(sizeFd) {
		return nil, fmt.Errorf("%w: fd %d is not a terminal", ErrTerminalConfiguration, sizeFd)
	}
	t, err := term.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrTerminalConfiguration, path, err)
	}
	s := &ttySession{tty: t, sizeFd: sizeFd}
	if err := t.SetRaw(); err != nil {
		s.Close()
		return nil, fmt.Errorf("%w: raw mode: %w", ErrTerminalConfiguration, err)
	}
	// VMIN=0 and VTIME=0: a read returns immediately, with or without data.
	if err := t.SetReadTimeout(0); err != nil {
		s.Close()
		return nil, fmt.Errorf("%w: read timeout: %w", ErrTerminalConfiguration, err)
	}
	return s, nil
}

type ttySession struct {
	tty    *term.Term
	sizeFd int

	closeOnce sync.Once
	closeErr  error
}

var _ etd.TerminalSession = (*ttySession)(nil)

func (s *ttySession) Size() (int, int, error) {
	cols, rows, err := xterm.GetSize(s.sizeFd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size: %w", ErrTerminalConfiguration, err)
	}
	return rows, cols, nil
}

func (s *ttySession) Read(p []byte) (int, error) {
	return readResult(s.tty.Read(p))
}

// readResult separates "nothing typed yet" from a broken terminal.
func readResult(n int, err error) (int, error) {
	switch {
	case err == nil:
		return n, nil
	case n == 0 && errors.Is(err, io.EOF):
		// A zero-length read in non-blocking raw mode just means nothing was typed.
		return 0, nil
	case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.EINTR):
		return n, nil
	default:
		return n, fmt.Errorf("%w: %w", ErrInputRead, err)
	}
}

func (s *ttySession) Write(p []byte) (int, error) {
	return s.tty.Write(p)
}

func (s *ttySession) Close() error {
	s.closeOnce.Do(func() {
		restoreErr := s.tty.Restore()
		closeErr := s.tty.Close()
		if err := errors.Join(restoreErr, closeErr); err != nil {
			s.closeErr = fmt.Errorf("%w: restore: %w", ErrTerminalConfiguration, err)
		}
	})
	return s.closeErr
}
