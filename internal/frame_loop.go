package internal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/LogFlames/etd"
)

const (
	frameInterval = 10 * time.Millisecond

	// Written once when the session ends.
	exitSequence = ansi.ResetStyle + ansi.EraseEntireScreen + ansi.CursorHomePosition
)

// Run redraws the editor at a fixed rate, feeding it every input byte that is ready before
// each frame. It returns nil when the user quits or ctx is done. The session is shut down on
// every return path, and before a panic is propagated.
func Run(ctx context.Context, session etd.TerminalSession, editor etd.Editor, logger *slog.Logger) (err error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	defer func() {
		if r := recover(); r != nil {
			shutdown(session, logger)
			panic(r)
		}
		shutdown(session, logger)
	}()

	rows, cols, err := session.Size()
	if err != nil {
		return err
	}
	editor.Resize(rows, cols)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	input := make([]byte, 64)
	for {
		quit, err := drainInput(session, editor, input)
		if err != nil {
			logger.Error("reading input", "err", err)
			return err
		}
		if quit {
			return nil
		}
		if err := drawFrame(session, editor, logger); err != nil {
			logger.Error("writing frame", "err", err)
			return err
		}
		select {
		case <-ctx.Done():
			logger.Debug("frame loop stopped", "cause", context.Cause(ctx))
			return nil
		case <-ticker.C:
		}
	}
}

// drainInput passes every byte that can be read without blocking to the editor. Bytes that
// follow a quit command are discarded.
func drainInput(session etd.TerminalSession, editor etd.Editor, input []byte) (quit bool, err error) {
	for {
		n, err := session.Read(input)
		if err != nil {
			return false, err
		}
		if n == 0 {
			editor.EndOfInput()
			return false, nil
		}
		for _, b := range input[:n] {
			if err := editor.Handle(b); err != nil {
				if errors.Is(err, io.EOF) {
					return true, nil
				}
				return false, err
			}
		}
	}
}

func drawFrame(session etd.TerminalSession, editor etd.Editor, logger *slog.Logger) error {
	// Keep the previous size if the query fails mid-session.
	if rows, cols, err := session.Size(); err != nil {
		logger.Warn("querying terminal size", "err", err)
	} else {
		editor.Resize(rows, cols)
	}
	return editor.Draw(session)
}

// shutdown clears the screen and restores the terminal. Failures are only logged.
func shutdown(session etd.TerminalSession, logger *slog.Logger) {
	if _, err := session.Write([]byte(exitSequence)); err != nil {
		logger.Warn("clearing screen", "err", err)
	}
	if err := session.Close(); err != nil {
		logger.Warn("restoring terminal", "err", err)
	}
}
