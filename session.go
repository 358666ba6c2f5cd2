package etd

// TerminalSession is the terminal the editor runs in. Implementations own the saved
// terminal configuration and restore it in Close.
type TerminalSession interface {
	// Size returns the current number of rows and columns.
	Size() (rows, cols int, err error)
	// Read never blocks. It returns 0, nil when no input is currently available.
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	// Close restores the terminal. It is safe to call more than once.
	Close() error
}
