package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LogFlames/etd/internal"
	"github.com/LogFlames/etd/internal/build_version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// The terminal is restored by now, so the error is readable.
		fmt.Fprintln(os.Stderr, "etd:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:           "etd",
		Short:         "Edit a todo outline in the terminal",
		Args:          cobra.NoArgs,
		Version:       build_version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := newLogger(logFile)
			if err != nil {
				return err
			}
			defer closeLog()

			return run(cmd.Context(), logger)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "append debug logs to this file")
	return cmd
}

func run(ctx context.Context, logger *slog.Logger) error {
	// Also cleanup on process exit.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	root, err := internal.NewDemoOutline()
	if err != nil {
		return err
	}
	editor := internal.NewEditor(root, logger)
	defer editor.Close()

	session, err := internal.OpenTerminal()
	if err != nil {
		return err
	}
	return internal.Run(ctx, session, editor, logger)
}

// newLogger logs to path, or nowhere when path is empty. The terminal itself is never used.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
