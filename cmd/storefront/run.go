package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"storefront/internal/trace"
	"storefront/internal/ui"
)

func runCmd(opts *rootOptions) *cobra.Command {
	var (
		cartDelay time.Duration
		logFile   string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive storefront",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.rootData()
			if err != nil {
				return err
			}

			// The shell owns the terminal, so logs go to a file or nowhere.
			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				w = f
			}
			logger, err := opts.newLogger(w)
			if err != nil {
				return err
			}

			tp, err := trace.NewProvider(cmd.Context())
			if err != nil {
				return fmt.Errorf("tracing: %w", err)
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tp.Shutdown(ctx); err != nil {
					logger.Warn("trace shutdown", "err", err)
				}
			}()

			shell := ui.NewShell(ui.ShellConfig{
				Root:      root,
				CartDelay: cartDelay,
				Tracer:    tp.Tracer(),
				Logger:    logger,
			})
			defer shell.Close()

			logger.Info("starting shell", "store", shell.Store.ID(), "preview", root.IsPreviewModeEnabled)
			if _, err := tea.NewProgram(shell, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("shell: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&cartDelay, "cart-delay", ui.DefaultCartDelay,
		"how long the cart takes to load (0: idle on mount, negative: never)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}
