package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"storefront/internal/storefront"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	settingsPath string
	preview      bool
	logLevel     string
}

func main() {
	godotenv.Load() // Load .env file if present

	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "storefront",
		Short: "Terminal storefront driven by a single UI-state store",
		Long: `storefront renders a shop front in the terminal: promo bar, header,
cart drawer, menus, search and modals, with embedded widget frames.

Every overlay is driven by one UI-state store; "replay" applies a list of
actions to that store without a terminal and prints the resulting state.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.settingsPath, "settings", os.Getenv("STOREFRONT_SETTINGS"),
		"site settings YAML (default $STOREFRONT_SETTINGS)")
	rootCmd.PersistentFlags().BoolVar(&opts.preview, "preview", false, "enable preview mode")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		runCmd(opts),
		replayCmd(opts),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

// rootData loads site settings, falling back to the defaults when no file is
// configured.
func (o *rootOptions) rootData() (storefront.RootData, error) {
	settings := storefront.DefaultSettings
	if o.settingsPath != "" {
		var err error
		if settings, err = storefront.LoadSettings(o.settingsPath); err != nil {
			return storefront.RootData{}, err
		}
	}
	return storefront.RootData{
		IsPreviewModeEnabled: o.preview,
		SiteSettings:         settings,
	}, nil
}

// newLogger builds a text logger writing to w at the configured level.
func (o *rootOptions) newLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", o.logLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
