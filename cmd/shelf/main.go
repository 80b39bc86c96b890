package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/shelf/internal/auth"
	"github.com/h0rv/shelf/internal/card"
	"github.com/h0rv/shelf/internal/catalog"
	"github.com/h0rv/shelf/internal/config"
	"github.com/h0rv/shelf/internal/store"
	"github.com/h0rv/shelf/internal/tui"
	"github.com/spf13/cobra"
)

var (
	// CLI flags
	endpointFlag   string
	fileFlag       string
	libraryFlag    string
	localeFlag     string
	focusScaleFlag float64
	asciiFlag      bool
	debugFlag      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shelf",
		Short: "Terminal browser for media libraries",
		Long: `shelf is a terminal user interface for browsing a media library.

Items are shown as a grid of cards with keyboard navigation, selection and
watched-state toggling.

Catalog source (one is required):
  --endpoint / SHELF_ENDPOINT         GraphQL catalog endpoint
  --file     / SHELF_LIBRARY_FILE     Local JSON library file

Authentication (endpoint only, tried in order):
  1. SHELF_TOKEN
  2. SHELF_TOKEN_FILE (a file containing only the token)
Without a token the catalog is queried anonymously.

Settings are also read from a .env file in the working directory.`,
		SilenceUsage: true,
		RunE:         run,
	}

	// Define CLI flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&endpointFlag, "endpoint", "", "GraphQL catalog endpoint.")
	flags.StringVar(&fileFlag, "file", "", "JSON library file to browse instead of an endpoint.")
	flags.StringVar(&localeFlag, "locale", "", "Locale for rating formatting (BCP 47, e.g. de-DE).")
	flags.BoolVar(&debugFlag, "debug", false, "Write debug logs to SHELF_LOG_FILE.")
	rootCmd.Flags().StringVar(&libraryFlag, "library", "", "Library ID or name. Skips the library picker.")
	rootCmd.Flags().Float64Var(&focusScaleFlag, "focus-scale", 0, "Scale of the focused card (>= 1).")
	rootCmd.Flags().BoolVar(&asciiFlag, "ascii", false, "Draw cards with ASCII glyphs and an inset focus border.")

	rootCmd.AddCommand(newLibrariesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	source, err := openCatalog(cfg, logger)
	if err != nil {
		return err
	}

	// Create store
	s := store.New()

	// Create context
	ctx := context.Background()

	app := tui.NewAppModel(source, s, ctx, cfg.Library, tui.Options{
		PageSize:   cfg.PageSize,
		FocusScale: cfg.FocusScale,
		Density:    cfg.Density,
		ASCII:      cfg.ASCII,
		Formatter:  card.NewLocaleFormatter(card.ParseLocale(cfg.Locale)),
		Logger:     logger,
	})

	logger.Info("starting", "endpoint", cfg.Endpoint, "file", cfg.LibraryFile, "library", cfg.Library)

	// Run Bubble Tea program
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}

// loadConfig reads the environment and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("endpoint") {
		cfg.Endpoint = endpointFlag
	}
	if f.Changed("file") {
		cfg.LibraryFile = fileFlag
	}
	if f.Changed("locale") {
		cfg.Locale = localeFlag
	}
	if f.Changed("debug") {
		cfg.Debug = debugFlag
	}
	if f.Changed("library") {
		cfg.Library = libraryFlag
	}
	if f.Changed("focus-scale") {
		cfg.FocusScale = focusScaleFlag
	}
	if f.Changed("ascii") {
		cfg.ASCII = asciiFlag
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrNoSource) {
			return nil, fmt.Errorf("%w\n\nSet --endpoint or --file (or SHELF_ENDPOINT / SHELF_LIBRARY_FILE)", err)
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger writes to the log file in debug mode. The TUI owns the terminal,
// so otherwise logs are dropped.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if !cfg.Debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

// openCatalog picks the library file when one is set, otherwise the endpoint.
func openCatalog(cfg *config.Config, logger *slog.Logger) (tui.Catalog, error) {
	if cfg.LibraryFile != "" {
		src, err := catalog.LoadFile(cfg.LibraryFile)
		if err != nil {
			return nil, err
		}
		return src, nil
	}

	token, err := resolveToken(cfg)
	if err != nil {
		logger.Info("connecting anonymously", "reason", err)
	}
	return catalog.New(cfg.Endpoint, token), nil
}

// resolveToken prefers SHELF_TOKEN (environment or .env) over the token file.
// On error the token is empty and the catalog is queried anonymously.
func resolveToken(cfg *config.Config) (string, error) {
	return auth.GetToken(
		&auth.StaticProvider{Token: cfg.Token},
		&auth.FileProvider{Path: cfg.TokenFile},
	)
}
