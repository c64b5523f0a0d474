package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/catalog/internal/catalog"
	"github.com/muurk/catalog/internal/config"
	"github.com/muurk/catalog/internal/logging"
	"github.com/muurk/catalog/internal/product"
	"github.com/muurk/catalog/internal/tui"
	"github.com/muurk/catalog/internal/version"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	seedPath   string
	pageSize   int
	debounce   time.Duration
	view       string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Terminal product catalog",
		Long: `Browse, search, add and edit products from the terminal.

Products are kept in memory for the session. They start from a built-in
dataset, or from the YAML/JSON file given with --seed (or seed_file in the
preferences file).

If no command is specified, the interactive interface launches.`,
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The full-screen interface owns the terminal
			if cmd == cmd.Root() {
				return logging.InitializeForUI()
			}
			return logging.InitializeFromEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, flags)
		},
	}

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Preferences file (default: OS config dir)")
	pf.StringVar(&flags.seedPath, "seed", "", "YAML or JSON file with the starting products")
	pf.IntVar(&flags.pageSize, "page-size", config.DefaultPageSize, "Products per page")
	pf.DurationVar(&flags.debounce, "debounce", config.DefaultDebounceMillis*time.Millisecond, "Delay before a search is applied")
	pf.StringVar(&flags.view, "view", config.DefaultView, "Initial layout (list, card)")

	rootCmd.AddCommand(
		newListCmd(flags),
		newConfigCmd(flags),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "catalog %s\n", version.Full())
		},
	}
}

// settings is the merged result of preferences, flags and the seed.
type settings struct {
	prefs  *config.Preferences
	view   catalog.ViewMode
	prices product.PriceFormatter
	seed   []product.Product
}

// loadSettings reads the preferences file, applies flags given on the
// command line on top, and loads the seed dataset.
func loadSettings(cmd *cobra.Command, flags *globalFlags) (*settings, error) {
	var (
		prefs *config.Preferences
		err   error
	)
	if flags.configPath != "" {
		prefs, err = config.LoadFrom(flags.configPath)
	} else {
		prefs, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	// Copy so flag overrides never leak into the cached preferences
	merged := *prefs
	fs := cmd.Flags()
	if fs.Changed("page-size") {
		merged.PageSize = flags.pageSize
	}
	if fs.Changed("debounce") {
		merged.DebounceMillis = int(flags.debounce / time.Millisecond)
	}
	if fs.Changed("view") {
		merged.DefaultView = flags.view
	}
	if fs.Changed("seed") {
		merged.SeedFile = flags.seedPath
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	view, err := catalog.ParseViewMode(merged.DefaultView)
	if err != nil {
		return nil, err
	}

	seed, err := loadSeed(merged.SeedFile)
	if err != nil {
		return nil, err
	}

	return &settings{
		prefs:  &merged,
		view:   view,
		prices: product.NewPriceFormatter(merged.Locale, merged.CurrencySymbol),
		seed:   seed,
	}, nil
}

func loadSeed(path string) ([]product.Product, error) {
	if path == "" {
		return product.DefaultSeed()
	}

	seed, err := product.LoadSeedFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file: %w", err)
	}
	logging.Info("Seed loaded", zap.String("path", path), zap.Int("products", len(seed)))
	return seed, nil
}

func runUI(cmd *cobra.Command, flags *globalFlags) error {
	s, err := loadSettings(cmd, flags)
	if err != nil {
		return err
	}

	model := tui.NewAppModel(catalog.New(s.seed), tui.Options{
		PageSize: s.prefs.PageSize,
		Debounce: s.prefs.DebounceDelay(),
		View:     s.view,
		Prices:   s.prices,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("catalog UI error: %w", err)
	}
	return nil
}
