package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mmcdole/fittrack/internal/adapter"
	"github.com/mmcdole/fittrack/internal/domain"
	"github.com/mmcdole/fittrack/internal/service"
	"github.com/mmcdole/fittrack/internal/store"
	"github.com/mmcdole/fittrack/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	configPath string
	logLevel   string
	dayFlag    string
)

// app holds everything a command needs. Close releases the database.
type app struct {
	cfg     *adapter.Config
	logger  *slog.Logger
	store   domain.Store
	tracker *service.TrackerService
	day     string
}

func openApp() (*app, error) {
	cfg, err := adapter.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	st, err := store.NewPlanStore(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	template := domain.DayPlan{Exercises: cfg.Plan.Exercises, Meals: cfg.Plan.Meals}
	tracker := service.NewTrackerService(st, template, logger)

	day := tracker.Today()
	if dayFlag != "" {
		if _, err := time.Parse("2006-01-02", dayFlag); err != nil {
			st.Close()
			return nil, fmt.Errorf("invalid --day %q, want YYYY-MM-DD", dayFlag)
		}
		day = dayFlag
	}

	return &app{cfg: cfg, logger: logger, store: st, tracker: tracker, day: day}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, domain.ErrInvalidWeight) || errors.Is(err, domain.ErrInvalidUnit) {
			fmt.Fprintln(os.Stderr, "Usage: fittrack weigh VALUE [--unit kg|lbs]")
		}
		os.Exit(1)
	}
}

// NewCommand builds the root command. Without a subcommand it runs the TUI.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fittrack",
		Short: "fittrack tracks today's workout, meals and weigh-in",
		Long: `fittrack tracks today's workout, meals and weigh-in.

Run without arguments for the interactive dashboard.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVar(&configPath, "config", "", "config file path (default ~/.config/fittrack/config.yaml)")
	globalFlags.StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")
	globalFlags.StringVar(&dayFlag, "day", "", "day to work on as YYYY-MM-DD (default today)")

	cmd.AddCommand(
		NewStatusCommand(),
		NewWeighCommand(),
		NewHistoryCommand(),
		NewFindCommand(),
		NewToggleCommand(),
		NewConfigCommand(),
		NewVersionCommand(),
	)

	return cmd
}

func runTUI() error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("starting fittrack", "version", Version, "day", a.day)

	model := tui.NewModel(a.tracker, a.cfg, a.day)

	var opts []tea.ProgramOption
	if a.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if a.cfg.UI.MouseInput {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	a.logger.Info("shutting down")
	return nil
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fittrack %s\n", Version)
		},
	}
}
