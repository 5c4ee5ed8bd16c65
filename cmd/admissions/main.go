package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/admissions/internal/config"
	"github.com/jask/admissions/internal/dataset"
	"github.com/jask/admissions/internal/logging"
	"github.com/jask/admissions/internal/roster"
	"github.com/jask/admissions/internal/tui"
)

// cli carries global flags and what PersistentPreRunE resolves from them.
type cli struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "admissions",
		Short: "Admissions dashboard for reviewing candidates",
		Long: `admissions shows the candidate roster as an interactive dashboard.

Run without arguments to open the dashboard. The roster comes from the
built-in sample, a YAML file or a SQLite database (see "config init").`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = c.logger.Sync()
		},
		RunE: c.runTUI,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $HOME/.config/admissions/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		c.newListCmd(),
		c.newShowCmd(),
		c.newSeedCmd(),
		c.newConfigCmd(),
	)
	return root
}

func (c *cli) setup(*cobra.Command, []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log, c.verbose)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logger
	return nil
}

func (c *cli) loadRoster(ctx context.Context) ([]roster.Candidate, error) {
	src, err := dataset.FromConfig(c.cfg.Dataset)
	if err != nil {
		return nil, err
	}
	return dataset.Load(ctx, src, c.logger)
}

func (c *cli) runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cands, err := c.loadRoster(ctx)
	if err != nil {
		return err
	}
	field, dir, err := c.cfg.Table.Sort()
	if err != nil {
		return err
	}
	app := tui.New(cands, tui.Options{
		Title:     c.cfg.UI.Title,
		SortField: field,
		SortDir:   dir,
		ExportDir: c.cfg.Export.Dir,
		Logger:    c.logger,
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if c.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	c.logger.Info("dashboard started", zap.Int("candidates", len(cands)))
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
