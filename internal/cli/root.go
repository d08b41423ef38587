// Package cli implements the periodic command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/periodic/internal/app"
	"github.com/llehouerou/periodic/internal/config"
	"github.com/llehouerou/periodic/internal/element"
	"github.com/llehouerou/periodic/internal/errmsg"
	"github.com/llehouerou/periodic/internal/icons"
	"github.com/llehouerou/periodic/internal/logging"
	"github.com/llehouerou/periodic/internal/periodic"
	"github.com/llehouerou/periodic/internal/state"
	"github.com/llehouerou/periodic/internal/ui/styles"
)

// env is what every command needs once the configuration is loaded.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	closeLog func()
	elements []element.Element
	grid     periodic.Grid
}

// close flushes and closes the log file. It is safe to call more than once.
func (e *env) close() {
	if e.closeLog != nil {
		e.closeLog()
		e.closeLog = nil
	}
}

// withEnv closes the environment once run returns, whether it failed or not.
func (e *env) withEnv(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer e.close()
		return run(cmd, args)
	}
}

// NewRootCmd builds the command tree. Running the root command starts the
// interactive table.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		e          env
	)

	rootCmd := &cobra.Command{
		Use:   "periodic",
		Short: "Browse the periodic table of elements in the terminal",
		Long: `periodic draws the periodic table in the terminal. Elements can be
narrowed by group, state, category and a name or symbol search; cells that
do not match are dimmed instead of removed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return e.load(configPath)
		},
		RunE: e.withEnv(func(_ *cobra.Command, _ []string) error {
			return runTUI(&e)
		}),
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "additional config file (TOML)")

	rootCmd.AddCommand(newPrintCmd(&e))
	rootCmd.AddCommand(newShowCmd(&e))
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// load reads the configuration, opens the log and builds the table.
// The log is closed again when a later step fails.
func (e *env) load(configPath string) (err error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	e.cfg = cfg

	logger, closeLog, err := logging.New(cfg.GetLogConfig())
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	e.logger, e.closeLog = logger, closeLog
	defer func() {
		if err != nil {
			e.close()
		}
	}()

	icons.Init(cfg.Icons)
	styles.SetTheme(cfg.Theme)

	elements, err := loadDataset(cfg.Dataset)
	if err != nil {
		logger.Error("dataset load failed", zap.String("path", cfg.Dataset), zap.Error(err))
		return errors.New(errmsg.FormatWith(errmsg.OpDatasetLoad, cfg.Dataset, err))
	}

	if cfg.StrictDataset {
		if err := element.Validate(elements); err != nil {
			return errors.New(errmsg.Format(errmsg.OpDatasetLoad, err))
		}
	}

	grid := periodic.Build(elements, periodic.DefaultGroupMap())
	if len(grid.Dropped) > 0 {
		logger.Warn("elements left off the table", zap.Ints("numbers", grid.Dropped))
		if cfg.StrictDataset {
			return errors.New(errmsg.Format(errmsg.OpTableBuild, periodic.Strict(grid)))
		}
	}

	e.elements, e.grid = elements, grid
	return nil
}

func loadDataset(path string) ([]element.Element, error) {
	if path == "" {
		return element.Default()
	}
	return element.Load(path)
}

// openPreferences opens the preferences store. The table still works
// without it, so a failure is only logged and nil is returned.
func openPreferences(open func() (*state.Manager, error), logger *zap.Logger) *state.Manager {
	stateMgr, err := open()
	if err != nil {
		logger.Warn(errmsg.Format(errmsg.OpStateOpen, err))
		return nil
	}
	return stateMgr
}

func runTUI(e *env) error {
	stateMgr := openPreferences(state.Open, e.logger)

	opts := app.Options{
		Elements:        e.elements,
		Grid:            e.grid,
		Logger:          e.logger,
		Theme:           e.cfg.Theme,
		NarrowThreshold: e.cfg.GetNarrowThreshold(),
	}
	if stateMgr != nil {
		opts.State = stateMgr
		defer func() {
			if err := stateMgr.Close(); err != nil {
				e.logger.Warn("close preferences", zap.Error(err))
			}
		}()
	}

	p := tea.NewProgram(app.New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run table: %w", err)
	}
	return nil
}
