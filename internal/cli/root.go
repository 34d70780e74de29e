// Package cli implements the chests command-line interface. Run without a
// subcommand it opens the interactive session; subcommands query and edit
// the inventory one operation at a time.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/chests/internal/paths"
	"github.com/mesh-intelligence/chests/internal/store"
	"github.com/mesh-intelligence/chests/internal/tui"
	"github.com/mesh-intelligence/chests/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool
}

// app carries the state shared by every command of one invocation.
type app struct {
	flags  rootFlags
	config *viper.Viper
	logger *zap.Logger
	layout *types.Layout

	// buildLogger and runTUI are replaced in tests.
	buildLogger func(level string, verbose bool, outputs ...string) (*zap.Logger, error)
	runTUI      func(inv *types.Inventory, saver tui.Saver, logger *zap.Logger) error
}

func newApp() *app {
	return &app{
		layout:      types.DefaultLayout(),
		buildLogger: newLogger,
		runTUI:      tui.Run,
	}
}

// NewRootCmd creates the top-level "chests" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "chests",
		Short: "Track what is stored in which chest",
		Long: `chests keeps an inventory of a storage room laid out as walls of
numbered double chests. Run without arguments to open the interactive
browser, or use the subcommands for one-shot queries and edits.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// version and syntax need neither config nor storage.
			if cmd.Name() == "version" || cmd.Name() == "syntax" {
				return nil
			}
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: current directory)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newExecCmd(a))
	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newLabelCmd(a))
	root.AddCommand(newClearCmd(a))
	root.AddCommand(newSyntaxCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Stderr))
}

// run executes root and maps its error to an exit code, reporting the error
// on stderr unless the command already did.
func run(root *cobra.Command, stderr io.Writer) int {
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if !ee.reported {
			fmt.Fprintln(stderr, "chests:", ee.err)
		}
		return ee.code
	}
	fmt.Fprintln(stderr, "chests:", err)
	return exitUserError
}

// setup resolves the config directory, loads config.yaml, and builds the
// stderr logger used by one-shot commands.
func (a *app) setup() error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	a.config = cfg

	logger, err := a.buildLogger(cfg.GetString(cfgKeyLogLevel), a.flags.verbose, "stderr")
	if err != nil {
		return userError(fmt.Errorf("initialize logger: %w", err))
	}
	a.logger = logger
	a.logger.Debug("config loaded", zap.String("config_dir", configDir))
	return nil
}

// runInteractive opens the store and hands the inventory to the TUI. The TUI
// owns the terminal, so its log goes to a file in the data directory.
func (a *app) runInteractive() error {
	dataDir, err := a.resolveDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create data dir: %w", err))
	}
	logger, err := a.buildLogger(a.config.GetString(cfgKeyLogLevel), a.flags.verbose, paths.LogFile(dataDir))
	if err != nil {
		return sysError(fmt.Errorf("initialize logger: %w", err))
	}
	a.logger = logger

	return a.withInventory(func(st store.Store, inv *types.Inventory) error {
		a.logger.Info("interactive session started", zap.String("store", st.Location()))
		if err := a.runTUI(inv, st, a.logger); err != nil {
			return sysError(err)
		}
		return nil
	})
}
