package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/chests/internal/paths"
	"github.com/mesh-intelligence/chests/internal/store"
	"github.com/mesh-intelligence/chests/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataDir  string `yaml:"data_dir,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

func newInitCmd(a *app) *cobra.Command {
	var backend string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize chests storage",
		Long: `Create the configuration directory and config.yaml, then create the
storage file in the data directory. An existing inventory is left untouched.
Passing --backend or --data-dir records those values in config.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, backend)
		},
	}
	cmd.Flags().StringVar(&backend, "backend", "", "backend to record in a new config.yaml (json or sqlite)")
	return cmd
}

func (a *app) runInit(cmd *cobra.Command, backend string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	if backend != "" {
		if err := (types.Config{Backend: backend}).Validate(); err != nil {
			return userError(fmt.Errorf("backend %q: %w", backend, err))
		}
		a.config.Set(cfgKeyBackend, backend)
	}

	// The commented default config.yaml already exists at this point; it is
	// rewritten only to record an explicit backend or data directory.
	configPath := filepath.Join(configDir, paths.ConfigFileName)
	if backend != "" || a.flags.dataDir != "" {
		cfg := configFile{
			Backend:  a.config.GetString(cfgKeyBackend),
			DataDir:  a.flags.dataDir,
			LogLevel: a.config.GetString(cfgKeyLogLevel),
		}
		if cfg.DataDir != "" {
			if cfg.DataDir, err = filepath.Abs(cfg.DataDir); err != nil {
				return sysError(err)
			}
		}
		if err := writeConfig(configPath, cfg); err != nil {
			return sysError(fmt.Errorf("write config: %w", err))
		}
	}

	var location string
	err = a.withInventory(func(st store.Store, inv *types.Inventory) error {
		location = st.Location()
		if _, statErr := os.Stat(location); errors.Is(statErr, os.ErrNotExist) {
			a.logger.Debug("writing initial inventory", zap.String("path", location))
			return save(st, inv)
		}
		return nil
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Chests initialized successfully")
	fmt.Fprintln(out, "  config:", configPath)
	fmt.Fprintln(out, "  data:  ", location)
	return nil
}

// writeConfig marshals cfg to path.
func writeConfig(path string, cfg configFile) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
