package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/chests/internal/paths"
	"github.com/mesh-intelligence/chests/internal/store"
	"github.com/mesh-intelligence/chests/pkg/types"
)

// exitError carries the process exit code for a failed command. reported
// marks errors the command already printed.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error {
	return &exitError{code: exitUserError, err: err}
}

func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// resolveDataDir applies --data-dir > config.yaml data_dir > CHESTS_DATA_DIR >
// working directory.
func (a *app) resolveDataDir() (string, error) {
	dir, err := paths.ResolveDataDir(a.flags.dataDir, a.config.GetString(cfgKeyDataDir))
	if err != nil {
		return "", sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	return dir, nil
}

// openStore opens the configured backend. The caller must Close it.
func (a *app) openStore() (store.Store, error) {
	dataDir, err := a.resolveDataDir()
	if err != nil {
		return nil, err
	}
	cfg := types.Config{
		Backend: a.config.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}
	if err := cfg.Validate(); err != nil {
		return nil, userError(fmt.Errorf("config backend %q: %w", cfg.Backend, err))
	}
	st, err := store.Open(cfg, a.layout, a.logger)
	if err != nil {
		return nil, sysError(fmt.Errorf("open store: %w", err))
	}
	return st, nil
}

// withInventory opens the store, loads the inventory, and passes both to fn.
func (a *app) withInventory(fn func(st store.Store, inv *types.Inventory) error) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	inv, err := st.Load()
	if err != nil {
		return sysError(fmt.Errorf("load inventory: %w", err))
	}
	return fn(st, inv)
}

func save(st store.Store, inv *types.Inventory) error {
	if err := st.Save(inv); err != nil {
		return sysError(fmt.Errorf("save inventory: %w", err))
	}
	return nil
}

// parseChest reads a chest argument such as "b1" or "B01".
func (a *app) parseChest(arg string) (types.ChestID, error) {
	id, err := a.layout.ParseChestID(arg)
	if err != nil {
		return "", userError(err)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal output: %w", err))
	}
	fmt.Fprintln(w, string(out))
	return nil
}
