// Package store loads and saves the chest inventory. Two backends exist: a
// single JSON document compatible with storage_data.json files, and a
// SQLite database. Both overwrite the whole inventory on every save.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/chests/pkg/types"
)

// File names inside the data directory.
const (
	JSONFileName   = "storage_data.json"
	SQLiteFileName = "chests.db"
)

// Store persists an inventory wholesale.
type Store interface {
	// Load reads the full inventory. Missing storage yields an inventory of
	// empty legacy chests. Records of unexpected shape are coerced to empty
	// legacy chests rather than failing the load.
	Load() (*types.Inventory, error)

	// Save replaces the persisted inventory with inv.
	Save(inv *types.Inventory) error

	// Location returns the file backing the store.
	Location() string

	// Close releases backend resources. Idempotent.
	Close() error
}

// Open creates the data directory if needed and returns the backend named
// by cfg. A nil layout selects the reference layout; a nil logger discards
// log output.
func Open(cfg types.Config, layout *types.Layout, logger *zap.Logger) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if layout == nil {
		layout = types.DefaultLayout()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	switch cfg.Backend {
	case types.BackendJSON:
		return NewJSONStore(filepath.Join(dataDir, JSONFileName), layout, logger), nil
	case types.BackendSQLite:
		s, err := NewSQLiteStore(filepath.Join(dataDir, SQLiteFileName), layout, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, types.ErrBackendUnknown
	}
}
