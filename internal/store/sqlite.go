package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/chests/pkg/types"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS chests (
    chest_id TEXT PRIMARY KEY,
    form TEXT NOT NULL,
    label TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS slots (
    chest_id TEXT NOT NULL,
    slot INTEGER NOT NULL,
    item TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    PRIMARY KEY (chest_id, slot),
    FOREIGN KEY (chest_id) REFERENCES chests(chest_id) ON DELETE CASCADE
);
`

// Values of the chests.form column.
const (
	formLegacy = "legacy"
	formSlots  = "slots"
)

// SQLiteStore keeps the inventory in two tables: one row per chest and one
// row per occupied slot.
type SQLiteStore struct {
	path   string
	layout *types.Layout
	logger *zap.Logger

	mu sync.Mutex
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and
// ensures the schema exists.
func NewSQLiteStore(path string, layout *types.Layout, logger *zap.Logger) (*SQLiteStore, error) {
	if layout == nil {
		layout = types.DefaultLayout()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteStore{path: path, layout: layout, logger: logger, db: db}, nil
}

// Location returns the database path.
func (s *SQLiteStore) Location() string {
	return s.path
}

// Close closes the database. Calling Close twice is safe.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

var errStoreClosed = errors.New("store is closed")

// Load reads every chest row and its slots. Rows for identifiers outside the
// layout are ignored; rows with an unknown form load as empty labels.
func (s *SQLiteStore) Load() (*types.Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, errStoreClosed
	}

	inv := types.NewInventory(s.layout)

	rows, err := s.db.Query("SELECT chest_id, form, label FROM chests")
	if err != nil {
		return nil, fmt.Errorf("querying chests: %w", err)
	}
	forms := make(map[types.ChestID]string)
	labels := make(map[types.ChestID]string)
	for rows.Next() {
		var id, form, label string
		if err := rows.Scan(&id, &form, &label); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning chest: %w", err)
		}
		cid := types.ChestID(id)
		if !s.layout.Contains(cid) {
			s.logger.Warn("dropping unknown chest", zap.String("chest", id))
			continue
		}
		forms[cid] = form
		labels[cid] = label
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating chests: %w", err)
	}
	rows.Close()

	entries, err := s.loadSlots()
	if err != nil {
		return nil, err
	}

	for id, form := range forms {
		var c *types.Chest
		switch form {
		case formSlots:
			c = types.NewSlotChest(entries[id])
		case formLegacy:
			c = types.NewLegacyChest(labels[id])
		default:
			s.logger.Warn("unexpected chest form, using empty label",
				zap.String("chest", string(id)), zap.String("form", form))
			c = types.NewLegacyChest("")
		}
		if err := inv.Put(id, c); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

func (s *SQLiteStore) loadSlots() (map[types.ChestID]map[int]types.SlotEntry, error) {
	rows, err := s.db.Query("SELECT chest_id, slot, item, quantity FROM slots")
	if err != nil {
		return nil, fmt.Errorf("querying slots: %w", err)
	}
	defer rows.Close()

	out := make(map[types.ChestID]map[int]types.SlotEntry)
	for rows.Next() {
		var (
			id   string
			slot int
			e    types.SlotEntry
		)
		if err := rows.Scan(&id, &slot, &e.Item, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scanning slot: %w", err)
		}
		if slot < 0 || slot > types.MaxSlot {
			s.logger.Warn("skipping invalid slot row", zap.String("chest", id), zap.Int("slot", slot))
			continue
		}
		if e.Quantity < 1 {
			s.logger.Warn("skipping malformed slot entry", zap.String("chest", id), zap.Int("slot", slot), zap.Int("quantity", e.Quantity))
			continue
		}
		cid := types.ChestID(id)
		if out[cid] == nil {
			out[cid] = make(map[int]types.SlotEntry)
		}
		out[cid][slot] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating slots: %w", err)
	}
	return out, nil
}

// Save replaces both tables inside one transaction.
func (s *SQLiteStore) Save(inv *types.Inventory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return errStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM slots"); err != nil {
		return fmt.Errorf("clearing slots: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM chests"); err != nil {
		return fmt.Errorf("clearing chests: %w", err)
	}

	chestStmt, err := tx.Prepare("INSERT INTO chests (chest_id, form, label) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing chest insert: %w", err)
	}
	defer chestStmt.Close()
	slotStmt, err := tx.Prepare("INSERT INTO slots (chest_id, slot, item, quantity) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing slot insert: %w", err)
	}
	defer slotStmt.Close()

	var slotRows int
	for _, id := range inv.IDs() {
		c, err := inv.Chest(id)
		if err != nil {
			return err
		}
		if c.Form() == types.FormLegacy {
			if _, err := chestStmt.Exec(string(id), formLegacy, c.Label()); err != nil {
				return fmt.Errorf("inserting chest %s: %w", id, err)
			}
			continue
		}
		if _, err := chestStmt.Exec(string(id), formSlots, ""); err != nil {
			return fmt.Errorf("inserting chest %s: %w", id, err)
		}
		for _, n := range c.SlotNumbers() {
			e, _ := c.Entry(n)
			if _, err := slotStmt.Exec(string(id), n, e.Item, e.Quantity); err != nil {
				return fmt.Errorf("inserting %s slot %d: %w", id, n, err)
			}
			slotRows++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	s.logger.Debug("inventory saved", zap.String("path", s.path), zap.Int("slots", slotRows))
	return nil
}
