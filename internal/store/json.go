package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/chests/pkg/types"
)

// JSONStore keeps the inventory in one JSON document keyed by chest ID.
// A chest value is either a label string or an object mapping slot numbers
// (as text) to [item, quantity] pairs.
type JSONStore struct {
	path   string
	layout *types.Layout
	logger *zap.Logger
}

// NewJSONStore returns a store backed by the document at path. The file is
// not touched until Load or Save.
func NewJSONStore(path string, layout *types.Layout, logger *zap.Logger) *JSONStore {
	if layout == nil {
		layout = types.DefaultLayout()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONStore{path: path, layout: layout, logger: logger}
}

// Location returns the document path.
func (s *JSONStore) Location() string {
	return s.path
}

// Close is a no-op; the document is closed after every read and write.
func (s *JSONStore) Close() error {
	return nil
}

// Load reads the document. A missing or empty file yields empty legacy
// chests; a document that is not a JSON object is an error.
func (s *JSONStore) Load() (*types.Inventory, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("no inventory file, starting empty", zap.String("path", s.path))
		return types.NewInventory(s.layout), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	inv, err := decodeInventory(data, s.layout, s.logger)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return inv, nil
}

// Save writes the whole inventory atomically.
func (s *JSONStore) Save(inv *types.Inventory) error {
	data, err := encodeInventory(inv)
	if err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}
	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	s.logger.Debug("inventory saved", zap.String("path", s.path), zap.Int("bytes", len(data)))
	return nil
}

// encodeInventory renders inv with two-space indentation and sorted keys.
func encodeInventory(inv *types.Inventory) ([]byte, error) {
	doc := make(map[string]any, inv.Len())
	for _, id := range inv.IDs() {
		c, err := inv.Chest(id)
		if err != nil {
			return nil, err
		}
		switch c.Form() {
		case types.FormSlots:
			slots := make(map[string][]any)
			for _, n := range c.SlotNumbers() {
				e, _ := c.Entry(n)
				slots[strconv.Itoa(n)] = []any{e.Item, e.Quantity}
			}
			doc[string(id)] = slots
		default:
			doc[string(id)] = c.Label()
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeInventory builds an inventory from a document, tolerating the
// shapes older files contain. Identifiers outside layout are dropped and
// identifiers absent from the document stay empty legacy chests.
func decodeInventory(data []byte, layout *types.Layout, logger *zap.Logger) (*types.Inventory, error) {
	inv := types.NewInventory(layout)
	if len(bytes.TrimSpace(data)) == 0 {
		return inv, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	for key, raw := range doc {
		id := types.ChestID(key)
		if !layout.Contains(id) {
			logger.Warn("dropping unknown chest", zap.String("chest", key))
			continue
		}
		chest := decodeChest(id, raw, logger)
		if err := inv.Put(id, chest); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

func decodeChest(id types.ChestID, raw json.RawMessage, logger *zap.Logger) *types.Chest {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		logger.Warn("unreadable chest value, using empty label", zap.String("chest", string(id)), zap.Error(err))
		return types.NewLegacyChest("")
	}

	switch val := v.(type) {
	case string:
		return types.NewLegacyChest(val)
	case map[string]any:
		entries := make(map[int]types.SlotEntry, len(val))
		for key, pair := range val {
			slot, err := strconv.Atoi(key)
			if err != nil || slot < 0 || slot > types.MaxSlot {
				logger.Warn("skipping invalid slot key", zap.String("chest", string(id)), zap.String("slot", key))
				continue
			}
			if e, ok := decodeEntry(pair); ok {
				entries[slot] = e
			} else {
				logger.Warn("skipping malformed slot entry", zap.String("chest", string(id)), zap.Int("slot", slot))
			}
		}
		return types.NewSlotChest(entries)
	case []any:
		entries := make(map[int]types.SlotEntry, len(val))
		for slot, pair := range val {
			if pair == nil || slot > types.MaxSlot {
				continue
			}
			if e, ok := decodeEntry(pair); ok {
				entries[slot] = e
			} else {
				logger.Warn("skipping malformed slot entry", zap.String("chest", string(id)), zap.Int("slot", slot))
			}
		}
		return types.NewSlotChest(entries)
	default:
		logger.Warn("unexpected chest value, using empty label",
			zap.String("chest", string(id)), zap.String("type", fmt.Sprintf("%T", v)))
		return types.NewLegacyChest("")
	}
}

// decodeEntry reads an [item, quantity] pair. Extra elements are ignored and
// the quantity must be a positive integer.
func decodeEntry(v any) (types.SlotEntry, bool) {
	pair, ok := v.([]any)
	if !ok || len(pair) < 2 {
		return types.SlotEntry{}, false
	}
	item, ok := pair[0].(string)
	if !ok {
		return types.SlotEntry{}, false
	}
	num, ok := pair[1].(json.Number)
	if !ok {
		return types.SlotEntry{}, false
	}
	qty, err := num.Int64()
	if err != nil {
		f, ferr := num.Float64()
		// 2^63 is the first float64 past MaxInt64.
		if ferr != nil || f != math.Trunc(f) || f < 1 || f >= 1<<63 {
			return types.SlotEntry{}, false
		}
		qty = int64(f)
	}
	if qty < 1 || qty > math.MaxInt {
		return types.SlotEntry{}, false
	}
	return types.SlotEntry{Item: item, Quantity: int(qty)}, true
}
