package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/chests/pkg/types"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(filepath.Join(t.TempDir(), JSONFileName), nil, zap.NewNop())
}

func writeDoc(t *testing.T, s *JSONStore, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(s.Location(), []byte(doc), 0o644))
}

func TestJSONLoadMissingFile(t *testing.T) {
	s := newTestJSONStore(t)

	inv, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 135, inv.Len())

	c, err := inv.Chest("A01")
	require.NoError(t, err)
	assert.Equal(t, types.FormLegacy, c.Form())
	assert.Empty(t, c.Label())
}

func TestJSONLoadEmptyFile(t *testing.T) {
	s := newTestJSONStore(t)
	writeDoc(t, s, "  \n")

	inv, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 135, inv.Len())
}

func TestJSONLoadRejectsNonObject(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"garbage", "{not json"},
		{"array", `["A01"]`},
		{"number", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestJSONStore(t)
			writeDoc(t, s, tt.doc)
			_, err := s.Load()
			assert.Error(t, err)
		})
	}
}

func TestJSONLoadBothForms(t *testing.T) {
	s := newTestJSONStore(t)
	writeDoc(t, s, `{
  "A01": "Cobblestone",
  "B01": {"0": ["Diamond", 64], "5": ["Iron Ingot", 12]}
}`)

	inv, err := s.Load()
	require.NoError(t, err)

	a, _ := inv.Chest("A01")
	assert.Equal(t, types.FormLegacy, a.Form())
	assert.Equal(t, "Cobblestone", a.Label())

	b, _ := inv.Chest("B01")
	require.Equal(t, types.FormSlots, b.Form())
	want := map[int]types.SlotEntry{
		0: {Item: "Diamond", Quantity: 64},
		5: {Item: "Iron Ingot", Quantity: 12},
	}
	if diff := cmp.Diff(want, b.Entries()); diff != "" {
		t.Errorf("B01 entries mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONLoadCoercesUnexpectedShapes(t *testing.T) {
	s := newTestJSONStore(t)
	writeDoc(t, s, `{"A01": 17, "A02": true, "A03": null, "A04": 1.5}`)

	inv, err := s.Load()
	require.NoError(t, err)
	for _, id := range []types.ChestID{"A01", "A02", "A03", "A04"} {
		c, err := inv.Chest(id)
		require.NoError(t, err)
		assert.Equal(t, types.FormLegacy, c.Form(), id)
		assert.Empty(t, c.Label(), id)
	}
}

func TestJSONLoadSkipsBadSlots(t *testing.T) {
	s := newTestJSONStore(t)
	writeDoc(t, s, `{"C01": {
  "x": ["Stone", 1],
  "54": ["Stone", 1],
  "-1": ["Stone", 1],
  "1": ["Stone"],
  "2": [5, 5],
  "3": ["Stone", "many"],
  "4": ["Stone", 2.5],
  "7": ["Torch", 32.0, "extra"],
  "8": "Dirt",
  "9": ["Neg", -5],
  "10": ["Zero", 0],
  "11": ["Huge", 1e300],
  "12": ["Tiny", 0.0],
  "13": ["Ok", 3]
}}`)

	inv, err := s.Load()
	require.NoError(t, err)
	c, _ := inv.Chest("C01")
	require.Equal(t, types.FormSlots, c.Form())
	assert.Equal(t, map[int]types.SlotEntry{
		7:  {Item: "Torch", Quantity: 32},
		13: {Item: "Ok", Quantity: 3},
	}, c.Entries())
	assert.Equal(t, 35, c.TotalQuantity())
	assert.Equal(t, "35 items", c.Summary())
}

func TestJSONLoadArrayForm(t *testing.T) {
	s := newTestJSONStore(t)
	writeDoc(t, s, `{"D01": [["Sand", 10], null, ["Glass", 3]]}`)

	inv, err := s.Load()
	require.NoError(t, err)
	c, _ := inv.Chest("D01")
	require.Equal(t, types.FormSlots, c.Form())
	assert.Equal(t, map[int]types.SlotEntry{
		0: {Item: "Sand", Quantity: 10},
		2: {Item: "Glass", Quantity: 3},
	}, c.Entries())
}

func TestJSONLoadDropsUnknownChests(t *testing.T) {
	s := newTestJSONStore(t)
	writeDoc(t, s, `{"A99": "ghost", "E01": "nowhere", "A1": "short", "A02": "kept"}`)

	inv, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 135, inv.Len())
	c, _ := inv.Chest("A02")
	assert.Equal(t, "kept", c.Label())
}

func TestJSONSaveThenLoadRoundTrip(t *testing.T) {
	s := newTestJSONStore(t)

	inv := types.NewInventory(nil)
	require.NoError(t, inv.SetLabel("A01", "Wood <oak> & birch"))
	require.NoError(t, inv.SetSlot("B02", 0, types.SlotEntry{Item: "Diamond", Quantity: 64}))
	require.NoError(t, inv.SetSlot("B02", 53, types.SlotEntry{Item: "Emerald", Quantity: 1}))
	_, err := inv.OpenSlots("C03")
	require.NoError(t, err)

	require.NoError(t, s.Save(inv))
	first, err := os.ReadFile(s.Location())
	require.NoError(t, err)

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NoError(t, s.Save(loaded))
	second, err := os.ReadFile(s.Location())
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), `"A01": "Wood <oak> & birch"`)
	assert.Contains(t, string(first), `"C03": {}`)
	assert.Contains(t, string(first), "\n  \"A01\"")

	b, _ := loaded.Chest("B02")
	assert.Equal(t, []int{0, 53}, b.SlotNumbers())
	c, _ := loaded.Chest("C03")
	assert.Equal(t, types.FormSlots, c.Form())
}

func TestJSONSaveLeavesNoTempFiles(t *testing.T) {
	s := newTestJSONStore(t)
	require.NoError(t, s.Save(types.NewInventory(nil)))
	require.NoError(t, s.Save(types.NewInventory(nil)))

	entries, err := os.ReadDir(filepath.Dir(s.Location()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, JSONFileName, entries[0].Name())
}

func TestJSONSaveFailsOnMissingDir(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "missing", JSONFileName), nil, nil)
	assert.Error(t, s.Save(types.NewInventory(nil)))
}
