package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/chests/pkg/types"
)

func fixture(t *testing.T) *types.Inventory {
	t.Helper()
	inv := types.NewInventory(nil)
	require.NoError(t, inv.SetSlot("B01", 5, types.SlotEntry{Item: "Diamond Pickaxe", Quantity: 1}))
	require.NoError(t, inv.SetSlot("B01", 6, types.SlotEntry{Item: "Coal", Quantity: 64}))
	require.NoError(t, inv.SetLabel("A12", "diamond ore overflow"))
	require.NoError(t, inv.SetLabel("C04", "kelp"))
	return inv
}

func TestSearchFindsItemsCaseInsensitive(t *testing.T) {
	inv := fixture(t)

	lower := Search(inv, "diamond")
	upper := Search(inv, "DIAMOND")

	want := []Result{
		{Chest: "A12", Summary: "diamond ore overflow", Category: "Granite/Diorite/Andesite"},
		{Chest: "B01", Summary: "Diamond Pickaxe", Category: "Coal"},
	}
	if diff := cmp.Diff(want, lower); diff != "" {
		t.Errorf("Search(diamond) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(lower, upper); diff != "" {
		t.Errorf("case changed the result set (-lower +upper):\n%s", diff)
	}
}

func TestSearchSummaryTruncates(t *testing.T) {
	inv := types.NewInventory(nil)
	for slot, name := range []string{"Iron Ingot", "Iron Block", "Iron Nugget", "Iron Ore", "Raw Iron", "Gold Ingot"} {
		require.NoError(t, inv.SetSlot("B02", slot, types.SlotEntry{Item: name, Quantity: 1}))
	}

	got := Search(inv, "iron")
	require.Len(t, got, 1)
	assert.Equal(t, "Iron Ingot, Iron Block, Iron Nugget (+2 more)", got[0].Summary)

	got = Search(inv, "ingot")
	require.Len(t, got, 1)
	assert.Equal(t, "Iron Ingot, Gold Ingot", got[0].Summary)
}

func TestSearchIdentifierMatch(t *testing.T) {
	inv := fixture(t)

	got := Search(inv, "b01")
	require.Len(t, got, 1)
	assert.Equal(t, Result{Chest: "B01", Summary: "65 items", Category: "Coal"}, got[0])

	got = Search(inv, "c04")
	require.Len(t, got, 1)
	assert.Equal(t, "kelp", got[0].Summary, "legacy id match reports the raw label")
}

func TestSearchEmptySlotChestByIdentifier(t *testing.T) {
	inv := types.NewInventory(nil)
	_, err := inv.OpenSlots("D05")
	require.NoError(t, err)

	got := Search(inv, "D05")
	require.Len(t, got, 1)
	assert.Equal(t, "0 items", got[0].Summary)
}

func TestSearchIgnoresBlankLabels(t *testing.T) {
	inv := types.NewInventory(nil)
	require.NoError(t, inv.Put("A02", types.NewSlotChest(map[int]types.SlotEntry{
		0: {Item: "   ", Quantity: 10},
		1: {Item: "Stone", Quantity: 2},
	})))

	assert.Empty(t, Search(inv, " "), "blank entries never match")

	got := Search(inv, "a02")
	require.Len(t, got, 1)
	assert.Equal(t, "2 items", got[0].Summary)
}

func TestSearchExcludesNonMatches(t *testing.T) {
	inv := fixture(t)
	assert.Empty(t, Search(inv, "netherite"))
}

func TestSearchOrder(t *testing.T) {
	inv := types.NewInventory(nil)
	for _, id := range []types.ChestID{"D02", "A10", "B01", "A02"} {
		require.NoError(t, inv.SetLabel(id, "shulker"))
	}

	got := Search(inv, "shulker")
	var ids []types.ChestID
	for _, r := range got {
		ids = append(ids, r.Chest)
	}
	assert.Equal(t, []types.ChestID{"A02", "A10", "B01", "D02"}, ids)
}

func TestSearchEmptyQueryMatchesEverything(t *testing.T) {
	inv := types.NewInventory(nil)
	assert.Len(t, Search(inv, ""), inv.Len())
}
