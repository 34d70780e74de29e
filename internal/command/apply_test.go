package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/chests/pkg/types"
)

func TestExecuteUpdateOnFreshInventory(t *testing.T) {
	inv := types.NewInventory(nil)

	res := Execute("UPD:B:01:5:(Diamond, 64)", inv)
	require.Equal(t, StatusApplied, res.Status, res.Message)
	assert.True(t, res.Changed())
	assert.NoError(t, res.Err)
	for _, want := range []string{"B01", "5", "Diamond", "64"} {
		assert.Contains(t, res.Message, want)
	}
	assert.Equal(t, "Updated B01 slot 5: Diamond x64", res.Message)

	e, ok, err := inv.Slot("B01", 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.SlotEntry{Item: "Diamond", Quantity: 64}, e)
}

func TestExecuteUpdateReplacesAndConverts(t *testing.T) {
	inv := types.NewInventory(nil)
	require.NoError(t, inv.SetLabel("A01", "cobblestone"))

	require.True(t, Execute("~:A:01:0:(Stone, 64)", inv).Changed())
	require.True(t, Execute("~:A:01:0:(Smooth Stone, 12)", inv).Changed())

	c, err := inv.Chest("A01")
	require.NoError(t, err)
	assert.Equal(t, types.FormSlots, c.Form())
	assert.Equal(t, "", c.Label(), "legacy label discarded")
	e, _ := c.Entry(0)
	assert.Equal(t, types.SlotEntry{Item: "Smooth Stone", Quantity: 12}, e)
	assert.Equal(t, []int{0}, c.SlotNumbers())
}

func TestExecuteRemoveTwice(t *testing.T) {
	inv := types.NewInventory(nil)
	require.True(t, Execute("UPD:B:01:5:(Diamond, 64)", inv).Changed())

	first := Execute("REM:B:01:5", inv)
	assert.Equal(t, StatusApplied, first.Status)
	assert.Equal(t, "Removed from B01 slot 5: Diamond x64", first.Message)
	c, err := inv.Chest("B01")
	require.NoError(t, err)
	_, present := c.Entries()[5]
	assert.False(t, present)

	second := Execute("-:b:1:5", inv)
	assert.Equal(t, StatusNoOp, second.Status)
	assert.False(t, second.Changed())
	assert.NoError(t, second.Err)
	assert.Equal(t, "Slot 5 in B01 is already empty", second.Message)
	_, present = c.Entries()[5]
	assert.False(t, present)
}

func TestExecuteRemoveFromLegacyChest(t *testing.T) {
	inv := types.NewInventory(nil)
	require.NoError(t, inv.SetLabel("C03", "nether wart"))

	res := Execute("REM:C:03:0", inv)
	assert.Equal(t, StatusNoOp, res.Status)
	assert.Equal(t, "Chest C03 has no items to remove", res.Message)

	c, err := inv.Chest("C03")
	require.NoError(t, err)
	assert.Equal(t, types.FormLegacy, c.Form(), "no-op remove keeps legacy label")
	assert.Equal(t, "nether wart", c.Label())
}

func TestExecuteFailuresLeaveInventoryAlone(t *testing.T) {
	inv := types.NewInventory(nil)
	require.NoError(t, inv.SetLabel("D01", "elytra"))

	for _, line := range []string{
		"UPD:D:31:0:(Stone,1)",
		"~:A:1:60:(Stone,1)",
		"UPD:D:01:0:(Stone)",
		"UPD:D:01:0:(Stone,-3)",
		"",
		"nonsense",
	} {
		res := Execute(line, inv)
		assert.Equal(t, StatusFailed, res.Status, line)
		assert.Error(t, res.Err, line)
		assert.False(t, res.Changed(), line)
		assert.Equal(t, res.Err.Error(), res.Message, line)
	}

	c, err := inv.Chest("D01")
	require.NoError(t, err)
	assert.Equal(t, "elytra", c.Label())
}

func TestApplyUnknownChest(t *testing.T) {
	inv := types.NewInventory(types.NewLayout(types.WallSpec{Wall: "A", Chests: 1}))
	res := Command{Verb: VerbRemove, Chest: "B01"}.Apply(inv)
	assert.Equal(t, StatusFailed, res.Status)
	assert.ErrorIs(t, res.Err, types.ErrUnknownChest)
}

func TestHelp(t *testing.T) {
	lines := Help()
	require.NotEmpty(t, lines)
	assert.Equal(t, "Command Syntax:", lines[0])
	assert.Contains(t, lines, "  REM:B:01:5")
}
