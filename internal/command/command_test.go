package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/chests/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
	}{
		{
			name: "long update",
			line: "UPD:B:01:5:(Diamond, 64)",
			want: Command{Verb: VerbUpdate, Chest: "B01", Slot: 5, Entry: types.SlotEntry{Item: "Diamond", Quantity: 64}},
		},
		{
			name: "short update, single digit chest, lower case",
			line: "~:a:1:0:(Iron Ingot,32)",
			want: Command{Verb: VerbUpdate, Chest: "A01", Slot: 0, Entry: types.SlotEntry{Item: "Iron Ingot", Quantity: 32}},
		},
		{
			name: "item name keeps colons",
			line: "upd:C:12:53:(minecraft:bread, 3)",
			want: Command{Verb: VerbUpdate, Chest: "C12", Slot: 53, Entry: types.SlotEntry{Item: "minecraft:bread", Quantity: 3}},
		},
		{
			name: "long remove",
			line: "REM:B:01:5",
			want: Command{Verb: VerbRemove, Chest: "B01", Slot: 5},
		},
		{
			name: "short remove with padding",
			line: "  -:d:30:7  ",
			want: Command{Verb: VerbRemove, Chest: "D30", Slot: 7},
		},
		{
			name: "three digit chest is canonicalized",
			line: "REM:A:001:1",
			want: Command{Verb: VerbRemove, Chest: "A01", Slot: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantErr    error
		wantClass  error
		wantSubstr string
	}{
		{"empty", "", ErrEmptyCommand, ErrFormat, "empty command"},
		{"whitespace", "   \t", ErrEmptyCommand, ErrFormat, "empty command"},
		{"too few fields", "UPD:B:01", ErrCommandFormat, ErrFormat, "invalid command format"},
		{"bad wall", "UPD:E:01:5:(Stone,1)", ErrInvalidWall, ErrValidation, "invalid wall 'E'"},
		{"chest not a number", "REM:A:xx:1", ErrInvalidChest, ErrValidation, "invalid chest number 'xx'"},
		{"wall D max is 30", "UPD:D:31:0:(Stone,1)", ErrInvalidChest, ErrValidation, "wall D: use 01-30"},
		{"chest zero", "REM:A:0:1", ErrInvalidChest, ErrValidation, "wall A: use 01-35"},
		{"chest 36", "REM:C:36:1", ErrInvalidChest, ErrValidation, "use 01-35"},
		{"slot too high", "~:A:1:60:(Stone,1)", ErrInvalidSlot, ErrValidation, "use 0-53"},
		{"negative slot", "REM:A:1:-1", ErrInvalidSlot, ErrValidation, "use 0-53"},
		{"slot not a number", "REM:A:1:top", ErrInvalidSlot, ErrValidation, "invalid slot number 'top'"},
		{"unknown verb", "ADD:A:1:1", ErrUnknownVerb, ErrFormat, "unknown command 'ADD'"},
		{"update without item", "UPD:A:1:1", ErrMissingItemData, ErrFormat, "needs item data"},
		{"no parens", "UPD:A:1:1:Stone,1", ErrMalformedItemData, ErrFormat, "(ItemName, Qty)"},
		{"missing closing paren", "UPD:A:1:1:(Stone,1", ErrMalformedItemData, ErrFormat, "(ItemName, Qty)"},
		{"one field", "UPD:A:1:1:(Stone)", ErrMalformedItemData, ErrFormat, "(ItemName, Qty)"},
		{"three fields", "UPD:A:1:1:(Stone,1,2)", ErrMalformedItemData, ErrFormat, "(ItemName, Qty)"},
		{"empty name", "UPD:A:1:1:( ,4)", ErrMalformedItemData, ErrFormat, "needs a name"},
		{"zero quantity", "UPD:A:1:1:(Stone,0)", ErrInvalidQuantity, ErrValidation, "quantity must be positive"},
		{"quantity not a number", "UPD:A:1:1:(Stone,lots)", ErrInvalidQuantity, ErrValidation, "invalid quantity 'lots'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.wantClass)
			assert.Contains(t, err.Error(), tt.wantSubstr)
		})
	}
}

func TestParseValidationOrder(t *testing.T) {
	// Wall is checked before chest, chest before slot, slot before verb.
	_, err := Parse("XYZ:Q:99:99", nil)
	assert.ErrorIs(t, err, ErrInvalidWall)

	_, err = Parse("XYZ:A:99:99", nil)
	assert.ErrorIs(t, err, ErrInvalidChest)

	_, err = Parse("XYZ:A:01:99", nil)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = Parse("XYZ:A:01:9", nil)
	assert.ErrorIs(t, err, ErrUnknownVerb)
}

func TestErrorClasses(t *testing.T) {
	_, err := Parse("UPD:A:1:1:(Stone)", nil)
	assert.True(t, IsFormatError(err))
	assert.False(t, IsValidationError(err))

	_, err = Parse("UPD:A:1:99:(Stone,1)", nil)
	assert.True(t, IsValidationError(err))
	assert.False(t, IsFormatError(err))
}

func TestParseCustomLayout(t *testing.T) {
	l := types.NewLayout(types.WallSpec{Wall: "Z", Chests: 3})

	cmd, err := Parse("REM:z:3:0", l)
	require.NoError(t, err)
	assert.Equal(t, types.ChestID("Z03"), cmd.Chest)

	_, err = Parse("REM:A:1:0", l)
	assert.ErrorIs(t, err, ErrInvalidWall)
	assert.Contains(t, err.Error(), "use Z")

	_, err = Parse("REM:Z:4:0", l)
	assert.ErrorIs(t, err, ErrInvalidChest)
	assert.Contains(t, err.Error(), "use 01-03")
}

func TestCommandString(t *testing.T) {
	cmd, err := Parse("~:b:1:5:(Diamond,64)", nil)
	require.NoError(t, err)
	assert.Equal(t, "UPD:B:01:5:(Diamond, 64)", cmd.String())

	again, err := Parse(cmd.String(), nil)
	require.NoError(t, err)
	assert.Equal(t, cmd, again)

	rm := Command{Verb: VerbRemove, Chest: "D07", Slot: 2}
	assert.Equal(t, "REM:D:07:2", rm.String())
}
