// Package command parses and applies the compact chest-editing language:
//
//	UPD:WALL:CHEST:SLOT:(ItemName, Qty)   update a slot
//	~:WALL:CHEST:SLOT:(ItemName, Qty)     short update
//	REM:WALL:CHEST:SLOT                   remove from a slot
//	-:WALL:CHEST:SLOT                     short remove
//
// Verbs and wall letters are case-insensitive. The engine mutates the
// inventory it is given and never persists; callers save when
// Result.Changed reports true.
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/chests/pkg/types"
)

// Verb is the action of a command.
type Verb int

// Supported verbs.
const (
	VerbUpdate Verb = iota + 1
	VerbRemove
)

func (v Verb) String() string {
	switch v {
	case VerbUpdate:
		return "UPD"
	case VerbRemove:
		return "REM"
	default:
		return fmt.Sprintf("Verb(%d)", int(v))
	}
}

// verbs maps accepted spellings to verbs.
var verbs = map[string]Verb{
	"UPD": VerbUpdate,
	"~":   VerbUpdate,
	"REM": VerbRemove,
	"-":   VerbRemove,
}

// Command is a parsed, validated command.
type Command struct {
	Verb  Verb
	Chest types.ChestID
	Slot  int
	Entry types.SlotEntry // set for VerbUpdate only
}

func (c Command) String() string {
	wall, num := c.Chest.Wall(), c.Chest.Number()
	if c.Verb == VerbUpdate {
		return fmt.Sprintf("UPD:%s:%02d:%d:(%s, %d)", wall, num, c.Slot, c.Entry.Item, c.Entry.Quantity)
	}
	return fmt.Sprintf("REM:%s:%02d:%d", wall, num, c.Slot)
}

const usage = "use UPD:WALL:CHEST:SLOT:(Item,Qty) or REM:WALL:CHEST:SLOT"

// Parse reads one command line and validates it against layout. A nil
// layout selects the reference layout. Fields are checked in order: shape,
// wall, chest, slot, verb, then item data.
func Parse(line string, layout *types.Layout) (Command, error) {
	if layout == nil {
		layout = types.DefaultLayout()
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, fail(ErrEmptyCommand, "empty command")
	}

	parts := strings.Split(line, ":")
	if len(parts) < 4 {
		return Command{}, fail(ErrCommandFormat, "invalid command format: %s", usage)
	}

	verbText := strings.ToUpper(strings.TrimSpace(parts[0]))
	wall := types.Wall(strings.ToUpper(strings.TrimSpace(parts[1])))
	chestText := strings.TrimSpace(parts[2])
	slotText := strings.TrimSpace(parts[3])

	if !layout.HasWall(wall) {
		return Command{}, fail(ErrInvalidWall, "invalid wall '%s': use %s", wall, wallList(layout))
	}

	last, _ := layout.MaxChest(wall)
	num, err := strconv.Atoi(chestText)
	if err != nil {
		return Command{}, fail(ErrInvalidChest, "invalid chest number '%s'", chestText)
	}
	if num < 1 || num > last {
		return Command{}, fail(ErrInvalidChest, "invalid chest number for wall %s: use 01-%02d", wall, last)
	}

	slot, err := strconv.Atoi(slotText)
	if err != nil {
		return Command{}, fail(ErrInvalidSlot, "invalid slot number '%s'", slotText)
	}
	if slot < 0 || slot > types.MaxSlot {
		return Command{}, fail(ErrInvalidSlot, "invalid slot number: use 0-%d", types.MaxSlot)
	}

	cmd := Command{Chest: types.NewChestID(wall, num), Slot: slot}

	verb, ok := verbs[verbText]
	if !ok {
		return Command{}, fail(ErrUnknownVerb, "unknown command '%s': use UPD/~ for update or REM/- for remove", verbText)
	}
	cmd.Verb = verb

	if verb == VerbRemove {
		return cmd, nil
	}

	if len(parts) < 5 {
		return Command{}, fail(ErrMissingItemData, "update command needs item data: UPD:WALL:CHEST:SLOT:(ItemName,Qty)")
	}
	entry, err := parseItemData(strings.Join(parts[4:], ":"))
	if err != nil {
		return Command{}, err
	}
	cmd.Entry = entry
	return cmd, nil
}

// parseItemData reads "(name, qty)". The name may contain colons but not
// commas.
func parseItemData(data string) (types.SlotEntry, error) {
	data = strings.TrimSpace(data)
	if len(data) < 2 || !strings.HasPrefix(data, "(") || !strings.HasSuffix(data, ")") {
		return types.SlotEntry{}, fail(ErrMalformedItemData, "item data must be in format: (ItemName, Qty)")
	}

	fields := strings.Split(data[1:len(data)-1], ",")
	if len(fields) != 2 {
		return types.SlotEntry{}, fail(ErrMalformedItemData, "item data must be: (ItemName, Qty)")
	}
	name := strings.TrimSpace(fields[0])
	qtyText := strings.TrimSpace(fields[1])
	if name == "" {
		return types.SlotEntry{}, fail(ErrMalformedItemData, "item data needs a name: (ItemName, Qty)")
	}

	qty, err := strconv.Atoi(qtyText)
	if err != nil {
		return types.SlotEntry{}, fail(ErrInvalidQuantity, "invalid quantity '%s'", qtyText)
	}
	if qty < 1 {
		return types.SlotEntry{}, fail(ErrInvalidQuantity, "quantity must be positive")
	}
	return types.SlotEntry{Item: name, Quantity: qty}, nil
}

func wallList(layout *types.Layout) string {
	walls := layout.Walls()
	names := make([]string, len(walls))
	for i, w := range walls {
		names[i] = string(w)
	}
	switch len(names) {
	case 0:
		return "no walls"
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}
