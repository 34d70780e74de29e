package types

import (
	"fmt"
	"slices"
	"strings"
)

// Form tells which representation a Chest holds.
type Form int

// Chest forms. A chest is in exactly one form at a time.
const (
	// FormLegacy is a single free-text label for the whole chest.
	FormLegacy Form = iota
	// FormSlots is a map from slot number to SlotEntry.
	FormSlots
)

func (f Form) String() string {
	switch f {
	case FormLegacy:
		return "legacy"
	case FormSlots:
		return "slots"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// SlotEntry is the item occupying one slot.
type SlotEntry struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// Blank reports whether the entry has no usable item label.
func (e SlotEntry) Blank() bool {
	return strings.TrimSpace(e.Item) == ""
}

func (e SlotEntry) String() string {
	return fmt.Sprintf("%s x%d", e.Item, e.Quantity)
}

// Chest is the record for one container: either a legacy label or a slot
// map. The zero value is an empty legacy chest.
type Chest struct {
	form  Form
	label string
	slots map[int]SlotEntry
}

// NewLegacyChest returns a chest holding a whole-chest label.
func NewLegacyChest(label string) *Chest {
	return &Chest{form: FormLegacy, label: label}
}

// NewSlotChest returns a chest in slot form holding entries. Out-of-range
// slot numbers are dropped.
func NewSlotChest(entries map[int]SlotEntry) *Chest {
	c := &Chest{form: FormSlots, slots: make(map[int]SlotEntry, len(entries))}
	for slot, e := range entries {
		if validSlot(slot) {
			c.slots[slot] = e
		}
	}
	return c
}

// Form returns the current representation.
func (c *Chest) Form() Form {
	return c.form
}

// Label returns the legacy label; empty for slot-form chests.
func (c *Chest) Label() string {
	if c.form != FormLegacy {
		return ""
	}
	return c.label
}

// SetLabel replaces the chest with a legacy label, discarding any slots.
func (c *Chest) SetLabel(label string) {
	c.form = FormLegacy
	c.label = label
	c.slots = nil
}

// OpenSlots converts a legacy chest to an empty slot map. The legacy label is
// discarded. It is a no-op for chests already in slot form. It reports
// whether a conversion happened.
func (c *Chest) OpenSlots() bool {
	if c.form == FormSlots {
		return false
	}
	c.form = FormSlots
	c.label = ""
	c.slots = make(map[int]SlotEntry)
	return true
}

// Entry returns the entry in slot, if any.
func (c *Chest) Entry(slot int) (SlotEntry, bool) {
	if c.form != FormSlots {
		return SlotEntry{}, false
	}
	e, ok := c.slots[slot]
	return e, ok
}

// SetEntry stores e in slot, converting a legacy chest to slot form first.
func (c *Chest) SetEntry(slot int, e SlotEntry) error {
	if !validSlot(slot) {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	if e.Quantity < 1 || e.Blank() {
		return fmt.Errorf("%w: %q x%d", ErrInvalidEntry, e.Item, e.Quantity)
	}
	c.OpenSlots()
	c.slots[slot] = e
	return nil
}

// DeleteEntry removes slot and returns what it held. The slot key is absent
// afterwards. Legacy chests are left untouched.
func (c *Chest) DeleteEntry(slot int) (SlotEntry, bool) {
	if c.form != FormSlots {
		return SlotEntry{}, false
	}
	e, ok := c.slots[slot]
	if ok {
		delete(c.slots, slot)
	}
	return e, ok
}

// SlotNumbers returns the occupied slot numbers in ascending order.
func (c *Chest) SlotNumbers() []int {
	if c.form != FormSlots {
		return nil
	}
	nums := make([]int, 0, len(c.slots))
	for n := range c.slots {
		nums = append(nums, n)
	}
	slices.Sort(nums)
	return nums
}

// Entries returns a copy of the slot map. Nil for legacy chests.
func (c *Chest) Entries() map[int]SlotEntry {
	if c.form != FormSlots {
		return nil
	}
	out := make(map[int]SlotEntry, len(c.slots))
	for n, e := range c.slots {
		out[n] = e
	}
	return out
}

// TotalQuantity sums the quantities of entries with non-blank labels. Legacy
// chests have no quantities and report zero; callers branch on Form.
func (c *Chest) TotalQuantity() int {
	if c.form != FormSlots {
		return 0
	}
	total := 0
	for _, e := range c.slots {
		if !e.Blank() {
			total += e.Quantity
		}
	}
	return total
}

// HasContent reports whether the chest holds anything worth showing.
func (c *Chest) HasContent() bool {
	if c.form == FormLegacy {
		return strings.TrimSpace(c.label) != ""
	}
	for _, e := range c.slots {
		if !e.Blank() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (c *Chest) Clone() *Chest {
	if c.form == FormLegacy {
		return NewLegacyChest(c.label)
	}
	return &Chest{form: FormSlots, slots: c.Entries()}
}

func validSlot(slot int) bool {
	return slot >= 0 && slot <= MaxSlot
}

// EmptySummary is shown for chests with nothing in them.
const EmptySummary = "<empty>"

// Summary is the one-line description used in wall listings: the label of a
// legacy chest, or the item total of a slot chest.
func (c *Chest) Summary() string {
	if c.form == FormLegacy {
		if strings.TrimSpace(c.label) == "" {
			return EmptySummary
		}
		return c.label
	}
	if total := c.TotalQuantity(); total > 0 {
		return fmt.Sprintf("%d items", total)
	}
	return EmptySummary
}
