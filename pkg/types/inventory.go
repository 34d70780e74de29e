package types

import "fmt"

// Inventory maps every chest of a layout to its record. Identifiers outside
// the layout are never stored.
type Inventory struct {
	layout *Layout
	chests map[ChestID]*Chest
}

// NewInventory returns an inventory for layout with every chest set to an
// empty legacy label. A nil layout selects the reference layout.
func NewInventory(layout *Layout) *Inventory {
	if layout == nil {
		layout = defaultLayout
	}
	inv := &Inventory{
		layout: layout,
		chests: make(map[ChestID]*Chest),
	}
	for _, id := range layout.AllChests() {
		inv.chests[id] = NewLegacyChest("")
	}
	return inv
}

// Layout returns the layout the inventory was built from.
func (inv *Inventory) Layout() *Layout {
	return inv.layout
}

// IDs returns every chest identifier in layout order.
func (inv *Inventory) IDs() []ChestID {
	return inv.layout.AllChests()
}

// Len returns the number of chests.
func (inv *Inventory) Len() int {
	return len(inv.chests)
}

// Chest returns the record for id.
// Returns ErrUnknownChest if id is not part of the layout.
func (inv *Inventory) Chest(id ChestID) (*Chest, error) {
	c, ok := inv.chests[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChest, id)
	}
	return c, nil
}

// Put replaces the record for id. Unknown identifiers are rejected so the
// key set never grows beyond the layout.
func (inv *Inventory) Put(id ChestID, c *Chest) error {
	if _, ok := inv.chests[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChest, id)
	}
	if c == nil {
		c = NewLegacyChest("")
	}
	inv.chests[id] = c
	return nil
}

// SetLabel stores a legacy label for id, discarding any slots.
func (inv *Inventory) SetLabel(id ChestID, label string) error {
	c, err := inv.Chest(id)
	if err != nil {
		return err
	}
	c.SetLabel(label)
	return nil
}

// OpenSlots converts id to slot form for editing. A legacy label is lost.
func (inv *Inventory) OpenSlots(id ChestID) (*Chest, error) {
	c, err := inv.Chest(id)
	if err != nil {
		return nil, err
	}
	c.OpenSlots()
	return c, nil
}

// Slot returns the entry stored in a slot of id.
func (inv *Inventory) Slot(id ChestID, slot int) (SlotEntry, bool, error) {
	c, err := inv.Chest(id)
	if err != nil {
		return SlotEntry{}, false, err
	}
	if !validSlot(slot) {
		return SlotEntry{}, false, fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	e, ok := c.Entry(slot)
	return e, ok, nil
}

// SetSlot creates or replaces the entry in a slot of id.
func (inv *Inventory) SetSlot(id ChestID, slot int, e SlotEntry) error {
	c, err := inv.Chest(id)
	if err != nil {
		return err
	}
	return c.SetEntry(slot, e)
}

// DeleteSlot removes the entry in a slot of id and returns it.
// Returns ErrNotSlotForm for legacy chests.
func (inv *Inventory) DeleteSlot(id ChestID, slot int) (SlotEntry, bool, error) {
	c, err := inv.Chest(id)
	if err != nil {
		return SlotEntry{}, false, err
	}
	if !validSlot(slot) {
		return SlotEntry{}, false, fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	if c.Form() != FormSlots {
		return SlotEntry{}, false, fmt.Errorf("%w: %s", ErrNotSlotForm, id)
	}
	e, ok := c.DeleteEntry(slot)
	return e, ok, nil
}

// Clone returns a deep copy sharing the same layout.
func (inv *Inventory) Clone() *Inventory {
	out := &Inventory{
		layout: inv.layout,
		chests: make(map[ChestID]*Chest, len(inv.chests)),
	}
	for id, c := range inv.chests {
		out.chests[id] = c.Clone()
	}
	return out
}

// WallStats summarizes one wall.
type WallStats struct {
	Wall   Wall
	Filled int
	Total  int
	Items  int
}

// Stats counts chests with content and the total item quantity on w. A
// slot-form chest counts as filled when its quantity total is positive.
func (inv *Inventory) Stats(w Wall) WallStats {
	st := WallStats{Wall: w}
	for _, id := range inv.layout.ContainersForWall(w) {
		st.Total++
		c := inv.chests[id]
		switch c.Form() {
		case FormSlots:
			if q := c.TotalQuantity(); q > 0 {
				st.Filled++
				st.Items += q
			}
		case FormLegacy:
			if c.HasContent() {
				st.Filled++
			}
		}
	}
	return st
}
