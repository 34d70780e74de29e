package types

import "errors"

// Inventory errors.
var (
	ErrUnknownChest = errors.New("unknown chest")
	ErrInvalidChest = errors.New("invalid chest identifier")
	ErrInvalidSlot  = errors.New("slot out of range")
	ErrNotSlotForm  = errors.New("chest is not in slot form")
	ErrInvalidEntry = errors.New("invalid slot entry")
)
