package command

import (
	"fmt"

	"github.com/mesh-intelligence/chests/pkg/types"
)

// Status classifies the outcome of a command.
type Status int

// Command outcomes.
const (
	// StatusApplied means the inventory changed.
	StatusApplied Status = iota
	// StatusNoOp means the command was valid but had nothing to do.
	StatusNoOp
	// StatusFailed means the command was rejected; Err holds the reason.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusNoOp:
		return "noop"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the single-line outcome shown to the user.
type Result struct {
	Message string
	Status  Status
	Err     error
}

// Changed reports whether the inventory was mutated and must be saved.
func (r Result) Changed() bool {
	return r.Status == StatusApplied
}

func (r Result) String() string {
	return r.Message
}

func failed(err error) Result {
	return Result{Message: err.Error(), Status: StatusFailed, Err: err}
}

// Apply executes the command against inv.
func (c Command) Apply(inv *types.Inventory) Result {
	chest, err := inv.Chest(c.Chest)
	if err != nil {
		return failed(err)
	}

	switch c.Verb {
	case VerbUpdate:
		if err := chest.SetEntry(c.Slot, c.Entry); err != nil {
			return failed(err)
		}
		return Result{
			Message: fmt.Sprintf("Updated %s slot %d: %s", c.Chest, c.Slot, c.Entry),
			Status:  StatusApplied,
		}
	case VerbRemove:
		if chest.Form() != types.FormSlots {
			return Result{
				Message: fmt.Sprintf("Chest %s has no items to remove", c.Chest),
				Status:  StatusNoOp,
			}
		}
		removed, ok := chest.DeleteEntry(c.Slot)
		if !ok {
			return Result{
				Message: fmt.Sprintf("Slot %d in %s is already empty", c.Slot, c.Chest),
				Status:  StatusNoOp,
			}
		}
		return Result{
			Message: fmt.Sprintf("Removed from %s slot %d: %s", c.Chest, c.Slot, removed),
			Status:  StatusApplied,
		}
	default:
		return failed(fail(ErrUnknownVerb, "unknown command '%s'", c.Verb))
	}
}

// Execute parses line against the inventory's layout and applies it. It
// never panics on user input; every failure is reported in the Result.
func Execute(line string, inv *types.Inventory) Result {
	cmd, err := Parse(line, inv.Layout())
	if err != nil {
		return failed(err)
	}
	return cmd.Apply(inv)
}

// Help returns the command syntax reference.
func Help() []string {
	return []string{
		"Command Syntax:",
		"  UPD:WALL:CHEST:SLOT:(ItemName, Qty) - Update slot",
		"  REM:WALL:CHEST:SLOT - Remove from slot",
		"  ~:WALL:CHEST:SLOT:(ItemName, Qty) - Short update",
		"  -:WALL:CHEST:SLOT - Short remove",
		"",
		"Examples:",
		"  UPD:B:01:5:(Diamond, 64)",
		"  ~:B:01:5:(Iron Ingot, 32)",
		"  REM:B:01:5",
		"  -:B:01:5",
		"",
		"WALL: A, B, C, D",
		"CHEST: 01-35 (01-30 for D)",
		"SLOT: 0-53",
	}
}
