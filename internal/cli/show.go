package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/chests/internal/store"
	"github.com/mesh-intelligence/chests/pkg/types"
)

// slotView is one occupied slot in show --json output.
type slotView struct {
	Slot     int    `json:"slot"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

type showOutput struct {
	Chest    types.ChestID `json:"chest"`
	Category string        `json:"category"`
	Form     string        `json:"form"`
	Label    string        `json:"label,omitempty"`
	Total    int           `json:"total"`
	Slots    []slotView    `json:"slots"`
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <chest>",
		Short: "Display the contents of one chest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.parseChest(args[0])
			if err != nil {
				return err
			}
			return a.withInventory(func(_ store.Store, inv *types.Inventory) error {
				c, err := inv.Chest(id)
				if err != nil {
					return userError(err)
				}

				view := showOutput{
					Chest:    id,
					Category: a.layout.CategoryFor(id),
					Form:     c.Form().String(),
					Label:    c.Label(),
					Total:    c.TotalQuantity(),
					Slots:    []slotView{},
				}
				for _, n := range c.SlotNumbers() {
					e, _ := c.Entry(n)
					view.Slots = append(view.Slots, slotView{Slot: n, Item: e.Item, Quantity: e.Quantity})
				}

				out := cmd.OutOrStdout()
				if a.flags.jsonMode {
					return printJSON(out, view)
				}

				fmt.Fprintf(out, "%s (%s)\n", id, view.Category)
				if c.Form() == types.FormLegacy {
					fmt.Fprintf(out, "  label: %s\n", c.Summary())
					return nil
				}
				if len(view.Slots) == 0 {
					fmt.Fprintf(out, "  %s\n", types.EmptySummary)
					return nil
				}
				for _, s := range view.Slots {
					fmt.Fprintf(out, "  %2d  %s x%d\n", s.Slot, s.Item, s.Quantity)
				}
				fmt.Fprintf(out, "  total: %d\n", view.Total)
				return nil
			})
		},
	}
}
