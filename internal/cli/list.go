package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/chests/internal/store"
	"github.com/mesh-intelligence/chests/pkg/types"
)

// wallView is the --json form of one wall.
type wallView struct {
	Wall   types.Wall  `json:"wall"`
	Filled int         `json:"filled"`
	Total  int         `json:"total"`
	Items  int         `json:"items"`
	Chests []chestView `json:"chests"`
}

type chestView struct {
	Chest    types.ChestID `json:"chest"`
	Category string        `json:"category"`
	Form     string        `json:"form"`
	Summary  string        `json:"summary"`
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [wall]",
		Short: "List chests wall by wall",
		Long: `List prints every chest of a wall grouped under its category, with the
number of filled chests and stored items. Without an argument all walls are
listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			walls := a.layout.Walls()
			if len(args) == 1 {
				w := types.Wall(strings.ToUpper(strings.TrimSpace(args[0])))
				if !a.layout.HasWall(w) {
					return userError(fmt.Errorf("unknown wall %q", args[0]))
				}
				walls = []types.Wall{w}
			}

			return a.withInventory(func(_ store.Store, inv *types.Inventory) error {
				views := make([]wallView, 0, len(walls))
				for _, w := range walls {
					views = append(views, a.viewWall(inv, w))
				}

				out := cmd.OutOrStdout()
				if a.flags.jsonMode {
					return printJSON(out, views)
				}
				for i, v := range views {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "Wall %s (%d/%d chests, %d items)\n", v.Wall, v.Filled, v.Total, v.Items)
					category := ""
					for _, c := range v.Chests {
						if c.Category != category {
							category = c.Category
							fmt.Fprintf(out, "--- %s ---\n", category)
						}
						fmt.Fprintf(out, "%s: %s\n", c.Chest, c.Summary)
					}
				}
				return nil
			})
		},
	}
}

func (a *app) viewWall(inv *types.Inventory, w types.Wall) wallView {
	stats := inv.Stats(w)
	v := wallView{Wall: w, Filled: stats.Filled, Total: stats.Total, Items: stats.Items}
	for _, id := range a.layout.ContainersForWall(w) {
		c, err := inv.Chest(id)
		if err != nil {
			continue
		}
		v.Chests = append(v.Chests, chestView{
			Chest:    id,
			Category: a.layout.CategoryFor(id),
			Form:     c.Form().String(),
			Summary:  c.Summary(),
		})
	}
	return v
}
