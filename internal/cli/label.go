package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/chests/internal/store"
	"github.com/mesh-intelligence/chests/pkg/types"
)

func newLabelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "label <chest> <text>",
		Short: "Give a chest a whole-chest label",
		Long: `Label replaces the chest's contents with a free-text label. Any slot
entries the chest held are discarded.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := strings.Join(args[1:], " ")
			return a.setLabel(cmd, args[0], label, func(id types.ChestID) string {
				return fmt.Sprintf("Labeled %s: %s", id, label)
			})
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <chest>",
		Short: "Reset a chest to an empty label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.setLabel(cmd, args[0], "", func(id types.ChestID) string {
				return fmt.Sprintf("Cleared %s", id)
			})
		},
	}
}

func (a *app) setLabel(cmd *cobra.Command, arg, label string, message func(types.ChestID) string) error {
	id, err := a.parseChest(arg)
	if err != nil {
		return err
	}
	return a.withInventory(func(st store.Store, inv *types.Inventory) error {
		if err := inv.SetLabel(id, label); err != nil {
			return userError(err)
		}
		if err := save(st, inv); err != nil {
			return err
		}
		a.logger.Debug("label set", zap.String("chest", string(id)), zap.String("label", label))

		out := cmd.OutOrStdout()
		if a.flags.jsonMode {
			return printJSON(out, map[string]string{"chest": string(id), "label": label})
		}
		fmt.Fprintln(out, message(id))
		return nil
	})
}
