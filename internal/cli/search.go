package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/chests/internal/search"
	"github.com/mesh-intelligence/chests/internal/store"
	"github.com/mesh-intelligence/chests/pkg/types"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find chests by label, item, or identifier",
		Long: `Search lists every chest whose label, item names, or identifier contain
the query, ignoring case. Arguments are joined with spaces.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return a.withInventory(func(_ store.Store, inv *types.Inventory) error {
				results := search.Search(inv, query)
				out := cmd.OutOrStdout()

				if a.flags.jsonMode {
					if results == nil {
						results = []search.Result{}
					}
					return printJSON(out, results)
				}

				if len(results) == 0 {
					fmt.Fprintf(out, "No chests match %q\n", query)
					return nil
				}
				for _, r := range results {
					summary := r.Summary
					if strings.TrimSpace(summary) == "" {
						summary = types.EmptySummary
					}
					fmt.Fprintf(out, "%s: %s (%s)\n", r.Chest, summary, r.Category)
				}
				return nil
			})
		},
	}
}
