// Package search finds chests whose labels, items, or identifiers contain a
// query string.
package search

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mesh-intelligence/chests/pkg/types"
)

// maxListed is how many matching item names a summary spells out.
const maxListed = 3

// Result is one matching chest.
type Result struct {
	Chest    types.ChestID `json:"chest"`
	Summary  string        `json:"summary"`
	Category string        `json:"category"`
}

// Search returns the chests of inv matching query, ordered by wall letter
// then chest number. Matching is a case-insensitive substring test.
//
// Legacy chests match on their label or identifier and are summarized by the
// label. Slot chests match on item names, summarized by the first three
// matches in slot order; failing that, an identifier match is summarized by
// the chest's item total.
func Search(inv *types.Inventory, query string) []Result {
	q := strings.ToLower(query)
	layout := inv.Layout()

	var results []Result
	for _, id := range inv.IDs() {
		chest, err := inv.Chest(id)
		if err != nil {
			continue
		}
		summary, ok := match(id, chest, q)
		if !ok {
			continue
		}
		results = append(results, Result{
			Chest:    id,
			Summary:  summary,
			Category: layout.CategoryFor(id),
		})
	}

	slices.SortFunc(results, func(a, b Result) int {
		switch {
		case a.Chest.Less(b.Chest):
			return -1
		case b.Chest.Less(a.Chest):
			return 1
		default:
			return 0
		}
	})
	return results
}

func match(id types.ChestID, chest *types.Chest, q string) (string, bool) {
	idMatch := strings.Contains(strings.ToLower(string(id)), q)

	switch chest.Form() {
	case types.FormLegacy:
		label := chest.Label()
		if idMatch || strings.Contains(strings.ToLower(label), q) {
			return label, true
		}
		return "", false
	case types.FormSlots:
		var found []string
		for _, slot := range chest.SlotNumbers() {
			e, _ := chest.Entry(slot)
			if e.Blank() {
				continue
			}
			if strings.Contains(strings.ToLower(e.Item), q) {
				found = append(found, e.Item)
			}
		}
		if len(found) > 0 {
			return summarize(found), true
		}
		if idMatch {
			return fmt.Sprintf("%d items", chest.TotalQuantity()), true
		}
		return "", false
	default:
		return "", false
	}
}

func summarize(items []string) string {
	if len(items) <= maxListed {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:maxListed], ", "), len(items)-maxListed)
}
