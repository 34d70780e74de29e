package tui

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/chests/internal/command"
	"github.com/mesh-intelligence/chests/pkg/types"
)

const (
	wallHints   = "←→: Switch wall  |  ↑↓: Navigate  |  Enter: Edit  |  /: Search  |  :: Command  |  d: Clear  |  ?: Help  |  q: Quit"
	searchHints = "ESC: Exit search  |  ↑↓: Navigate  |  Enter: Edit label  |  Backspace: Delete char  |  Type: Search"
	editorHints = "Arrow Keys: Navigate  |  Enter: Edit Item  |  x/Del: Clear Slot  |  q: Back to Chests"
)

func (m Model) View() string {
	switch m.mode {
	case modeHelp:
		return m.viewHelp()
	case modeEditor, modeSlotName, modeSlotQty:
		return m.viewEditor()
	case modeSearch, modeLabel:
		return m.viewSearch()
	default:
		return m.viewWall()
	}
}

func (m Model) viewWall() string {
	var b strings.Builder

	st := m.inv.Stats(m.wall())
	header := fmt.Sprintf("Storage Tracker - Wall %s", m.wall())
	stats := fmt.Sprintf("(%d/%d chests, %d items)", st.Filled, st.Total, st.Items)
	b.WriteString(m.styles.Title.Render(header) + "  " + m.styles.Stats.Render(stats) + "\n\n")

	chests := m.wallChests()
	end := min(m.offset+m.page(), len(chests))
	category := ""
	for idx := m.offset; idx < end; idx++ {
		id := chests[idx]
		if c := m.layout.CategoryFor(id); c != category {
			category = c
			b.WriteString(m.styles.Category.Render("--- "+category+" ---") + "\n")
		}
		chest, err := m.inv.Chest(id)
		if err != nil {
			continue
		}
		line := m.truncate(fmt.Sprintf("%s: %s", id, chest.Summary()))
		b.WriteString(m.styleRow(line, idx == m.selected, chest.HasContent()) + "\n")
	}

	b.WriteString("\n")
	switch m.mode {
	case modeCommand:
		b.WriteString("Command: " + m.input.View() + "\n")
	case modeMessage:
		b.WriteString(m.styles.Message.Render(m.truncate(m.message)) + "\n")
	default:
		b.WriteString(m.styles.Footer.Render(m.truncate(wallHints)) + "\n")
	}
	b.WriteString(m.scrollInfo(len(chests), end))
	return b.String()
}

func (m Model) viewSearch() string {
	var b strings.Builder

	header := fmt.Sprintf("Search Mode: '%s' (%d results)", m.query, len(m.results))
	b.WriteString(m.styles.Search.Render(header) + "\n\n")

	end := min(m.offset+m.page(), len(m.results))
	for idx := m.offset; idx < end; idx++ {
		r := m.results[idx]
		summary := r.Summary
		if strings.TrimSpace(summary) == "" {
			summary = types.EmptySummary
		}
		line := m.truncate(fmt.Sprintf("%s: %s (%s)", r.Chest, summary, r.Category))
		b.WriteString(m.styleRow(line, idx == m.selected, strings.TrimSpace(r.Summary) != "") + "\n")
	}

	b.WriteString("\n")
	if m.mode == modeLabel {
		b.WriteString(fmt.Sprintf("New label for %s: %s\n", m.target, m.input.View()))
	} else {
		b.WriteString(m.styles.Footer.Render(m.truncate(searchHints)) + "\n")
	}
	b.WriteString(m.scrollInfo(len(m.results), end))
	return b.String()
}

func (m Model) viewEditor() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Double Chest %s - Item Management", m.editing)) + "\n\n")

	for row := 0; row < gridRows; row++ {
		cells := make([]string, 0, gridCols)
		for col := 0; col < gridCols; col++ {
			slot := row*gridCols + col
			e, ok, _ := m.inv.Slot(m.editing, slot)
			filled := ok && !e.Blank()
			cell := "[----]"
			if filled {
				cell = fmt.Sprintf("%s:%2d", abbreviate(e.Item), e.Quantity)
			}
			cells = append(cells, m.styleRow(fmt.Sprintf("%-6s", cell), slot == m.slot, filled))
		}
		b.WriteString(strings.Join(cells, "  ") + "\n")
	}

	b.WriteString("\n")
	if e, ok, _ := m.inv.Slot(m.editing, m.slot); ok && !e.Blank() {
		b.WriteString(m.truncate(fmt.Sprintf("Selected: %s (Quantity: %d)", e.Item, e.Quantity)) + "\n")
	} else {
		b.WriteString(fmt.Sprintf("Selected: Slot %d [Empty]\n", m.slot))
	}
	b.WriteString("\n")

	switch m.mode {
	case modeSlotName:
		b.WriteString("Enter item name: " + m.input.View() + "\n")
	case modeSlotQty:
		b.WriteString(fmt.Sprintf("Item: %s\nEnter quantity: %s\n", m.pendingName, m.input.View()))
	default:
		b.WriteString(m.styles.Footer.Render(m.truncate(editorHints)) + "\n")
	}
	return b.String()
}

func (m Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Command Help") + "\n\n")
	for _, line := range command.Help() {
		b.WriteString(line + "\n")
	}
	b.WriteString("\nPress any key to continue...")
	return b.String()
}

func (m Model) styleRow(s string, selected, filled bool) string {
	switch {
	case selected:
		return m.styles.Selected.Render(s)
	case filled:
		return m.styles.Filled.Render(s)
	default:
		return m.styles.Empty.Render(s)
	}
}

func (m Model) scrollInfo(total, end int) string {
	if total <= m.page() {
		return ""
	}
	return fmt.Sprintf("[%d-%d/%d]", m.offset+1, end, total)
}

// truncate shortens s to the terminal width, marking the cut with "...".
func (m Model) truncate(s string) string {
	limit := m.width - 4
	r := []rune(s)
	if limit <= 3 || len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// abbreviate returns the first three letters of an item name in upper case.
func abbreviate(item string) string {
	r := []rune(strings.ToUpper(item))
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}
