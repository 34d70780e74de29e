package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/chests/internal/command"
	"github.com/mesh-intelligence/chests/internal/search"
	"github.com/mesh-intelligence/chests/pkg/types"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeWall:
			return m.updateWall(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeLabel:
			return m.updateLabel(msg)
		case modeCommand:
			return m.updateCommand(msg)
		case modeMessage, modeHelp:
			m.mode = modeWall
			m.message = ""
			return m, nil
		case modeEditor:
			return m.updateEditor(msg)
		case modeSlotName:
			return m.updateSlotName(msg)
		case modeSlotQty:
			return m.updateSlotQty(msg)
		}
	}
	return m, nil
}

func (m Model) updateWall(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	chests := m.wallChests()
	page := m.page()

	switch msg.String() {
	case "q", "Q":
		return m, tea.Quit
	case "right":
		if len(m.walls) > 0 {
			m.wallIdx = (m.wallIdx + 1) % len(m.walls)
		}
		m.resetList()
	case "left":
		if len(m.walls) > 0 {
			m.wallIdx = (m.wallIdx - 1 + len(m.walls)) % len(m.walls)
		}
		m.resetList()
	case "down":
		if m.selected < len(chests)-1 {
			m.selected++
			if m.selected >= m.offset+page {
				m.offset = min(m.selected-page+1, max(0, len(chests)-page))
			}
		}
	case "up":
		if m.selected > 0 {
			m.selected--
			if m.selected < m.offset {
				m.offset = m.selected
			}
		}
	case "pgdown":
		m.selected = min(m.selected+page, len(chests)-1)
		m.offset = min(m.offset+page, max(0, len(chests)-page))
	case "pgup":
		m.selected = max(m.selected-page, 0)
		m.offset = max(m.offset-page, 0)
	case "enter":
		if len(chests) == 0 {
			return m, nil
		}
		id := chests[m.selected]
		chest, err := m.inv.Chest(id)
		if err != nil {
			return m, nil
		}
		m.editing = id
		m.slot = 0
		m.mode = modeEditor
		if chest.Form() == types.FormLegacy {
			if _, err := m.inv.OpenSlots(id); err != nil {
				return m, nil
			}
			m.logger.Info("converted chest to slots", zap.String("chest", string(id)))
			return m, m.save()
		}
	case "/":
		m.mode = modeSearch
		m.query = ""
		m.results = nil
		m.resetList()
	case ":":
		return m, m.prompt(modeCommand, "UPD:B:01:5:(Diamond, 64)")
	case "?":
		m.mode = modeHelp
	case "d", "D":
		if len(chests) == 0 {
			return m, nil
		}
		id := chests[m.selected]
		if err := m.inv.SetLabel(id, ""); err != nil {
			return m, nil
		}
		m.logger.Info("cleared chest", zap.String("chest", string(id)))
		return m, m.save()
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.page()

	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeWall
		m.query = ""
		m.results = nil
		m.resetList()
	case tea.KeyBackspace:
		if m.query != "" {
			r := []rune(m.query)
			m.query = string(r[:len(r)-1])
			m.runSearch()
		}
	case tea.KeyDown:
		if len(m.results) > 0 {
			m.selected = min(m.selected+1, len(m.results)-1)
			if m.selected >= m.offset+page {
				m.offset++
			}
		}
	case tea.KeyUp:
		if len(m.results) > 0 {
			m.selected = max(m.selected-1, 0)
			if m.selected < m.offset {
				m.offset--
			}
		}
	case tea.KeyEnter:
		if len(m.results) > 0 {
			m.target = m.results[m.selected].Chest
			return m, m.prompt(modeLabel, "new label")
		}
	case tea.KeyRunes, tea.KeySpace:
		m.query += string(msg.Runes)
		m.runSearch()
	}
	return m, nil
}

func (m *Model) runSearch() {
	m.results = search.Search(m.inv, m.query)
	m.resetList()
}

func (m Model) updateLabel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.endPrompt(modeSearch)
		return m, nil
	case tea.KeyEnter:
		label := m.input.Value()
		m.endPrompt(modeSearch)
		if err := m.inv.SetLabel(m.target, label); err != nil {
			return m, nil
		}
		m.logger.Info("label set", zap.String("chest", string(m.target)))
		cmd := m.save()
		selected, offset := m.selected, m.offset
		m.runSearch()
		if selected < len(m.results) {
			m.selected, m.offset = selected, offset
		}
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.endPrompt(modeWall)
		return m, nil
	case tea.KeyEnter:
		line := m.input.Value()
		if strings.TrimSpace(line) == "" {
			m.endPrompt(modeWall)
			return m, nil
		}
		m.endPrompt(modeMessage)
		res := command.Execute(line, m.inv)
		m.message = res.Message
		m.logger.Info("command executed", zap.String("command", line), zap.Stringer("status", res.Status))
		if res.Changed() {
			return m, m.save()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "esc":
		m.mode = modeWall
		m.editing = ""
	case "down":
		if m.slot < types.SlotsPerChest-gridCols {
			m.slot += gridCols
		}
	case "up":
		if m.slot >= gridCols {
			m.slot -= gridCols
		}
	case "right":
		if m.slot%gridCols < gridCols-1 {
			m.slot++
		}
	case "left":
		if m.slot%gridCols > 0 {
			m.slot--
		}
	case "enter":
		return m, m.prompt(modeSlotName, "item name (empty clears)")
	case "x", "X", "delete":
		return m, m.clearSlot()
	}
	return m, nil
}

func (m *Model) clearSlot() tea.Cmd {
	_, removed, err := m.inv.DeleteSlot(m.editing, m.slot)
	if err != nil || !removed {
		return nil
	}
	m.logger.Info("slot cleared", zap.String("chest", string(m.editing)), zap.Int("slot", m.slot))
	return m.save()
}

func (m Model) updateSlotName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.endPrompt(modeEditor)
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.endPrompt(modeEditor)
			return m, m.clearSlot()
		}
		m.pendingName = name
		m.input.Blur()
		return m, m.prompt(modeSlotQty, "quantity")
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSlotQty(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.pendingName = ""
		m.endPrompt(modeEditor)
		return m, nil
	case tea.KeyEnter:
		qty := parseQuantity(m.input.Value())
		m.endPrompt(modeEditor)
		entry := types.SlotEntry{Item: m.pendingName, Quantity: qty}
		m.pendingName = ""
		if err := m.inv.SetSlot(m.editing, m.slot, entry); err != nil {
			m.logger.Warn("slot edit rejected", zap.Error(err))
			return m, nil
		}
		m.logger.Info("slot set", zap.String("chest", string(m.editing)), zap.Int("slot", m.slot), zap.Stringer("entry", entry))
		return m, m.save()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseQuantity reads a decimal quantity; anything else, including zero,
// becomes 1.
func parseQuantity(s string) int {
	s = strings.TrimSpace(s)
	for _, r := range s {
		if r < '0' || r > '9' {
			return 1
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
