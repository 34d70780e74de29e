// Package tui is the interactive inventory browser: a wall view with
// category headers, incremental search, a command prompt, and a 9x6 slot
// editor for one chest at a time. Every mutation is saved immediately; a
// failed save ends the session with the error.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/chests/internal/search"
	"github.com/mesh-intelligence/chests/pkg/types"
)

// Saver persists the whole inventory.
type Saver interface {
	Save(inv *types.Inventory) error
}

type mode int

const (
	modeWall mode = iota
	modeSearch
	modeLabel
	modeCommand
	modeMessage
	modeHelp
	modeEditor
	modeSlotName
	modeSlotQty
)

// Grid dimensions of the slot editor.
const (
	gridCols = 9
	gridRows = types.SlotsPerChest / gridCols
)

// Lines reserved for header, footer, and prompt.
const chromeLines = 6

// Model is the bubbletea model of the browser.
type Model struct {
	inv    *types.Inventory
	layout *types.Layout
	saver  Saver
	logger *zap.Logger
	styles Styles

	mode     mode
	walls    []types.Wall
	wallIdx  int
	selected int
	offset   int
	width    int
	height   int

	query   string
	results []search.Result
	target  types.ChestID

	editing     types.ChestID
	slot        int
	pendingName string

	input   textinput.Model
	message string
	err     error
}

// New returns a model browsing inv. A nil logger discards log output.
func New(inv *types.Inventory, saver Saver, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.CharLimit = 80
	ti.Width = 60

	return Model{
		inv:    inv,
		layout: inv.Layout(),
		saver:  saver,
		logger: logger,
		styles: DefaultStyles(),
		walls:  inv.Layout().Walls(),
		width:  80,
		height: 24,
		input:  ti,
	}
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the browser on the alternate screen and blocks until the user
// quits. It returns the save error that ended the session, if any.
func Run(inv *types.Inventory, saver Saver, logger *zap.Logger) error {
	p := tea.NewProgram(New(inv, saver, logger), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run interactive session: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

func (m Model) wall() types.Wall {
	if len(m.walls) == 0 {
		return ""
	}
	return m.walls[m.wallIdx]
}

func (m Model) wallChests() []types.ChestID {
	return m.layout.ContainersForWall(m.wall())
}

// page is the number of list rows that fit on screen.
func (m Model) page() int {
	if p := m.height - chromeLines; p > 0 {
		return p
	}
	return 1
}

// save persists the inventory. On failure it records the error and returns
// the quit command.
func (m *Model) save() tea.Cmd {
	if err := m.saver.Save(m.inv); err != nil {
		m.err = fmt.Errorf("save inventory: %w", err)
		m.logger.Error("save failed, ending session", zap.Error(err))
		return tea.Quit
	}
	return nil
}

func (m *Model) resetList() {
	m.selected = 0
	m.offset = 0
}

func (m *Model) prompt(next mode, placeholder string) tea.Cmd {
	m.mode = next
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *Model) endPrompt(next mode) {
	m.input.Blur()
	m.input.Reset()
	m.mode = next
}
