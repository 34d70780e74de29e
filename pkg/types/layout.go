package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Wall names one of the top-level groupings of chests.
type Wall string

// Walls of the reference layout.
const (
	WallA Wall = "A"
	WallB Wall = "B"
	WallC Wall = "C"
	WallD Wall = "D"
)

// Slot bounds for a double chest.
const (
	SlotsPerChest = 54
	MaxSlot       = SlotsPerChest - 1
)

// UnknownCategory is returned for chests no category range covers.
const UnknownCategory = "Unknown"

// ChestID identifies a chest: a wall letter followed by a two-digit number.
type ChestID string

// NewChestID formats the identifier for chest n on wall w.
func NewChestID(w Wall, n int) ChestID {
	return ChestID(fmt.Sprintf("%s%02d", w, n))
}

// Wall returns the wall letter of the identifier.
func (id ChestID) Wall() Wall {
	if id == "" {
		return ""
	}
	return Wall(id[:1])
}

// Number returns the numeric suffix, or -1 when it does not parse.
func (id ChestID) Number() int {
	if len(id) < 2 {
		return -1
	}
	n, err := strconv.Atoi(string(id[1:]))
	if err != nil {
		return -1
	}
	return n
}

func (id ChestID) String() string {
	return string(id)
}

// Less orders identifiers by wall letter, then by numeric suffix.
func (id ChestID) Less(other ChestID) bool {
	if id.Wall() != other.Wall() {
		return id.Wall() < other.Wall()
	}
	return id.Number() < other.Number()
}

// CategoryRange assigns a category name to one chest (To empty) or to an
// inclusive range of chests on the same wall.
type CategoryRange struct {
	From ChestID
	To   ChestID
	Name string
}

// Covers reports whether the range names id exactly or contains its number.
func (r CategoryRange) Covers(id ChestID) bool {
	if r.To == "" {
		return r.From == id
	}
	if r.From.Wall() != id.Wall() {
		return false
	}
	start, end, n := r.From.Number(), r.To.Number(), id.Number()
	if start < 0 || end < 0 || n < 0 {
		return false
	}
	return start <= n && n <= end
}

// WallSpec declares the chest count and category ranges of one wall.
// Categories are matched in declaration order.
type WallSpec struct {
	Wall       Wall
	Chests     int
	Categories []CategoryRange
}

// Layout is the immutable registry of walls, chests, and categories.
type Layout struct {
	walls []WallSpec
	index map[Wall]int
}

// NewLayout builds a layout from wall specs, keeping their order.
// A later WallSpec for the same wall replaces the earlier one.
func NewLayout(specs ...WallSpec) *Layout {
	l := &Layout{index: make(map[Wall]int, len(specs))}
	for _, s := range specs {
		s.Wall = Wall(strings.ToUpper(string(s.Wall)))
		cats := make([]CategoryRange, len(s.Categories))
		copy(cats, s.Categories)
		s.Categories = cats
		if i, ok := l.index[s.Wall]; ok {
			l.walls[i] = s
			continue
		}
		l.index[s.Wall] = len(l.walls)
		l.walls = append(l.walls, s)
	}
	return l
}

// Walls returns the wall letters in declaration order.
func (l *Layout) Walls() []Wall {
	walls := make([]Wall, len(l.walls))
	for i, s := range l.walls {
		walls[i] = s.Wall
	}
	return walls
}

// HasWall reports whether w is a wall of the layout.
func (l *Layout) HasWall(w Wall) bool {
	_, ok := l.index[w]
	return ok
}

// MaxChest returns the highest chest number on w.
func (l *Layout) MaxChest(w Wall) (int, bool) {
	i, ok := l.index[w]
	if !ok {
		return 0, false
	}
	return l.walls[i].Chests, true
}

// ContainersForWall returns the chests on w in ascending order, or nil for an
// unknown wall.
func (l *Layout) ContainersForWall(w Wall) []ChestID {
	i, ok := l.index[w]
	if !ok {
		return nil
	}
	ids := make([]ChestID, 0, l.walls[i].Chests)
	for n := 1; n <= l.walls[i].Chests; n++ {
		ids = append(ids, NewChestID(w, n))
	}
	return ids
}

// AllChests returns every chest of the layout, wall by wall.
func (l *Layout) AllChests() []ChestID {
	var ids []ChestID
	for _, s := range l.walls {
		ids = append(ids, l.ContainersForWall(s.Wall)...)
	}
	return ids
}

// Contains reports whether id is a chest of the layout.
func (l *Layout) Contains(id ChestID) bool {
	last, ok := l.MaxChest(id.Wall())
	if !ok || len(id) != 3 {
		return false
	}
	n := id.Number()
	return n >= 1 && n <= last
}

// CategoryFor returns the name of the first declared range covering id, or
// UnknownCategory.
func (l *Layout) CategoryFor(id ChestID) string {
	i, ok := l.index[id.Wall()]
	if !ok {
		return UnknownCategory
	}
	for _, r := range l.walls[i].Categories {
		if r.Covers(id) {
			return r.Name
		}
	}
	return UnknownCategory
}

// ParseChestID reads an identifier such as "b1" or "B01" and checks it
// against the layout.
func (l *Layout) ParseChestID(s string) (ChestID, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidChest, s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidChest, s)
	}
	id := NewChestID(Wall(s[:1]), n)
	if !l.Contains(id) {
		return "", fmt.Errorf("%w: %s", ErrUnknownChest, id)
	}
	return id, nil
}

// ContainersForWall lists the chests of w in the reference layout.
func ContainersForWall(w Wall) []ChestID {
	return defaultLayout.ContainersForWall(w)
}

// CategoryFor resolves the category of id in the reference layout.
func CategoryFor(id ChestID) string {
	return defaultLayout.CategoryFor(id)
}

// DefaultLayout returns the shared reference layout.
func DefaultLayout() *Layout {
	return defaultLayout
}

func single(id, name string) CategoryRange {
	return CategoryRange{From: ChestID(id), Name: name}
}

func span(from, to, name string) CategoryRange {
	return CategoryRange{From: ChestID(from), To: ChestID(to), Name: name}
}

var defaultLayout = NewLayout(
	WallSpec{Wall: WallA, Chests: 35, Categories: []CategoryRange{
		span("A01", "A05", "Stone"),
		span("A06", "A10", "Deepslate & Variants"),
		span("A11", "A12", "Granite/Diorite/Andesite"),
		span("A13", "A14", "Dirt & Grass"),
		single("A15", "Gravel & Sand"),
		single("A16", "Clay & Mud"),
		span("A17", "A18", "Logs"),
		span("A19", "A20", "Planks & Leaves"),
		single("A21", "Nether Stone"),
		single("A22", "Soul Materials"),
		single("A23", "Nether Deco"),
		single("A24", "End Blocks"),
		single("A25", "Obsidian & Crying"),
		single("A26", "Glass"),
		single("A27", "Ice & Snow"),
		single("A28", "Terracotta & Glazed"),
		single("A29", "Sandstone & Red Sandstone"),
		single("A30", "Misc Raw Blocks"),
		span("A31", "A35", "Overflow Blocks"),
	}},
	WallSpec{Wall: WallB, Chests: 35, Categories: []CategoryRange{
		single("B01", "Coal"),
		span("B02", "B04", "Ores & Ingots"),
		single("B05", "Rare Ores"),
		single("B06", "Pickaxes"),
		single("B07", "Axes & Shovels"),
		single("B08", "Hoes & Shears"),
		span("B09", "B10", "Weapons"),
		single("B11", "Iron Armour"),
		single("B12", "Diamond/Neth Armour"),
		single("B13", "Enchanted Gear"),
		single("B14", "Flint/Obsidian Gear"),
		single("B15", "Buckets & Lava"),
		single("B16", "Compass/Clocks"),
		span("B17", "B18", "Redstone Base"),
		span("B19", "B20", "Redstone Logic"),
		single("B21", "Redstone Motion"),
		single("B22", "Redstone Storage"),
		single("B23", "Crafting Items"),
		single("B24", "Building – Stairs etc."),
		single("B25", "Fences & Gates"),
		span("B26", "B27", "Scaffolding/Rails"),
		single("B28", "Signs & Frames"),
		span("B29", "B30", "Lighting"),
		span("B31", "B35", "Overflow Gear"),
	}},
	WallSpec{Wall: WallC, Chests: 35, Categories: []CategoryRange{
		span("C01", "C02", "Crops"),
		single("C03", "Nether Wart"),
		single("C04", "Berries & Kelp"),
		single("C05", "Sugarcane/Cactus"),
		single("C06", "Flowers & Dye Mats"),
		single("C07", "Leather/Feathers"),
		single("C08", "Eggs & Wool"),
		single("C09", "Cooked Meat"),
		single("C10", "Uncooked Meat"),
		single("C11", "Golden Food"),
		single("C12", "Stews & Bread"),
		span("C13", "C15", "Bones & String"),
		span("C16", "C17", "Gunpowder & Pearls"),
		single("C18", "Slime & Magma"),
		single("C19", "Wither/Blaze Drops"),
		single("C20", "Ghast/Phantom/Shulker"),
		span("C21", "C22", "Fishing Loot"),
		span("C23", "C24", "Honey Products"),
		single("C25", "Misc Drops"),
		span("C26", "C30", "Brewing Items"),
		span("C31", "C35", "Potions"),
	}},
	WallSpec{Wall: WallD, Chests: 30, Categories: []CategoryRange{
		span("D01", "D02", "Elytra & Shells"),
		span("D03", "D04", "Totems & Shards"),
		span("D05", "D06", "Enchanted Books"),
		span("D07", "D08", "Name Tags & Maps"),
		span("D09", "D10", "Music Discs"),
		span("D11", "D12", "Recovery Tools"),
		single("D13", "Paintings & Banners"),
		span("D14", "D15", "Wool & Concrete"),
		single("D16", "Glazed Terracotta"),
		span("D17", "D18", "Rare Blocks"),
		span("D19", "D20", "Quartz & Coral"),
		single("D21", "Beds & Mob Heads"),
		single("D22", "Armor Stands"),
		span("D23", "D25", "Decoration Items"),
		span("D26", "D30", "Overflow / Unsorted"),
	}},
)
