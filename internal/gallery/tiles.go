package gallery

// Measurer queries live geometry from whatever renders the grid.
type Measurer interface {
	// TileRect returns the current bounding box of tile i, or false when the
	// tile is not mounted.
	TileRect(i int) (Rect, bool)
	// GridWidth is the rendered width of the grid container, 0 if unknown.
	GridWidth() float64
	// Viewport is the current visible area.
	Viewport() Viewport
	// ScrollY is the current vertical page offset.
	ScrollY() float64
}

// TileGrid is the ordered list of entries as rendered tiles.
type TileGrid struct {
	entries []Entry
	m       Measurer
}

// NewTileGrid binds entries to a measurer.
func NewTileGrid(entries []Entry, m Measurer) *TileGrid {
	return &TileGrid{entries: entries, m: m}
}

// Len is the number of tiles.
func (g *TileGrid) Len() int { return len(g.entries) }

// Entry returns entry i.
func (g *TileGrid) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(g.entries) {
		return Entry{}, false
	}
	return g.entries[i], true
}

// Activate reports the clicked tile's box at click time.
func (g *TileGrid) Activate(i int) (Rect, bool) {
	if i < 0 || i >= len(g.entries) {
		return Rect{}, false
	}
	r, ok := g.m.TileRect(i)
	if !ok || r.Empty() {
		return Rect{}, false
	}
	return r, true
}
