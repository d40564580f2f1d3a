package maze

import "fmt"

// Grid is a fixed-size field of visited flags stored row-major.
// Cells are only ever marked, never cleared.
type Grid struct {
	width   int
	height  int
	cells   []bool
	visited int
}

// NewGrid allocates a grid with every cell unvisited.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 1 || height <= 1 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: grid %dx%d exceeds %d cells", ErrInvalidDimensions, width, height, MaxCells)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Visited returns the number of marked cells.
func (g *Grid) Visited() int {
	return g.visited
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsFree reports whether p is inside the grid and not yet visited.
func (g *Grid) IsFree(p Point) bool {
	return g.InBounds(p) && !g.cells[g.index(p)]
}

// Mark sets p visited. Marking a visited cell is a no-op.
func (g *Grid) Mark(p Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, p.X, p.Y, g.width, g.height)
	}

	i := g.index(p)
	if !g.cells[i] {
		g.cells[i] = true
		g.visited++
	}
	return nil
}

// Snapshot copies the current field.
func (g *Grid) Snapshot() Snapshot {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return Snapshot{Width: g.width, Height: g.height, Cells: cells}
}

func (g *Grid) index(p Point) int {
	return p.Y*g.width + p.X
}
