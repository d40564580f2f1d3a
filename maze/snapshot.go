package maze

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCells = errors.New("maze: encoded cells do not match dimensions")

// Snapshot is a copy of the occupancy grid at a tick boundary.
type Snapshot struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  []bool `json:"-"` // row-major, true when visited
}

// Visited reports whether the cell at (x, y) is carved. Cells outside the
// grid are never carved.
func (s Snapshot) Visited(x, y int) bool {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return false
	}
	return s.Cells[y*s.Width+x]
}

// Count returns the number of carved cells.
func (s Snapshot) Count() int {
	n := 0
	for _, c := range s.Cells {
		if c {
			n++
		}
	}
	return n
}

// Regions returns the number of 4-connected carved regions.
func (s Snapshot) Regions() int {
	seen := make([]bool, len(s.Cells))
	regions := 0

	for start, carved := range s.Cells {
		if !carved || seen[start] {
			continue
		}
		regions++

		seen[start] = true
		stack := []Point{{X: start % s.Width, Y: start / s.Width}}
		for len(stack) > 0 {
			cell := pop(&stack)
			for _, d := range Directions {
				n := cell.Add(d, 1)
				if !s.Visited(n.X, n.Y) || seen[n.Y*s.Width+n.X] {
					continue
				}
				seen[n.Y*s.Width+n.X] = true
				stack = append(stack, n)
			}
		}
	}

	return regions
}

// pop removes and returns the last element of a stack of points.
func pop(s *[]Point) Point {
	last := len(*s) - 1
	p := (*s)[last]
	*s = (*s)[:last]
	return p
}

// EncodeCells returns the field as a row-major string of '0' and '1'.
func (s Snapshot) EncodeCells() string {
	var b strings.Builder
	b.Grow(len(s.Cells))
	for _, c := range s.Cells {
		if c {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// DecodeCells rebuilds a snapshot from EncodeCells output.
func DecodeCells(width, height int, encoded string) (Snapshot, error) {
	if width <= 0 || height <= 0 || len(encoded) != width*height {
		return Snapshot{}, fmt.Errorf("%w: %d cells for %dx%d", ErrInvalidCells, len(encoded), width, height)
	}

	cells := make([]bool, len(encoded))
	for i := 0; i < len(encoded); i++ {
		switch encoded[i] {
		case '1':
			cells[i] = true
		case '0':
		default:
			return Snapshot{}, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidCells, encoded[i], i)
		}
	}

	return Snapshot{Width: width, Height: height, Cells: cells}, nil
}

// String draws the snapshot with '#' for walls and ' ' for carved cells,
// framed by a one-cell wall.
func (s Snapshot) String() string {
	var b strings.Builder
	border := strings.Repeat("#", s.Width+2) + "\n"

	b.WriteString(border)
	for y := 0; y < s.Height; y++ {
		b.WriteByte('#')
		for x := 0; x < s.Width; x++ {
			if s.Visited(x, y) {
				b.WriteByte(' ')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteString("#\n")
	}
	b.WriteString(border)

	return b.String()
}
