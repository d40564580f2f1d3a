package maze

import (
	"fmt"
	"math"
)

// MaxCells bounds the occupancy grid of a single run.
const MaxCells = 1 << 28

// Config describes one carving run.
type Config struct {
	Width        int     // Width of the maze in lattice units
	Height       int     // Height of the maze in lattice units
	Step         int     // Lattice spacing and corridor length
	Heads        int     // Number of carving heads
	Mode         Mode    // Exploration policy
	SwitchChance int     // Percent chance of a proactive switch, RandomSwitchingMode only
	Seed         int64   // Seed of the random source
	Starts       []Point // Optional explicit start cells, one per head
}

// CellWidth returns the width of the occupancy grid in cells.
func (c Config) CellWidth() int {
	return c.Width*c.Step - 1
}

// CellHeight returns the height of the occupancy grid in cells.
func (c Config) CellHeight() int {
	return c.Height*c.Step - 1
}

// Validate checks the configuration without allocating any run state.
func (c Config) Validate() error {
	if c.Width <= 1 || c.Height <= 1 {
		return fmt.Errorf("%w: %dx%d units", ErrInvalidDimensions, c.Width, c.Height)
	}

	if c.Step <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStep, c.Step)
	}

	if c.Width > math.MaxInt/c.Step || c.Height > math.MaxInt/c.Step {
		return fmt.Errorf("%w: %dx%d units at step %d overflow", ErrInvalidDimensions, c.Width, c.Height, c.Step)
	}

	if c.CellWidth() <= 1 || c.CellHeight() <= 1 {
		return fmt.Errorf("%w: %dx%d cells", ErrInvalidDimensions, c.CellWidth(), c.CellHeight())
	}

	if c.CellWidth() > MaxCells/c.CellHeight() {
		return fmt.Errorf("%w: %dx%d cells exceed %d", ErrInvalidDimensions, c.CellWidth(), c.CellHeight(), MaxCells)
	}

	if c.Heads <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHeadCount, c.Heads)
	}

	if _, err := NewPolicy(c.Mode, c.SwitchChance); err != nil {
		return err
	}

	if c.Starts == nil {
		return nil
	}

	if len(c.Starts) != c.Heads {
		return fmt.Errorf("%w: %d starts for %d heads", ErrInvalidStart, len(c.Starts), c.Heads)
	}

	for _, s := range c.Starts {
		if s.X < 0 || s.X >= c.CellWidth() || s.Y < 0 || s.Y >= c.CellHeight() {
			return fmt.Errorf("%w: (%d,%d) outside grid", ErrInvalidStart, s.X, s.Y)
		}
		if s.X%c.Step != 0 || s.Y%c.Step != 0 {
			return fmt.Errorf("%w: (%d,%d) off the step %d lattice", ErrInvalidStart, s.X, s.Y, c.Step)
		}
	}

	return nil
}
