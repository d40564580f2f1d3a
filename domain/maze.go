// Package domain holds the records persisted and served by the API.
package domain

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/google/uuid"
)

// Maze is a finished carving run and the parameters that reproduce it.
type Maze struct {
	ID           uuid.UUID `bson:"_id" json:"id"`
	OwnerID      uuid.UUID `bson:"ownerId" json:"owner_id"`
	UnitWidth    int       `bson:"unitWidth" json:"unit_width"`
	UnitHeight   int       `bson:"unitHeight" json:"unit_height"`
	Step         int       `bson:"step" json:"step"`
	Heads        int       `bson:"heads" json:"heads"`
	Mode         string    `bson:"mode" json:"mode"`
	SwitchChance int       `bson:"switchChance" json:"switch_chance"`
	Seed         int64     `bson:"seed" json:"seed"`
	Width        int       `bson:"width" json:"width"`   // grid width in cells
	Height       int       `bson:"height" json:"height"` // grid height in cells
	Cells        string    `bson:"cells" json:"cells"`   // row-major '0'/'1' field
	Ticks        int       `bson:"ticks" json:"ticks"`
	Visited      int       `bson:"visited" json:"visited"`
	Regions      int       `bson:"regions" json:"regions"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
}

// NewMaze records the outcome of a completed engine built from c.
func NewMaze(id, owner uuid.UUID, c maze.Config, e *maze.Engine) *Maze {
	s := e.Snapshot()
	return &Maze{
		ID:           id,
		OwnerID:      owner,
		UnitWidth:    c.Width,
		UnitHeight:   c.Height,
		Step:         c.Step,
		Heads:        c.Heads,
		Mode:         c.Mode.String(),
		SwitchChance: c.SwitchChance,
		Seed:         c.Seed,
		Width:        s.Width,
		Height:       s.Height,
		Cells:        s.EncodeCells(),
		Ticks:        e.Ticks(),
		Visited:      s.Count(),
		Regions:      s.Regions(),
		CreatedAt:    time.Now().UTC(),
	}
}

// Snapshot decodes the stored occupancy grid.
func (m *Maze) Snapshot() (maze.Snapshot, error) {
	return maze.DecodeCells(m.Width, m.Height, m.Cells)
}

// Config rebuilds the run configuration of the record.
func (m *Maze) Config() (maze.Config, error) {
	mode, err := maze.ParseMode(m.Mode)
	if err != nil {
		return maze.Config{}, err
	}

	return maze.Config{
		Width:        m.UnitWidth,
		Height:       m.UnitHeight,
		Step:         m.Step,
		Heads:        m.Heads,
		Mode:         mode,
		SwitchChance: m.SwitchChance,
		Seed:         m.Seed,
	}, nil
}

// GenerationKey identifies every run that produces the same grid. Runs with
// explicit starts are not keyed.
func GenerationKey(c maze.Config) string {
	chance := c.SwitchChance
	if c.Mode != maze.RandomSwitchingMode {
		chance = 0
	}
	return fmt.Sprintf("%dx%d:step_%d:heads_%d:%s:switch_%d:seed_%d",
		c.Width, c.Height, c.Step, c.Heads, c.Mode, chance, c.Seed)
}
