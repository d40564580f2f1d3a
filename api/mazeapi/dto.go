// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/google/uuid"
)

const (
	defaultStep  = 2
	defaultHeads = 1
	defaultMode  = "depth"
)

// GenerateRequest describes a maze to carve. It is read from the JSON body
// of a generate request and from the query of a live request.
type GenerateRequest struct {
	Width        int          `json:"width" form:"width" binding:"required"`
	Height       int          `json:"height" form:"height" binding:"required"`
	Step         int          `json:"step" form:"step"`
	Heads        int          `json:"heads" form:"heads"`
	Mode         string       `json:"mode" form:"mode"`
	SwitchChance int          `json:"switch_chance" form:"switch_chance"`
	Seed         int64        `json:"seed" form:"seed"`
	Starts       []maze.Point `json:"starts" form:"-"`
	FPS          int          `json:"-" form:"fps"`
}

// Config converts the request into a run configuration, applying defaults.
func (r GenerateRequest) Config() (maze.Config, error) {
	if r.Step == 0 {
		r.Step = defaultStep
	}
	if r.Heads == 0 {
		r.Heads = defaultHeads
	}
	if r.Mode == "" {
		r.Mode = defaultMode
	}

	mode, err := maze.ParseMode(r.Mode)
	if err != nil {
		return maze.Config{}, err
	}

	return maze.Config{
		Width:        r.Width,
		Height:       r.Height,
		Step:         r.Step,
		Heads:        r.Heads,
		Mode:         mode,
		SwitchChance: r.SwitchChance,
		Seed:         r.Seed,
		Starts:       r.Starts,
	}, nil
}

// MazeSummary lists a maze without its cells.
type MazeSummary struct {
	ID         uuid.UUID `json:"id"`
	UnitWidth  int       `json:"unit_width"`
	UnitHeight int       `json:"unit_height"`
	Step       int       `json:"step"`
	Heads      int       `json:"heads"`
	Mode       string    `json:"mode"`
	Seed       int64     `json:"seed"`
	Ticks      int       `json:"ticks"`
	CreatedAt  time.Time `json:"created_at"`
}

func newMazeSummary(m *dmn.Maze) MazeSummary {
	return MazeSummary{
		ID:         m.ID,
		UnitWidth:  m.UnitWidth,
		UnitHeight: m.UnitHeight,
		Step:       m.Step,
		Heads:      m.Heads,
		Mode:       m.Mode,
		Seed:       m.Seed,
		Ticks:      m.Ticks,
		CreatedAt:  m.CreatedAt,
	}
}
