package domain

import "github.com/beka-birhanu/vinom-mazegen/maze"

// Frame is the progress of a live generation after one tick.
type Frame struct {
	Tick    int              `json:"tick"`
	Heads   []maze.HeadState `json:"heads"`
	Carved  []maze.Point     `json:"carved"` // cells marked during the tick
	Visited int              `json:"visited"`
}

// FinalFrame closes a live generation.
type FinalFrame struct {
	Frame
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Cells     string `json:"cells"`
	Regions   int    `json:"regions"`
	Completed bool   `json:"completed"` // false when the run was stopped early
}
