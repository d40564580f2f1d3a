package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/google/uuid"
)

// MazeGenerator runs, stores and looks up mazes.
type MazeGenerator interface {
	Generate(ctx context.Context, owner uuid.UUID, c maze.Config) (*dmn.Maze, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)
	ByOwner(ctx context.Context, owner uuid.UUID) ([]*dmn.Maze, error)
}

// LiveSession is a paced generation observed tick by tick.
type LiveSession interface {
	// Frames is closed once the run ends.
	Frames() <-chan dmn.Frame

	// End delivers exactly one final frame after Frames is closed.
	End() <-chan dmn.FinalFrame
	Stop()
}

// LiveStarter starts live sessions.
type LiveStarter interface {
	StartLive(ctx context.Context, c maze.Config, fps int) (LiveSession, error)
}
