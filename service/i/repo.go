package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// A username owned by another user yields dmn.ErrUsernameTaken.
	Save(ctx context.Context, user *dmn.User) error

	// ByID retrieves a user by their unique ID, or dmn.ErrUserNotFound.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username, or dmn.ErrUserNotFound.
	ByUsername(ctx context.Context, username string) (*dmn.User, error)
}

// MazeRepo persists generated mazes.
type MazeRepo interface {
	Save(ctx context.Context, m *dmn.Maze) error

	// ByID returns the full record, or dmn.ErrMazeNotFound.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)

	// ByOwner lists the newest records of owner without their cells.
	ByOwner(ctx context.Context, owner uuid.UUID, limit int64) ([]*dmn.Maze, error)
}

// MazeCache keeps recently generated mazes by generation key.
type MazeCache interface {
	// Get returns dmn.ErrCacheMiss when key is not cached.
	Get(ctx context.Context, key string) (*dmn.Maze, error)
	Set(ctx context.Context, key string, m *dmn.Maze) error

	// Lock takes the distributed lock for key. The returned func releases it.
	Lock(ctx context.Context, key string) (func(), error)
}
