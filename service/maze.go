package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/google/uuid"
)

// Maze service errors.
var (
	ErrMazeTooLarge  = errors.New("maze exceeds the size limit")
	ErrTooManyHeads  = errors.New("maze exceeds the head limit")
	ErrNilDependency = errors.New("nil dependency")
)

const defaultListLimit = 50

// MazeService generates mazes on demand. Identical requests are served
// from the cache; concurrent identical requests carve only once.
type MazeService struct {
	repo      i.MazeRepo
	cache     i.MazeCache
	logger    i.Logger
	maxUnits  int
	maxStep   int
	maxHeads  int
	maxFPS    int
	listLimit int64
	newSeed   func() int64
}

var (
	_ i.MazeGenerator = &MazeService{}
	_ i.LiveStarter   = &MazeService{}
)

// MazeServiceConfig holds the collaborators and limits of a MazeService.
// Zero limits disable the corresponding check.
type MazeServiceConfig struct {
	Repo      i.MazeRepo
	Cache     i.MazeCache
	Logger    i.Logger
	MaxUnits  int
	MaxStep   int
	MaxHeads  int
	MaxFPS    int
	ListLimit int64
	NewSeed   func() int64 // defaults to a time based seed
}

// NewMazeService creates a MazeService from config.
func NewMazeService(config MazeServiceConfig) (*MazeService, error) {
	if config.Repo == nil || config.Cache == nil || config.Logger == nil {
		return nil, ErrNilDependency
	}

	s := &MazeService{
		repo:      config.Repo,
		cache:     config.Cache,
		logger:    config.Logger,
		maxUnits:  config.MaxUnits,
		maxStep:   config.MaxStep,
		maxHeads:  config.MaxHeads,
		maxFPS:    config.MaxFPS,
		listLimit: config.ListLimit,
		newSeed:   config.NewSeed,
	}
	if s.listLimit <= 0 {
		s.listLimit = defaultListLimit
	}
	if s.newSeed == nil {
		s.newSeed = timeSeed
	}
	return s, nil
}

func timeSeed() int64 {
	if seed := time.Now().UnixNano(); seed != 0 {
		return seed
	}
	return 1
}

// prepare enforces the service limits, fills in a seed and validates c.
func (s *MazeService) prepare(c maze.Config) (maze.Config, error) {
	if s.maxStep > 0 && c.Step > s.maxStep {
		return c, fmt.Errorf("%w: step %d, at most %d", ErrMazeTooLarge, c.Step, s.maxStep)
	}
	if s.maxUnits > 0 && (c.Width > s.maxUnits || c.Height > s.maxUnits) {
		return c, fmt.Errorf("%w: %dx%d units, at most %d per side", ErrMazeTooLarge, c.Width, c.Height, s.maxUnits)
	}
	if s.maxHeads > 0 && c.Heads > s.maxHeads {
		return c, fmt.Errorf("%w: %d heads, at most %d", ErrTooManyHeads, c.Heads, s.maxHeads)
	}

	if c.Seed == 0 {
		c.Seed = s.newSeed()
	}
	return c, c.Validate()
}

// Generate carves a maze for owner and stores it.
func (s *MazeService) Generate(ctx context.Context, owner uuid.UUID, c maze.Config) (*dmn.Maze, error) {
	c, err := s.prepare(c)
	if err != nil {
		return nil, err
	}

	// Explicit starts are not part of the generation key.
	if len(c.Starts) > 0 {
		return s.carve(ctx, owner, c)
	}

	key := dmn.GenerationKey(c)
	if m, ok := s.fromCache(ctx, key, owner); ok {
		return m, nil
	}

	unlock, err := s.cache.Lock(ctx, key)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warning(fmt.Sprintf("Generating %s without lock: %v", key, err))
	} else {
		defer unlock()
		if m, ok := s.fromCache(ctx, key, owner); ok {
			return m, nil
		}
	}

	m, err := s.carve(ctx, owner, c)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, m); err != nil {
		s.logger.Warning(fmt.Sprintf("Caching %s: %v", key, err))
	}
	return m, nil
}

func (s *MazeService) carve(ctx context.Context, owner uuid.UUID, c maze.Config) (*dmn.Maze, error) {
	e, err := maze.New(c)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	if err := e.Run(ctx); err != nil {
		return nil, err
	}

	m := dmn.NewMaze(uuid.New(), owner, c, e)
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Carved maze %s (%dx%d cells, %s, %d heads) in %d ticks, %s",
		m.ID, m.Width, m.Height, m.Mode, m.Heads, m.Ticks, time.Since(started)))
	return m, nil
}

// fromCache returns the cached record for key. A record generated for
// another owner is copied into a new record of owner.
func (s *MazeService) fromCache(ctx context.Context, key string, owner uuid.UUID) (*dmn.Maze, bool) {
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, dmn.ErrCacheMiss) {
			s.logger.Warning(fmt.Sprintf("Reading cache %s: %v", key, err))
		}
		return nil, false
	}

	if cached.OwnerID == owner {
		return cached, true
	}

	m := *cached
	m.ID = uuid.New()
	m.OwnerID = owner
	m.CreatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, &m); err != nil {
		s.logger.Warning(fmt.Sprintf("Saving copy of cached %s: %v", key, err))
		return nil, false
	}
	return &m, true
}

// ByID returns a stored maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	return s.repo.ByID(ctx, id)
}

// ByOwner lists the newest mazes of owner.
func (s *MazeService) ByOwner(ctx context.Context, owner uuid.UUID) ([]*dmn.Maze, error) {
	return s.repo.ByOwner(ctx, owner, s.listLimit)
}
