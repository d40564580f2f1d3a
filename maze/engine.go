/*
Package maze carves perfect mazes into a rectangular occupancy grid.

One or more heads walk a lattice of cells spaced Step apart, carving a
corridor of Step cells per move and never entering a visited cell. A head
that still has unexplored neighbours when it leaves a point records that
point as a branch; when it gets stuck it resumes from a stored branch chosen
by the exploration Policy (depth-first, breadth-first or random switching).
A head dies once it is stuck with no branches left, and the run is complete
when every head has died.

The Engine is single-threaded: a Tick advances every live head once, in
order, and all heads share one grid so cells carved by an earlier head are
visible to later heads in the same tick.
*/
package maze

import (
	"context"
	"fmt"
	"slices"
)

// Move describes one carved corridor.
type Move struct {
	Head      int       `json:"head"`
	From      Point     `json:"from"`
	To        Point     `json:"to"`
	Direction Direction `json:"direction"`
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRand replaces the seeded source built from Config.Seed.
func WithRand(rng Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithMoveHook registers f to be called after every head move.
func WithMoveHook(f func(Move)) Option {
	return func(e *Engine) {
		e.onMove = f
	}
}

// Engine owns the grid and the head pool of a single run.
type Engine struct {
	grid   *Grid
	heads  []*Head
	policy Policy
	rng    Rand
	step   int
	seed   int64
	ticks  int
	onMove func(Move)
}

// New validates c and prepares a run with every head start already visited.
func New(c Config, options ...Option) (*Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	policy, err := NewPolicy(c.Mode, c.SwitchChance)
	if err != nil {
		return nil, err
	}

	grid, err := NewGrid(c.CellWidth(), c.CellHeight())
	if err != nil {
		return nil, err
	}

	e := &Engine{
		grid:   grid,
		policy: policy,
		step:   c.Step,
		seed:   c.Seed,
		heads:  make([]*Head, 0, c.Heads),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.rng == nil {
		e.rng = NewRand(c.Seed)
	}

	for i := 0; i < c.Heads; i++ {
		var start Point
		if c.Starts != nil {
			start = c.Starts[i]
		} else {
			start = Point{
				X: e.rng.Intn(grid.Width()/c.Step) * c.Step,
				Y: e.rng.Intn(grid.Height()/c.Step) * c.Step,
			}
		}

		if err := grid.Mark(start); err != nil {
			return nil, err
		}
		e.heads = append(e.heads, newHead(i, start))
	}

	return e, nil
}

// Tick advances every live head once. Heads that are stuck with no branches
// are removed from the pool.
func (e *Engine) Tick() error {
	if e.Done() {
		return nil
	}

	for i := 0; i < len(e.heads); i++ {
		alive, err := e.advance(e.heads[i])
		if err != nil {
			return err
		}

		if !alive {
			e.heads[i].branches = Branches{}
			e.heads = slices.Delete(e.heads, i, i+1)
			i-- // the next head now sits in slot i
		}
	}

	e.ticks++
	return nil
}

// Run ticks until the head pool is empty or ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	for !e.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := e.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// advance runs one tick for h and reports whether it is still alive.
func (e *Engine) advance(h *Head) (bool, error) {
	if hasLegalMove(e.grid, h.pos, e.step) && e.policy.ShouldSwitch(h, e.rng) {
		e.switchBranch(h)
	}

	for !hasLegalMove(e.grid, h.pos, e.step) {
		if h.branches.Len() == 0 {
			return false, nil
		}
		e.switchBranch(h)
	}

	moves := LegalMoves(e.grid, h.pos, e.step)
	direction := moves[e.rng.Intn(len(moves))]

	from := h.pos
	for n := 0; n < e.step; n++ {
		h.pos = h.pos.Add(direction, 1)
		if err := e.grid.Mark(h.pos); err != nil {
			return false, fmt.Errorf("head %d moving %s from (%d,%d): %w", h.id, direction, from.X, from.Y, err)
		}
	}

	// Recomputed after the move: the freshly carved cells are what close the
	// direction just taken.
	if hasLegalMove(e.grid, from, e.step) {
		h.branches.Push(from)
	}
	h.direction = direction

	if e.onMove != nil {
		e.onMove(Move{Head: h.id, From: from, To: h.pos, Direction: direction})
	}
	return true, nil
}

// switchBranch moves h to a branch chosen by the policy, keeping the current
// position as a branch while it still has somewhere to go.
func (e *Engine) switchBranch(h *Head) {
	branch := e.policy.Select(&h.branches, e.rng)
	if hasLegalMove(e.grid, h.pos, e.step) {
		h.branches.Push(h.pos)
	}
	h.pos = branch
}

// Done reports whether every head has died.
func (e *Engine) Done() bool {
	return len(e.heads) == 0
}

// Ticks returns the number of completed ticks.
func (e *Engine) Ticks() int {
	return e.ticks
}

// Visited returns the number of carved cells.
func (e *Engine) Visited() int {
	return e.grid.Visited()
}

// Width returns the grid width in cells.
func (e *Engine) Width() int {
	return e.grid.Width()
}

// Height returns the grid height in cells.
func (e *Engine) Height() int {
	return e.grid.Height()
}

// Step returns the lattice spacing of the run.
func (e *Engine) Step() int {
	return e.step
}

// Seed returns the seed from the run configuration.
func (e *Engine) Seed() int64 {
	return e.seed
}

// Policy returns the exploration policy of the run.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Heads returns the state of the live heads in pool order.
func (e *Engine) Heads() []HeadState {
	states := make([]HeadState, 0, len(e.heads))
	for _, h := range e.heads {
		states = append(states, h.State())
	}
	return states
}

// Snapshot copies the occupancy grid.
func (e *Engine) Snapshot() Snapshot {
	return e.grid.Snapshot()
}
