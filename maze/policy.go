package maze

import (
	"fmt"
	"strings"
)

// Mode selects the exploration policy of a run.
type Mode int

const (
	RandomSwitchingMode Mode = iota + 1
	DepthFirstMode
	BreadthFirstMode
)

var modeNames = map[Mode]string{
	RandomSwitchingMode: "random",
	DepthFirstMode:      "depth",
	BreadthFirstMode:    "breadth",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps "random", "depth" or "breadth" to a Mode.
func ParseMode(s string) (Mode, error) {
	for mode, name := range modeNames {
		if strings.EqualFold(name, s) {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Policy decides which stored branch a head resumes from.
type Policy interface {
	// Select removes and returns one point from a non-empty store.
	Select(b *Branches, rng Rand) Point

	// ShouldSwitch reports whether the head leaves its position for a stored
	// branch before it is stuck.
	ShouldSwitch(h *Head, rng Rand) bool

	Mode() Mode
}

var (
	_ Policy = DepthFirst{}
	_ Policy = BreadthFirst{}
	_ Policy = RandomSwitching{}
)

// NewPolicy builds the policy for mode. switchChance is only used by
// RandomSwitchingMode.
func NewPolicy(mode Mode, switchChance int) (Policy, error) {
	switch mode {
	case RandomSwitchingMode:
		if switchChance < 0 || switchChance > 100 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSwitchChance, switchChance)
		}
		return RandomSwitching{SwitchChance: switchChance}, nil
	case DepthFirstMode:
		return DepthFirst{}, nil
	case BreadthFirstMode:
		return BreadthFirst{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

// DepthFirst treats the store as a stack.
type DepthFirst struct{}

func (DepthFirst) Select(b *Branches, _ Rand) Point {
	p, _ := b.PopBack()
	return p
}

func (DepthFirst) ShouldSwitch(*Head, Rand) bool { return false }

func (DepthFirst) Mode() Mode { return DepthFirstMode }

// BreadthFirst treats the store as a queue.
type BreadthFirst struct{}

func (BreadthFirst) Select(b *Branches, _ Rand) Point {
	p, _ := b.PopFront()
	return p
}

func (BreadthFirst) ShouldSwitch(*Head, Rand) bool { return false }

func (BreadthFirst) Mode() Mode { return BreadthFirstMode }

// RandomSwitching removes a uniformly random branch and lets a head jump to
// one with probability SwitchChance/100 on every tick.
type RandomSwitching struct {
	SwitchChance int // percent in [0, 100]
}

func (RandomSwitching) Select(b *Branches, rng Rand) Point {
	p, _ := b.RemoveAt(rng.Intn(b.Len()))
	return p
}

func (r RandomSwitching) ShouldSwitch(h *Head, rng Rand) bool {
	return h.branches.Len() > 0 && rng.Intn(100)+1 <= r.SwitchChance
}

func (RandomSwitching) Mode() Mode { return RandomSwitchingMode }
