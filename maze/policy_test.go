package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand returns its values in order, reduced modulo n.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)] % n
	r.calls++
	return v
}

func TestPolicySelect(t *testing.T) {
	b1, b2, b3 := Point{0, 0}, Point{2, 2}, Point{4, 4}

	selectAll := func(p Policy, rng Rand) []Point {
		b := &Branches{}
		b.Push(b1)
		b.Push(b2)
		b.Push(b3)

		var out []Point
		for b.Len() > 0 {
			out = append(out, p.Select(b, rng))
		}
		return out
	}

	t.Run("depth first resumes newest first", func(t *testing.T) {
		assert.Equal(t, []Point{b3, b2, b1}, selectAll(DepthFirst{}, &scriptedRand{values: []int{0}}))
	})

	t.Run("breadth first resumes oldest first", func(t *testing.T) {
		assert.Equal(t, []Point{b1, b2, b3}, selectAll(BreadthFirst{}, &scriptedRand{values: []int{0}}))
	})

	t.Run("random switching removes the rolled index", func(t *testing.T) {
		rng := &scriptedRand{values: []int{1, 1, 0}}
		assert.Equal(t, []Point{b2, b3, b1}, selectAll(RandomSwitching{SwitchChance: 50}, rng))
		assert.Equal(t, 3, rng.calls)
	})
}

func TestShouldSwitch(t *testing.T) {
	withBranch := newHead(0, Point{0, 0})
	withBranch.branches.Push(Point{2, 0})
	withoutBranch := newHead(1, Point{0, 0})

	t.Run("ordered policies never switch early", func(t *testing.T) {
		rng := &scriptedRand{values: []int{0}}
		assert.False(t, DepthFirst{}.ShouldSwitch(withBranch, rng))
		assert.False(t, BreadthFirst{}.ShouldSwitch(withBranch, rng))
		assert.Equal(t, 0, rng.calls)
	})

	t.Run("zero chance never switches", func(t *testing.T) {
		p := RandomSwitching{SwitchChance: 0}
		for roll := 0; roll < 100; roll++ {
			assert.False(t, p.ShouldSwitch(withBranch, &scriptedRand{values: []int{roll}}))
		}
	})

	t.Run("full chance always switches", func(t *testing.T) {
		p := RandomSwitching{SwitchChance: 100}
		for roll := 0; roll < 100; roll++ {
			assert.True(t, p.ShouldSwitch(withBranch, &scriptedRand{values: []int{roll}}))
		}
	})

	t.Run("roll is inclusive", func(t *testing.T) {
		p := RandomSwitching{SwitchChance: 10}
		assert.True(t, p.ShouldSwitch(withBranch, &scriptedRand{values: []int{9}}))
		assert.False(t, p.ShouldSwitch(withBranch, &scriptedRand{values: []int{10}}))
	})

	t.Run("needs a stored branch", func(t *testing.T) {
		rng := &scriptedRand{values: []int{0}}
		assert.False(t, RandomSwitching{SwitchChance: 100}.ShouldSwitch(withoutBranch, rng))
		assert.Equal(t, 0, rng.calls)
	})
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"random", RandomSwitchingMode},
		{"depth", DepthFirstMode},
		{"Breadth", BreadthFirstMode},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, mustPolicy(t, got).Mode())
	}

	_, err := ParseMode("sideways")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestNewPolicy(t *testing.T) {
	_, err := NewPolicy(RandomSwitchingMode, 101)
	assert.ErrorIs(t, err, ErrInvalidSwitchChance)

	_, err = NewPolicy(RandomSwitchingMode, -1)
	assert.ErrorIs(t, err, ErrInvalidSwitchChance)

	_, err = NewPolicy(Mode(0), 0)
	assert.ErrorIs(t, err, ErrUnknownMode)

	p, err := NewPolicy(DepthFirstMode, 500)
	require.NoError(t, err, "switch chance only matters for random switching")
	assert.Equal(t, DepthFirstMode, p.Mode())
}

func mustPolicy(t *testing.T, m Mode) Policy {
	t.Helper()
	p, err := NewPolicy(m, 10)
	require.NoError(t, err)
	return p
}
