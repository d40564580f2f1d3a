package service

import (
	"context"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, l interface {
	Frames() <-chan dmn.Frame
	End() <-chan dmn.FinalFrame
}) ([]dmn.Frame, dmn.FinalFrame) {
	t.Helper()

	var frames []dmn.Frame
	timeout := time.After(10 * time.Second)
	for {
		select {
		case f, ok := <-l.Frames():
			if !ok {
				select {
				case final := <-l.End():
					return frames, final
				case <-timeout:
					t.Fatal("no final frame")
				}
			}
			frames = append(frames, f)
		case <-timeout:
			t.Fatal("live session did not finish")
		}
	}
}

func TestLiveSession(t *testing.T) {
	ctx := context.Background()

	t.Run("streams every tick", func(t *testing.T) {
		f := newMazeFixture(t)
		c := smallConfig()

		l, err := f.svc.StartLive(ctx, c, 0)
		require.NoError(t, err)
		frames, final := drain(t, l)

		e, err := maze.New(c)
		require.NoError(t, err)
		starts := e.Visited()
		require.NoError(t, e.Run(ctx))

		require.Len(t, frames, e.Ticks())
		carved := 0
		for n, frame := range frames {
			assert.Equal(t, n+1, frame.Tick)
			carved += len(frame.Carved)
			assert.LessOrEqual(t, len(frame.Heads), c.Heads)
		}

		assert.True(t, final.Completed)
		assert.Equal(t, e.Ticks(), final.Tick)
		assert.Equal(t, e.Snapshot().EncodeCells(), final.Cells)
		assert.Equal(t, e.Visited(), final.Visited)
		assert.Equal(t, e.Visited(), carved+starts, "every carved cell is reported once")
		assert.Empty(t, final.Heads)
		assert.Zero(t, f.repo.saves, "live runs are not stored")
	})

	t.Run("stop ends early", func(t *testing.T) {
		f := newMazeFixture(t)
		c := maze.Config{Width: 30, Height: 30, Step: 2, Heads: 1, Mode: maze.DepthFirstMode, Seed: 5}

		l, err := f.svc.StartLive(ctx, c, 1)
		require.NoError(t, err)

		first := <-l.Frames()
		assert.Equal(t, 1, first.Tick)
		assert.Len(t, first.Carved, 2)

		l.Stop()
		l.Stop()
		frames, final := drain(t, l)
		assert.Empty(t, frames)
		assert.False(t, final.Completed)
		assert.Equal(t, 1, final.Tick)
		assert.Equal(t, 59, final.Width)
	})

	t.Run("context cancellation ends early", func(t *testing.T) {
		f := newMazeFixture(t)
		c := maze.Config{Width: 30, Height: 30, Step: 1, Heads: 2, Mode: maze.BreadthFirstMode, Seed: 5}

		cancelled, cancel := context.WithCancel(ctx)
		l, err := f.svc.StartLive(cancelled, c, 1)
		require.NoError(t, err)

		<-l.Frames()
		cancel()
		_, final := drain(t, l)
		assert.False(t, final.Completed)
	})
}
