package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
)

const frameBuffer = 16

// LiveSession runs an engine one tick per frame interval and publishes the
// progress of every tick.
type LiveSession struct {
	engine   *maze.Engine
	delay    time.Duration
	carved   []maze.Point // cells marked during the current tick
	logger   i.Logger
	frames   chan dmn.Frame
	end      chan dmn.FinalFrame
	stop     chan struct{}
	stopOnce sync.Once
}

var _ i.LiveSession = &LiveSession{}

// StartLive starts a paced generation of c at fps ticks per second, capped
// by the service limit. A non-positive fps runs at the cap, or unpaced when
// there is none.
func (s *MazeService) StartLive(ctx context.Context, c maze.Config, fps int) (i.LiveSession, error) {
	c, err := s.prepare(c)
	if err != nil {
		return nil, err
	}

	if s.maxFPS > 0 && (fps <= 0 || fps > s.maxFPS) {
		fps = s.maxFPS
	}

	l := &LiveSession{
		logger: s.logger,
		frames: make(chan dmn.Frame, frameBuffer),
		end:    make(chan dmn.FinalFrame, 1),
		stop:   make(chan struct{}),
	}
	if fps > 0 {
		l.delay = time.Second / time.Duration(fps)
	}

	l.engine, err = maze.New(c, maze.WithMoveHook(l.record))
	if err != nil {
		return nil, err
	}

	go l.run(ctx)
	return l, nil
}

// Frames yields one frame per tick and is closed when the run ends.
func (l *LiveSession) Frames() <-chan dmn.Frame {
	return l.frames
}

// End yields the final frame once Frames is closed.
func (l *LiveSession) End() <-chan dmn.FinalFrame {
	return l.end
}

// Stop ends the run after the current tick. It is safe to call more than once.
func (l *LiveSession) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

func (l *LiveSession) record(m maze.Move) {
	for n := 1; n <= l.engine.Step(); n++ {
		l.carved = append(l.carved, m.From.Add(m.Direction, n))
	}
}

func (l *LiveSession) run(ctx context.Context) {
	last := l.frame()
	defer func() {
		close(l.frames)
		l.end <- l.final(last)
		close(l.end)
	}()

	for !l.engine.Done() {
		l.carved = nil
		if err := l.engine.Tick(); err != nil {
			l.logger.Error(fmt.Sprintf("Live generation stopped at tick %d: %v", l.engine.Ticks(), err))
			return
		}
		last = l.frame()

		select {
		case l.frames <- last:
		case <-l.stop:
			return
		case <-ctx.Done():
			return
		}

		if l.engine.Done() {
			return
		}
		if !l.wait(ctx) {
			return
		}
	}
}

// wait sleeps for one frame interval and reports whether the run may go on.
func (l *LiveSession) wait(ctx context.Context) bool {
	if l.delay <= 0 {
		select {
		case <-l.stop:
			return false
		case <-ctx.Done():
			return false
		default:
			return true
		}
	}

	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-l.stop:
		return false
	case <-ctx.Done():
		return false
	}
}

func (l *LiveSession) frame() dmn.Frame {
	return dmn.Frame{
		Tick:    l.engine.Ticks(),
		Heads:   l.engine.Heads(),
		Carved:  l.carved,
		Visited: l.engine.Visited(),
	}
}

func (l *LiveSession) final(last dmn.Frame) dmn.FinalFrame {
	s := l.engine.Snapshot()
	return dmn.FinalFrame{
		Frame:     last,
		Width:     s.Width,
		Height:    s.Height,
		Cells:     s.EncodeCells(),
		Regions:   s.Regions(),
		Completed: l.engine.Done(),
	}
}
