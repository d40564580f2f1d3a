// Command mazegen carves a maze offline and writes it as an image.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/config"
	"github.com/beka-birhanu/vinom-mazegen/export"
	logger "github.com/beka-birhanu/vinom-mazegen/infrastruture/log"
	"github.com/beka-birhanu/vinom-mazegen/maze"
)

var errInterrupted = errors.New("interrupted")

func main() {
	flag.Parse()

	cliLogger, _ := logger.New("MAZEGEN", config.ColorBlue, os.Stderr)
	cliLogger.SetQuiet(*quietFlag)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := run(ctx, cliLogger)
	switch {
	case errors.Is(err, errInterrupted):
		stop()
		os.Exit(130)
	case err != nil:
		cliLogger.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, l *logger.Logger) error {
	c, err := configFromFlags()
	if err != nil {
		return err
	}

	e, err := maze.New(c)
	if err != nil {
		return err
	}
	if *seedFlag == 0 {
		fmt.Fprintf(os.Stderr, "seed %d\n", c.Seed)
	}
	l.Info(fmt.Sprintf("Carving %dx%d cells, mode %s, %d heads, seed %d", e.Width(), e.Height(), c.Mode, c.Heads, c.Seed))

	started := time.Now()
	interrupted := false
	if err := carve(ctx, e, l); err != nil {
		if !errors.Is(err, context.Canceled) {
			return err
		}
		interrupted = true
		l.Warning(fmt.Sprintf("Interrupted at tick %d, writing the partial maze", e.Ticks()))
	}

	s := e.Snapshot()
	if err := write(*outFlag, s); err != nil {
		return err
	}

	l.Info(fmt.Sprintf("Wrote %s: %d ticks, %d/%d cells carved, %d regions, %s",
		*outFlag, e.Ticks(), s.Count(), s.Width*s.Height, s.Regions(), time.Since(started).Round(time.Millisecond)))
	if *asciiFlag {
		fmt.Print(s.String())
	}
	if interrupted {
		return errInterrupted
	}
	return nil
}

func configFromFlags() (maze.Config, error) {
	if *scaleFlag < 1 {
		return maze.Config{}, fmt.Errorf("%w: -scale %d", export.ErrInvalidScale, *scaleFlag)
	}

	mode, err := maze.ParseMode(*modeFlag)
	if err != nil {
		return maze.Config{}, err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := maze.Config{
		Width:        *widthFlag,
		Height:       *heightFlag,
		Step:         *stepFlag,
		Heads:        *headsFlag,
		Mode:         mode,
		SwitchChance: *switchFlag,
		Seed:         seed,
	}
	return c, c.Validate()
}

// carve runs e to completion, one tick per frame interval when reporting.
func carve(ctx context.Context, e *maze.Engine, l *logger.Logger) error {
	if *quietFlag || *fpsFlag <= 0 {
		return e.Run(ctx)
	}

	ticker := time.NewTicker(time.Second / time.Duration(*fpsFlag))
	defer ticker.Stop()

	total := e.Width() * e.Height()
	for !e.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := e.Tick(); err != nil {
			return err
		}
		l.Debug(fmt.Sprintf("tick %d: %d/%d cells, %d heads", e.Ticks(), e.Visited(), total, len(e.Heads())))
	}
	return nil
}

func write(path string, s maze.Snapshot) error {
	format := export.FormatBMP
	if strings.EqualFold(filepath.Ext(path), ".png") {
		format = export.FormatPNG
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := export.Encode(f, s, format, *scaleFlag); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
