package main

import "flag"

// Command-line flags describing the run and its output.
var (
	widthFlag  = flag.Int("width", 20, "maze width in lattice units")
	heightFlag = flag.Int("height", 20, "maze height in lattice units")
	modeFlag   = flag.String("mode", "depth", "exploration policy: random, depth or breadth")
	switchFlag = flag.Int("switch", 10, "percent chance of a proactive branch switch in random mode")
	stepFlag   = flag.Int("step", 2, "lattice spacing and corridor length")
	headsFlag  = flag.Int("heads", 1, "number of carving heads")

	// seedFlag of 0 picks a time based seed, printed so the run can be repeated.
	seedFlag = flag.Int64("seed", 0, "random seed")

	outFlag   = flag.String("o", "maze.bmp", "output image, .png for PNG and BMP otherwise")
	scaleFlag = flag.Int("scale", 1, "pixels per cell in the output image")
	fpsFlag   = flag.Int("fps", 10, "ticks per second while reporting progress, 0 for unpaced")
	quietFlag = flag.Bool("q", false, "skip progress reporting and run unpaced")
	asciiFlag = flag.Bool("ascii", false, "also print the finished maze to stdout")
)
