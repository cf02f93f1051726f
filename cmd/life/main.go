package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golife/internal/app"
	"golife/internal/view"
	"golife/pkg/life"

	"github.com/integrii/flaggy"
)

type envOptions struct {
	width   int
	height  int
	pattern string
	random  bool
	seed    int64

	console  bool
	maxGen   int
	interval time.Duration

	scale int
	tps   int
}

func main() {
	eo := initOptions()

	u, err := buildUniverse(eo)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	if eo.console {
		view.NewConsole(os.Stdout).Run(u, eo.maxGen, eo.interval)
		return
	}

	cfg := app.NewConfig()
	cfg.Scale = eo.scale
	cfg.TPS = eo.tps
	if err := app.Run(u, cfg); err != nil {
		log.Fatal(err)
	}
}

func initOptions() *envOptions {
	eo := &envOptions{
		width:    64,
		height:   64,
		seed:     time.Now().UnixNano(),
		maxGen:   200,
		interval: 100 * time.Millisecond,
		scale:    8,
		tps:      10,
	}

	flaggy.SetDescription("Conway's Game of Life on a toroidal grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.Int(&eo.width, "x", "width", "Width of the universe in cells")
	flaggy.Int(&eo.height, "y", "height", "Height of the universe in cells")
	flaggy.String(&eo.pattern, "p", "pattern",
		"Seed pattern, centered ["+strings.Join(life.PatternNames(), "|")+"]")
	flaggy.Bool(&eo.random, "r", "random", "Seed with random cells instead of a pattern")
	flaggy.Int64(&eo.seed, "s", "seed", "RNG seed for -r (default: current time)")
	flaggy.Bool(&eo.console, "c", "console", "Print generations to stdout instead of opening a window")
	flaggy.Int(&eo.maxGen, "g", "generations", "Stop console mode after this many generations (0 = until extinction)")
	flaggy.Duration(&eo.interval, "i", "interval", "Delay between console generations, e.g. 150ms")
	flaggy.Int(&eo.scale, "", "scale", "Pixel size of one cell in the GUI")
	flaggy.Int(&eo.tps, "", "tps", "Generations per second in the GUI")

	flaggy.Parse()
	return eo
}

func buildUniverse(eo *envOptions) (*life.Universe, error) {
	if eo.random {
		return life.New(eo.width, eo.height, life.SeedRandom(eo.seed))
	}
	if eo.pattern == "" {
		return life.New(eo.width, eo.height, life.SeedDefault(eo.width))
	}

	p, ok := life.LookupPattern(eo.pattern)
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", eo.pattern)
	}
	u, err := life.New(eo.width, eo.height, nil)
	if err != nil {
		return nil, err
	}
	rows, cols := p.Size()
	if err := u.SetPattern(p.At((eo.height-rows)/2, (eo.width-cols)/2)); err != nil {
		return nil, fmt.Errorf("pattern %q does not fit a %dx%d universe", eo.pattern, eo.width, eo.height)
	}
	return u, nil
}
