// Package view provides a headless host that prints each generation of a
// universe to a writer.
package view

import (
	"fmt"
	"io"
	"time"

	"golife/pkg/life"

	"github.com/logrusorgru/aurora"
)

// Console drives a universe from a simple print loop.
type Console struct {
	out io.Writer
}

// NewConsole constructs a console viewer writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Run prints the seeded board, then advances one generation per interval
// until maxGen generations have run or the board dies out. maxGen <= 0
// runs until extinction.
func (c *Console) Run(u *life.Universe, maxGen int, interval time.Duration) {
	start := time.Now()
	c.frame(u)
	for maxGen <= 0 || u.Generation() < uint64(maxGen) {
		if interval > 0 {
			time.Sleep(interval)
		}
		u.Tick()
		c.frame(u)
		if u.Population() == 0 {
			break
		}
	}
	elapsed := time.Since(start).Round(time.Millisecond)
	fmt.Fprintf(c.out, "%s gen %d, pop %d, elapsed %v\n",
		aurora.Bold("finished:"), u.Generation(), u.Population(), elapsed)
}

func (c *Console) frame(u *life.Universe) {
	fmt.Fprintf(c.out, "%s %d  %s %d\n",
		aurora.Cyan("generation"), u.Generation(),
		aurora.Cyan("population"), u.Population())
	io.WriteString(c.out, u.String())
}
