package view

import (
	"bytes"
	"strings"
	"testing"

	"golife/pkg/life"
)

func TestConsoleRunPrintsEveryGeneration(t *testing.T) {
	u, err := life.New(5, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := u.SetPattern([]life.Coord{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	NewConsole(&buf).Run(u, 4, 0)

	out := buf.String()
	if got := strings.Count(out, "generation"); got != 5 {
		t.Fatalf("printed %d generation headers, want 5 (seed + 4 ticks)", got)
	}
	if !strings.Contains(out, "finished:") {
		t.Fatal("missing summary line")
	}
	if u.Generation() != 4 {
		t.Fatalf("universe advanced %d generations, want 4", u.Generation())
	}
}

func TestConsoleRunStopsOnExtinction(t *testing.T) {
	// a lone cell dies of underpopulation after one tick
	u, err := life.New(4, 4, life.SeedCoords([]life.Coord{{Row: 1, Col: 1}}))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	NewConsole(&buf).Run(u, 0, 0)

	if u.Generation() != 1 {
		t.Fatalf("universe advanced %d generations, want 1", u.Generation())
	}
	if u.Population() != 0 {
		t.Fatalf("population %d, want 0", u.Population())
	}
}
