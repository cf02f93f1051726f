//go:build !ebiten

package app

import (
	"errors"

	"golife/pkg/life"
)

// Run reports that GUI support is compiled out of this binary.
func Run(*life.Universe, Config) error {
	return errors.New("the GUI host requires building with the 'ebiten' tag; use console mode or rebuild with `-tags ebiten`")
}
