package generator

import (
	"errors"

	"github.com/gridforge/tilepuzzle/board"
)

// ErrBadConfig indicates a Config field violated its documented bound.
var ErrBadConfig = errors.New("generator: invalid configuration")

// Config is the generator's input. All bounds are inclusive.
//
// Seed and Seeded together avoid a false ambiguity: Seed's zero value (0)
// is a perfectly legal seed, so a bare int64 field cannot distinguish
// "caller wants seed 0" from "caller didn't set a seed." Seeded makes that
// explicit — when false, Generate draws its own seed from a
// non-deterministic source (see newEntropySeed in generate.go), and tests
// that need reproducibility set Seeded: true.
type Config struct {
	Kind          board.Kind
	Width, Height int

	MinShapeSize, MaxShapeSize   int
	MinBundleArea, MaxBundleArea int

	Seed   int64
	Seeded bool
}

// Validate checks every bound the generator's steps assume holds.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return ErrBadConfig
	}
	if c.MinShapeSize < 1 || c.MaxShapeSize < c.MinShapeSize {
		return ErrBadConfig
	}
	if c.MinBundleArea < 1 || c.MaxBundleArea < c.MinBundleArea {
		return ErrBadConfig
	}
	return nil
}
