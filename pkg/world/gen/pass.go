package gen

import "github.com/OCharnyshevich/tilemap/pkg/world"

// Pass mutates the grid in place. Passes run in a fixed order and each one
// sees the tiles written by the passes before it.
type Pass interface {
	Name() string
	Apply(g *world.Grid, rng Rand) error
}
