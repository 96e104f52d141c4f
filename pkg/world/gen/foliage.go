package gen

import "github.com/OCharnyshevich/tilemap/pkg/world"

// FoliagePass scatters trees, bushes and rocks over Empty cells.
// The chances are independent trials tried in order tree, bush, rock;
// the first success wins, so trees are favoured by construction.
type FoliagePass struct {
	TreeChance float64
	BushChance float64
	RockChance float64
}

func (p *FoliagePass) Name() string { return "foliage" }

func (p *FoliagePass) Apply(g *world.Grid, rng Rand) error {
	for i := 0; i < g.Len(); i++ {
		if g.At(i) != world.Empty {
			continue
		}
		switch {
		case rng.Float64() < p.TreeChance:
			g.Set(i, world.Tree)
		case rng.Float64() < p.BushChance:
			g.Set(i, world.Bush)
		case rng.Float64() < p.RockChance:
			g.Set(i, world.Rock)
		}
	}
	return nil
}
