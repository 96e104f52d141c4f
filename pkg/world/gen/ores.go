package gen

import "github.com/OCharnyshevich/tilemap/pkg/world"

// OrePass seeds ore on stone and grows a patch around every seed.
type OrePass struct {
	SeedChance       float64
	GrowthChance     float64
	GrowthRadius     int
	GrowthIterations int
}

func (p *OrePass) Name() string { return "ore" }

// Apply scans cells in index order. Each Stone cell becomes an ore seed with
// probability SeedChance; its patch is a walk of up to GrowthIterations
// offsets, each drawn from [-R, R]² around the seed itself. Out-of-bounds
// targets are skipped. A step that lands writes Ore and then stops the walk
// when a fresh draw exceeds GrowthChance.
func (p *OrePass) Apply(g *world.Grid, rng Rand) error {
	r := p.GrowthRadius
	for i := 0; i < g.Len(); i++ {
		if g.At(i) != world.Stone || rng.Float64() >= p.SeedChance {
			continue
		}
		g.Set(i, world.Ore)

		sx, sy := g.Coords(i)
		for range p.GrowthIterations {
			x := sx + intRange(rng, -r, r)
			y := sy + intRange(rng, -r, r)
			if !g.InBounds(x, y) {
				continue
			}
			g.Put(x, y, world.Ore)
			if rng.Float64() > p.GrowthChance {
				break
			}
		}
	}
	return nil
}
