package gen

import (
	"testing"

	"github.com/OCharnyshevich/tilemap/pkg/world"
)

func fillStone(g *world.Grid) {
	for i := 0; i < g.Len(); i++ {
		g.Set(i, world.Stone)
	}
}

func TestOreSeedChanceOneSeedsEveryStone(t *testing.T) {
	g := mustGrid(t, 10)
	fillStone(g)
	p := &OrePass{SeedChance: 1, GrowthChance: 0.5, GrowthRadius: 1, GrowthIterations: 0}
	if err := p.Apply(g, NewRNG(3)); err != nil {
		t.Fatal(err)
	}
	if got := g.Count(world.Ore); got != 100 {
		t.Errorf("ore cells = %d, want 100", got)
	}
}

func TestOreSeedChanceZeroLeavesStone(t *testing.T) {
	g := mustGrid(t, 10)
	fillStone(g)
	_ = (&OrePass{SeedChance: 0, GrowthChance: 1, GrowthRadius: 3, GrowthIterations: 10}).Apply(g, NewRNG(3))
	if got := g.Count(world.Ore); got != 0 {
		t.Errorf("ore cells = %d, want 0", got)
	}
}

func TestOreOnlySeedsOnStone(t *testing.T) {
	g := mustGrid(t, 8)
	_ = (&OrePass{SeedChance: 1, GrowthChance: 1, GrowthRadius: 2, GrowthIterations: 5}).Apply(g, NewRNG(3))
	if got := g.Count(world.Ore); got != 0 {
		t.Errorf("ore cells on an empty grid = %d, want 0", got)
	}
}

func TestOreWithinRadiusOfStone(t *testing.T) {
	const r = 2
	g := mustGrid(t, 40)
	// Scattered stone blobs.
	for _, c := range [][2]int{{5, 5}, {6, 5}, {20, 30}, {39, 0}, {0, 39}} {
		g.Put(c[0], c[1], world.Stone)
	}
	stone := g.Clone()

	p := &OrePass{SeedChance: 1, GrowthChance: 0.9, GrowthRadius: r, GrowthIterations: 20}
	_ = p.Apply(g, NewRNG(11))

	for i := 0; i < g.Len(); i++ {
		if g.At(i) != world.Ore {
			continue
		}
		x, y := g.Coords(i)
		if !nearStone(stone, x, y, r) {
			t.Errorf("ore at (%d,%d) is farther than %d from any stone", x, y, r)
		}
	}
}

func nearStone(g *world.Grid, x, y, r int) bool {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if g.InBounds(x+dx, y+dy) && g.Get(x+dx, y+dy) == world.Stone {
				return true
			}
		}
	}
	return false
}

func TestOreGrowthOffsetsFromSeedNotPreviousStep(t *testing.T) {
	g := mustGrid(t, 9)
	g.Put(4, 4, world.Stone)
	// Seed draw, then two steps of +2,+2 (IntN(5) == 4 maps to offset +2);
	// a random walk would reach (8,8) on the second step.
	rng := &scriptedRand{
		floats:      []float64{0, 0, 0},
		ints:        []int{4, 4, 4, 4},
		intFallback: 2,
	}
	_ = (&OrePass{SeedChance: 0.5, GrowthChance: 0.5, GrowthRadius: 2, GrowthIterations: 2}).Apply(g, rng)

	if g.Get(6, 6) != world.Ore {
		t.Errorf("(6,6) = %s, want ore", g.Get(6, 6))
	}
	if g.Get(8, 8) == world.Ore {
		t.Error("(8,8) is ore; growth must be relative to the seed")
	}
	if got := g.Count(world.Ore); got != 2 {
		t.Errorf("ore cells = %d, want 2", got)
	}
}

func TestOreOutOfBoundsStepContinuesWalk(t *testing.T) {
	g := mustGrid(t, 5)
	g.Put(0, 0, world.Stone)
	// First step goes to (-1,-1) and is skipped without a stop draw;
	// the second lands on (1,1).
	rng := &scriptedRand{
		floats: []float64{0, 0},
		ints:   []int{0, 0, 2, 2},
	}
	p := &OrePass{SeedChance: 1, GrowthChance: 1, GrowthRadius: 1, GrowthIterations: 2}
	_ = p.Apply(g, rng)

	if g.Get(1, 1) != world.Ore {
		t.Errorf("(1,1) = %s, want ore", g.Get(1, 1))
	}
}

func TestOreWritesBeforeStopCheck(t *testing.T) {
	g := mustGrid(t, 5)
	g.Put(2, 2, world.Stone)
	// Stop draw 0.99 > GrowthChance 0 ends the walk, but only after the first write.
	rng := &scriptedRand{
		floats: []float64{0, 0.99},
		ints:   []int{2, 1, 0, 0},
	}
	p := &OrePass{SeedChance: 1, GrowthChance: 0, GrowthRadius: 1, GrowthIterations: 5}
	_ = p.Apply(g, rng)

	if g.Get(3, 2) != world.Ore {
		t.Errorf("(3,2) = %s, want ore from the first growth step", g.Get(3, 2))
	}
	if got := g.Count(world.Ore); got != 2 {
		t.Errorf("ore cells = %d, want 2", got)
	}
}
