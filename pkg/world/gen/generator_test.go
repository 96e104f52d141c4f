package gen

import (
	"errors"
	"math"
	"testing"

	"github.com/OCharnyshevich/tilemap/pkg/world"
)

func TestDefaultGeneratorDeterministic(t *testing.T) {
	g, err := NewDefaultGenerator(DefaultParams(), nil)
	if err != nil {
		t.Fatal(err)
	}
	a, err := g.Generate(64, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := g.Generate(64, 42)

	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			t.Fatalf("cell %d differs: %s vs %s", i, a.At(i), b.At(i))
		}
	}
}

func TestDefaultGeneratorDifferentSeeds(t *testing.T) {
	g, _ := NewDefaultGenerator(DefaultParams(), nil)
	a, _ := g.Generate(64, 1)
	b, _ := g.Generate(64, 2)
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return
		}
	}
	t.Error("different seeds should produce different maps")
}

func TestDefaultGeneratorEveryCellValid(t *testing.T) {
	for _, backend := range Backends() {
		t.Run(backend, func(t *testing.T) {
			p := DefaultParams()
			p.Noise = backend
			g, err := NewDefaultGenerator(p, nil)
			if err != nil {
				t.Fatal(err)
			}
			grid, err := g.Generate(50, 7)
			if err != nil {
				t.Fatal(err)
			}
			if grid.Len() != 50*50 {
				t.Fatalf("len = %d, want %d", grid.Len(), 50*50)
			}
			total := 0
			for tile, n := range grid.Histogram() {
				if !tile.Valid() {
					t.Errorf("invalid tile %d", tile)
				}
				total += n
			}
			if total != grid.Len() {
				t.Errorf("histogram total = %d, want %d", total, grid.Len())
			}
		})
	}
}

// alwaysStone forces every field value to 0.5, below any threshold >= 0.5.
func alwaysStone(int64) Source { return constSource(0) }

func TestAllStoneThenAllOre(t *testing.T) {
	g := NewGenerator(nil,
		NewMountainPass(1.0, alwaysStone),
		&OrePass{SeedChance: 1, GrowthChance: 0.5, GrowthRadius: 2, GrowthIterations: 3},
	)
	grid, err := g.Generate(10, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := grid.Count(world.Ore); got != 100 {
		t.Errorf("ore cells = %d, want 100", got)
	}
}

func TestPassOrderVisible(t *testing.T) {
	// Foliage runs last and only touches cells the earlier passes left Empty.
	g := NewGenerator(nil,
		NewMountainPass(1.0, alwaysStone),
		&FoliagePass{TreeChance: 1},
	)
	grid, _ := g.Generate(8, 1)
	if got := grid.Count(world.Tree); got != 0 {
		t.Errorf("tree cells = %d, want 0 on an all-stone map", got)
	}
}

type failingPass struct{}

func (failingPass) Name() string                  { return "broken" }
func (failingPass) Apply(*world.Grid, Rand) error { return errors.New("boom") }

func TestRunWrapsPassError(t *testing.T) {
	g := NewGenerator(nil, failingPass{})
	_, err := g.Generate(4, 1)
	if err == nil || err.Error() != "broken pass: boom" {
		t.Errorf("err = %v, want %q", err, "broken pass: boom")
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Params)
		field string
	}{
		{"noise", func(p *Params) { p.Noise = "value" }, "noise"},
		{"threshold", func(p *Params) { p.MountainThreshold = 1.5 }, "mountain_threshold"},
		{"seed chance", func(p *Params) { p.OreSeedChance = -0.1 }, "ore_seed_chance"},
		{"growth chance nan", func(p *Params) { p.OreGrowthChance = math.NaN() }, "ore_growth_chance"},
		{"tree", func(p *Params) { p.TreeChance = 2 }, "tree_chance"},
		{"bush", func(p *Params) { p.BushChance = -1 }, "bush_chance"},
		{"rock", func(p *Params) { p.RockChance = 1.01 }, "rock_chance"},
		{"radius", func(p *Params) { p.OreGrowthRadius = -1 }, "ore_growth_radius"},
		{"iterations", func(p *Params) { p.OreGrowthIterations = -3 }, "ore_growth_iterations"},
		{"octaves", func(p *Params) { p.MountainOctaves = -1 }, "mountain_octaves"},
		{"persistence", func(p *Params) { p.MountainPersistence = 0 }, "mountain_persistence"},
		{"lacunarity", func(p *Params) { p.MountainLacunarity = -2 }, "mountain_lacunarity"},
		{"river width", func(p *Params) { p.RiverWidth = -1 }, "river_width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mod(&p)
			_, err := NewDefaultGenerator(p, nil)
			var cerr *world.ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("err = %v, want *world.ConfigError", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("field = %q, want %q", cerr.Field, tt.field)
			}
		})
	}
}

func TestDefaultParamsValid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("DefaultParams().Validate() = %v", err)
	}
}

func TestGenerateRejectsNonPositiveWidth(t *testing.T) {
	g, _ := NewDefaultGenerator(DefaultParams(), nil)
	_, err := g.Generate(0, 1)
	var cerr *world.ConfigError
	if !errors.As(err, &cerr) {
		t.Errorf("err = %v, want *world.ConfigError", err)
	}
}
