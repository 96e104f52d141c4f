package gen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/OCharnyshevich/tilemap/pkg/world"
)

// Params holds every tunable of the default pass sequence.
type Params struct {
	Noise string

	MountainThreshold   float64
	MountainOctaves     int
	MountainPersistence float64
	MountainLacunarity  float64

	OreSeedChance       float64
	OreGrowthChance     float64
	OreGrowthRadius     int
	OreGrowthIterations int

	RiverWidth float64

	TreeChance float64
	BushChance float64
	RockChance float64
}

// DefaultParams returns the reference settings for a 200×200 map.
func DefaultParams() Params {
	return Params{
		Noise:               BackendPerlin,
		MountainThreshold:   0.3,
		MountainOctaves:     5,
		MountainPersistence: 0.5,
		MountainLacunarity:  2,
		OreSeedChance:       0.01,
		OreGrowthChance:     0.9,
		OreGrowthRadius:     2,
		OreGrowthIterations: 20,
		RiverWidth:          6,
		TreeChance:          0.01,
		BushChance:          0.5,
		RockChance:          0.005,
	}
}

// Validate returns a *world.ConfigError for the first unusable parameter.
func (p Params) Validate() error {
	if _, err := Backend(p.Noise); err != nil {
		return &world.ConfigError{Field: "noise", Reason: err.Error()}
	}
	probs := []struct {
		field string
		v     float64
	}{
		{"mountain_threshold", p.MountainThreshold},
		{"ore_seed_chance", p.OreSeedChance},
		{"ore_growth_chance", p.OreGrowthChance},
		{"tree_chance", p.TreeChance},
		{"bush_chance", p.BushChance},
		{"rock_chance", p.RockChance},
	}
	for _, pr := range probs {
		if err := world.Probability(pr.field, pr.v); err != nil {
			return err
		}
	}
	if err := world.NonNegative("mountain_octaves", p.MountainOctaves); err != nil {
		return err
	}
	if err := world.NonNegative("ore_growth_radius", p.OreGrowthRadius); err != nil {
		return err
	}
	if err := world.NonNegative("ore_growth_iterations", p.OreGrowthIterations); err != nil {
		return err
	}
	if !(p.MountainPersistence > 0) {
		return &world.ConfigError{Field: "mountain_persistence", Reason: "must be positive"}
	}
	if !(p.MountainLacunarity > 0) {
		return &world.ConfigError{Field: "mountain_lacunarity", Reason: "must be positive"}
	}
	if !(p.RiverWidth >= 0) {
		return &world.ConfigError{Field: "river_width", Reason: fmt.Sprintf("%v is negative", p.RiverWidth)}
	}
	return nil
}

// Generator runs mountains, ore, river and foliage over a fresh grid.
type Generator struct {
	passes []Pass
	log    *slog.Logger
}

// NewDefaultGenerator validates p and builds the standard pass sequence.
func NewDefaultGenerator(p Params, log *slog.Logger) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	newSource, _ := Backend(p.Noise)

	mountains := NewMountainPass(p.MountainThreshold, newSource)
	mountains.Octaves = p.MountainOctaves
	mountains.Persistence = p.MountainPersistence
	mountains.Lacunarity = p.MountainLacunarity

	return NewGenerator(log,
		mountains,
		&OrePass{
			SeedChance:       p.OreSeedChance,
			GrowthChance:     p.OreGrowthChance,
			GrowthRadius:     p.OreGrowthRadius,
			GrowthIterations: p.OreGrowthIterations,
		},
		&RiverPass{Width: p.RiverWidth},
		&FoliagePass{
			TreeChance: p.TreeChance,
			BushChance: p.BushChance,
			RockChance: p.RockChance,
		},
	), nil
}

// NewGenerator runs the given passes in order. A nil log discards output.
func NewGenerator(log *slog.Logger, passes ...Pass) *Generator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Generator{passes: passes, log: log}
}

// Generate creates an all-Empty width×width grid and runs every pass over it
// with a single RNG seeded from seed.
func (g *Generator) Generate(width int, seed int64) (*world.Grid, error) {
	grid, err := world.NewGrid(width)
	if err != nil {
		return nil, err
	}
	if err := g.Run(grid, NewRNG(seed)); err != nil {
		return nil, err
	}
	return grid, nil
}

// Run applies the passes to grid in order, sharing rng.
func (g *Generator) Run(grid *world.Grid, rng Rand) error {
	debug := g.log.Enabled(context.Background(), slog.LevelDebug)
	for _, p := range g.passes {
		var before *world.Grid
		if debug {
			before = grid.Clone()
		}
		start := time.Now()
		if err := p.Apply(grid, rng); err != nil {
			return fmt.Errorf("%s pass: %w", p.Name(), err)
		}
		if !debug {
			continue
		}
		g.log.Debug("pass done",
			"pass", p.Name(),
			"changed", changedCells(before, grid),
			"elapsed", time.Since(start),
		)
	}
	return nil
}

func changedCells(before, after *world.Grid) int {
	n := 0
	for i := 0; i < after.Len(); i++ {
		if before.At(i) != after.At(i) {
			n++
		}
	}
	return n
}
