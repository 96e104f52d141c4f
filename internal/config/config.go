package config

import (
	"fmt"
	"path/filepath"

	"github.com/OCharnyshevich/tilemap/pkg/world"
	"github.com/OCharnyshevich/tilemap/pkg/world/gen"
)

// Config holds the generator configuration.
type Config struct {
	Size    int    `json:"size" jsonschema:"minimum=1,maximum=8192,description=Side length of the square map in tiles"`
	Seed    int64  `json:"seed" jsonschema:"description=RNG seed; 0 picks one from the clock"`
	Noise   string `json:"noise" jsonschema:"enum=perlin,enum=opensimplex,enum=simplex,description=Noise backend for the mountain field"`
	Symbols string `json:"symbols" jsonschema:"enum=emoji,enum=ascii,description=Glyph set used by the exporters"`

	MountainThreshold   float64 `json:"mountain_threshold" jsonschema:"minimum=0,maximum=1,description=Cells whose noise value is at or below this become stone"`
	MountainOctaves     int     `json:"mountain_octaves" jsonschema:"minimum=0"`
	MountainPersistence float64 `json:"mountain_persistence" jsonschema:"exclusiveMinimum=0"`
	MountainLacunarity  float64 `json:"mountain_lacunarity" jsonschema:"exclusiveMinimum=0"`

	OreSeedChance       float64 `json:"ore_seed_chance" jsonschema:"minimum=0,maximum=1"`
	OreGrowthChance     float64 `json:"ore_growth_chance" jsonschema:"minimum=0,maximum=1"`
	OreGrowthRadius     int     `json:"ore_growth_radius" jsonschema:"minimum=0"`
	OreGrowthIterations int     `json:"ore_growth_iterations" jsonschema:"minimum=0"`

	RiverWidth float64 `json:"river_width" jsonschema:"minimum=0,description=Cells closer than this to the river centreline become river"`

	TreeChance float64 `json:"tree_chance" jsonschema:"minimum=0,maximum=1"`
	BushChance float64 `json:"bush_chance" jsonschema:"minimum=0,maximum=1"`
	RockChance float64 `json:"rock_chance" jsonschema:"minimum=0,maximum=1"`

	OutDir      string `json:"out_dir" jsonschema:"description=Directory the exported files are written to"`
	TextFile    string `json:"text_file" jsonschema:"description=Text export file name; empty skips it"`
	CSVFile     string `json:"csv_file" jsonschema:"description=CSV export file name; empty skips it"`
	PreviewFile string `json:"preview_file" jsonschema:"description=PNG preview file name; empty skips it"`

	LogLevel string `json:"log_level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
}

// DefaultConfig returns a Config with the reference 200×200 settings.
func DefaultConfig() *Config {
	p := gen.DefaultParams()
	return &Config{
		Size:    200,
		Noise:   p.Noise,
		Symbols: "emoji",

		MountainThreshold:   p.MountainThreshold,
		MountainOctaves:     p.MountainOctaves,
		MountainPersistence: p.MountainPersistence,
		MountainLacunarity:  p.MountainLacunarity,

		OreSeedChance:       p.OreSeedChance,
		OreGrowthChance:     p.OreGrowthChance,
		OreGrowthRadius:     p.OreGrowthRadius,
		OreGrowthIterations: p.OreGrowthIterations,

		RiverWidth: p.RiverWidth,

		TreeChance: p.TreeChance,
		BushChance: p.BushChance,
		RockChance: p.RockChance,

		OutDir:   ".",
		TextFile: "map.txt",
		CSVFile:  "map.csv",

		LogLevel: "info",
	}
}

// GenParams extracts the generator parameters.
func (c *Config) GenParams() gen.Params {
	return gen.Params{
		Noise:               c.Noise,
		MountainThreshold:   c.MountainThreshold,
		MountainOctaves:     c.MountainOctaves,
		MountainPersistence: c.MountainPersistence,
		MountainLacunarity:  c.MountainLacunarity,
		OreSeedChance:       c.OreSeedChance,
		OreGrowthChance:     c.OreGrowthChance,
		OreGrowthRadius:     c.OreGrowthRadius,
		OreGrowthIterations: c.OreGrowthIterations,
		RiverWidth:          c.RiverWidth,
		TreeChance:          c.TreeChance,
		BushChance:          c.BushChance,
		RockChance:          c.RockChance,
	}
}

// Validate reports the first setting that would make generation or export fail.
// Errors are *world.ConfigError.
func (c *Config) Validate() error {
	if err := world.CheckWidth(c.Size); err != nil {
		return err
	}
	if _, ok := world.SymbolSetByName(c.Symbols); !ok {
		return &world.ConfigError{Field: "symbols", Reason: fmt.Sprintf("unknown symbol set %q", c.Symbols)}
	}
	if _, ok := ParseLevel(c.LogLevel); !ok {
		return &world.ConfigError{Field: "log_level", Reason: fmt.Sprintf("unknown level %q", c.LogLevel)}
	}
	outputs := []struct{ field, name string }{
		{"text_file", c.TextFile},
		{"csv_file", c.CSVFile},
		{"preview_file", c.PreviewFile},
	}
	for _, o := range outputs {
		if o.name == "" {
			continue
		}
		if err := CheckFileName(o.field, o.name); err != nil {
			return err
		}
	}
	if c.TextFile == "" && c.CSVFile == "" && c.PreviewFile == "" {
		return &world.ConfigError{Field: "text_file", Reason: "no output selected"}
	}
	return c.GenParams().Validate()
}

// CheckFileName rejects output names that would escape the output directory.
func CheckFileName(field, name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return &world.ConfigError{Field: field, Reason: fmt.Sprintf("%q must be a bare file name", name)}
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	merge(explicitFlags, "size", &cfg.Size, fromFile.Size)
	merge(explicitFlags, "seed", &cfg.Seed, fromFile.Seed)
	merge(explicitFlags, "noise", &cfg.Noise, fromFile.Noise)
	merge(explicitFlags, "symbols", &cfg.Symbols, fromFile.Symbols)

	merge(explicitFlags, "threshold", &cfg.MountainThreshold, fromFile.MountainThreshold)
	merge(explicitFlags, "octaves", &cfg.MountainOctaves, fromFile.MountainOctaves)
	merge(explicitFlags, "persistence", &cfg.MountainPersistence, fromFile.MountainPersistence)
	merge(explicitFlags, "lacunarity", &cfg.MountainLacunarity, fromFile.MountainLacunarity)

	merge(explicitFlags, "ore-seed-chance", &cfg.OreSeedChance, fromFile.OreSeedChance)
	merge(explicitFlags, "ore-growth-chance", &cfg.OreGrowthChance, fromFile.OreGrowthChance)
	merge(explicitFlags, "ore-growth-radius", &cfg.OreGrowthRadius, fromFile.OreGrowthRadius)
	merge(explicitFlags, "ore-growth-iterations", &cfg.OreGrowthIterations, fromFile.OreGrowthIterations)

	merge(explicitFlags, "river-width", &cfg.RiverWidth, fromFile.RiverWidth)

	merge(explicitFlags, "tree-chance", &cfg.TreeChance, fromFile.TreeChance)
	merge(explicitFlags, "bush-chance", &cfg.BushChance, fromFile.BushChance)
	merge(explicitFlags, "rock-chance", &cfg.RockChance, fromFile.RockChance)

	merge(explicitFlags, "out", &cfg.OutDir, fromFile.OutDir)
	merge(explicitFlags, "text", &cfg.TextFile, fromFile.TextFile)
	merge(explicitFlags, "csv", &cfg.CSVFile, fromFile.CSVFile)
	merge(explicitFlags, "preview", &cfg.PreviewFile, fromFile.PreviewFile)
	merge(explicitFlags, "log-level", &cfg.LogLevel, fromFile.LogLevel)
}

func merge[T any](explicit map[string]bool, flag string, dst *T, v T) {
	if !explicit[flag] {
		*dst = v
	}
}
