package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/OCharnyshevich/tilemap/internal/config"
	"github.com/OCharnyshevich/tilemap/internal/preset"
	"github.com/OCharnyshevich/tilemap/internal/storage"
	"github.com/OCharnyshevich/tilemap/pkg/world"
	"github.com/OCharnyshevich/tilemap/pkg/world/gen"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "JSON config file")
	presetSrc := flag.String("preset", "", "config preset to download (path, URL, git::, s3::)")
	saveConfig := flag.String("save-config", "", "write the effective config to this file in the output dir")
	from := flag.String("from", "", "re-export a saved text map instead of generating one")

	flag.IntVar(&cfg.Size, "size", cfg.Size, "map side length in tiles")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (0 = random)")
	flag.StringVar(&cfg.Noise, "noise", cfg.Noise, "noise backend: perlin, opensimplex or simplex")
	flag.StringVar(&cfg.Symbols, "symbols", cfg.Symbols, "glyph set: emoji or ascii")

	flag.Float64Var(&cfg.MountainThreshold, "threshold", cfg.MountainThreshold, "mountain threshold; higher means more stone")
	flag.IntVar(&cfg.MountainOctaves, "octaves", cfg.MountainOctaves, "mountain noise octaves")
	flag.Float64Var(&cfg.MountainPersistence, "persistence", cfg.MountainPersistence, "mountain noise persistence")
	flag.Float64Var(&cfg.MountainLacunarity, "lacunarity", cfg.MountainLacunarity, "mountain noise lacunarity")

	flag.Float64Var(&cfg.OreSeedChance, "ore-seed-chance", cfg.OreSeedChance, "chance a stone tile seeds ore")
	flag.Float64Var(&cfg.OreGrowthChance, "ore-growth-chance", cfg.OreGrowthChance, "chance an ore patch keeps growing")
	flag.IntVar(&cfg.OreGrowthRadius, "ore-growth-radius", cfg.OreGrowthRadius, "ore patch radius")
	flag.IntVar(&cfg.OreGrowthIterations, "ore-growth-iterations", cfg.OreGrowthIterations, "max ore growth steps per seed")

	flag.Float64Var(&cfg.RiverWidth, "river-width", cfg.RiverWidth, "river half-width in tiles")

	flag.Float64Var(&cfg.TreeChance, "tree-chance", cfg.TreeChance, "chance an empty tile grows a tree")
	flag.Float64Var(&cfg.BushChance, "bush-chance", cfg.BushChance, "chance an empty tile grows a bush")
	flag.Float64Var(&cfg.RockChance, "rock-chance", cfg.RockChance, "chance an empty tile gets a rock")

	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	flag.StringVar(&cfg.TextFile, "text", cfg.TextFile, "text export file name (empty to skip)")
	flag.StringVar(&cfg.CSVFile, "csv", cfg.CSVFile, "CSV export file name (empty to skip)")
	flag.StringVar(&cfg.PreviewFile, "preview", cfg.PreviewFile, "PNG preview file name (empty to skip)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	level, _ := config.ParseLevel(cfg.LogLevel)
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if *presetSrc != "" || *configPath != "" {
		fromFile := config.DefaultConfig()
		if *presetSrc != "" {
			if err := preset.Fetch(ctx, *presetSrc, fromFile, log); err != nil {
				log.Error("fetch preset", "error", err)
				os.Exit(1)
			}
		}
		if *configPath != "" {
			if err := storage.LoadConfig(*configPath, fromFile); err != nil {
				log.Error("load config", "error", err)
				os.Exit(1)
			}
			log.Info("loaded config from file", "path", *configPath)
		}
		config.Merge(cfg, fromFile, explicit)
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	if *saveConfig != "" {
		if err := config.CheckFileName("save-config", *saveConfig); err != nil {
			log.Error("invalid configuration", "error", err)
			os.Exit(2)
		}
	}
	if lvl, _ := config.ParseLevel(cfg.LogLevel); lvl != level {
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	}

	if *from != "" {
		if err := rerender(cfg, *from, *saveConfig, log); err != nil {
			log.Error("re-export failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := run(cfg, *saveConfig, log); err != nil {
		log.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, saveConfig string, log *slog.Logger) error {
	generator, err := gen.NewDefaultGenerator(cfg.GenParams(), log)
	if err != nil {
		return err
	}

	log.Info("generating map",
		"size", cfg.Size,
		"seed", cfg.Seed,
		"noise", cfg.Noise,
	)
	start := time.Now()
	grid, err := generator.Generate(cfg.Size, cfg.Seed)
	if err != nil {
		return err
	}
	logHistogram(log, grid, time.Since(start))
	return export(cfg, grid, saveConfig, log)
}

// rerender loads a map written by an earlier run and exports it again with
// the current symbols and output settings. Nothing is regenerated.
func rerender(cfg *config.Config, from, saveConfig string, log *slog.Logger) error {
	grid, err := storage.LoadText(from)
	if err != nil {
		return err
	}
	log.Info("loaded map", "path", from, "size", grid.Width())
	cfg.Size = grid.Width()
	return export(cfg, grid, saveConfig, log)
}

func export(cfg *config.Config, grid *world.Grid, saveConfig string, log *slog.Logger) error {
	store, err := storage.New(cfg.OutDir, log)
	if err != nil {
		return err
	}
	syms, _ := world.SymbolSetByName(cfg.Symbols)

	if cfg.TextFile != "" {
		if err := store.ExportText(cfg.TextFile, grid, syms); err != nil {
			return err
		}
	}
	if cfg.CSVFile != "" {
		if err := store.ExportCSV(cfg.CSVFile, grid, syms); err != nil {
			return err
		}
	}
	if cfg.PreviewFile != "" {
		if err := store.ExportPreview(cfg.PreviewFile, grid); err != nil {
			return err
		}
	}
	if saveConfig != "" {
		if err := store.SaveConfig(saveConfig, cfg); err != nil {
			return err
		}
	}
	return nil
}

func logHistogram(log *slog.Logger, grid *world.Grid, elapsed time.Duration) {
	hist := grid.Histogram()
	tiles := make([]world.Tile, 0, len(hist))
	for t := range hist {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })

	attrs := []any{"elapsed", elapsed}
	for _, t := range tiles {
		attrs = append(attrs, t.String(), hist[t])
	}
	log.Info("map generated", attrs...)
}
