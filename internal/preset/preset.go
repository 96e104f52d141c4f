// Package preset downloads generator config presets from any source
// go-getter understands: local paths, http(s), git, s3, gcs.
package preset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/tilemap/internal/config"
	"github.com/OCharnyshevich/tilemap/internal/storage"
)

// Fetch downloads the preset at src and loads it over cfg.
// Relative local paths are resolved against the working directory.
func Fetch(ctx context.Context, src string, cfg *config.Config, log *slog.Logger) error {
	if src == "" {
		return errors.New("preset source required")
	}

	dir, err := os.MkdirTemp("", "worldgen-preset-*")
	if err != nil {
		return fmt.Errorf("create preset dir: %w", err)
	}
	defer os.RemoveAll(dir)

	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}

	dst := filepath.Join(dir, "preset.json")
	log.Info("fetching preset", "src", src)

	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf("fetch preset %s: %w", src, err)
	}

	if _, err := os.Stat(dst); err != nil {
		return fmt.Errorf("fetch preset %s: %w", src, err)
	}
	if err := storage.LoadConfig(dst, cfg); err != nil {
		return fmt.Errorf("load preset %s: %w", src, err)
	}
	log.Info("loaded preset", "src", src)
	return nil
}
