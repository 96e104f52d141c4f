package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/OCharnyshevich/tilemap/internal/config"
	"github.com/OCharnyshevich/tilemap/pkg/world"
)

// Storage writes generated maps and run metadata under one directory.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a new Storage rooted at dir, creating it if needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}
	return &Storage{dir: dir, log: log}, nil
}

// Path returns the location of name inside the storage directory.
func (s *Storage) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// LoadConfig reads a JSON config file into cfg. Fields missing from the file keep
// their current values. If the file does not exist, cfg is unchanged.
func LoadConfig(path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// LoadText reads a map previously written by ExportText. The emoji set is
// tried first, then ASCII.
func LoadText(path string) (*world.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	var errs []error
	for _, syms := range []world.SymbolSet{world.EmojiSymbols, world.ASCIISymbols} {
		g, err := world.ParseText(bytes.NewReader(data), syms)
		if err == nil {
			return g, nil
		}
		errs = append(errs, err)
	}
	return nil, fmt.Errorf("parse map %s: %w", path, errors.Join(errs...))
}

// SaveConfig writes the effective config of a run to name, so the map can be regenerated.
func (s *Storage) SaveConfig(name string, cfg *config.Config) error {
	return s.atomicWrite(name, func(w io.Writer) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	})
}

// ExportText writes g as one line per row with no separators.
func (s *Storage) ExportText(name string, g *world.Grid, syms world.SymbolSet) error {
	return s.atomicWrite(name, func(w io.Writer) error { return WriteText(w, g, syms) })
}

// ExportCSV writes g as comma separated rows with Empty as an empty field.
func (s *Storage) ExportCSV(name string, g *world.Grid, syms world.SymbolSet) error {
	return s.atomicWrite(name, func(w io.Writer) error { return WriteCSV(w, g, syms) })
}

// ExportPreview writes a PNG with one coloured block per tile.
func (s *Storage) ExportPreview(name string, g *world.Grid) error {
	return s.atomicWrite(name, func(w io.Writer) error { return WritePreview(w, g) })
}

// atomicWrite streams into a temp file and renames it over name.
func (s *Storage) atomicWrite(name string, write func(io.Writer) error) error {
	path := s.Path(name)
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	bw := bufio.NewWriter(f)
	err = write(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	s.log.Info("wrote file", "path", path)
	return nil
}
