package gen

import (
	"fmt"
	"sort"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is a coherent 2D noise function.
type Source interface {
	Noise2D(x, y float64) float64
}

// SourceFactory builds a Source from a seed. Equal seeds must give equal sources.
type SourceFactory func(seed int64) Source

const (
	BackendPerlin      = "perlin"
	BackendOpenSimplex = "opensimplex"
	BackendSimplex     = "simplex"
)

var backends = map[string]SourceFactory{
	BackendPerlin:      newPerlinSource,
	BackendOpenSimplex: newOpenSimplexSource,
	BackendSimplex:     newSimplexSource,
}

// Backend returns the factory registered under name.
func Backend(name string) (SourceFactory, error) {
	f, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown noise backend %q", name)
	}
	return f, nil
}

// Backends lists the registered backend names, sorted.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newPerlinSource(seed int64) Source {
	// alpha/beta only matter for n > 1; octaves are layered by Field.
	return perlin.NewPerlin(2, 2, 1, seed)
}

type openSimplexSource struct {
	noise opensimplex.Noise
}

func newOpenSimplexSource(seed int64) Source {
	return openSimplexSource{noise: opensimplex.New(seed)}
}

func (s openSimplexSource) Noise2D(x, y float64) float64 {
	return s.noise.Eval2(x, y)
}

// FieldParams describes a layered noise field.
type FieldParams struct {
	Octaves     int
	Persistence float64 // amplitude factor per octave
	Lacunarity  float64 // scale divisor per octave
	Scale       float64 // base sampling scale; 0 means the grid width
	Seed        int64
}

// Field samples width×width cells of octave noise into a new slice.
//
// Octave k reads its own source at (x, y) / (Scale / Lacunarity^k) * (k+1)
// with weight Persistence^k. Every value is offset by 0.5 and left unclamped.
func Field(width int, p FieldParams, newSource SourceFactory) []float64 {
	sources := make([]Source, p.Octaves)
	for k := range sources {
		sources[k] = newSource(OctaveSeed(p.Seed, k))
	}

	scale := p.Scale
	if scale == 0 {
		scale = float64(width)
	}

	field := make([]float64, width*width)
	for i := range field {
		x := float64(i % width)
		y := float64(i / width)

		amplitude := 1.0
		s := scale
		var v float64
		for k, src := range sources {
			freq := float64(k+1) / s
			v += src.Noise2D(x*freq, y*freq) * amplitude
			amplitude *= p.Persistence
			s /= p.Lacunarity
		}
		field[i] = v + 0.5
	}
	return field
}

// OctaveSeed derives the seed of octave k from the field seed.
func OctaveSeed(seed int64, k int) int64 {
	h := uint64(seed) ^ uint64(k+1)*0x9e3779b97f4a7c15
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return int64(h >> 1)
}
