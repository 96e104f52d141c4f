package gen

import "github.com/OCharnyshevich/tilemap/pkg/world"

// MountainPass marks Stone wherever the noise field is at or below Threshold.
type MountainPass struct {
	Threshold   float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	NewSource   SourceFactory
}

// NewMountainPass uses the octave settings the generator has always shipped with.
func NewMountainPass(threshold float64, newSource SourceFactory) *MountainPass {
	return &MountainPass{
		Threshold:   threshold,
		Octaves:     5,
		Persistence: 0.5,
		Lacunarity:  2,
		NewSource:   newSource,
	}
}

func (p *MountainPass) Name() string { return "mountains" }

// Apply draws a fresh field seed from rng, so repeated calls differ unless rng is reseeded.
func (p *MountainPass) Apply(g *world.Grid, rng Rand) error {
	field := Field(g.Width(), FieldParams{
		Octaves:     p.Octaves,
		Persistence: p.Persistence,
		Lacunarity:  p.Lacunarity,
		Seed:        int64(rng.IntN(1001)),
	}, p.NewSource)

	for i, v := range field {
		if v <= p.Threshold {
			g.Set(i, world.Stone)
		}
	}
	return nil
}
