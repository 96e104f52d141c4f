package gen

import (
	"math"

	"github.com/OCharnyshevich/tilemap/pkg/world"
)

// RiverSamples is the number of points sampled along the river centreline.
const RiverSamples = 100

// Point is a position in grid units.
type Point struct{ X, Y float64 }

func lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// BezierCurve samples the cubic curve p0→p1→p2→p3 at t = i/samples for
// i in [0, samples), using De Casteljau's construction.
func BezierCurve(p0, p1, p2, p3 Point, samples int) []Point {
	pts := make([]Point, samples)
	for i := range pts {
		t := float64(i) / float64(samples)
		a := lerp(p0, p1, t)
		b := lerp(p1, p2, t)
		c := lerp(p2, p3, t)
		pts[i] = lerp(lerp(a, b, t), lerp(b, c, t), t)
	}
	return pts
}

// RiverPass carves one river between two map edges.
type RiverPass struct {
	Width float64
}

func (p *RiverPass) Name() string { return "river" }

func (p *RiverPass) Apply(g *world.Grid, rng Rand) error {
	start, end := riverEndpoints(g.Width(), rng)
	c1 := randomPoint(g.Width(), rng)
	c2 := randomPoint(g.Width(), rng)
	PaintRiver(g, BezierCurve(start, c1, c2, end, RiverSamples), p.Width)
	return nil
}

// riverEndpoints draws one point on each edge and picks two different ones.
func riverEndpoints(w int, rng Rand) (start, end Point) {
	last := float64(w - 1)
	sides := [4]Point{
		{X: 0, Y: float64(rng.IntN(w))},
		{X: last, Y: float64(rng.IntN(w))},
		{X: float64(rng.IntN(w)), Y: 0},
		{X: float64(rng.IntN(w)), Y: last},
	}
	start = sides[rng.IntN(4)]
	end = sides[rng.IntN(4)]
	for end == start && w > 1 {
		end = sides[rng.IntN(4)]
	}
	return start, end
}

func randomPoint(w int, rng Rand) Point {
	return Point{X: float64(rng.IntN(w)), Y: float64(rng.IntN(w))}
}

// PaintRiver marks River on every cell strictly closer than width to any curve
// point. The scan is cells × points; fine for maps a few hundred wide.
func PaintRiver(g *world.Grid, curve []Point, width float64) {
	for i := 0; i < g.Len(); i++ {
		x, y := g.Coords(i)
		cell := Point{X: float64(x), Y: float64(y)}
		for _, pt := range curve {
			if math.Hypot(pt.X-cell.X, pt.Y-cell.Y) < width {
				g.Set(i, world.River)
				break
			}
		}
	}
}
