package gen

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 1000; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 10000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f, out of [0,1)", f)
		}
		if n := r.IntN(5); n < 0 || n >= 5 {
			t.Fatalf("IntN(5) = %d, out of [0,5)", n)
		}
	}
}

func TestIntRangeInclusive(t *testing.T) {
	r := NewRNG(3)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := intRange(r, -2, 2)
		if v < -2 || v > 2 {
			t.Fatalf("intRange(-2,2) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("intRange(-2,2) hit %d distinct values, want 5", len(seen))
	}
}

func TestRNGDifferentSeeds(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
		}
	}
	if same {
		t.Error("different seeds should produce different draws")
	}
}
