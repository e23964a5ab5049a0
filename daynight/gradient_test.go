package daynight

import (
	"testing"

	"daynight-engine/core"
)

func TestGradientSampleBoundaries(t *testing.T) {
	g := Gradient{{R: 75}, {R: 200}, {R: 200}, {R: 75}}

	if got := g.Sample(0).R; got != 75 {
		t.Errorf("Sample(0): expected 75, got %v", got)
	}
	// t=1 must land exactly on the last key, not read past it.
	if got := g.Sample(1).R; got != 75 {
		t.Errorf("Sample(1): expected 75, got %v", got)
	}
	if got := g.Sample(0.5).R; got != 200 {
		t.Errorf("Sample(0.5): expected 200, got %v", got)
	}

	// Out-of-range t clamps.
	if got := g.Sample(-1).R; got != 75 {
		t.Errorf("Sample(-1): expected 75, got %v", got)
	}
	if got := g.Sample(2).R; got != 75 {
		t.Errorf("Sample(2): expected 75, got %v", got)
	}
}

func TestGradientSampleBlends(t *testing.T) {
	g := Gradient{{R: 75}, {R: 200}, {R: 200}, {R: 75}}

	// t=0.25 sits three quarters of the way between the first two keys.
	if got := g.Sample(0.25).R; got != 168.75 {
		t.Errorf("Sample(0.25): expected 168.75, got %v", got)
	}
}

func TestGradientEmptyAndSingle(t *testing.T) {
	var empty Gradient
	if got := empty.Sample(0.5); got != (core.Color{}) {
		t.Errorf("empty Sample: expected zero color, got %v", got)
	}

	single := Gradient{{R: 1, G: 2, B: 3, A: 4}}
	if got := single.Sample(0.7); got != single[0] {
		t.Errorf("single Sample: expected the only key, got %v", got)
	}
}

func TestGradientAlphaInterpolates(t *testing.T) {
	g := Gradient{{A: 0}, {A: 1}}

	if got := g.Sample(0.5).A; got != 0.5 {
		t.Errorf("Sample(0.5): expected alpha 0.5, got %v", got)
	}
}

func BenchmarkGradientSample(b *testing.B) {
	g := DefaultVisualConfig().AmbientColors

	for i := 0; i < b.N; i++ {
		_ = g.Sample(float64(i%1000) / 1000)
	}
}
