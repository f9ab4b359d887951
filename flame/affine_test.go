package flame

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestAffineApply(t *testing.T) {
	m := AffineMap{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	x, y := m.Apply(0.5, -1)
	if x != 1*0.5+2*-1+3 || y != 4*0.5+5*-1+6 {
		t.Errorf("Apply(0.5, -1) = (%v, %v)", x, y)
	}
}

func TestAffineRotateInverse(t *testing.T) {
	base := DefaultBaseline()
	maps := append(base[:], Wildcard, AffineMap{A: 0.3, B: -0.7, C: 0.1, D: 0.2, E: 0.9, F: -0.4})
	for _, theta := range []float64{0, 0.1, 1, math.Pi / 3, -2.5, 40} {
		for i, m := range maps {
			got := m.Rotate(theta).Rotate(-theta)
			if diff := cmp.Diff(m, got, approx); diff != "" {
				t.Errorf("map %v rotated by %v and back (-want +got):\n%s", i, theta, diff)
			}
		}
	}
}

func TestAffineRotateKeepsTranslation(t *testing.T) {
	m := AffineMap{A: 0.5, B: 0.1, C: 0.3, D: -0.2, E: 0.4, F: -0.6}
	r := m.Rotate(1.234)
	if r.C != m.C || r.F != m.F {
		t.Errorf("translation changed from (%v, %v) to (%v, %v)", m.C, m.F, r.C, r.F)
	}
}

func TestAffineRotateQuarterTurn(t *testing.T) {
	m := AffineMap{A: 1, B: 0, D: 0, E: 1}
	want := AffineMap{A: 0, B: 1, D: -1, E: 0}
	if diff := cmp.Diff(want, m.Rotate(math.Pi/2), approx); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestAffineTranslate(t *testing.T) {
	m := AffineMap{A: 1, E: 1, C: 0.25, F: -0.5}.Translate(0.5, 0.25)
	if m.C != 0.75 || m.F != -0.25 {
		t.Errorf("got translation (%v, %v)", m.C, m.F)
	}
}

func TestSpectralRadius(t *testing.T) {
	tests := []struct {
		name string
		m    AffineMap
		want float64
	}{
		{"identity", AffineMap{A: 1, E: 1}, 1},
		{"wildcard", Wildcard, 1},
		{"half scale", AffineMap{A: 0.5, E: 0.5, C: 9}, 0.5},
		{"diagonal", AffineMap{A: -0.8, E: 0.3}, 0.8},
		{"shear", AffineMap{A: 0.5, B: 3, E: 0.25}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.SpectralRadius(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SpectralRadius() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBaselineIsContraction(t *testing.T) {
	for i, m := range DefaultBaseline() {
		if !m.IsContraction() {
			t.Errorf("baseline map %v has spectral radius %v", i, m.SpectralRadius())
		}
		if tr := math.Hypot(m.C, m.F); math.Abs(tr-0.25) > 1e-12 {
			t.Errorf("baseline map %v translation length %v", i, tr)
		}
	}
}

func TestSelectMap(t *testing.T) {
	want := []int{0, 1, 2, 3, 3, 3}
	for slot := 0; slot < Slots; slot++ {
		if got := SelectMap(slot); got != want[slot] {
			t.Errorf("SelectMap(%v) = %v, want %v", slot, got, want[slot])
		}
	}
}

func TestIteratedFunctionSet(t *testing.T) {
	base := DefaultBaseline()
	set := NewIteratedFunctionSet(base)
	if diff := cmp.Diff(base[:], set[:3]); diff != "" {
		t.Errorf("shape maps (-want +got):\n%s", diff)
	}
	if set[WildcardIndex] != Wildcard {
		t.Errorf("last map = %+v, want Wildcard", set[WildcardIndex])
	}
}
