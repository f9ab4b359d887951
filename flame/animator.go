package flame

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DriftRadius scales the wobble added to each shape map's translation.
const DriftRadius = 0.25

// Animator derives the active shape maps for a frame from a fixed baseline.
type Animator struct {
	baseline      [3]AffineMap
	rotationRates [3]float64 // cycles per second
	driftRates    [3]float64 // radians per millisecond
}

func NewAnimator(baseline [3]AffineMap, rotationRates, driftRates [3]float64) *Animator {
	return &Animator{
		baseline:      baseline,
		rotationRates: rotationRates,
		driftRates:    driftRates,
	}
}

func (a *Animator) Baseline() [3]AffineMap {
	return a.baseline
}

// Update returns working copies of the shape maps at elapsedMs.
//
// pointer is the latest cursor position in window pixels. It is read every
// frame but does not yet influence the maps; a pointer reactive displacement
// belongs next to the drift term below.
func (a *Animator) Update(elapsedMs float64, pointer mgl32.Vec2) [3]AffineMap {
	_ = pointer

	var maps [3]AffineMap
	for i, base := range a.baseline {
		theta := a.rotationRates[i] * elapsedMs / 1000 * 2 * math.Pi
		m := base.Rotate(theta)

		t := a.driftRates[i] * elapsedMs
		sin, cos := math.Sincos(t)
		r := sin * DriftRadius
		maps[i] = m.Translate(sin*r, cos*r)
	}
	return maps
}
