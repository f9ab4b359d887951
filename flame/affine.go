package flame

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AffineMap is the transform
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type AffineMap struct {
	A, B, C float64
	D, E, F float64
}

// Wildcard is the quarter turn about the origin. It is an isometry, so it
// adds symmetry to the attractor without changing its density.
var Wildcard = AffineMap{
	A: 0, B: -1, C: 0,
	D: 1, E: 0, F: 0,
}

func (m AffineMap) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// Rotate changes the basis of the linear part by theta radians.
// The translation is left alone.
func (m AffineMap) Rotate(theta float64) AffineMap {
	sin, cos := math.Sincos(theta)
	return AffineMap{
		A: m.A*cos + m.D*sin,
		B: m.B*cos + m.E*sin,
		C: m.C,
		D: m.D*cos - m.A*sin,
		E: m.E*cos - m.B*sin,
		F: m.F,
	}
}

func (m AffineMap) Translate(dx, dy float64) AffineMap {
	m.C += dx
	m.F += dy
	return m
}

// Linear returns the linear part as a column major matrix.
func (m AffineMap) Linear() mgl64.Mat2 {
	return mgl64.Mat2{m.A, m.D, m.B, m.E}
}

// SpectralRadius is the largest eigenvalue magnitude of the linear part.
func (m AffineMap) SpectralRadius() float64 {
	l := m.Linear()
	tr, det := l.Trace(), l.Det()

	disc := tr*tr/4 - det
	if disc < 0 {
		// complex conjugate pair, |lambda|^2 == det
		return math.Sqrt(det)
	}

	root := math.Sqrt(disc)
	return math.Max(math.Abs(tr/2+root), math.Abs(tr/2-root))
}

func (m AffineMap) IsContraction() bool {
	return m.SpectralRadius() < 1
}

// IteratedFunctionSet holds the three shape maps followed by Wildcard.
type IteratedFunctionSet [4]AffineMap

func NewIteratedFunctionSet(shapes [3]AffineMap) IteratedFunctionSet {
	return IteratedFunctionSet{shapes[0], shapes[1], shapes[2], Wildcard}
}

// Slots is the size of the biased draw used to pick a map.
// Slots 0-2 select a shape map, the remaining slots all select Wildcard.
const Slots = 6

// WildcardIndex is the position of Wildcard in an IteratedFunctionSet.
const WildcardIndex = 3

func SelectMap(slot int) int {
	if slot < WildcardIndex {
		return slot
	}
	return WildcardIndex
}

// DefaultBaseline returns the shape maps the animation starts from.
// Each linear part is a rotation scaled by one half and each translation has
// length one quarter. With drift bounded by one quarter the unit disc maps
// into itself, so points never leave [-1,1]^2 once they have entered it.
func DefaultBaseline() [3]AffineMap {
	return [3]AffineMap{
		{
			A: 0.5, B: 0, C: 0,
			D: 0, E: 0.5, F: 0.25,
		},
		{
			A: 0.4330127018922193, B: -0.25, C: -0.21650635094610965,
			D: 0.25, E: 0.4330127018922193, F: -0.125,
		},
		{
			A: 0.4330127018922193, B: 0.25, C: 0.21650635094610965,
			D: -0.25, E: 0.4330127018922193, F: -0.125,
		},
	}
}
