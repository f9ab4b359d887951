package flame

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Hue offsets of the three anchors, in turns. The third offset wraps onto
// the first.
const (
	hueOffset0 = 5.0 / 12
	hueOffset1 = 0.0
	hueOffset2 = 17.0 / 12
)

// Palette holds the anchor colours for colour indices 0, 1 and 2.
type Palette [3]mgl32.Vec3

// ColourCycle rotates the anchor hues with time.
type ColourCycle struct {
	rate   float64 // turns per millisecond
	offset float64 // milliseconds
}

// NewColourCycle picks a random starting hue from rng. The cycle is
// reproducible only as far as rng is.
func NewColourCycle(rate float64, rng Source) *ColourCycle {
	c := &ColourCycle{rate: rate}
	if rate != 0 {
		c.offset = rng.Float64() / math.Abs(rate)
	}
	return c
}

// Period is the time for one full turn of the hue wheel, in milliseconds.
func (c *ColourCycle) Period() float64 {
	return 1 / math.Abs(c.rate)
}

func (c *ColourCycle) Hue(elapsedMs float64) float64 {
	return wrap((c.offset + elapsedMs) * c.rate)
}

func (c *ColourCycle) ColoursAt(elapsedMs float64) Palette {
	h := c.Hue(elapsedMs)
	return Palette{
		hueToRGB(wrap(h + hueOffset0)),
		hueToRGB(wrap(h + hueOffset1)),
		hueToRGB(wrap(h + hueOffset2)),
	}
}

// Blend interpolates between the anchors for a colour index in [0, 2].
func (p Palette) Blend(colour float32) mgl32.Vec3 {
	c0, c1, c2 := BlendWeights(colour)
	return p[0].Mul(c0).Add(p[1].Mul(c1)).Add(p[2].Mul(c2))
}

// BlendWeights are the triangular weights of the three anchors. They sum to
// one for v in [0, 2].
func BlendWeights(v float32) (c0, c1, c2 float32) {
	c0 = max(1-v, 0)
	c1 = 1 - float32(math.Abs(float64(1-v)))
	c2 = max(v-1, 0)
	return
}

func hueToRGB(h float64) mgl32.Vec3 {
	c := colorful.Hsv(h*360, 1, 1)
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}

// wrap reduces x to [0, 1).
func wrap(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 {
		return 0
	}
	return x
}
