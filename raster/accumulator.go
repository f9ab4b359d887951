package raster

import (
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"

	"github.com/stewi1014/glflame/flame"
	"golang.org/x/image/draw"
)

const (
	DefaultPointSize = 2
	DefaultAlpha     = 0.1
)

var _ flame.Surface = (*Accumulator)(nil)

// Accumulator is a software flame.Surface. It stores premultiplied RGBA
// floats, row 0 at the top, and blends exactly as the GPU pipeline does:
// fades scale every channel by 1-amount and splats are drawn over the
// existing content.
type Accumulator struct {
	PointSize float32
	Alpha     float32

	size   int
	pix    []float32
	screen draw.Image
}

func New(size int) *Accumulator {
	return &Accumulator{
		PointSize: DefaultPointSize,
		Alpha:     DefaultAlpha,
		size:      size,
		pix:       make([]float32, size*size*4),
	}
}

// FromPixels wraps a bottom up RGBA float buffer as read back from a GL
// texture.
func FromPixels(size int, pix []float32) *Accumulator {
	a := New(size)
	stride := size * 4
	for y := 0; y < size; y++ {
		copy(a.pix[y*stride:(y+1)*stride], pix[(size-1-y)*stride:(size-y)*stride])
	}
	return a
}

// SetScreen sets the visible surface that Present composites onto.
func (a *Accumulator) SetScreen(screen draw.Image) {
	a.screen = screen
}

func (a *Accumulator) Screen() draw.Image {
	return a.screen
}

func (a *Accumulator) Size() int {
	return a.size
}

func (a *Accumulator) Fade(amount float32) {
	if amount == 0 {
		return
	}
	keep := 1 - amount

	rows := a.size
	workers := runtime.GOMAXPROCS(0)
	chunkSize := (rows + workers - 1) / workers
	stride := a.size * 4

	var wg sync.WaitGroup
	for chunkMin := 0; chunkMin < rows; chunkMin += chunkSize {
		chunkMax := chunkMin + chunkSize
		if chunkMax > rows {
			chunkMax = rows
		}

		wg.Add(1)
		go func(pix []float32) {
			defer wg.Done()
			for i := range pix {
				pix[i] *= keep
			}
		}(a.pix[chunkMin*stride : chunkMax*stride])
	}
	wg.Wait()
}

func (a *Accumulator) Splat(points []flame.Point, palette flame.Palette) {
	side := int(math.Round(float64(a.PointSize)))
	if side < 1 {
		side = 1
	}
	alpha := a.Alpha
	half := float32(a.size) / 2

	for _, p := range points {
		c := palette.Blend(p.Colour)
		r, g, b := c[0]*alpha, c[1]*alpha, c[2]*alpha

		cx := int(math.Floor(float64((p.X + 1) * half)))
		cy := int(math.Floor(float64((1 - p.Y) * half)))
		x0, y0 := cx-side/2, cy-side/2

		for y := max(y0, 0); y < min(y0+side, a.size); y++ {
			for x := max(x0, 0); x < min(x0+side, a.size); x++ {
				i := (y*a.size + x) * 4
				keep := 1 - alpha
				a.pix[i+0] = r + a.pix[i+0]*keep
				a.pix[i+1] = g + a.pix[i+1]*keep
				a.pix[i+2] = b + a.pix[i+2]*keep
				a.pix[i+3] = alpha + a.pix[i+3]*keep
			}
		}
	}
}

// Present clears the screen to white and draws the accumulated image over
// it. It does nothing without a screen.
func (a *Accumulator) Present() {
	if a.screen == nil {
		return
	}
	Composite(a.screen, a)
}

// Pixel returns the premultiplied RGBA at x, y.
func (a *Accumulator) Pixel(x, y int) [4]float32 {
	i := (y*a.size + x) * 4
	return [4]float32{a.pix[i], a.pix[i+1], a.pix[i+2], a.pix[i+3]}
}

func (a *Accumulator) ColorModel() color.Model {
	return color.RGBA64Model
}

func (a *Accumulator) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.size, a.size)
}

func (a *Accumulator) At(x, y int) color.Color {
	return a.RGBA64At(x, y)
}

func (a *Accumulator) RGBA64At(x, y int) color.RGBA64 {
	if !(image.Point{x, y}.In(a.Bounds())) {
		return color.RGBA64{}
	}

	p := a.Pixel(x, y)
	alpha := channel(p[3])
	return color.RGBA64{
		R: min(channel(p[0]), alpha),
		G: min(channel(p[1]), alpha),
		B: min(channel(p[2]), alpha),
		A: alpha,
	}
}

func channel(v float32) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint16(v*0xffff + 0.5)
}
