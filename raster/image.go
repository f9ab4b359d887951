package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Fit returns the largest square centred in bounds.
func Fit(bounds image.Rectangle) image.Rectangle {
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}

	origin := bounds.Min.Add(image.Pt((bounds.Dx()-side)/2, (bounds.Dy()-side)/2))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(side, side))}
}

// Composite clears dst to opaque white and scales src over it, centred and
// square.
func Composite(dst draw.Image, src image.Image) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.ApproxBiLinear.Scale(dst, Fit(dst.Bounds()), src, src.Bounds(), draw.Over, nil)
}

// Snapshot composites src onto a new opaque width by height image.
func Snapshot(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	Composite(dst, src)
	return dst
}
