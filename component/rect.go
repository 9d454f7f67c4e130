package component

import (
	"image"
	"math"
)

// Rect is a sub-region of an image in normalized [0,1] coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

// FullRect covers the whole image.
var FullRect = Rect{X: 0, Y: 0, W: 1, H: 1}

// Pixels maps r onto bounds and clips the result to bounds. Regions that run
// past the image edge are cut short rather than wrapped.
func (r Rect) Pixels(bounds image.Rectangle) image.Rectangle {
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	x0 := bounds.Min.X + int(math.Round(r.X*w))
	y0 := bounds.Min.Y + int(math.Round(r.Y*h))
	x1 := bounds.Min.X + int(math.Round((r.X+r.W)*w))
	y1 := bounds.Min.Y + int(math.Round((r.Y+r.H)*h))
	return image.Rect(x0, y0, x1, y1).Intersect(bounds)
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
