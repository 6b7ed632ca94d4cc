package arcroom

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// EstimateDepth derives a depth proxy from a single frame using edge
// density: Sobel edge magnitude is blurred, min-max normalized, and
// inverted so that busier (nearer) structure reads as smaller depth.
//
// This is the fallback used when no learned depth model is available.
// The result has the same pixel dimensions as the frame and values in
// [0, 1]; callers needing distance units should Scale the result.
func EstimateDepth(img image.Image, blurRadius float64) *DepthMap {
	edges := effect.Sobel(imaging.Grayscale(img))
	smooth := image.Image(edges)
	if blurRadius > 0 {
		smooth = blur.Gaussian(edges, blurRadius)
	}

	bounds := smooth.Bounds()
	d := NewDepthMap(bounds.Dx(), bounds.Dy())
	minV, maxV := math.Inf(1), math.Inf(-1)
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			r, _, _, _ := smooth.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			v := float64(r) / 0xffff
			d.Set(x, y, v)
			minV = math.Min(minV, v)
			maxV = math.Max(maxV, v)
		}
	}

	span := maxV - minV + 1e-8
	for i, v := range d.Values {
		d.Values[i] = 1 - (v-minV)/span
	}
	return d
}
