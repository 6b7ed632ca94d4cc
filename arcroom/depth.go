package arcroom

import "image"

// DefaultDepth is substituted when no depth map is available for a scan.
const DefaultDepth = 2.0

// A DepthMap is a per-pixel scalar depth proxy for a single frame.
// Values are in a device-defined unit, not metric without calibration.
// The grid is read-only once built.
type DepthMap struct {
	Width  int
	Height int

	// Values is row-major with Width*Height entries.
	Values []float64
}

// NewDepthMap allocates a zero-filled depth grid.
func NewDepthMap(width, height int) *DepthMap {
	return &DepthMap{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
}

// DepthMapFromImage builds a depth map from an image, mapping luminance
// to [0, 1] with ITU-R BT.601 weights.
func DepthMapFromImage(img image.Image) *DepthMap {
	bounds := img.Bounds()
	d := NewDepthMap(bounds.Dx(), bounds.Dy())
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
			d.Values[y*d.Width+x] = lum / 0xffff
		}
	}
	return d
}

// At reads the sample at a grid coordinate, clamping out-of-range
// coordinates to the nearest edge.
func (d *DepthMap) At(x, y int) float64 {
	if d == nil || d.Width <= 0 || d.Height <= 0 {
		return DefaultDepth
	}
	x = clamp(x, 0, d.Width-1)
	y = clamp(y, 0, d.Height-1)
	return d.Values[y*d.Width+x]
}

// Set writes the sample at a grid coordinate.
func (d *DepthMap) Set(x, y int, v float64) {
	d.Values[y*d.Width+x] = v
}

// Sample reads the depth under a frame pixel. When the depth grid has a
// different resolution than the frame, the coordinate is resampled
// proportionally; indexing never goes out of range. A nil or empty map
// yields DefaultDepth.
func (d *DepthMap) Sample(px, py, frameWidth, frameHeight int) float64 {
	if d == nil || len(d.Values) == 0 || d.Width <= 0 || d.Height <= 0 {
		return DefaultDepth
	}
	x, y := px, py
	if frameWidth > 0 && frameWidth != d.Width {
		x = px * d.Width / frameWidth
	}
	if frameHeight > 0 && frameHeight != d.Height {
		y = py * d.Height / frameHeight
	}
	return d.At(x, y)
}

// Scale returns a copy with every sample multiplied by factor. Depth
// proxies are normalized to [0, 1]; scaling converts them into distance
// units.
func (d *DepthMap) Scale(factor float64) *DepthMap {
	if d == nil {
		return nil
	}
	out := NewDepthMap(d.Width, d.Height)
	for i, v := range d.Values {
		out.Values[i] = v * factor
	}
	return out
}
