package arcroom

import (
	"fmt"
	"sync/atomic"

	"github.com/unixpickle/model3d/model3d"
)

// DefaultConfidence is assigned to walls built without a segmentation
// confidence.
const DefaultConfidence = 0.5

// A WallBound is an axis-aligned rectangle in frame pixel coordinates,
// produced by the segmentation stage.
type WallBound struct {
	XMin int
	YMin int
	XMax int
	YMax int
}

// Clamp restricts the bound to the valid pixel range of a width x height
// frame.
func (b WallBound) Clamp(width, height int) WallBound {
	return WallBound{
		XMin: clamp(b.XMin, 0, width-1),
		YMin: clamp(b.YMin, 0, height-1),
		XMax: clamp(b.XMax, 0, width-1),
		YMax: clamp(b.YMax, 0, height-1),
	}
}

// A Wall is a single planar quadrilateral reconstructed from one scan.
//
// Vertices are ordered top-left, top-right, bottom-right, bottom-left.
// Every downstream consumer relies on that ordering, and on the vertex
// count always being 4 for well-formed walls.
type Wall struct {
	ID         string
	Vertices   []model3d.Coord3D
	Normal     model3d.Coord3D
	Bounds     WallBound
	Elements   []Element
	Confidence float64
}

var wallCounter int64

func nextWallID() string {
	return fmt.Sprintf("wall_%04d", atomic.AddInt64(&wallCounter, 1))
}

// BuildWall back-projects a 2D wall bound into a camera-space
// quadrilateral, sampling depth at the four corners of the bound. A nil
// depth map substitutes DefaultDepth. A zero-area bound still yields a
// valid degenerate wall rather than an error; the pipeline degrades on
// malformed input instead of failing.
func BuildWall(bound WallBound, depth *DepthMap, intrinsics CameraIntrinsics) *Wall {
	b := bound.Clamp(intrinsics.ImageWidth, intrinsics.ImageHeight)

	// Corner order is the vertex-order invariant: TL, TR, BR, BL.
	corners := [4][2]int{
		{b.XMin, b.YMin},
		{b.XMax, b.YMin},
		{b.XMax, b.YMax},
		{b.XMin, b.YMax},
	}
	vertices := make([]model3d.Coord3D, 4)
	for i, c := range corners {
		d := depth.Sample(c[0], c[1], intrinsics.ImageWidth, intrinsics.ImageHeight)
		vertices[i] = intrinsics.BackProject(float64(c[0]), float64(c[1]), d)
	}

	return &Wall{
		ID:         nextWallID(),
		Vertices:   vertices,
		Normal:     quadNormal(vertices),
		Bounds:     b,
		Elements:   []Element{},
		Confidence: DefaultConfidence,
	}
}

// quadNormal computes the outward unit normal of a TL,TR,BR,BL vertex
// loop. Degenerate (collinear or zero-area) quads fall back to +Z.
func quadNormal(v []model3d.Coord3D) model3d.Coord3D {
	n := v[1].Sub(v[0]).Cross(v[3].Sub(v[0]))
	if n.Norm() < 1e-8 {
		return model3d.Z(1)
	}
	return n.Normalize()
}

// A Segmentation is what the external wall segmenter reports for one
// frame.
type Segmentation struct {
	WallDetected bool
	Confidence   float64
	Bounds       *WallBound
}

// WallFromSegmentation builds a wall from a segmentation result,
// inheriting the reported confidence. When no wall was detected it
// returns a degenerate unit quad with zero confidence, which the
// stitcher's acceptance threshold then drops.
func WallFromSegmentation(seg Segmentation, depth *DepthMap, intrinsics CameraIntrinsics) *Wall {
	if !seg.WallDetected || seg.Bounds == nil {
		return &Wall{
			ID: nextWallID(),
			Vertices: []model3d.Coord3D{
				model3d.Origin,
				model3d.X(1),
				model3d.XY(1, 1),
				model3d.Y(1),
			},
			Normal:   model3d.Z(1),
			Elements: []Element{},
		}
	}
	w := BuildWall(*seg.Bounds, depth, intrinsics)
	w.Confidence = seg.Confidence
	return w
}

// AttachElements records detector output on the wall.
func (w *Wall) AttachElements(elements []Element) {
	w.Elements = append(w.Elements, elements...)
}

// WallDimensions are the measured extents of a wall quad.
type WallDimensions struct {
	Width  float64
	Height float64
	Area   float64
}

// Dimensions measures the wall: width along the top edge, height along
// the left edge. Walls without a full vertex loop measure zero.
func (w *Wall) Dimensions() WallDimensions {
	if len(w.Vertices) < 4 {
		return WallDimensions{}
	}
	width := w.Vertices[1].Dist(w.Vertices[0])
	height := w.Vertices[3].Dist(w.Vertices[0])
	return WallDimensions{Width: width, Height: height, Area: width * height}
}

// clone deep-copies the wall so corner alignment inside the stitcher
// never mutates caller-visible walls.
func (w *Wall) clone() *Wall {
	c := *w
	c.Vertices = append([]model3d.Coord3D{}, w.Vertices...)
	c.Elements = append([]Element{}, w.Elements...)
	return &c
}
