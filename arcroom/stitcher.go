package arcroom

import (
	"math"
	"sync"

	"github.com/unixpickle/model3d/model3d"
)

const (
	// MinWallConfidence is the acceptance threshold for scanned walls.
	// Lower-confidence scans are noise and are silently dropped.
	MinWallConfidence = 0.3

	// CornerMergeDistance bounds how far apart the closest vertices of
	// two corner-connected walls may be and still be snapped together.
	CornerMergeDistance = 0.1

	// MinRoomDimension floors every room bound so a room is never
	// degenerate.
	MinRoomDimension = 1.0
)

// RoomBounds is the axis-aligned extent of a stitched room.
type RoomBounds struct {
	Width  float64
	Height float64
	Depth  float64
	Area   float64
	Volume float64
}

// A RoomModel is the aggregated mesh and bounds of all stitched walls.
// The vertex and face buffers are flat: four vertices and two triangles
// per wall, in wall order. A RoomModel is rebuilt from scratch on every
// stitch, never updated incrementally.
type RoomModel struct {
	Walls    []*Wall
	Vertices []model3d.Coord3D
	Faces    [][3]int
	Bounds   RoomBounds
}

// Mesh converts the room into a model3d triangle mesh.
func (m *RoomModel) Mesh() *model3d.Mesh {
	triangles := make([]*model3d.Triangle, 0, len(m.Faces))
	for _, f := range m.Faces {
		triangles = append(triangles, &model3d.Triangle{
			m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]],
		})
	}
	return model3d.NewMeshTriangles(triangles)
}

// A RoomStitcher accumulates the wall scans of one session and assembles
// them into a RoomModel. Add and Stitch are safe for concurrent use; the
// session collection is append-only and Stitch works on a snapshot.
type RoomStitcher struct {
	// MinConfidence and MergeDistance are tunable per session. They
	// default to MinWallConfidence and CornerMergeDistance.
	MinConfidence float64
	MergeDistance float64

	mu    sync.Mutex
	walls []*Wall
}

// NewRoomStitcher creates an empty session with default thresholds.
func NewRoomStitcher() *RoomStitcher {
	return &RoomStitcher{
		MinConfidence: MinWallConfidence,
		MergeDistance: CornerMergeDistance,
	}
}

// Add appends a wall to the session if its confidence clears the
// acceptance threshold, and reports whether it was accepted.
// Low-confidence walls are dropped silently; that is a noise filter, not
// an error.
func (s *RoomStitcher) Add(w *Wall) bool {
	if w == nil || w.Confidence <= s.MinConfidence {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walls = append(s.walls, w.clone())
	return true
}

// WallCount reports how many walls the session has accepted.
func (s *RoomStitcher) WallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.walls)
}

// Walls returns a snapshot of the session's walls in scan order. The
// returned walls are copies; mutating them does not affect the session.
func (s *RoomStitcher) Walls() []*Wall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Wall, len(s.walls))
	for i, w := range s.walls {
		out[i] = w.clone()
	}
	return out
}

// Stitch assembles the current session snapshot into a RoomModel.
func (s *RoomStitcher) Stitch() *RoomModel {
	return stitch(s.Walls(), s.MergeDistance)
}

// Stitch merges wall scans into a single room model using the default
// corner-merge threshold. The input walls are never modified: alignment
// happens on stitcher-owned copies and the model references those.
func Stitch(walls []*Wall) *RoomModel {
	return stitch(walls, CornerMergeDistance)
}

func stitch(walls []*Wall, mergeDistance float64) *RoomModel {
	if len(walls) == 0 {
		return &RoomModel{}
	}

	arena := make([]*Wall, len(walls))
	for i, w := range walls {
		arena[i] = w.clone()
	}

	// Snap adjoining edges of corner-connected walls so the mesh has no
	// seam at true corners. Pairs whose closest vertices are farther
	// than the threshold stay untouched.
	for _, conn := range Connections(arena) {
		if conn.Kind == ConnectionCorner {
			alignCorner(arena[conn.WallA], arena[conn.WallB], mergeDistance)
		}
	}

	model := &RoomModel{}
	for _, w := range arena {
		if len(w.Vertices) != 4 {
			// Malformed scan; skip it rather than abort the stitch.
			continue
		}
		base := len(model.Vertices)
		model.Vertices = append(model.Vertices, w.Vertices...)
		model.Faces = append(model.Faces,
			[3]int{base, base + 1, base + 2},
			[3]int{base, base + 2, base + 3},
		)
		model.Walls = append(model.Walls, w)
	}
	model.Bounds = roomBounds(model.Vertices)
	return model
}

// alignCorner snaps the closest pair of vertices between two
// corner-connected walls to their shared midpoint, if they are within
// mergeDistance of each other.
func alignCorner(a, b *Wall, mergeDistance float64) {
	if len(a.Vertices) == 0 || len(b.Vertices) == 0 {
		return
	}
	bestI, bestJ := 0, 0
	bestDist := math.Inf(1)
	for i, va := range a.Vertices {
		for j, vb := range b.Vertices {
			if d := va.Dist(vb); d < bestDist {
				bestDist, bestI, bestJ = d, i, j
			}
		}
	}
	if bestDist >= mergeDistance {
		return
	}
	mid := a.Vertices[bestI].Mid(b.Vertices[bestJ])
	a.Vertices[bestI] = mid
	b.Vertices[bestJ] = mid
}

func roomBounds(vertices []model3d.Coord3D) RoomBounds {
	if len(vertices) == 0 {
		return RoomBounds{}
	}
	min, max := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	width := math.Max(max.X-min.X, MinRoomDimension)
	height := math.Max(max.Y-min.Y, MinRoomDimension)
	depth := math.Max(math.Abs(max.Z-min.Z), MinRoomDimension)
	return RoomBounds{
		Width:  width,
		Height: height,
		Depth:  depth,
		Area:   width * depth,
		Volume: width * height * depth,
	}
}

// RoomStats summarizes a stitching session.
type RoomStats struct {
	WallCount     int
	TotalArea     float64
	AvgConfidence float64

	// RoomComplete is set once at least two walls were scanned.
	RoomComplete bool
}

// Stats reports aggregate statistics for the walls scanned so far.
func (s *RoomStitcher) Stats() RoomStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := RoomStats{WallCount: len(s.walls)}
	if len(s.walls) == 0 {
		return stats
	}
	for _, w := range s.walls {
		stats.TotalArea += w.Dimensions().Area
		stats.AvgConfidence += w.Confidence
	}
	stats.AvgConfidence /= float64(len(s.walls))
	stats.RoomComplete = len(s.walls) >= 2
	return stats
}
