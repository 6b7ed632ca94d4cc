package arcroom

import "math"

// ConnectionKind classifies the geometric relationship between two
// walls.
type ConnectionKind int

const (
	// ConnectionNone asserts no geometric relationship.
	ConnectionNone ConnectionKind = iota

	// ConnectionCorner means the walls meet near-perpendicularly and
	// likely share a room corner.
	ConnectionCorner

	// ConnectionParallel means the walls face the same or opposite
	// direction, likely opposing walls of the room.
	ConnectionParallel
)

func (c ConnectionKind) String() string {
	switch c {
	case ConnectionCorner:
		return "corner"
	case ConnectionParallel:
		return "parallel"
	default:
		return "none"
	}
}

// Angle bands for connection classification, in degrees. These are
// heuristics tuned for hand-held scans, not physical constants; the
// stitching behavior depends on the exact values.
const (
	CornerMinAngle      = 80.0
	CornerMaxAngle      = 100.0
	ParallelMaxAngle    = 10.0
	ParallelMinOpposite = 170.0
)

// A WallConnection is the classified relationship between two walls of a
// stitching session. Connections are derived fresh on every stitch and
// never cached, since any stitch operates on a new snapshot.
type WallConnection struct {
	WallA        int
	WallB        int
	Kind         ConnectionKind
	AngleDegrees float64
}

// Classify determines how two walls relate from the angle between their
// normals. The corner band [80, 100] is inclusive on both ends. The
// angle is symmetric in argument order.
func Classify(a, b *Wall) WallConnection {
	dot := clamp(a.Normal.Dot(b.Normal), -1.0, 1.0)
	angle := math.Acos(dot) * 180 / math.Pi

	kind := ConnectionNone
	switch {
	case angle >= CornerMinAngle && angle <= CornerMaxAngle:
		kind = ConnectionCorner
	case angle < ParallelMaxAngle || angle > ParallelMinOpposite:
		kind = ConnectionParallel
	}
	return WallConnection{Kind: kind, AngleDegrees: angle}
}

// Connections classifies every unordered pair of walls, filling in the
// pair indices. The result is O(n²) in the wall count, which stays small
// for real rooms.
func Connections(walls []*Wall) []WallConnection {
	var conns []WallConnection
	for i := 0; i < len(walls); i++ {
		for j := i + 1; j < len(walls); j++ {
			conn := Classify(walls[i], walls[j])
			conn.WallA, conn.WallB = i, j
			conns = append(conns, conn)
		}
	}
	return conns
}
