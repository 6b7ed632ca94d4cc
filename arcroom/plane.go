package arcroom

import (
	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/mat"
)

// FitPlane fits a plane to a set of points by least squares, returning
// the unit normal and the plane's signed distance from the origin. Fewer
// than three points cannot determine a plane, so the +Z axis and zero
// distance are returned.
func FitPlane(points []model3d.Coord3D) (normal model3d.Coord3D, distance float64) {
	if len(points) < 3 {
		return model3d.Z(1), 0
	}

	var centroid model3d.Coord3D
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(points)))

	centered := mat.NewDense(len(points), 3, nil)
	for i, p := range points {
		c := p.Sub(centroid)
		centered.SetRow(i, []float64{c.X, c.Y, c.Z})
	}

	// The right singular vector with the smallest singular value is the
	// direction of least variance, i.e. the plane normal.
	var svd mat.SVD
	if !svd.Factorize(centered, mat.SVDThinV) {
		return model3d.Z(1), 0
	}
	var v mat.Dense
	svd.VTo(&v)
	normal = model3d.XYZ(v.At(0, 2), v.At(1, 2), v.At(2, 2))
	if normal.Norm() < 1e-12 {
		return model3d.Z(1), 0
	}
	normal = normal.Normalize()
	return normal, normal.Dot(centroid)
}
