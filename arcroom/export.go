package arcroom

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// objHeader is the comment line at the top of every exported OBJ file.
const objHeader = "# arc-room generated room model"

// fallbackBox is the canonical "default empty room": a unit-scale box
// with 8 vertices and 12 triangles, exported in place of a model with no
// geometry so export never produces an empty file.
func fallbackBox() ([]model3d.Coord3D, [][3]int) {
	vertices := []model3d.Coord3D{
		model3d.XYZ(-1, -1, -1),
		model3d.XYZ(1, -1, -1),
		model3d.XYZ(1, 1, -1),
		model3d.XYZ(-1, 1, -1),
		model3d.XYZ(-1, -1, 1),
		model3d.XYZ(1, -1, 1),
		model3d.XYZ(1, 1, 1),
		model3d.XYZ(-1, 1, 1),
	}
	faces := [][3]int{
		{0, 1, 2}, {0, 2, 3},
		{4, 7, 6}, {4, 6, 5},
		{0, 4, 5}, {0, 5, 1},
		{2, 6, 7}, {2, 7, 3},
		{0, 3, 7}, {0, 7, 4},
		{1, 5, 6}, {1, 6, 2},
	}
	return vertices, faces
}

// meshBuffers returns the model's vertex and face buffers, substituting
// the fallback box for empty models.
func meshBuffers(m *RoomModel) ([]model3d.Coord3D, [][3]int) {
	if m == nil || len(m.Walls) == 0 || len(m.Vertices) == 0 {
		return fallbackBox()
	}
	return m.Vertices, m.Faces
}

// WriteOBJ writes the room mesh in ASCII OBJ: one "v x y z" line per
// vertex with fixed 6-decimal precision and one "f i j k" line per
// triangle with 1-based indices. Consumers parse this exact layout, so
// it must not change.
func WriteOBJ(w io.Writer, m *RoomModel) error {
	vertices, faces := meshBuffers(m)
	buf := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(buf, objHeader); err != nil {
		return errors.Wrap(err, "write obj")
	}
	for _, v := range vertices {
		if _, err := fmt.Fprintf(buf, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z); err != nil {
			return errors.Wrap(err, "write obj")
		}
	}
	for _, f := range faces {
		if _, err := fmt.Fprintf(buf, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1); err != nil {
			return errors.Wrap(err, "write obj")
		}
	}
	return errors.Wrap(buf.Flush(), "write obj")
}

// EncodeOBJ returns the ASCII OBJ export as bytes.
func EncodeOBJ(m *RoomModel) []byte {
	var b bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = WriteOBJ(&b, m)
	return b.Bytes()
}

// WriteSTL writes the identical triangulation in the binary STL
// container. Only the serialization differs from WriteOBJ; the
// coordinate system and triangle order are the same.
func WriteSTL(w io.Writer, m *RoomModel) error {
	_, err := w.Write(EncodeSTL(m))
	return errors.Wrap(err, "write stl")
}

// EncodeSTL returns the binary STL export as bytes.
func EncodeSTL(m *RoomModel) []byte {
	vertices, faces := meshBuffers(m)
	triangles := make([]*model3d.Triangle, len(faces))
	for i, f := range faces {
		triangles[i] = &model3d.Triangle{
			vertices[f[0]], vertices[f[1]], vertices[f[2]],
		}
	}
	return model3d.EncodeSTL(triangles)
}

// DecodeOBJ parses the output of WriteOBJ back into vertex and face
// buffers. Lines other than "v" and "f" are ignored.
func DecodeOBJ(r io.Reader) ([]model3d.Coord3D, [][3]int, error) {
	var vertices []model3d.Coord3D
	var faces [][3]int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, errors.New("decode obj: short vertex line")
			}
			var coords [3]float64
			for i := range coords {
				x, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, nil, errors.Wrap(err, "decode obj")
				}
				coords[i] = x
			}
			vertices = append(vertices, model3d.XYZ(coords[0], coords[1], coords[2]))
		case "f":
			if len(fields) < 4 {
				return nil, nil, errors.New("decode obj: short face line")
			}
			var face [3]int
			for i := range face {
				n, err := strconv.Atoi(fields[i+1])
				if err != nil {
					return nil, nil, errors.Wrap(err, "decode obj")
				}
				if n < 1 || n > len(vertices) {
					return nil, nil, errors.New("decode obj: face index out of range")
				}
				face[i] = n - 1
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "decode obj")
	}
	return vertices, faces, nil
}
