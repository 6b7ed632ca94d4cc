package arcroom

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestEncodeOBJEmptyModel(t *testing.T) {
	data := EncodeOBJ(&RoomModel{})
	vertices, faces, err := DecodeOBJ(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(vertices) != 8 {
		t.Fatalf("expected 8 fallback vertices but got %d", len(vertices))
	}
	if len(faces) != 12 {
		t.Fatalf("expected 12 fallback faces but got %d", len(faces))
	}
}

func TestOBJRoundTrip(t *testing.T) {
	depth := constantDepth(640, 480, 2.0)
	intr := DefaultIntrinsics()
	model := Stitch([]*Wall{
		BuildWall(WallBound{XMin: 13, YMin: 27, XMax: 301, YMax: 404}, depth, intr),
		BuildWall(WallBound{XMin: 320, YMin: 11, XMax: 601, YMax: 442}, depth, intr),
	})

	vertices, faces, err := DecodeOBJ(bytes.NewReader(EncodeOBJ(model)))
	if err != nil {
		t.Fatal(err)
	}
	if len(vertices) != len(model.Vertices) {
		t.Fatalf("expected %d vertices but got %d", len(model.Vertices), len(vertices))
	}
	if len(faces) != len(model.Faces) {
		t.Fatalf("expected %d faces but got %d", len(model.Faces), len(faces))
	}
	for i, v := range model.Vertices {
		if v.Dist(vertices[i]) > 1e-6 {
			t.Fatalf("vertex %d: expected %v but got %v", i, v, vertices[i])
		}
	}
	for i, f := range model.Faces {
		if faces[i] != f {
			t.Fatalf("face %d: expected %v but got %v", i, f, faces[i])
		}
	}
}

func TestOBJFixedPrecision(t *testing.T) {
	data := string(EncodeOBJ(&RoomModel{}))
	for _, line := range strings.Split(data, "\n") {
		if !strings.HasPrefix(line, "v ") {
			continue
		}
		for _, field := range strings.Fields(line)[1:] {
			dot := strings.IndexByte(field, '.')
			if dot == -1 || len(field)-dot-1 != 6 {
				t.Fatalf("vertex coordinate %q is not 6-decimal", field)
			}
		}
	}
}

func TestEncodeSTLFallbackSize(t *testing.T) {
	data := EncodeSTL(&RoomModel{})
	if len(data) != 84+50*12 {
		t.Fatalf("expected %d bytes but got %d", 84+50*12, len(data))
	}
}

func TestEncodeSTLMatchesTriangulation(t *testing.T) {
	model := Stitch([]*Wall{
		BuildWall(WallBound{XMin: 50, YMin: 50, XMax: 400, YMax: 300}, constantDepth(640, 480, 2.0), DefaultIntrinsics()),
	})
	data := EncodeSTL(model)
	if len(data) != 84+50*len(model.Faces) {
		t.Fatalf("expected %d bytes but got %d", 84+50*len(model.Faces), len(data))
	}
}

func TestDecodeOBJBadFaceIndex(t *testing.T) {
	_, _, err := DecodeOBJ(strings.NewReader("v 0 0 0\nf 1 2 3\n"))
	if err == nil {
		t.Fatal("expected an error for out-of-range face index")
	}
}

func TestDecodeOBJIgnoresComments(t *testing.T) {
	input := "# header\nv 1.5 -2.25 0.125\n\nf 1 1 1\n"
	vertices, faces, err := DecodeOBJ(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(vertices) != 1 || len(faces) != 1 {
		t.Fatalf("unexpected counts: %d vertices, %d faces", len(vertices), len(faces))
	}
	if math.Abs(vertices[0].Y+2.25) > 1e-9 {
		t.Fatalf("unexpected vertex %v", vertices[0])
	}
}

func TestRoomModelMesh(t *testing.T) {
	model := Stitch([]*Wall{
		BuildWall(WallBound{XMin: 50, YMin: 50, XMax: 400, YMax: 300}, constantDepth(640, 480, 2.0), DefaultIntrinsics()),
	})
	if n := model.Mesh().NumTriangles(); n != len(model.Faces) {
		t.Fatalf("expected %d triangles but got %d", len(model.Faces), n)
	}
}
