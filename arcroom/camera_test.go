package arcroom

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestBackProject(t *testing.T) {
	intr := DefaultIntrinsics()

	center := intr.BackProject(320, 240, 2.0)
	if center.Dist(model3d.Z(-2)) > 1e-9 {
		t.Fatalf("expected (0, 0, -2) but got %v", center)
	}

	// 100 pixels right of center: x = 100*2/500 = 0.4.
	right := intr.BackProject(420, 240, 2.0)
	if math.Abs(right.X-0.4) > 1e-9 || math.Abs(right.Y) > 1e-9 {
		t.Fatalf("unexpected projection: %v", right)
	}

	// 100 pixels below center maps to negative world Y.
	below := intr.BackProject(320, 340, 2.0)
	if math.Abs(below.Y+0.4) > 1e-9 {
		t.Fatalf("expected y=-0.4 but got %v", below.Y)
	}
}
