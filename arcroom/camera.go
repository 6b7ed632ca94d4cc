package arcroom

import "github.com/unixpickle/model3d/model3d"

// CameraIntrinsics describes the pinhole model of the capture device.
// Values are fixed per device and never modified by the reconstruction
// pipeline; they come from configuration or DefaultIntrinsics.
type CameraIntrinsics struct {
	FocalX     float64
	FocalY     float64
	PrincipalX float64
	PrincipalY float64

	ImageWidth  int
	ImageHeight int
}

// DefaultIntrinsics returns the intrinsics of the reference 640x480
// capture device.
func DefaultIntrinsics() CameraIntrinsics {
	return CameraIntrinsics{
		FocalX:      500,
		FocalY:      500,
		PrincipalX:  320,
		PrincipalY:  240,
		ImageWidth:  640,
		ImageHeight: 480,
	}
}

// BackProject converts an image pixel and a depth sample into a
// camera-space point. Image Y grows downward while world Y grows upward,
// and the camera looks down the negative Z axis.
func (c CameraIntrinsics) BackProject(px, py, depth float64) model3d.Coord3D {
	return model3d.XYZ(
		(px-c.PrincipalX)*depth/c.FocalX,
		-(py-c.PrincipalY)*depth/c.FocalY,
		-depth,
	)
}
