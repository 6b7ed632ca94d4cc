// Package config handles arc-room configuration loading.
package config

import "github.com/arcscan/arc-room/arcroom"

// Config holds all reconstruction settings.
type Config struct {
	Camera         CameraConfig         `yaml:"camera"`
	Reconstruction ReconstructionConfig `yaml:"reconstruction"`
	Export         ExportConfig         `yaml:"export"`
	Logging        LoggingConfig        `yaml:"logging"`
}

// CameraConfig holds the pinhole intrinsics of the capture device.
type CameraConfig struct {
	FocalX     float64 `yaml:"focal_x"`
	FocalY     float64 `yaml:"focal_y"`
	PrincipalX float64 `yaml:"principal_x"`
	PrincipalY float64 `yaml:"principal_y"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
}

// ReconstructionConfig holds the tunable stitching thresholds.
type ReconstructionConfig struct {
	MinWallConfidence   float64 `yaml:"min_wall_confidence"`
	CornerMergeDistance float64 `yaml:"corner_merge_distance"`

	// DepthScale converts normalized depth proxies into distance units.
	DepthScale float64 `yaml:"depth_scale"`
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
	Format    string `yaml:"format"` // "obj" or "stl"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the reference device intrinsics and the
// stock reconstruction thresholds.
func Default() *Config {
	intr := arcroom.DefaultIntrinsics()
	return &Config{
		Camera: CameraConfig{
			FocalX:     intr.FocalX,
			FocalY:     intr.FocalY,
			PrincipalX: intr.PrincipalX,
			PrincipalY: intr.PrincipalY,
			Width:      intr.ImageWidth,
			Height:     intr.ImageHeight,
		},
		Reconstruction: ReconstructionConfig{
			MinWallConfidence:   arcroom.MinWallConfidence,
			CornerMergeDistance: arcroom.CornerMergeDistance,
			DepthScale:          1.0,
		},
		Export: ExportConfig{
			OutputDir: "output",
			Format:    "obj",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Intrinsics converts the camera section into core intrinsics.
func (c *Config) Intrinsics() arcroom.CameraIntrinsics {
	return arcroom.CameraIntrinsics{
		FocalX:      c.Camera.FocalX,
		FocalY:      c.Camera.FocalY,
		PrincipalX:  c.Camera.PrincipalX,
		PrincipalY:  c.Camera.PrincipalY,
		ImageWidth:  c.Camera.Width,
		ImageHeight: c.Camera.Height,
	}
}
