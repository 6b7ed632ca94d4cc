package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/arcscan/arc-room/arcroom"
	"github.com/arcscan/arc-room/internal/config"
	"github.com/arcscan/arc-room/internal/logger"
	"github.com/disintegration/imaging"
	"github.com/unixpickle/essentials"
	"go.uber.org/zap"
)

// scanBound mirrors the segmentation stage's JSON bound.
type scanBound struct {
	XMin int `json:"x_min"`
	YMin int `json:"y_min"`
	XMax int `json:"x_max"`
	YMax int `json:"y_max"`
}

// scanElement mirrors one detector hit in the manifest.
type scanElement struct {
	Class      string    `json:"class"`
	Bounds     scanBound `json:"bbox"`
	Confidence float64   `json:"confidence"`
	CenterX    float64   `json:"center_x"`
	CenterY    float64   `json:"center_y"`
}

// scanInput is one entry of the scans manifest: a segmentation result,
// an optional depth image, and detector hits for one captured frame.
type scanInput struct {
	Bounds     *scanBound    `json:"bounds"`
	Confidence float64       `json:"confidence"`
	DepthPath  string        `json:"depth"`
	Elements   []scanElement `json:"elements"`
}

func main() {
	var configPath string
	var outPath string
	var stlPath string
	flag.StringVar(&configPath, "config", "", "path to YAML config")
	flag.StringVar(&outPath, "out", "room.obj", "output OBJ path")
	flag.StringVar(&stlPath, "stl", "", "optional binary STL output path")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: scan_to_room [flags] <scans.json>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	essentials.Must(err)
	essentials.Must(logger.Init(cfg.Logging.Level, cfg.Logging.LogFile))
	defer logger.Sync()

	data, err := os.ReadFile(flag.Arg(0))
	essentials.Must(err)
	var scans []scanInput
	essentials.Must(json.Unmarshal(data, &scans))

	intrinsics := cfg.Intrinsics()
	stitcher := arcroom.NewRoomStitcher()
	stitcher.MinConfidence = cfg.Reconstruction.MinWallConfidence
	stitcher.MergeDistance = cfg.Reconstruction.CornerMergeDistance

	for i, scan := range scans {
		wall := buildWall(scan, cfg, intrinsics)
		if stitcher.Add(wall) {
			logger.Log.Info("accepted wall",
				zap.Int("scan", i),
				zap.String("id", wall.ID),
				zap.Float64("confidence", wall.Confidence))
		} else {
			logger.Log.Info("dropped low-confidence wall",
				zap.Int("scan", i),
				zap.Float64("confidence", wall.Confidence))
		}
	}

	model := stitcher.Stitch()
	logger.Log.Info("stitched room",
		zap.Int("walls", len(model.Walls)),
		zap.Int("vertices", len(model.Vertices)),
		zap.Int("faces", len(model.Faces)),
		zap.Float64("area", model.Bounds.Area),
		zap.Float64("volume", model.Bounds.Volume))

	writeFile(outPath, func(f *os.File) error { return arcroom.WriteOBJ(f, model) })
	logger.Log.Info("wrote obj", zap.String("path", outPath))
	if stlPath != "" {
		writeFile(stlPath, func(f *os.File) error { return arcroom.WriteSTL(f, model) })
		logger.Log.Info("wrote stl", zap.String("path", stlPath))
	}
}

func buildWall(scan scanInput, cfg *config.Config, intrinsics arcroom.CameraIntrinsics) *arcroom.Wall {
	var depth *arcroom.DepthMap
	if scan.DepthPath != "" {
		img, err := imaging.Open(scan.DepthPath)
		essentials.Must(err)
		depth = arcroom.DepthMapFromImage(img)
		if cfg.Reconstruction.DepthScale != 1 {
			depth = depth.Scale(cfg.Reconstruction.DepthScale)
		}
	}

	seg := arcroom.Segmentation{
		WallDetected: scan.Bounds != nil,
		Confidence:   scan.Confidence,
	}
	if scan.Bounds != nil {
		seg.Bounds = &arcroom.WallBound{
			XMin: scan.Bounds.XMin,
			YMin: scan.Bounds.YMin,
			XMax: scan.Bounds.XMax,
			YMax: scan.Bounds.YMax,
		}
	}

	wall := arcroom.WallFromSegmentation(seg, depth, intrinsics)
	elements := make([]arcroom.Element, len(scan.Elements))
	for i, e := range scan.Elements {
		elements[i] = arcroom.Element{
			Class: arcroom.ElementClass(e.Class),
			Bounds: arcroom.WallBound{
				XMin: e.Bounds.XMin,
				YMin: e.Bounds.YMin,
				XMax: e.Bounds.XMax,
				YMax: e.Bounds.YMax,
			},
			Confidence: e.Confidence,
			CenterX:    e.CenterX,
			CenterY:    e.CenterY,
		}
	}
	wall.AttachElements(elements)
	return wall
}

func writeFile(path string, write func(*os.File) error) {
	f, err := os.Create(path)
	essentials.Must(err)
	essentials.Must(write(f))
	essentials.Must(f.Close())
}
