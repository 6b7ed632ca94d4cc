package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/arcscan/arc-room/arcroom"
	"github.com/disintegration/imaging"
	"github.com/unixpickle/essentials"
)

func main() {
	var blurRadius float64
	flag.Float64Var(&blurRadius, "blur", 7.0, "gaussian blur radius for smoothing the edge map")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: depth_proxy [flags] <frame.png> <depth.png>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}

	frame, err := imaging.Open(flag.Arg(0))
	essentials.Must(err)

	depth := arcroom.EstimateDepth(frame, blurRadius)

	out := image.NewGray(image.Rect(0, 0, depth.Width, depth.Height))
	for y := 0; y < depth.Height; y++ {
		for x := 0; x < depth.Width; x++ {
			out.SetGray(x, y, color.Gray{Y: uint8(depth.At(x, y)*255 + 0.5)})
		}
	}
	essentials.Must(imaging.Save(out, flag.Arg(1)))
}
