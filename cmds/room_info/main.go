package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arcscan/arc-room/arcroom"
	"github.com/unixpickle/essentials"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: room_info <room.obj>")
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	essentials.Must(err)
	vertices, faces, err := arcroom.DecodeOBJ(f)
	f.Close()
	essentials.Must(err)

	fmt.Println("Vertices:", len(vertices))
	fmt.Println("Faces:", len(faces))
	if len(vertices) == 0 {
		return
	}

	min, max := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	size := max.Sub(min)
	fmt.Printf("Bounds min: (%.4f, %.4f, %.4f)\n", min.X, min.Y, min.Z)
	fmt.Printf("Bounds max: (%.4f, %.4f, %.4f)\n", max.X, max.Y, max.Z)
	fmt.Printf("Size: %.4f x %.4f x %.4f\n", size.X, size.Y, size.Z)
}
