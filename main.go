package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/cgj/go-simple-raytracer/pkg/canvas"
	"github.com/cgj/go-simple-raytracer/pkg/renderer"
	"github.com/cgj/go-simple-raytracer/pkg/scene"
)

// createScene builds a scene from a name or a JSON scene file path
func createScene(name string) (*scene.Scene, error) {
	switch {
	case name == "demo":
		return scene.NewDemoScene()
	case strings.HasSuffix(name, ".json"):
		cfg, err := scene.LoadConfig(name)
		if err != nil {
			return nil, err
		}
		return cfg.Build()
	default:
		return nil, fmt.Errorf("unknown scene %q (expected 'demo' or a .json scene file)", name)
	}
}

func main() {
	sceneName := flag.String("scene", "demo", "Scene: 'demo' or path to a .json scene file")
	width := flag.Int("width", 320, "Image width in pixels")
	height := flag.Int("height", 240, "Image height in pixels")
	out := flag.String("out", "raytrace", "Output file name without extension")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	depth := flag.Int("depth", renderer.DefaultMaxDepth, "Reflection recursion bound")
	tileSize := flag.Int("tile", 64, "Tile size in pixels")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Simple Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if *width < 2 || *height < 2 {
		fmt.Fprintf(os.Stderr, "Image must be at least 2x2 pixels, got %dx%d\n", *width, *height)
		os.Exit(1)
	}
	if *format != "ppm" && *format != "png" {
		fmt.Fprintf(os.Stderr, "Unknown format %q\n", *format)
		os.Exit(1)
	}
	if *depth < 0 || *tileSize < 1 {
		fmt.Fprintf(os.Stderr, "Invalid depth %d or tile size %d\n", *depth, *tileSize)
		os.Exit(1)
	}

	sc, err := createScene(*sceneName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	cv := canvas.NewCanvas(*width, *height)
	rt := renderer.NewRaytracer(sc, *width, *height)

	config := renderer.RenderConfig{
		TileSize:   *tileSize,
		NumWorkers: *workers,
		MaxDepth:   *depth,
	}

	fmt.Printf("Rendering %dx%d (%d objects, %d lights)...\n",
		*width, *height, len(sc.Objects), len(sc.Lights))

	startTime := time.Now()
	stats := rt.RenderParallel(cv, config)
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v (%d pixels, %d tiles)\n",
		renderTime, stats.TotalPixels, stats.TilesRendered)

	filename := *out + "." + *format
	switch *format {
	case "ppm":
		err = cv.SavePPM(filename)
	case "png":
		var f *os.File
		f, err = os.Create(filename)
		if err == nil {
			err = png.Encode(f, cv.Image())
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
