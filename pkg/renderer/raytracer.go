package renderer

import (
	"image"

	"github.com/cgj/go-simple-raytracer/pkg/canvas"
	"github.com/cgj/go-simple-raytracer/pkg/core"
	"github.com/cgj/go-simple-raytracer/pkg/scene"
)

// DefaultMaxDepth bounds reflection recursion
const DefaultMaxDepth = 3

// Raytracer renders a scene by recursive ray tracing. It holds only
// read-only data once constructed, so a single instance can serve every
// worker concurrently.
type Raytracer struct {
	scene    *scene.Scene
	camera   *Camera
	width    int
	height   int
	maxDepth int
}

// NewRaytracer creates a raytracer for the given scene and image size
func NewRaytracer(sc *scene.Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:    sc,
		camera:   NewCamera(sc.Camera, width, height),
		width:    width,
		height:   height,
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth sets the reflection recursion bound
func (rt *Raytracer) SetMaxDepth(depth int) {
	rt.maxDepth = depth
}

// ColorAt evaluates the scene color along a ray. The recursion depth is
// threaded explicitly: surfaces trace their reflection rays back through
// this method at depth+1, and any depth beyond the bound yields black. No
// state is shared between recursion chains, so concurrent and nested
// evaluations cannot interfere.
//
// ColorAt also makes Raytracer implement material.World.
func (rt *Raytracer) ColorAt(ray core.Ray, depth int) core.Color {
	if depth > rt.maxDepth {
		return core.Black
	}
	hit, ok := rt.scene.Hit(ray)
	if !ok {
		return core.Black // the background color
	}
	p := ray.At(hit.T)
	return hit.Surface.ColorAt(rt, ray, p, hit.Shape.NormalAt(p), depth)
}

// VisibleLights returns the scene lights visible from a point
func (rt *Raytracer) VisibleLights(p core.Point) []core.Point {
	return rt.scene.VisibleLights(p)
}

// RenderBounds renders the pixels within bounds into the canvas. Callers
// running concurrently must use disjoint bounds.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, cv *canvas.Canvas) RenderStats {
	var stats RenderStats
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cv.Set(x, y, rt.ColorAt(rt.camera.Ray(x, y), 0))
			stats.TotalPixels++
		}
	}
	return stats
}

// Render renders the full image on the calling goroutine
func (rt *Raytracer) Render(cv *canvas.Canvas) RenderStats {
	stats := rt.RenderBounds(image.Rect(0, 0, rt.width, rt.height), cv)
	stats.TilesRendered = 1
	return stats
}
