package material

import "github.com/cgj/go-simple-raytracer/pkg/core"

// World is the view of the renderer that surfaces shade against. It lets a
// surface trace reflection rays and query shadow visibility without a
// dependency on the renderer package.
type World interface {
	// ColorAt evaluates the scene color along a ray at the given recursion
	// depth. Implementations return black once the depth bound is exceeded.
	ColorAt(ray core.Ray, depth int) core.Color

	// VisibleLights returns the scene lights visible from a point.
	VisibleLights(p core.Point) []core.Point
}

// Surface computes the color of a shape at a hit point
type Surface interface {
	ColorAt(world World, ray core.Ray, p core.Point, normal core.Vector, depth int) core.Color
}
