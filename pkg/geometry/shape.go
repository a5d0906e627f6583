package geometry

import "github.com/cgj/go-simple-raytracer/pkg/core"

// Shape is the interface for objects that can be hit by rays. Misses are
// reported through the boolean, never through a sentinel time value.
type Shape interface {
	// IntersectionTime returns the distance along the ray at which it meets
	// the shape, and whether an intersection exists at all.
	IntersectionTime(ray core.Ray) (float64, bool)

	// NormalAt returns the surface normal at a point on the shape.
	NormalAt(p core.Point) core.Vector
}
