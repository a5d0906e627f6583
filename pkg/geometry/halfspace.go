package geometry

import (
	"fmt"

	"github.com/cgj/go-simple-raytracer/pkg/core"
)

// Halfspace represents an infinite plane dividing space into two half-volumes
type Halfspace struct {
	Point  core.Point
	Normal core.Vector // unit length
}

// NewHalfspace creates a new halfspace. The normal is normalized at
// construction; a zero normal is rejected.
func NewHalfspace(point core.Point, normal core.Vector) (*Halfspace, error) {
	if normal.LengthSquared() == 0 {
		return nil, fmt.Errorf("halfspace normal must be non-zero")
	}
	return &Halfspace{Point: point, Normal: normal.Normalize()}, nil
}

// IntersectionTime returns the time at which the ray crosses the plane,
// computed as 1/−(d·n). A ray parallel to the plane has no intersection
// rather than an infinite time.
func (h *Halfspace) IntersectionTime(ray core.Ray) (float64, bool) {
	v := ray.Direction.Dot(h.Normal)
	if v == 0 {
		return 0, false
	}
	return 1 / -v, true
}

// NormalAt returns the plane normal, which is the same at every point
func (h *Halfspace) NormalAt(p core.Point) core.Vector {
	return h.Normal
}
