package geometry

import (
	"fmt"
	"math"

	"github.com/cgj/go-simple-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Point
	Radius float64
}

// NewSphere creates a new sphere, rejecting non-positive radii
func NewSphere(center core.Point, radius float64) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

// IntersectionTime returns the near intersection of the ray with the sphere.
// The far root is ignored: only front faces are shaded, so a ray starting
// inside the sphere reports a negative time and is filtered by the caller.
func (s *Sphere) IntersectionTime(ray core.Ray) (float64, bool) {
	cp := s.Center.Subtract(ray.Origin)
	v := cp.Dot(ray.Direction)
	discriminant := s.Radius*s.Radius - (cp.Dot(cp) - v*v)
	if discriminant < 0 {
		return 0, false
	}
	return v - math.Sqrt(discriminant), true
}

// NormalAt returns the outward normal at a point on the sphere
func (s *Sphere) NormalAt(p core.Point) core.Vector {
	return p.Subtract(s.Center).Normalize()
}
