package core

// Ray represents a ray with an origin and a unit-length direction
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a new ray. The direction is normalized at construction so
// intersection times measure distance along the ray. A zero direction stays
// zero, per the Normalize contract.
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}
