package core

import "math"

// Vector represents a free 3D direction or displacement.
type Vector struct {
	X, Y, Z float64
}

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// Normalizing the zero vector returns the zero vector.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{0, 0, 0}
	}
	return Vector{v.X / length, v.Y / length, v.Z / length}
}

// Negate returns the negative of the vector
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Reflect returns the vector reflected through a unit normal
func (v Vector) Reflect(normal Vector) Vector {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// AddPoint returns the point displaced by this vector
func (v Vector) AddPoint(p Point) Point {
	return Point{v.X + p.X, v.Y + p.Y, v.Z + p.Z}
}

// Point represents a 3D location. It is kept distinct from Vector so that
// point−point yields a Vector and point+vector yields a Point; adding two
// points is not expressible.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Subtract returns the vector from other to p
func (p Point) Subtract(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Add returns the point displaced by a vector
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// ToVector returns the displacement of p from the origin
func (p Point) ToVector() Vector {
	return Vector{p.X, p.Y, p.Z}
}

// DistanceTo returns the distance between two points
func (p Point) DistanceTo(other Point) float64 {
	return p.Subtract(other).Length()
}

// WorldUp is the fixed up direction used to derive the camera basis.
var WorldUp = Vector{X: 0, Y: 1, Z: 0}
