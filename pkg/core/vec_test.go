package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vecEquals(a, b Vector, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestVector_Normalize_UnitLength(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
	}{
		{"axis aligned", NewVector(0, 0, 5)},
		{"small components", NewVector(1e-3, 2e-3, -3e-3)},
		{"large components", NewVector(300, -400, 1200)},
		{"already unit", NewVector(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length := tt.v.Normalize().Length()
			if math.Abs(length-1) > tolerance {
				t.Errorf("Expected unit length, got %g", length)
			}
		})
	}
}

func TestVector_Normalize_ZeroVector(t *testing.T) {
	// The documented degenerate-vector contract: zero stays zero
	n := NewVector(0, 0, 0).Normalize()
	if n != (Vector{}) {
		t.Errorf("Expected zero vector, got %v", n)
	}
}

func TestVector_Reflect_Involution(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector
		normal Vector
	}{
		{"axis normal", NewVector(1, -2, 3), NewVector(0, 1, 0)},
		{"diagonal normal", NewVector(2, 5, -1), NewVector(1, 1, 0).Normalize()},
		{"arbitrary normal", NewVector(-3, 0.5, 7), NewVector(0.3, -0.8, 1.1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			twice := tt.v.Reflect(tt.normal).Reflect(tt.normal)
			if !vecEquals(twice, tt.v, tolerance) {
				t.Errorf("Expected %v after double reflection, got %v", tt.v, twice)
			}
		})
	}
}

func TestVector_Reflect_HeadOn(t *testing.T) {
	// A vector along the normal reflects to its negation
	v := NewVector(0, 0, -1)
	reflected := v.Reflect(NewVector(0, 0, 1))
	if !vecEquals(reflected, NewVector(0, 0, 1), tolerance) {
		t.Errorf("Expected (0,0,1), got %v", reflected)
	}
}

func TestVector_CrossOrthogonality(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(-2, 0.5, 4)
	c := a.Cross(b)

	if math.Abs(c.Dot(a)) > tolerance || math.Abs(c.Dot(b)) > tolerance {
		t.Errorf("Cross product %v not orthogonal to operands", c)
	}
}

func TestPoint_VectorAlgebra(t *testing.T) {
	p := NewPoint(1, 2, 3)
	q := NewPoint(4, 6, 3)

	// point - point = vector
	v := q.Subtract(p)
	if v != NewVector(3, 4, 0) {
		t.Errorf("Expected (3,4,0), got %v", v)
	}

	// point + vector = point
	if p.Add(v) != q {
		t.Errorf("Expected %v, got %v", q, p.Add(v))
	}

	if math.Abs(p.DistanceTo(q)-5) > tolerance {
		t.Errorf("Expected distance 5, got %g", p.DistanceTo(q))
	}
}

func TestColor_AddScaled(t *testing.T) {
	c := NewColor(0.1, 0.2, 0.3).AddScaled(0.5, NewColor(0.4, 0.2, 1))
	want := NewColor(0.3, 0.3, 0.8)
	if math.Abs(c.R-want.R) > tolerance || math.Abs(c.G-want.G) > tolerance || math.Abs(c.B-want.B) > tolerance {
		t.Errorf("Expected %v, got %v", want, c)
	}
}
