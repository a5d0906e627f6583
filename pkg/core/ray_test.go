package core

import (
	"math"
	"testing"
)

func TestNewRay_NormalizesDirection(t *testing.T) {
	tests := []struct {
		name      string
		direction Vector
	}{
		{"long direction", NewVector(3, 4, 0)},
		{"short direction", NewVector(0, 0, 0.001)},
		{"unit direction", NewVector(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(NewPoint(1, 2, 3), tt.direction)
			length := ray.Direction.Length()
			if math.Abs(length-1) > tolerance {
				t.Errorf("Expected unit direction, got length %g", length)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewPoint(1, 0, 0), NewVector(0, 0, -2))
	p := ray.At(3)
	want := NewPoint(1, 0, -3)
	if !vecEquals(p.ToVector(), want.ToVector(), tolerance) {
		t.Errorf("Expected %v, got %v", want, p)
	}
}
