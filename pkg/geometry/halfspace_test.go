package geometry

import (
	"math"
	"testing"

	"github.com/cgj/go-simple-raytracer/pkg/core"
)

func TestNewHalfspace_Validation(t *testing.T) {
	if _, err := NewHalfspace(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 0)); err == nil {
		t.Error("Expected error for zero normal, got none")
	}

	h, err := NewHalfspace(core.NewPoint(0, 0, 0), core.NewVector(0, 5, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(h.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected normalized normal, got length %g", h.Normal.Length())
	}
}

func TestHalfspace_IntersectionTime(t *testing.T) {
	h, err := NewHalfspace(core.NewPoint(0, 0, 0), core.WorldUp)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		direction core.Vector
		wantT     float64
		wantHit   bool
	}{
		{"descending ray", core.NewVector(0, -1, 0), 1, true},
		{"ascending ray", core.NewVector(0, 1, 0), -1, true},
		{"parallel ray", core.NewVector(1, 0, 0), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewPoint(0, 1, 0), tt.direction)
			gotT, ok := h.IntersectionTime(ray)

			if ok != tt.wantHit {
				t.Fatalf("Expected hit=%t, got hit=%t", tt.wantHit, ok)
			}
			if ok && math.Abs(gotT-tt.wantT) > 1e-9 {
				t.Errorf("Expected t=%g, got t=%g", tt.wantT, gotT)
			}
		})
	}
}

func TestHalfspace_NormalAt_Constant(t *testing.T) {
	h, err := NewHalfspace(core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0))
	if err != nil {
		t.Fatal(err)
	}

	points := []core.Point{
		core.NewPoint(0, 0, 0),
		core.NewPoint(100, 0, -50),
		core.NewPoint(-3, 7, 2),
	}
	for _, p := range points {
		if h.NormalAt(p) != h.Normal {
			t.Errorf("Expected constant normal %v at %v, got %v", h.Normal, p, h.NormalAt(p))
		}
	}
}
