package material

import (
	"testing"

	"github.com/cgj/go-simple-raytracer/pkg/core"
)

func TestNewCheckerColor_Validation(t *testing.T) {
	if _, err := NewCheckerColor(core.White, core.Black, 0); err == nil {
		t.Error("Expected error for zero check size, got none")
	}
	if _, err := NewCheckerColor(core.White, core.Black, -2); err == nil {
		t.Error("Expected error for negative check size, got none")
	}
}

func TestCheckerColor_ParityAlternatesPerAxis(t *testing.T) {
	checker, err := NewCheckerColor(core.White, core.Black, 1)
	if err != nil {
		t.Fatal(err)
	}

	axes := []struct {
		name  string
		point func(i float64) core.Point
	}{
		{"x axis", func(i float64) core.Point { return core.NewPoint(i, 0, 0) }},
		{"y axis", func(i float64) core.Point { return core.NewPoint(0, i, 0) }},
		{"z axis", func(i float64) core.Point { return core.NewPoint(0, 0, i) }},
	}

	for _, axis := range axes {
		t.Run(axis.name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				got := checker.BaseColorAt(axis.point(float64(i)))
				want := core.White
				if i%2 == 1 {
					want = core.Black
				}
				if got != want {
					t.Errorf("Cell %d: expected %v, got %v", i, want, got)
				}
			}
		})
	}
}

func TestCheckerColor_CheckSizeScalesCells(t *testing.T) {
	checker, err := NewCheckerColor(core.White, core.Black, 2)
	if err != nil {
		t.Fatal(err)
	}

	// With 2-unit cells, parity flips every 2 units along an axis
	if got := checker.BaseColorAt(core.NewPoint(0.5, 0, 0)); got != core.White {
		t.Errorf("Expected base color inside first cell, got %v", got)
	}
	if got := checker.BaseColorAt(core.NewPoint(2.5, 0, 0)); got != core.Black {
		t.Errorf("Expected other color in second cell, got %v", got)
	}
}

func TestUniformColor(t *testing.T) {
	u := UniformColor{Color: core.NewColor(0.1, 0.9, 0.4)}
	if u.BaseColorAt(core.NewPoint(12, -7, 3)) != u.Color {
		t.Error("Uniform color must not depend on the point")
	}
}
