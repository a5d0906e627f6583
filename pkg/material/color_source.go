package material

import (
	"fmt"
	"math"

	"github.com/cgj/go-simple-raytracer/pkg/core"
)

// ColorSource provides the base color of a surface at a point. Shading is
// shared by all surfaces; only the base-color lookup varies.
type ColorSource interface {
	BaseColorAt(p core.Point) core.Color
}

// UniformColor is a ColorSource with the same color everywhere
type UniformColor struct {
	Color core.Color
}

// BaseColorAt returns the uniform color regardless of the point
func (u UniformColor) BaseColorAt(p core.Point) core.Color {
	return u.Color
}

// CheckerColor is a ColorSource alternating two colors over a 3D lattice
type CheckerColor struct {
	Color      core.Color
	OtherColor core.Color
	CheckSize  float64
}

// NewCheckerColor creates a checkerboard color source, rejecting
// non-positive check sizes
func NewCheckerColor(color, otherColor core.Color, checkSize float64) (*CheckerColor, error) {
	if checkSize <= 0 {
		return nil, fmt.Errorf("checker size must be positive, got %g", checkSize)
	}
	return &CheckerColor{Color: color, OtherColor: otherColor, CheckSize: checkSize}, nil
}

// BaseColorAt returns one of the two colors based on the parity of the
// lattice cell containing the point, cells being CheckSize wide per axis
func (c *CheckerColor) BaseColorAt(p core.Point) core.Color {
	v := p.ToVector().Multiply(1 / c.CheckSize)
	parity := int(math.Abs(v.X)+0.5) + int(math.Abs(v.Y)+0.5) + int(math.Abs(v.Z)+0.5)
	if parity%2 == 1 {
		return c.OtherColor
	}
	return c.Color
}
