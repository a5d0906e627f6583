package material

import (
	"fmt"

	"github.com/cgj/go-simple-raytracer/pkg/core"
)

// SimpleSurface shades with a specular, a Lambertian and an ambient term.
// The three coefficients are non-negative and sum to 1; the ambient share is
// derived from the other two at construction. The base color comes from a
// ColorSource, so a uniform surface and a checkerboard surface share the
// same shading code.
type SimpleSurface struct {
	base     ColorSource
	specular float64
	lambert  float64
	ambient  float64
}

// NewSimpleSurface creates a surface from a color source and the specular
// and Lambert coefficients. It fails if either coefficient is negative or
// their sum exceeds 1.
func NewSimpleSurface(base ColorSource, specular, lambert float64) (*SimpleSurface, error) {
	if specular < 0 || lambert < 0 {
		return nil, fmt.Errorf("shading coefficients must be non-negative, got specular=%g lambert=%g", specular, lambert)
	}
	if specular+lambert > 1 {
		return nil, fmt.Errorf("specular+lambert must not exceed 1, got %g", specular+lambert)
	}
	return &SimpleSurface{
		base:     base,
		specular: specular,
		lambert:  lambert,
		ambient:  1 - specular - lambert,
	}, nil
}

// NewUniformSurface creates a solid-color surface
func NewUniformSurface(color core.Color, specular, lambert float64) (*SimpleSurface, error) {
	return NewSimpleSurface(UniformColor{Color: color}, specular, lambert)
}

// NewCheckerboardSurface creates a surface with a checkerboard base color
func NewCheckerboardSurface(color, otherColor core.Color, checkSize, specular, lambert float64) (*SimpleSurface, error) {
	checker, err := NewCheckerColor(color, otherColor, checkSize)
	if err != nil {
		return nil, err
	}
	return NewSimpleSurface(checker, specular, lambert)
}

// Ambient returns the derived ambient coefficient
func (s *SimpleSurface) Ambient() float64 {
	return s.ambient
}

// ColorAt evaluates the shading model at a hit point. The specular term
// traces a reflected ray back through the world at depth+1; the Lambert term
// sums cosine contributions over the visible lights, clamped to 1; the
// ambient term is a constant fraction of the base color.
func (s *SimpleSurface) ColorAt(world World, ray core.Ray, p core.Point, normal core.Vector, depth int) core.Color {
	base := s.base.BaseColorAt(p)
	c := core.Black

	if s.specular > 0 {
		reflected := core.NewRay(p, ray.Direction.Reflect(normal))
		c = c.AddScaled(s.specular, world.ColorAt(reflected, depth+1))
	}

	if s.lambert > 0 {
		amount := 0.0
		for _, light := range world.VisibleLights(p) {
			if contribution := light.Subtract(p).Normalize().Dot(normal); contribution > 0 {
				amount += contribution
			}
		}
		if amount > 1 {
			amount = 1
		}
		c = c.AddScaled(s.lambert*amount, base)
	}

	if s.ambient > 0 {
		c = c.AddScaled(s.ambient, base)
	}

	return c
}
