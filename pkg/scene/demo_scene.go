package scene

import (
	"github.com/cgj/go-simple-raytracer/pkg/core"
	"github.com/cgj/go-simple-raytracer/pkg/geometry"
	"github.com/cgj/go-simple-raytracer/pkg/material"
)

// NewDemoScene builds the classic demo scene: a large yellow sphere, a row
// of six small graded spheres above a checkerboard floor, lit by two lights.
func NewDemoScene() (*Scene, error) {
	s := NewScene()
	s.AddLight(core.NewPoint(30, 30, 10))
	s.AddLight(core.NewPoint(-10, 100, 30))
	s.LookAt(core.NewPoint(0, 3, 0))

	yellow, err := material.NewUniformSurface(core.NewColor(1, 1, 0), 0.2, 0.6)
	if err != nil {
		return nil, err
	}
	big, err := geometry.NewSphere(core.NewPoint(1, 3, -10), 2)
	if err != nil {
		return nil, err
	}
	s.AddObject(big, yellow)

	for i := 0; i < 6; i++ {
		y := float64(i)
		surface, err := material.NewUniformSurface(core.NewColor(y/6.0, 1-y/6.0, 0.5), 0.2, 0.6)
		if err != nil {
			return nil, err
		}
		small, err := geometry.NewSphere(core.NewPoint(-3-y*0.4, 2.3, -5), 0.4)
		if err != nil {
			return nil, err
		}
		s.AddObject(small, surface)
	}

	floor, err := geometry.NewHalfspace(core.NewPoint(0, 0, 0), core.WorldUp)
	if err != nil {
		return nil, err
	}
	checker, err := material.NewCheckerboardSurface(core.White, core.Black, 1, 0.2, 0.6)
	if err != nil {
		return nil, err
	}
	s.AddObject(floor, checker)

	return s, nil
}
