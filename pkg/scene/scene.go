package scene

import (
	"github.com/cgj/go-simple-raytracer/pkg/core"
	"github.com/cgj/go-simple-raytracer/pkg/geometry"
	"github.com/cgj/go-simple-raytracer/pkg/material"
)

// Epsilon is the tolerance used when filtering intersection times, so a ray
// leaving a surface does not immediately re-intersect it.
const Epsilon = 1e-5

// Object pairs a shape with the surface that shades it
type Object struct {
	Shape   geometry.Shape
	Surface material.Surface
}

// Intersection records the nearest hit of a ray against the scene
type Intersection struct {
	Shape   geometry.Shape
	T       float64
	Surface material.Surface
}

// CameraConfig holds the camera state the renderer derives its basis from
type CameraConfig struct {
	Position    core.Point
	LookAt      core.Point
	FieldOfView float64 // degrees
}

// Scene contains all the elements needed for rendering: an ordered list of
// objects, the point lights, and the camera. It is built once before
// rendering and read-only afterwards, so tiles can share it without locking.
type Scene struct {
	Objects []Object
	Lights  []core.Point
	Camera  CameraConfig
}

// NewScene creates an empty scene with the default camera
func NewScene() *Scene {
	return &Scene{
		Camera: CameraConfig{
			Position:    core.NewPoint(0, 1.8, 10),
			LookAt:      core.NewPoint(0, 0, 0),
			FieldOfView: 45,
		},
	}
}

// MoveTo sets the camera position
func (s *Scene) MoveTo(p core.Point) {
	s.Camera.Position = p
}

// LookAt sets the point the camera looks at
func (s *Scene) LookAt(p core.Point) {
	s.Camera.LookAt = p
}

// AddObject adds a shape with its surface to the scene
func (s *Scene) AddObject(shape geometry.Shape, surface material.Surface) {
	s.Objects = append(s.Objects, Object{Shape: shape, Surface: surface})
}

// AddLight adds a point light to the scene
func (s *Scene) AddLight(p core.Point) {
	s.Lights = append(s.Lights, p)
}

// Hit returns the nearest intersection of the ray with the scene. Every
// object is tested; candidates without an intersection or with a time at or
// below −Epsilon are discarded and the minimum surviving time wins.
func (s *Scene) Hit(ray core.Ray) (Intersection, bool) {
	var nearest Intersection
	found := false
	for _, o := range s.Objects {
		t, ok := o.Shape.IntersectionTime(ray)
		if !ok || t <= -Epsilon {
			continue
		}
		if !found || t < nearest.T {
			nearest = Intersection{Shape: o.Shape, T: t, Surface: o.Surface}
			found = true
		}
	}
	return nearest, found
}

// VisibleLights returns the lights visible from a point. The list is
// recomputed on every call.
func (s *Scene) VisibleLights(p core.Point) []core.Point {
	var visible []core.Point
	for _, light := range s.Lights {
		if s.lightVisible(p, light) {
			visible = append(visible, light)
		}
	}
	return visible
}

// lightVisible casts a shadow ray from p toward the light. The light is
// occluded only by intersections strictly between the surface and the light
// itself; an object beyond the light does not cast a shadow.
func (s *Scene) lightVisible(p, light core.Point) bool {
	toLight := light.Subtract(p)
	distance := toLight.Length()
	ray := core.NewRay(p, toLight)
	for _, o := range s.Objects {
		if t, ok := o.Shape.IntersectionTime(ray); ok && t > Epsilon && t < distance {
			return false
		}
	}
	return true
}
