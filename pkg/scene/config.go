package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cgj/go-simple-raytracer/pkg/core"
	"github.com/cgj/go-simple-raytracer/pkg/geometry"
	"github.com/cgj/go-simple-raytracer/pkg/material"
)

// Triple is a 3-component JSON value used for points, directions and colors
type Triple [3]float64

// Point converts the triple to a core.Point
func (t Triple) Point() core.Point {
	return core.NewPoint(t[0], t[1], t[2])
}

// Vector converts the triple to a core.Vector
func (t Triple) Vector() core.Vector {
	return core.NewVector(t[0], t[1], t[2])
}

// Color converts the triple to a core.Color
func (t Triple) Color() core.Color {
	return core.NewColor(t[0], t[1], t[2])
}

// CameraCfg describes the camera in a scene file
type CameraCfg struct {
	Position Triple  `json:"position"`
	LookAt   Triple  `json:"lookAt"`
	FOV      float64 `json:"fov"`
}

// SurfaceCfg describes a surface. When OtherColor is present the surface is
// a checkerboard with cells of CheckSize (default 1); otherwise it is a
// uniform surface.
type SurfaceCfg struct {
	Color      Triple  `json:"color"`
	OtherColor *Triple `json:"otherColor,omitempty"`
	CheckSize  float64 `json:"checkSize,omitempty"`
	Specular   float64 `json:"specular"`
	Lambert    float64 `json:"lambert"`
}

// Build constructs the surface described by the config
func (c SurfaceCfg) Build() (material.Surface, error) {
	if c.OtherColor == nil {
		return material.NewUniformSurface(c.Color.Color(), c.Specular, c.Lambert)
	}
	checkSize := c.CheckSize
	if checkSize == 0 {
		checkSize = 1
	}
	return material.NewCheckerboardSurface(c.Color.Color(), c.OtherColor.Color(), checkSize, c.Specular, c.Lambert)
}

// SphereCfg describes a sphere object
type SphereCfg struct {
	Center  Triple     `json:"center"`
	Radius  float64    `json:"radius"`
	Surface SurfaceCfg `json:"surface"`
}

// PlaneCfg describes an infinite plane object
type PlaneCfg struct {
	Point   Triple     `json:"point"`
	Normal  Triple     `json:"normal"`
	Surface SurfaceCfg `json:"surface"`
}

// Config is the JSON description of a scene
type Config struct {
	Camera  CameraCfg   `json:"camera"`
	Lights  []Triple    `json:"lights"`
	Spheres []SphereCfg `json:"spheres,omitempty"`
	Planes  []PlaneCfg  `json:"planes,omitempty"`
}

// LoadConfig reads and parses a scene file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, err)
	}
	return &cfg, nil
}

// Build validates the config and constructs the scene. Invalid values are
// rejected here rather than clamped into a silently wrong image.
func (c *Config) Build() (*Scene, error) {
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return nil, fmt.Errorf("camera fov must be in (0,180) degrees, got %g", c.Camera.FOV)
	}
	if len(c.Spheres)+len(c.Planes) == 0 {
		return nil, fmt.Errorf("scene has no objects")
	}

	s := NewScene()
	s.Camera = CameraConfig{
		Position:    c.Camera.Position.Point(),
		LookAt:      c.Camera.LookAt.Point(),
		FieldOfView: c.Camera.FOV,
	}
	for _, l := range c.Lights {
		s.AddLight(l.Point())
	}

	for i, sc := range c.Spheres {
		sphere, err := geometry.NewSphere(sc.Center.Point(), sc.Radius)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		surface, err := sc.Surface.Build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.AddObject(sphere, surface)
	}

	for i, pc := range c.Planes {
		plane, err := geometry.NewHalfspace(pc.Point.Point(), pc.Normal.Vector())
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		surface, err := pc.Surface.Build()
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		s.AddObject(plane, surface)
	}

	return s, nil
}
