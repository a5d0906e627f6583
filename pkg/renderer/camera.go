package renderer

import (
	"math"

	"github.com/cgj/go-simple-raytracer/pkg/core"
	"github.com/cgj/go-simple-raytracer/pkg/scene"
)

// Camera generates primary rays for a pixel grid from the scene's camera
// state. The view plane is a fixed 4:3 rectangle: its half-width comes from
// the field of view and its half-height is 0.75 of that.
type Camera struct {
	position    core.Point
	forward     core.Vector
	right       core.Vector
	up          core.Vector
	halfWidth   float64
	halfHeight  float64
	pixelWidth  float64
	pixelHeight float64
}

// NewCamera derives the camera basis for a width×height pixel grid. Both
// dimensions must be at least 2.
func NewCamera(cfg scene.CameraConfig, width, height int) *Camera {
	forward := cfg.LookAt.Subtract(cfg.Position).Normalize()
	right := forward.Cross(core.WorldUp).Normalize()
	up := right.Cross(forward).Normalize()

	fovRadians := math.Pi * (cfg.FieldOfView / 2) / 180
	halfWidth := math.Tan(fovRadians)
	halfHeight := 0.75 * halfWidth

	return &Camera{
		position:    cfg.Position,
		forward:     forward,
		right:       right,
		up:          up,
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		pixelWidth:  halfWidth * 2 / float64(width-1),
		pixelHeight: halfHeight * 2 / float64(height-1),
	}
}

// Ray returns the primary ray through pixel (x, y), y counted from the
// bottom row of the image
func (c *Camera) Ray(x, y int) core.Ray {
	xcomp := c.right.Multiply(float64(x)*c.pixelWidth - c.halfWidth)
	ycomp := c.up.Multiply(float64(y)*c.pixelHeight - c.halfHeight)
	return core.NewRay(c.position, c.forward.Add(xcomp).Add(ycomp))
}
