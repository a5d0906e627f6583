package core

// Color represents an RGB color with channels conceptually in [0,1].
// Shading may overshoot 1; clamping to the displayable range happens only
// when pixels are written to a canvas.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns the color with each channel scaled
func (c Color) Scale(factor float64) Color {
	return Color{c.R * factor, c.G * factor, c.B * factor}
}

// AddScaled returns c + scale*other, the accumulation step of the shading model
func (c Color) AddScaled(scale float64, other Color) Color {
	return Color{c.R + scale*other.R, c.G + scale*other.G, c.B + scale*other.B}
}

// Black is the background and recursion-cutoff color.
var Black = Color{}

// White is the default surface base color.
var White = Color{R: 1, G: 1, B: 1}
