package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels   int // Total number of pixels rendered
	TilesRendered int // Number of tiles completed
}

// Merge accumulates statistics from another render
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TilesRendered += other.TilesRendered
}
