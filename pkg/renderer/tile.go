package renderer

import "image"

// Tile is an independently renderable region of the image
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid creates a grid of tiles covering the entire image. Tiles have
// disjoint bounds, so each can be rendered and written without coordination.
func NewTileGrid(width, height, tileSize int) []Tile {
	var tiles []Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}
