package renderer

import "github.com/cgj/go-simple-raytracer/pkg/canvas"

// RenderConfig contains rendering configuration
type RenderConfig struct {
	TileSize   int // Size of each square tile
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	MaxDepth   int // Reflection recursion bound
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0,
		MaxDepth:   DefaultMaxDepth,
	}
}

// RenderParallel renders the image using a pool of tile workers. The result
// is byte-identical to Render: pixels depend only on read-only scene data,
// so the work partition cannot affect the output.
func (rt *Raytracer) RenderParallel(cv *canvas.Canvas, cfg RenderConfig) RenderStats {
	rt.maxDepth = cfg.MaxDepth

	tiles := NewTileGrid(rt.width, rt.height, cfg.TileSize)
	pool := NewWorkerPool(rt, cv, cfg.TileSize, cfg.NumWorkers)

	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}
	pool.Stop()

	var stats RenderStats
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
	}
	return stats
}
