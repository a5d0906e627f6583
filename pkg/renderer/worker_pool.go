package renderer

import (
	"runtime"
	"sync"

	"github.com/cgj/go-simple-raytracer/pkg/canvas"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   Tile
	TaskID int
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering. Workers share one raytracer
// (read-only after construction) and one canvas; tasks carry disjoint tile
// bounds, so no two workers touch the same pixels.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	raytracer   *Raytracer
	canvas      *canvas.Canvas
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Zero or negative means one worker per CPU.
func NewWorkerPool(rt *Raytracer, cv *canvas.Canvas, tileSize, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Buffer both queues for every possible tile so workers never block
	maxTiles := ((cv.Width() + tileSize - 1) / tileSize) * ((cv.Height() + tileSize - 1) / tileSize)

	return &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		raytracer:   rt,
		canvas:      cv,
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop shuts down the pool after the submitted tasks finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		stats := wp.raytracer.RenderBounds(task.Tile.Bounds, wp.canvas)
		stats.TilesRendered = 1
		wp.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}
	}
}
