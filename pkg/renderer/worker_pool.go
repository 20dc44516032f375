package renderer

import (
	"image"
	"runtime"
	"sync"

	"github.com/foglab/go-volumetric-raymarcher/pkg/core"
)

// TileTask is one tile of one frame handed to the worker pool.
type TileTask struct {
	Tile   *Tile
	Frame  core.FrameState
	Target *image.RGBA // shared frame image; tiles never overlap
	TaskID int
}

// TileResult carries the timing of a completed tile back to the caller.
type TileResult struct {
	TaskID int
	Stats  TileStats
}

// WorkerPool renders tiles in parallel. Per-pixel evaluation is a pure
// function of (pixel, FrameState), so workers share nothing but the
// integrator and the non-overlapping regions of the target image.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders tile tasks until the task queue closes.
type Worker struct {
	ID          int
	renderer    *FrameRenderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a pool with the specified number of workers,
// defaulting to the CPU count.
func NewWorkerPool(renderer *FrameRenderer, numWorkers, maxTiles int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers.
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a tile task.
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result.
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool.
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		stats := w.renderer.renderBounds(task.Tile.Bounds, task.Frame, task.Target)
		w.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}
	}
}
