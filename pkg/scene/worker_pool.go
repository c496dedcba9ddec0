package scene

import (
	"sync"

	"go.uber.org/zap"

	"github.com/df07/go-viewfactors/pkg/core"
)

// EstimateTask represents one slice of a parallel view factor estimate
type EstimateTask struct {
	TaskID    int // For deterministic ordering
	SurfaceID int
	Samples   int
	Seed      int64 // Seed for this task's private sampler
}

// EstimateResult contains the per-task mean view factors
type EstimateResult struct {
	TaskID      int
	ViewFactors []float64
	Stats       EstimateStats
}

// WorkerPool manages parallel estimation tasks against one scene
type WorkerPool struct {
	taskQueue   chan EstimateTask
	resultQueue chan EstimateResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual estimation tasks
type Worker struct {
	ID          int
	scene       *Scene
	taskQueue   chan EstimateTask
	resultQueue chan EstimateResult
	logger      *zap.Logger
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Task and result queues are buffered for one task per worker.
func NewWorkerPool(scene *Scene, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	wp := &WorkerPool{
		taskQueue:   make(chan EstimateTask, numWorkers),
		resultQueue: make(chan EstimateResult, numWorkers),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			scene:       scene,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
			logger:      scene.log().With(zap.Int("worker", i)),
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue, waits for workers to finish and closes the result queue.
// Results stay readable through GetResult after Stop returns.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits an estimation task to the worker pool
func (wp *WorkerPool) SubmitTask(task EstimateTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed result; ok is false once the pool is drained
func (wp *WorkerPool) GetResult() (EstimateResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// The scene is read-only here; only the sampler is per task
		sampler := core.NewSeededSampler(task.Seed)
		viewFactors, stats := w.scene.EstimateViewFactors(sampler, task.SurfaceID, task.Samples)

		w.logger.Debug("task complete",
			zap.Int("task", task.TaskID),
			zap.Int("rays", stats.Rays),
			zap.Int("early_terminations", stats.EarlyTerminations))

		w.resultQueue <- EstimateResult{
			TaskID:      task.TaskID,
			ViewFactors: viewFactors,
			Stats:       stats,
		}
	}
}
