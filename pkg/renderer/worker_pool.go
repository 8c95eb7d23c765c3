package renderer

import (
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WorkerPool shades pixel tasks in parallel
type WorkerPool struct {
	resultQueue chan PixelResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker drains the shared task queue until it is empty
type Worker struct {
	ID          int
	scene       *scene.Scene
	integrator  integrator.Integrator
	maxDepth    int
	taskQueue   *TaskQueue
	resultQueue chan<- PixelResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Every worker shares the same read-only scene and integrator.
func NewWorkerPool(sc *scene.Scene, integ integrator.Integrator, queue *TaskQueue, numWorkers, maxDepth int) *WorkerPool {
	wp := &WorkerPool{
		resultQueue: make(chan PixelResult, numWorkers),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			scene:       sc,
			integrator:  integ,
			maxDepth:    maxDepth,
			taskQueue:   queue,
			resultQueue: wp.resultQueue,
		})
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

// Results returns the channel workers publish shaded pixels on
func (wp *WorkerPool) Results() <-chan PixelResult {
	return wp.resultQueue
}

// Wait blocks until every worker has exited, then closes the result channel.
// Results must be drained first or workers stay blocked on send.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
	close(wp.resultQueue)
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		task, ok := w.taskQueue.Pop()
		if !ok {
			return
		}

		ray := core.NewRay(w.scene.GetCamera(), task.Direction)
		w.resultQueue <- PixelResult{
			X:     task.X,
			Y:     task.Y,
			Color: w.integrator.RayColor(ray, w.scene, w.maxDepth),
		}
	}
}
