package renderer

import (
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PixelTask is the work for one pixel: its coordinates and primary ray direction
type PixelTask struct {
	X, Y      int
	Direction core.Vec3
}

// PixelResult is a shaded pixel, addressed by its own coordinates
type PixelResult struct {
	X, Y  int
	Color core.Color
}

// TaskQueue is a FIFO of pixel tasks shared by all workers
type TaskQueue struct {
	mu    sync.Mutex
	tasks []PixelTask
	head  int
}

// NewTaskQueue creates an empty task queue
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{}
}

// NewPixelTasks enumerates one task per pixel in raster order
func NewPixelTasks(width, height int) []PixelTask {
	tasks := make([]PixelTask, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tasks = append(tasks, PixelTask{X: x, Y: y, Direction: PrimaryDirection(x, y, width, height)})
		}
	}
	return tasks
}

// PushMany appends tasks to the back of the queue
func (q *TaskQueue) PushMany(tasks []PixelTask) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, tasks...)
}

// Pop removes the task at the front of the queue. It returns false once the queue is empty.
func (q *TaskQueue) Pop() (PixelTask, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head >= len(q.tasks) {
		return PixelTask{}, false
	}
	task := q.tasks[q.head]
	q.head++
	return task, true
}

// Len returns the number of tasks still queued
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks) - q.head
}
