package renderer

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config contains render configuration
type Config struct {
	Width      int // Image width in pixels
	Height     int // Image height in pixels
	NumWorkers int // Number of parallel workers
	MaxDepth   int // Maximum reflection depth
}

// DefaultConfig returns the standard 500x500 render with 8 workers and depth 10
func DefaultConfig() Config {
	return Config{
		Width:      500,
		Height:     500,
		NumWorkers: 8,
		MaxDepth:   10,
	}
}

// Validate reports the first invalid field
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	case c.NumWorkers <= 0:
		return fmt.Errorf("worker count must be positive, got %d", c.NumWorkers)
	case c.MaxDepth < 0:
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// Renderer schedules one shading task per pixel across a pool of workers
type Renderer struct {
	config     Config
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRenderer creates a renderer using the Whitted integrator
func NewRenderer(config Config, logger core.Logger) *Renderer {
	return NewRendererWithIntegrator(config, integrator.NewWhittedIntegrator(), logger)
}

// NewRendererWithIntegrator creates a renderer with a custom integrator
func NewRendererWithIntegrator(config Config, integ integrator.Integrator, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		config:     config,
		integrator: integ,
		logger:     logger,
	}
}

// Render shades every pixel of the scene and returns the assembled image.
// All workers have exited by the time Render returns.
func (r *Renderer) Render(sc *scene.Scene) (*Image, RenderStats, error) {
	if err := r.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	if sc == nil {
		return nil, RenderStats{}, errors.New("nil scene")
	}

	width, height := r.config.Width, r.config.Height
	total := width * height

	queue := NewTaskQueue()
	queue.PushMany(NewPixelTasks(width, height))

	progress := NewProgress(total, r.logger)
	collector := NewCollector(width, height, progress)

	pool := NewWorkerPool(sc, r.integrator, queue, r.config.NumWorkers, r.config.MaxDepth)
	pool.Start()

	img, err := collector.Collect(pool.Results())
	if err != nil {
		// unblock any worker still sending so the pool can be joined
		go func() {
			for range pool.Results() {
			}
		}()
	}
	pool.Wait()
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		Width:       width,
		Height:      height,
		TotalPixels: total,
		NumWorkers:  pool.GetNumWorkers(),
		MaxDepth:    r.config.MaxDepth,
		Duration:    progress.Elapsed(),
	}
	return img, stats, nil
}

// RenderTo renders the scene and writes it to w as P3
func (r *Renderer) RenderTo(sc *scene.Scene, w io.Writer) (RenderStats, error) {
	start := time.Now()
	img, stats, err := r.Render(sc)
	if err != nil {
		return stats, err
	}
	if err := WritePPM(w, img); err != nil {
		return stats, fmt.Errorf("write image: %w", err)
	}
	r.logger.Printf("Rendered in %.2f s\n", time.Since(start).Seconds())
	return stats, nil
}

// RenderToFile renders the scene and saves it to path, PNG or P3 by extension
func (r *Renderer) RenderToFile(sc *scene.Scene, path string) (RenderStats, error) {
	start := time.Now()
	img, stats, err := r.Render(sc)
	if err != nil {
		return stats, err
	}
	if err := SaveImage(path, img); err != nil {
		return stats, err
	}
	r.logger.Printf("Rendered in %.2f s\n", time.Since(start).Seconds())
	return stats, nil
}
