package renderer

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// MockIntegrator returns a fixed color and records every call
type MockIntegrator struct {
	mu          sync.Mutex
	returnColor core.Color
	callCount   int
	depths      map[int]int
}

func (m *MockIntegrator) RayColor(ray core.Ray, sc *scene.Scene, depth int) core.Color {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	if m.depths == nil {
		m.depths = make(map[int]int)
	}
	m.depths[depth]++
	return m.returnColor
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }, false},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -5 }, true},
		{"no workers", func(c *Config) { c.NumWorkers = 0 }, true},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Width != 500 || config.Height != 500 || config.NumWorkers != 8 || config.MaxDepth != 10 {
		t.Errorf("Unexpected defaults: %+v", config)
	}
}

func TestRender_EveryPixelShadedOnce(t *testing.T) {
	mock := &MockIntegrator{returnColor: core.NewColor(0.25, 0.5, 0.75)}
	config := Config{Width: 13, Height: 9, NumWorkers: 4, MaxDepth: 3}
	r := NewRendererWithIntegrator(config, mock, &captureLogger{})

	img, stats, err := r.Render(scene.New(core.Vec3{}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if mock.callCount != 13*9 {
		t.Errorf("Expected %d integrator calls, got %d", 13*9, mock.callCount)
	}
	if mock.depths[3] != 13*9 {
		t.Errorf("Expected every primary ray at depth 3, got %v", mock.depths)
	}
	for i, c := range img.Pixels {
		if c != mock.returnColor {
			t.Fatalf("Pixel %d: expected %v, got %v", i, mock.returnColor, c)
		}
	}
	if stats.TotalPixels != 13*9 || stats.NumWorkers != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestRender_InvalidConfig(t *testing.T) {
	r := NewRenderer(Config{Width: 0, Height: 10, NumWorkers: 1}, &captureLogger{})
	if _, _, err := r.Render(scene.NewDefaultScene()); err == nil {
		t.Error("Expected error for zero width")
	}
	if _, _, err := NewRenderer(DefaultConfig(), &captureLogger{}).Render(nil); err == nil {
		t.Error("Expected error for nil scene")
	}
}

func TestRender_DefaultScene(t *testing.T) {
	config := Config{Width: 20, Height: 20, NumWorkers: 8, MaxDepth: 10}
	img, _, err := NewRenderer(config, &captureLogger{}).Render(scene.NewDefaultScene())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// (10, 16) looks down toward the sphere below the camera
	if img.At(10, 16) == core.Black {
		t.Error("Expected the sphere to be visible at pixel (10, 16)")
	}
	if img.At(0, 0) != core.Black {
		t.Errorf("Expected background at pixel (0, 0), got %v", img.At(0, 0))
	}
}

func TestRender_WorkerCountDoesNotChangeImage(t *testing.T) {
	sc := scene.NewMirrorsScene()

	render := func(workers int) *Image {
		config := Config{Width: 24, Height: 24, NumWorkers: workers, MaxDepth: 4}
		img, _, err := NewRenderer(config, &captureLogger{}).Render(sc)
		if err != nil {
			t.Fatalf("Unexpected error with %d workers: %v", workers, err)
		}
		return img
	}

	single := render(1)
	parallel := render(8)
	for i := range single.Pixels {
		if single.Pixels[i] != parallel.Pixels[i] {
			t.Fatalf("Pixel %d differs: 1 worker %v, 8 workers %v", i, single.Pixels[i], parallel.Pixels[i])
		}
	}
}

func TestRenderTo_WritesP3AndLogs(t *testing.T) {
	logger := &captureLogger{}
	config := Config{Width: 10, Height: 4, NumWorkers: 2, MaxDepth: 1}

	var buf bytes.Buffer
	if _, err := NewRenderer(config, logger).RenderTo(scene.NewDefaultScene(), &buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if lines[0] != "P3 10 4 255" {
		t.Errorf("Unexpected header %q", lines[0])
	}
	if len(lines) != 1+4 {
		t.Fatalf("Expected header plus 4 rows, got %d lines", len(lines))
	}
	if fields := strings.Fields(lines[1]); len(fields) != 10*3 {
		t.Errorf("Expected 30 channel values per row, got %d", len(fields))
	}

	logged := logger.Lines()
	if len(logged) == 0 || !strings.HasPrefix(logged[len(logged)-1], "Rendered in ") {
		t.Errorf("Expected final completion line, got %v", logged)
	}
	progressLines := 0
	for _, line := range logged {
		if strings.Contains(line, "% done") {
			progressLines++
		}
	}
	if progressLines != 40 {
		t.Errorf("Expected 40 progress lines for 40 pixels, got %d", progressLines)
	}
}
