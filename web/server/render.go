package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Limits on request parameters
const (
	maxImageSize = 2000
	maxWorkers   = 64
	maxDepth     = 50
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string // Scene id (e.g. "default" or "json:mirror-hall")
	Width   int    // Image width
	Height  int    // Image height
	Workers int    // Number of render workers
	Depth   int    // Maximum reflection depth
	Format  string // "png" for raw image bytes, "json" for an encoded image plus stats
}

// RenderResponse is the JSON form of a finished render
type RenderResponse struct {
	Scene     string           `json:"scene"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	TotalPixels     int     `json:"totalPixels"`
	NumWorkers      int     `json:"numWorkers"`
	MaxDepth        int     `json:"maxDepth"`
	PixelsPerSecond float64 `json:"pixelsPerSecond"`
}

// handleRender renders a scene and returns it as PNG or JSON
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	consoleChan := make(chan ConsoleMessage, 128)
	logger := NewWebLogger(req.Scene, consoleChan)

	config := renderer.Config{
		Width:      req.Width,
		Height:     req.Height,
		NumWorkers: req.Workers,
		MaxDepth:   req.Depth,
	}

	startTime := time.Now()
	img, stats, err := renderer.NewRenderer(config, logger).Render(sceneObj)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}
	logger.Printf("Rendered in %.2f s\n", time.Since(startTime).Seconds())
	close(consoleChan)

	if req.Format == "png" {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if err := renderer.WritePNG(w, img); err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		}
		return
	}

	imageData, err := imageToBase64PNG(img)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	console := make([]ConsoleMessage, 0, len(consoleChan))
	for msg := range consoleChan {
		console = append(console, msg)
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		Scene:     req.Scene,
		ImageData: imageData,
		Stats: Stats{
			Width:           stats.Width,
			Height:          stats.Height,
			TotalPixels:     stats.TotalPixels,
			NumWorkers:      stats.NumWorkers,
			MaxDepth:        stats.MaxDepth,
			PixelsPerSecond: stats.PixelsPerSecond(),
		},
		Console:   console,
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	defaults := renderer.DefaultConfig()

	req := &RenderRequest{Scene: "default", Format: "png"}
	if sceneID := query.Get("scene"); sceneID != "" {
		req.Scene = sceneID
	}

	switch format := query.Get("format"); format {
	case "", "png":
	case "json":
		req.Format = format
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", defaults.Width, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", defaults.Height, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", defaults.NumWorkers, 1, maxWorkers); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", defaults.MaxDepth, 0, maxDepth); err != nil {
		return nil, err
	}

	return req, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img *renderer.Image) (string, error) {
	var buf bytes.Buffer
	if err := renderer.WritePNG(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
