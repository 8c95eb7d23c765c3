package renderer

import "time"

// RenderStats contains statistics about a finished render
type RenderStats struct {
	Width, Height int           // Image dimensions
	TotalPixels   int           // Number of pixels shaded
	NumWorkers    int           // Workers that shared the task queue
	MaxDepth      int           // Reflection depth budget per primary ray
	Duration      time.Duration // Wall time from task generation to last collected pixel
}

// PixelsPerSecond returns the shading throughput of the render
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}

// AverageLuminance returns the mean luminance over every pixel of the image
func AverageLuminance(img *Image) float64 {
	if len(img.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range img.Pixels {
		total += c.Luminance()
	}
	return total / float64(len(img.Pixels))
}
