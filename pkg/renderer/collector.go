package renderer

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Image is a row-major buffer of clamped colors
type Image struct {
	Width, Height int
	Pixels        []core.Color
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color of pixel (x, y)
func (img *Image) At(x, y int) core.Color {
	return img.Pixels[y*img.Width+x]
}

// Collector writes self-addressed pixel results into an image. Results may arrive
// in any order; only the collecting goroutine touches the buffer.
type Collector struct {
	image     *Image
	collected int
	progress  *Progress
}

// NewCollector creates a collector for a width×height image. progress may be nil.
func NewCollector(width, height int, progress *Progress) *Collector {
	return &Collector{
		image:    NewImage(width, height),
		progress: progress,
	}
}

// Add stores one result in its pixel slot
func (c *Collector) Add(result PixelResult) error {
	if result.X < 0 || result.X >= c.image.Width || result.Y < 0 || result.Y >= c.image.Height {
		return fmt.Errorf("pixel (%d, %d) outside %dx%d image", result.X, result.Y, c.image.Width, c.image.Height)
	}

	c.image.Pixels[result.Y*c.image.Width+result.X] = result.Color
	c.collected++

	if c.progress != nil {
		c.progress.Update(c.collected)
	}
	return nil
}

// Collect drains exactly Width×Height results from the channel
func (c *Collector) Collect(results <-chan PixelResult) (*Image, error) {
	total := c.image.Width * c.image.Height
	for c.collected < total {
		result, ok := <-results
		if !ok {
			return nil, fmt.Errorf("worker pool closed unexpectedly after %d of %d pixels", c.collected, total)
		}
		if err := c.Add(result); err != nil {
			return nil, err
		}
	}
	return c.image, nil
}

// Collected returns the number of results stored so far
func (c *Collector) Collected() int {
	return c.collected
}

// Image returns the buffer being filled
func (c *Collector) Image() *Image {
	return c.image
}
