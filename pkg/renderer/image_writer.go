package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WritePPM serializes the image as plain-text P3: a "P3 <w> <h> 255" header,
// then one line per row of space-separated "R G B" triples.
func WritePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3 %d %d 255\n", img.Width, img.Height); err != nil {
		return err
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(img.At(x, y).String()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ToRGBA converts the image for encoding with the image/* packages
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.At(x, y).Bytes()
			rgba.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return rgba
}

// WritePNG encodes the image as PNG
func WritePNG(w io.Writer, img *Image) error {
	return png.Encode(w, img.ToRGBA())
}

// SaveImage writes the image to path, choosing PNG for a .png extension and P3 otherwise
func SaveImage(path string, img *Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = WritePNG(file, img)
	default:
		err = WritePPM(file, img)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return file.Close()
}
