package renderer

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM encodes img as a plain-text P3 pixmap: a header followed by one
// "r g b" line per pixel, top scanline first
func WritePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("renderer: writing ppm header: %w", err)
	}

	for _, c := range img.Pixels {
		if err := c.WriteColor(bw); err != nil {
			return fmt.Errorf("renderer: writing ppm pixel: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("renderer: flushing ppm: %w", err)
	}
	return nil
}
