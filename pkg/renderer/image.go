package renderer

import (
	"github.com/df07/go-ppm-raytracer/pkg/core"
)

// Image is a grid of output colors stored row by row from the top scanline
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

// At returns the pixel in column x of row y, counted from the top
func (img *Image) At(x, y int) core.Color {
	return img.Pixels[y*img.Width+x]
}

// Set stores the pixel in column x of row y, counted from the top
func (img *Image) Set(x, y int, c core.Color) {
	img.Pixels[y*img.Width+x] = c
}
