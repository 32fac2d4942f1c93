package core

import (
	"fmt"
	"io"
	"math"
)

// colorSlack absorbs floating point rounding at the edges of the channel range
const colorSlack = 1e-9

var (
	// Black is the color of absorbed light
	Black = Color{}
	// White is the neutral attenuation
	White = Color{r: 1, g: 1, b: 1}
)

// Color is an RGB triple with every channel in [0, 1].
// Out-of-range channels are a programming error and panic; unbounded
// intermediate sums belong in a Vec3.
type Color struct {
	r, g, b float64
}

// NewColor creates a color, panicking if any channel lies outside [0, 1]
func NewColor(r, g, b float64) Color {
	return Color{
		r: checkChannel("red", r),
		g: checkChannel("green", g),
		b: checkChannel("blue", b),
	}
}

// ColorFromVec3 converts an averaged radiance vector to a Color
func ColorFromVec3(v Vec3) Color {
	return NewColor(v.X, v.Y, v.Z)
}

func checkChannel(name string, value float64) float64 {
	if math.IsNaN(value) || value < -colorSlack || value > 1+colorSlack {
		panic(fmt.Sprintf("core: %s channel %v outside [0, 1]", name, value))
	}
	return math.Max(0, math.Min(1, value))
}

// R returns the red channel
func (c Color) R() float64 { return c.r }

// G returns the green channel
func (c Color) G() float64 { return c.g }

// B returns the blue channel
func (c Color) B() float64 { return c.b }

// Vec3 returns the channels as an unconstrained vector for accumulation
func (c Color) Vec3() Vec3 {
	return Vec3{X: c.r, Y: c.g, Z: c.b}
}

// Attenuate returns the component-wise product of two colors
func (c Color) Attenuate(other Color) Color {
	return Color{r: c.r * other.r, g: c.g * other.g, b: c.b * other.b}
}

// Scale multiplies every channel by s, which must lie in [0, 1]
func (c Color) Scale(s float64) Color {
	return NewColor(c.r*s, c.g*s, c.b*s)
}

// Lerp blends from c (t = 0) to other (t = 1)
func (c Color) Lerp(other Color, t float64) Color {
	return NewColor(
		(1-t)*c.r+t*other.r,
		(1-t)*c.g+t*other.g,
		(1-t)*c.b+t*other.b,
	)
}

// GammaCorrect raises every channel to 1/gamma; gamma 2 is a square root
func (c Color) GammaCorrect(gamma float64) Color {
	invGamma := 1.0 / gamma
	return Color{
		r: math.Pow(c.r, invGamma),
		g: math.Pow(c.g, invGamma),
		b: math.Pow(c.b, invGamma),
	}
}

// RGB8 returns the channels scaled to [0, 255] and rounded to nearest
func (c Color) RGB8() (r, g, b uint8) {
	return to8(c.r), to8(c.g), to8(c.b)
}

func to8(value float64) uint8 {
	return uint8(math.Round(value * 255))
}

// WriteColor writes the color as a plain PPM pixel line "r g b"
func (c Color) WriteColor(w io.Writer) error {
	r, g, b := c.RGB8()
	_, err := fmt.Fprintf(w, "%d %d %d\n", r, g, b)
	return err
}

// String implements fmt.Stringer
func (c Color) String() string {
	return fmt.Sprintf("(%g %g %g)", c.r, c.g, c.b)
}
