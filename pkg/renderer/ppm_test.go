package renderer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/df07/go-ppm-raytracer/pkg/core"
)

func TestWritePPM(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(0, 0, core.White)
	img.Set(1, 0, core.NewColor(1, 0, 0))
	img.Set(0, 1, core.NewColor(0, 0.5, 0))
	// (1, 1) stays black

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := strings.Join([]string{
		"P3",
		"2 2",
		"255",
		"255 255 255",
		"255 0 0",
		"0 128 0",
		"0 0 0",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWritePPM_PropagatesWriteErrors(t *testing.T) {
	if err := WritePPM(failingWriter{}, NewImage(1, 1)); err == nil {
		t.Error("Expected write error to be returned")
	}
}
