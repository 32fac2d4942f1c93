package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width, Height   int           // Image size
	TotalPixels     int           // Total number of pixels rendered
	SamplesPerPixel int           // Samples taken for every pixel
	MaxDepth        int           // Bounce limit per path
	TotalSamples    int           // Total number of camera rays traced
	TotalBounces    int           // Scatter events over all paths
	EscapedPaths    int           // Paths that reached the background
	AbsorbedPaths   int           // Paths ended by a material
	ExhaustedPaths  int           // Paths cut off by the bounce limit
	RenderTime      time.Duration // Wall time of the pass
}

// addPath folds one traced camera sample into the totals
func (s *RenderStats) addPath(path PathResult) {
	s.TotalSamples++
	s.TotalBounces += path.Bounces

	switch path.Outcome {
	case PathEscaped:
		s.EscapedPaths++
	case PathAbsorbed:
		s.AbsorbedPaths++
	case PathExhausted:
		s.ExhaustedPaths++
	}
}

// AverageBounces returns the mean number of scatter events per path
func (s RenderStats) AverageBounces() float64 {
	if s.TotalSamples == 0 {
		return 0
	}
	return float64(s.TotalBounces) / float64(s.TotalSamples)
}

// Table renders the statistics as a text table
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.AppendBulk([][]string{
		{"Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)},
		{"Samples per pixel", fmt.Sprintf("%d", s.SamplesPerPixel)},
		{"Max depth", fmt.Sprintf("%d", s.MaxDepth)},
		{"Camera rays", fmt.Sprintf("%d", s.TotalSamples)},
		{"Avg bounces", fmt.Sprintf("%.2f", s.AverageBounces())},
		{"Escaped", fmt.Sprintf("%d", s.EscapedPaths)},
		{"Absorbed", fmt.Sprintf("%d", s.AbsorbedPaths)},
		{"Depth limited", fmt.Sprintf("%d", s.ExhaustedPaths)},
	})
	table.SetFooter([]string{"Render time", s.RenderTime.String()})

	table.Render()
	return buf.String()
}
