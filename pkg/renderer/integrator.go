package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-ppm-raytracer/pkg/core"
)

// ShadowAcneEpsilon is the smallest accepted hit distance. Rays leaving a
// surface would otherwise re-hit it at t≈0 through rounding error.
const ShadowAcneEpsilon = 0.001

// Background is the vertical sky gradient seen by rays that escape the scene
type Background struct {
	Top    core.Color // Color straight up
	Bottom core.Color // Color straight down, also the horizon blend start
}

// DefaultBackground returns the white to sky blue gradient
func DefaultBackground() Background {
	return Background{
		Top:    core.NewColor(0.5, 0.7, 1.0),
		Bottom: core.White,
	}
}

// Color returns the gradient color based on ray direction
func (b Background) Color(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	return b.Bottom.Lerp(b.Top, t)
}

// PathOutcome is how a traced path ended
type PathOutcome int

const (
	PathEscaped PathOutcome = iota // Left the scene and picked up the background
	PathAbsorbed
	PathExhausted // Ran out of bounces
)

// PathResult is the estimate for one camera sample
type PathResult struct {
	Color   core.Color
	Bounces int
	Outcome PathOutcome
}

// RayColor estimates the light arriving along ray after at most depth
// scatter events. depth <= 0 always yields black.
func RayColor(ray core.Ray, world core.Shape, background Background, depth int, random *rand.Rand) core.Color {
	return TracePath(ray, world, background, depth, random).Color
}

// TracePath is RayColor with bookkeeping about how the path ended. The bounce
// chain runs as a loop carrying the product of attenuations so far.
func TracePath(ray core.Ray, world core.Shape, background Background, depth int, random *rand.Rand) PathResult {
	throughput := core.White

	for bounce := 0; bounce < depth; bounce++ {
		hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return PathResult{
				Color:   throughput.Attenuate(background.Color(ray)),
				Bounces: bounce,
				Outcome: PathEscaped,
			}
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
		if !didScatter {
			return PathResult{Color: core.Black, Bounces: bounce, Outcome: PathAbsorbed}
		}

		throughput = throughput.Attenuate(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return PathResult{Color: core.Black, Bounces: max(depth, 0), Outcome: PathExhausted}
}
