// Command trailsim drives the orbit and trail logic headless with a
// fixed time step and prints per-segment intensity bars. Useful for
// eyeballing trail behavior without a window.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/Fawkes11/circular-animation/ring"
)

const barWidth = 30

func main() {
	petals := flag.Int("petals", 16, "number of segments on the ring")
	ticks := flag.Int("ticks", 300, "number of fixed steps to run")
	every := flag.Int("every", 20, "print state every N ticks")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per step")
	radius := flag.Float64("radius", 2.4, "orbit radius")
	speed := flag.Float64("speed", 1.2, "orbit angular speed, rad/s")
	flag.Parse()

	r := buildFlatRing(*petals, *radius)
	orbit := ring.NewOrbitDriver(ring.Vec3{Y: 1})
	trail := ring.NewTrailField(r,
		color.NRGBA{R: 40, G: 10, B: 80, A: 255},
		color.NRGBA{R: 255, G: 240, B: 180, A: 255})

	for tick := 1; tick <= *ticks; tick++ {
		_, active := orbit.Advance(*dt, *radius, *speed, r)
		trail.Step(active)

		if tick%*every != 0 {
			continue
		}
		fmt.Printf("tick %d  angle %.2f  active %s\n", tick, orbit.Angle(), activeLabel(r, active))
		for i := 0; i < r.Len(); i++ {
			marker := " "
			if i == active {
				marker = "*"
			}
			n := int(trail.Intensity(i)*barWidth + 0.5)
			fmt.Printf("  %s %-9s |%s%s| %.3f\n", marker, r.Segment(i).Name,
				strings.Repeat("#", n), strings.Repeat(" ", barWidth-n), trail.Intensity(i))
		}
	}
}

// buildFlatRing places n segments on a circle of the given radius in the
// Y=0 plane, sized so adjacent hit discs nearly touch.
func buildFlatRing(n int, radius float64) *ring.Ring {
	hitRadius := radius * math.Pi / float64(n)
	segments := make([]*ring.Segment, n)
	for i := range segments {
		a := 2 * math.Pi * float64(i) / float64(n)
		segments[i] = &ring.Segment{
			Name:      fmt.Sprintf("petal.%03d", i),
			Center:    ring.Vec3{X: radius * math.Cos(a), Y: 0, Z: radius * math.Sin(a)},
			HitRadius: hitRadius,
			Scale:     1,
		}
	}
	return ring.BuildRing(segments, "petal")
}

func activeLabel(r *ring.Ring, active int) string {
	if active == ring.NoHit {
		return "-"
	}
	return r.Segment(active).Name
}
