package game

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/Fawkes11/circular-animation/ring"
)

// Probe is the orbiting marker's renderable. The orbit driver overwrites
// Pos and Spin every tick; the renderer only reads them.
type Probe struct {
	Pos    ring.Vec3
	Spin   float64
	Color  color.NRGBA
	Radius float64
}

// Scene owns the bloom geometry: the petal ring and the probe
// renderable. It is built once at startup and only its per-segment sink
// fields change afterwards.
type Scene struct {
	Ring   *ring.Ring
	Probe  Probe
	Center ring.Vec3

	base   color.NRGBA
	active color.NRGBA
}

// NewScene lays the petals out on a circle around the origin and fixes
// ring order from their source names. Petal names are generated in
// shuffled order, the way an asset loader would hand them over, so the
// suffix sort is what establishes adjacency.
func NewScene(cfg Config) (*Scene, error) {
	base, err := ParseHexColor(cfg.BaseColor)
	if err != nil {
		return nil, err
	}
	active, err := ParseHexColor(cfg.ActiveColor)
	if err != nil {
		return nil, err
	}
	probeClr, err := ParseHexColor(cfg.ProbeColor)
	if err != nil {
		return nil, err
	}

	segments := make([]*ring.Segment, 0, cfg.PetalCount)
	for _, idx := range rand.Perm(cfg.PetalCount) {
		a := 2 * math.Pi * float64(idx) / float64(cfg.PetalCount)
		segments = append(segments, &ring.Segment{
			Name: fmt.Sprintf("petal.%03d", idx),
			Center: ring.Vec3{
				X: cfg.BloomRadius * math.Cos(a),
				Y: 0,
				Z: cfg.BloomRadius * math.Sin(a),
			},
			HitRadius: cfg.PetalSize,
			Color:     base,
			Scale:     1,
		})
	}

	center := ring.Vec3{X: 0, Y: cfg.ProbeHeight, Z: 0}
	return &Scene{
		Ring:   ring.BuildRing(segments, "petal"),
		Center: center,
		Probe: Probe{
			Pos:    center,
			Color:  probeClr,
			Radius: 0.12,
		},
		base:   base,
		active: active,
	}, nil
}
