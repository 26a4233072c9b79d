package ring

import (
	"image/color"
	"math"
)

// Trail tuning constants.
const (
	// TrailLength is the ring distance at which the trail fades to
	// nothing; segments that many hops or more from the active one get a
	// zero intensity target.
	TrailLength = 5

	// intensitySmoothing is the per-tick low-pass rate for intensity
	// (and therefore color). scaleSmoothing is the separate, slower rate
	// for the size bulge; the two never fully agree and that mismatch is
	// part of the look.
	intensitySmoothing = 0.1
	scaleSmoothing     = 0.075

	// scaleAmplitude is the extra scale added at full intensity.
	scaleAmplitude = 0.065
)

// TrailField turns the active segment index into per-segment color and
// scale, with a two-sided fading trail that wraps around the ring seam.
// The smoothed intensity vector is the only state carried across ticks.
type TrailField struct {
	ring      *Ring
	intensity []float64
	base      color.NRGBA
	active    color.NRGBA
}

// NewTrailField returns a field over r with all intensities at zero.
// Segment colors blend from base to active as intensity rises.
func NewTrailField(r *Ring, base, active color.NRGBA) *TrailField {
	return &TrailField{
		ring:      r,
		intensity: make([]float64, r.Len()),
		base:      base,
		active:    active,
	}
}

// Step recomputes every segment's intensity, color and scale for one
// tick. active is the index reported by the orbit driver, or NoHit, in
// which case every target collapses to zero and the whole trail decays.
func (t *TrailField) Step(active int) {
	for i, s := range t.ring.segments {
		target := 0.0
		inside := false
		if active != NoHit {
			d := t.ring.Distance(active, i)
			if d < TrailLength {
				inside = true
				target = 1 - float64(d)/TrailLength
			}
		}

		t.intensity[i] += intensitySmoothing * (target - t.intensity[i])
		s.Color = lerpNRGBA(t.base, t.active, t.intensity[i])

		// The bulge eases off the raw per-tick target, not the smoothed
		// intensity, and relaxes at its own slower rate.
		scaleTarget := 1.0
		if inside {
			scaleTarget = 1 + math.Sin(target*math.Pi/2)*scaleAmplitude
		}
		s.Scale += scaleSmoothing * (scaleTarget - s.Scale)
	}
}

// Intensity returns the smoothed intensity of segment i, in [0,1].
func (t *TrailField) Intensity(i int) float64 {
	return t.intensity[i]
}

// lerpNRGBA blends a toward b per channel. f=0 yields exactly a, f=1
// exactly b.
func lerpNRGBA(a, b color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*f),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*f),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*f),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*f),
	}
}
