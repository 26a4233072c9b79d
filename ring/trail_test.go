package ring

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	testBase   = color.NRGBA{R: 40, G: 10, B: 80, A: 255}
	testActive = color.NRGBA{R: 255, G: 240, B: 180, A: 255}
)

func TestStepSingleTickFromZero(t *testing.T) {
	r := testRing(8)
	f := NewTrailField(r, testBase, testActive)

	f.Step(3)

	// Active segment: target 1, one smoothing step of 0.1.
	assert.InDelta(t, 0.1, f.Intensity(3), 1e-12)
	// Segment 0 is ring distance 3 away, target 1-3/5 = 0.4.
	assert.InDelta(t, 0.04, f.Intensity(0), 1e-12)
	// Segment 5 is ring distance 2 away, target 0.6.
	assert.InDelta(t, 0.06, f.Intensity(5), 1e-12)
}

func TestTargetRampShape(t *testing.T) {
	// With N=16 every distance from 0..8 occurs; drive to steady state
	// and check the ramp through the converged intensities.
	r := testRing(16)
	f := NewTrailField(r, testBase, testActive)
	for i := 0; i < 2000; i++ {
		f.Step(0)
	}

	prev := f.Intensity(0)
	assert.InDelta(t, 1.0, prev, 1e-9)
	for d := 1; d <= 8; d++ {
		cur := f.Intensity(d)
		assert.LessOrEqual(t, cur, prev+1e-9, "intensity must not increase with distance")
		if d < TrailLength {
			assert.InDelta(t, 1-float64(d)/TrailLength, cur, 1e-9)
		} else {
			assert.InDelta(t, 0.0, cur, 1e-9)
		}
		prev = cur
	}
}

func TestStepNoHitDecaysToZero(t *testing.T) {
	r := testRing(8)
	f := NewTrailField(r, testBase, testActive)
	for i := 0; i < 40; i++ {
		f.Step(2)
	}

	last := make([]float64, r.Len())
	for i := range last {
		last[i] = f.Intensity(i)
	}
	for tick := 0; tick < 300; tick++ {
		f.Step(NoHit)
		for i := range last {
			cur := f.Intensity(i)
			assert.GreaterOrEqual(t, cur, 0.0)
			assert.LessOrEqual(t, cur, last[i])
			last[i] = cur
		}
	}
	for i := 0; i < r.Len(); i++ {
		assert.InDelta(t, 0.0, f.Intensity(i), 1e-9)
	}
}

func TestIntensityStaysInUnitRange(t *testing.T) {
	r := testRing(8)
	f := NewTrailField(r, testBase, testActive)

	for tick := 0; tick < 500; tick++ {
		f.Step(tick % 8)
		for i := 0; i < r.Len(); i++ {
			v := f.Intensity(i)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestColorTracksIntensity(t *testing.T) {
	r := testRing(8)
	f := NewTrailField(r, testBase, testActive)

	// One no-hit tick leaves every intensity at zero: colors must be the
	// base color exactly.
	f.Step(NoHit)
	for _, s := range r.Segments() {
		assert.Equal(t, testBase, s.Color)
	}

	// At steady state the active segment converges to intensity 1 and
	// its color to the active color channel for channel.
	for i := 0; i < 5000; i++ {
		f.Step(3)
	}
	got := r.Segment(3).Color
	assert.InDelta(t, float64(testActive.R), float64(got.R), 1)
	assert.InDelta(t, float64(testActive.G), float64(got.G), 1)
	assert.InDelta(t, float64(testActive.B), float64(got.B), 1)
}

func TestLerpNRGBAEndpointsExact(t *testing.T) {
	assert.Equal(t, testBase, lerpNRGBA(testBase, testActive, 0))
	assert.Equal(t, testActive, lerpNRGBA(testBase, testActive, 1))

	mid := lerpNRGBA(color.NRGBA{R: 0, G: 100, B: 200, A: 255}, color.NRGBA{R: 200, G: 0, B: 100, A: 255}, 0.5)
	assert.Equal(t, color.NRGBA{R: 100, G: 50, B: 150, A: 255}, mid)
}

func TestScaleBounds(t *testing.T) {
	r := testRing(12)
	f := NewTrailField(r, testBase, testActive)

	for tick := 0; tick < 1000; tick++ {
		f.Step(4)
		for i, s := range r.Segments() {
			assert.GreaterOrEqual(t, s.Scale, 1.0-1e-9)
			assert.LessOrEqual(t, s.Scale, 1+scaleAmplitude+1e-9)
			if r.Distance(4, i) >= TrailLength {
				assert.InDelta(t, 1.0, s.Scale, 1e-9)
			}
		}
	}

	// Steady state: the active segment's bulge converges to the full
	// amplitude (sin(pi/2) = 1).
	assert.InDelta(t, 1+scaleAmplitude, r.Segment(4).Scale, 1e-6)
}

func TestScaleRelaxesAfterTrailPasses(t *testing.T) {
	r := testRing(12)
	f := NewTrailField(r, testBase, testActive)
	for i := 0; i < 200; i++ {
		f.Step(4)
	}
	swollen := r.Segment(4).Scale
	assert.Greater(t, swollen, 1.0)

	for i := 0; i < 2000; i++ {
		f.Step(NoHit)
	}
	assert.InDelta(t, 1.0, r.Segment(4).Scale, 1e-6)
}

func TestStepEmptyRing(t *testing.T) {
	f := NewTrailField(testRing(0), testBase, testActive)
	assert.NotPanics(t, func() {
		f.Step(NoHit)
	})
}
