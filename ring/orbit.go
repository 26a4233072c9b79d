package ring

import "math"

// NoHit marks a tick in which the probe is not above any segment.
const NoHit = -1

// probeSpinStep is the fixed per-tick self-rotation increment, in
// radians. Purely cosmetic and deliberately not dt-scaled.
const probeSpinStep = 0.02

// OrbitDriver owns the probe's motion: it integrates the orbit angle,
// places the probe on a circle around Base, and hit-tests straight down
// against the ring.
type OrbitDriver struct {
	// Base is the orbit center. The probe's height stays pinned to
	// Base.Y regardless of radius.
	Base Vec3

	angle float64
	spin  float64
	pos   Vec3
}

// NewOrbitDriver returns a driver whose probe starts at angle 0 on the
// circle around base.
func NewOrbitDriver(base Vec3) *OrbitDriver {
	return &OrbitDriver{Base: base, pos: base}
}

// Advance moves the probe by one tick and reports the segment directly
// underneath it, or NoHit. Radius and speed are read fresh every call so
// the host can retune them between ticks; out-of-range values are passed
// through untouched.
//
// The angle decreases monotonically (clockwise seen from above) and is
// never normalized; only its sine and cosine are consumed.
func (o *OrbitDriver) Advance(dt, radius, speed float64, r *Ring) (Vec3, int) {
	o.angle -= speed * dt
	o.pos = Vec3{
		X: o.Base.X + radius*math.Cos(o.angle),
		Y: o.Base.Y,
		Z: o.Base.Z + radius*math.Sin(o.angle),
	}
	o.spin += probeSpinStep

	// Downward ray: a segment is hit when the probe's XZ point lies
	// inside its disc and its surface is at or below the probe. Of the
	// candidates, the one nearest along the ray (highest surface) wins.
	hit := NoHit
	bestTop := math.Inf(-1)
	for i, s := range r.segments {
		dx := o.pos.X - s.Center.X
		dz := o.pos.Z - s.Center.Z
		if dx*dx+dz*dz > s.HitRadius*s.HitRadius {
			continue
		}
		if s.Center.Y > o.pos.Y {
			continue
		}
		if s.Center.Y > bestTop {
			bestTop = s.Center.Y
			hit = i
		}
	}
	return o.pos, hit
}

// Position returns the probe's world position as of the last Advance.
func (o *OrbitDriver) Position() Vec3 {
	return o.pos
}

// Spin returns the probe's accumulated self-rotation in radians.
func (o *OrbitDriver) Spin() float64 {
	return o.spin
}

// Angle returns the current orbit angle in radians.
func (o *OrbitDriver) Angle() float64 {
	return o.angle
}
