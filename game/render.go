package game

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Fawkes11/circular-animation/ring"
)

// Projection constants. The XZ ring plane is drawn with a fixed oblique
// view: X maps straight across, Z is compressed downward, Y lifts points
// up the screen.
const (
	viewScaleRatio = 0.13 // px per world unit, as a fraction of the short screen edge
	foreshorten    = 0.55 // Z compression of the ground plane
	heightScale    = 0.85 // how strongly Y lifts a point on screen
	probeArmScale  = 2.2  // spin-arm length relative to the probe radius
)

var (
	colorBackground  = color.NRGBA{R: 8, G: 6, B: 20, A: 255}
	colorProbeShadow = color.NRGBA{R: 0, G: 0, B: 0, A: 90}
)

// viewScale returns pixels per world unit for the current layout.
func (g *Game) viewScale() float64 {
	short := g.config.ScreenWidth
	if g.config.ScreenHeight < short {
		short = g.config.ScreenHeight
	}
	return float64(short) * viewScaleRatio
}

// project maps a world point to screen coordinates.
func (g *Game) project(v ring.Vec3) (float64, float64) {
	s := g.viewScale()
	cx := float64(g.config.ScreenWidth) * 0.5
	cy := float64(g.config.ScreenHeight) * 0.55
	return cx + v.X*s, cy + v.Z*s*foreshorten - v.Y*s*heightScale
}

// drawScene renders the petals back to front, then the probe's ground
// shadow and the probe itself.
func (g *Game) drawScene(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	petals := g.scene.Ring.Segments()
	order := make([]int, len(petals))
	for i := range order {
		order[i] = i
	}
	// Painter order: smaller Z is farther from the viewer.
	sort.Slice(order, func(a, b int) bool {
		return petals[order[a]].Center.Z < petals[order[b]].Center.Z
	})

	s := g.viewScale()
	for _, i := range order {
		p := petals[i]
		x, y := g.project(p.Center)
		rx := p.HitRadius * p.Scale * s
		fillEllipse(screen, x, y, rx, rx*foreshorten, p.Color)
	}

	// Shadow on the petal plane directly under the probe.
	probe := g.scene.Probe
	sx, sy := g.project(ring.Vec3{X: probe.Pos.X, Y: 0, Z: probe.Pos.Z})
	fillEllipse(screen, sx, sy, probe.Radius*s, probe.Radius*s*foreshorten, colorProbeShadow)

	px, py := g.project(probe.Pos)
	ebitenutil.DrawCircle(screen, px, py, probe.Radius*s, probe.Color)

	// Slowly spinning cross arms, decoupled from the orbit angle.
	arm := probe.Radius * s * probeArmScale
	for k := 0; k < 2; k++ {
		a := probe.Spin + float64(k)*math.Pi/2
		dx := math.Cos(a) * arm
		dy := math.Sin(a) * arm * foreshorten
		ebitenutil.DrawLine(screen, px-dx, py-dy, px+dx, py+dy, probe.Color)
	}
}

// fillEllipse draws a filled axis-aligned ellipse with one line per
// scanline. Cheap enough for a few dozen petals.
func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, clr color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	top := int(math.Ceil(cy - ry))
	bottom := int(math.Floor(cy + ry))
	for py := top; py <= bottom; py++ {
		t := (float64(py) - cy) / ry
		u := 1 - t*t
		if u <= 0 {
			continue
		}
		span := rx * math.Sqrt(u)
		ebitenutil.DrawLine(dst, cx-span, float64(py), cx+span, float64(py), clr)
	}
}
