package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Tuning rates in units per second while a key is held.
const (
	radiusTuneRate = 2.0
	speedTuneRate  = 1.0
)

// handleInput processes tuning keys, the panel toggle and fullscreen.
func (g *Game) handleInput(dt float64) {
	// Radius: W/Up grows the orbit, S/Down shrinks it.
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		g.radius += radiusTuneRate * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		g.radius -= radiusTuneRate * dt
	}
	g.radius = clamp(g.radius, MinOrbitRadius, MaxOrbitRadius)

	// Speed: D/Right faster, A/Left slower.
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.speed += speedTuneRate * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.speed -= speedTuneRate * dt
	}
	g.speed = clamp(g.speed, MinOrbitSpeed, MaxOrbitSpeed)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showPanel = !g.showPanel
	}

	// Handle Alt+Enter to toggle fullscreen
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	altEnterPressed := altPressed && ebiten.IsKeyPressed(ebiten.KeyEnter)
	if altEnterPressed && !g.prevAltEnter {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.prevAltEnter = altEnterPressed
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
