package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/Fawkes11/circular-animation/ring"
)

// Panel layout constants.
const (
	panelX          = 12
	panelY          = 12
	panelWidth      = 252
	panelLineHeight = 16
	panelPadding    = 10
)

var (
	colorPanelBackdrop = color.NRGBA{R: 10, G: 16, B: 32, A: 210}
	colorPanelText     = color.NRGBA{R: 200, G: 214, B: 240, A: 255}
	colorPanelDim      = color.NRGBA{R: 110, G: 122, B: 150, A: 255}
)

// drawPanel renders the tuning overlay: current parameters, the active
// petal, and key help.
func (g *Game) drawPanel(screen *ebiten.Image) {
	lines := []string{
		"orbit tuning",
		fmt.Sprintf("radius  %.2f   [%g..%g]", g.radius, MinOrbitRadius, MaxOrbitRadius),
		fmt.Sprintf("speed   %.2f   [%g..%g]", g.speed, MinOrbitSpeed, MaxOrbitSpeed),
		fmt.Sprintf("active  %s", g.activeName()),
	}
	if g.active != ring.NoHit {
		lines = append(lines, fmt.Sprintf("glow    %.2f", g.trail.Intensity(g.active)))
	}
	help := []string{
		"W/S  radius    A/D  speed",
		"Tab  hide panel",
		"Alt+Enter  fullscreen",
	}

	height := (len(lines)+len(help))*panelLineHeight + 2*panelPadding
	ebitenutil.DrawRect(screen, panelX, panelY, panelWidth, float64(height), colorPanelBackdrop)

	face := basicfont.Face7x13
	y := panelY + panelPadding + panelLineHeight - 4
	for _, line := range lines {
		text.Draw(screen, line, face, panelX+panelPadding, y, colorPanelText)
		y += panelLineHeight
	}
	for _, line := range help {
		text.Draw(screen, line, face, panelX+panelPadding, y, colorPanelDim)
		y += panelLineHeight
	}
}

// drawHUD draws the one-line status shown when the panel is hidden.
func (g *Game) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("radius: %.2f | speed: %.2f | active: %s", g.radius, g.speed, g.activeName())
	ebitenutil.DebugPrint(screen, hud)
}
