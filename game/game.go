package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Fawkes11/circular-animation/ring"
)

// maxFrameDelta caps dt after window drags or suspends so the probe does
// not teleport across the ring.
const maxFrameDelta = 0.1

// Game wires the orbit driver and trail field to the ebiten frame loop.
// Per tick the order is fixed: input, then OrbitDriver.Advance, then
// TrailField.Step; the renderer reads the results in Draw.
type Game struct {
	config Config
	scene  *Scene
	orbit  *ring.OrbitDriver
	trail  *ring.TrailField

	// Current tuning, re-fed to the driver every tick.
	radius float64
	speed  float64

	active         int
	showPanel      bool
	prevAltEnter   bool
	lastUpdateTime time.Time
}

// NewGame creates a new game instance from the given configuration.
func NewGame(config Config) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	scene, err := NewScene(config)
	if err != nil {
		return nil, err
	}

	return &Game{
		config:         config,
		scene:          scene,
		orbit:          ring.NewOrbitDriver(scene.Center),
		trail:          ring.NewTrailField(scene.Ring, scene.base, scene.active),
		radius:         config.OrbitRadius,
		speed:          config.OrbitSpeed,
		active:         ring.NoHit,
		showPanel:      true,
		lastUpdateTime: time.Now(),
	}, nil
}

// Update advances the animation by one frame.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	g.handleInput(dt)

	pos, active := g.orbit.Advance(dt, g.radius, g.speed, g.scene.Ring)
	g.scene.Probe.Pos = pos
	g.scene.Probe.Spin = g.orbit.Spin()
	g.active = active

	g.trail.Step(active)
	return nil
}

// Draw renders the bloom, the probe and the tuning overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen)
	if g.showPanel {
		g.drawPanel(screen)
	} else {
		g.drawHUD(screen)
	}
}

// Layout keeps the configured logical resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

// activeName returns the active petal's source name, or "-" when the
// probe is between petals.
func (g *Game) activeName() string {
	if g.active == ring.NoHit {
		return "-"
	}
	return g.scene.Ring.Segment(g.active).Name
}
