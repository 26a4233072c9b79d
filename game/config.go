package game

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Runtime tuning bounds. The panel steps radius and speed inside these;
// the core accepts whatever it is handed.
const (
	MinOrbitRadius = 1.0
	MaxOrbitRadius = 10.0
	MinOrbitSpeed  = 0.1
	MaxOrbitSpeed  = 5.0
)

// Config holds everything the host needs to build the scene and window.
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screenWidth"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screenHeight"`

	// PetalCount is the number of petals arranged around the bloom
	PetalCount int `yaml:"petalCount"`

	// BloomRadius is the distance from the bloom center to each petal,
	// in world units
	BloomRadius float64 `yaml:"bloomRadius"`

	// PetalSize is a petal's base radius in world units; it doubles as
	// the hit-test disc radius
	PetalSize float64 `yaml:"petalSize"`

	// ProbeHeight is how far above the petal plane the probe orbits
	ProbeHeight float64 `yaml:"probeHeight"`

	// OrbitRadius is the probe's initial orbit radius (tunable at
	// runtime within [MinOrbitRadius, MaxOrbitRadius])
	OrbitRadius float64 `yaml:"orbitRadius"`

	// OrbitSpeed is the probe's initial angular speed in radians per
	// second (tunable within [MinOrbitSpeed, MaxOrbitSpeed])
	OrbitSpeed float64 `yaml:"orbitSpeed"`

	// BaseColor is the resting petal color as "#rrggbb"
	BaseColor string `yaml:"baseColor"`

	// ActiveColor is the fully lit petal color as "#rrggbb"
	ActiveColor string `yaml:"activeColor"`

	// ProbeColor is the orbiting marker's color as "#rrggbb"
	ProbeColor string `yaml:"probeColor"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1024,
		ScreenHeight: 768,
		PetalCount:   24,
		BloomRadius:  2.4,
		PetalSize:    0.55,
		ProbeHeight:  1.2,
		OrbitRadius:  2.4,
		OrbitSpeed:   1.2,
		BaseColor:    "#8a3f9e",
		ActiveColor:  "#ffe9a8",
		ProbeColor:   "#ffd24d",
	}
}

// LoadConfig loads a YAML configuration file from the given path.
// Fields missing from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

// Validate checks that the configuration can produce a drawable scene.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.PetalCount <= 0 {
		return fmt.Errorf("petalCount must be positive, got %d", c.PetalCount)
	}
	if c.BloomRadius <= 0 || c.PetalSize <= 0 {
		return fmt.Errorf("bloom geometry must be positive, got radius %v size %v", c.BloomRadius, c.PetalSize)
	}
	for _, s := range []string{c.BaseColor, c.ActiveColor, c.ProbeColor} {
		if _, err := ParseHexColor(s); err != nil {
			return err
		}
	}
	return nil
}

// ParseHexColor parses "#rrggbb" into an opaque NRGBA.
func ParseHexColor(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
