// Package config provides configuration loading and access for the demos.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/boids/mesh"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all demo configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Flock     FlockConfig     `yaml:"flock"`
	Agent     AgentConfig     `yaml:"agent"`
	Circle    CircleConfig    `yaml:"circle"`
	Render    RenderConfig    `yaml:"render"`
	Headless  HeadlessConfig  `yaml:"headless"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// FlockConfig holds agent population and steering limits.
type FlockConfig struct {
	Count    int     `yaml:"count"`
	MaxSpeed float64 `yaml:"max_speed"` // world units per tick
	MaxForce float64 `yaml:"max_force"` // world units per tick², unit mass
}

// AgentConfig holds the shared agent mesh appearance.
type AgentConfig struct {
	Color []int `yaml:"color"` // RGB 0-255
}

// CircleConfig holds the static circle demo parameters.
type CircleConfig struct {
	Vertices int     `yaml:"vertices"` // rim vertices
	Scale    float64 `yaml:"scale"`    // radius in world units
	Color    []int   `yaml:"color"`
}

// RenderConfig holds host drawing settings.
type RenderConfig struct {
	Background []int   `yaml:"background"`
	ZoomStep   float64 `yaml:"zoom_step"` // zoom factor per mouse wheel notch
	ShowHUD    bool    `yaml:"show_hud"`
}

// HeadlessConfig controls the synthetic cursor used without a window.
type HeadlessConfig struct {
	Cursor      string  `yaml:"cursor"`       // none, center, orbit
	OrbitRadius float64 `yaml:"orbit_radius"` // world units
	OrbitPeriod int     `yaml:"orbit_period"` // ticks per revolution
}

// TerminalConfig holds terminal host parameters.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // world units per terminal column
	CellHeight float64 `yaml:"cell_height"` // world units per terminal row
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds at target FPS
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// Headless cursor modes.
const (
	CursorNone   = "none"
	CursorCenter = "center"
	CursorOrbit  = "orbit"
)

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32        float32
	ScreenH32        float32
	MaxSpeed32       float32
	MaxForce32       float32
	AgentColor       mesh.Color
	CircleColor      mesh.Color
	Background       mesh.Color
	StatsWindowTicks int
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Set replaces the global configuration.
func Set(cfg *Config) {
	global = cfg
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns the embedded default configuration.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects values the demos cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("screen.target_fps %d must be positive", c.Screen.TargetFPS))
	}
	if c.Flock.Count < 0 {
		errs = append(errs, fmt.Errorf("flock.count %d must not be negative", c.Flock.Count))
	}
	if c.Flock.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("flock.max_speed %v must not be negative", c.Flock.MaxSpeed))
	}
	if c.Flock.MaxForce < 0 {
		errs = append(errs, fmt.Errorf("flock.max_force %v must not be negative", c.Flock.MaxForce))
	}
	if c.Circle.Vertices < 3 {
		errs = append(errs, fmt.Errorf("circle.vertices %d must be at least 3", c.Circle.Vertices))
	}
	switch c.Headless.Cursor {
	case CursorNone, CursorCenter, CursorOrbit:
	default:
		errs = append(errs, fmt.Errorf("headless.cursor %q must be one of none, center, orbit", c.Headless.Cursor))
	}
	if c.Headless.Cursor == CursorOrbit && c.Headless.OrbitPeriod <= 0 {
		errs = append(errs, fmt.Errorf("headless.orbit_period %d must be positive", c.Headless.OrbitPeriod))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, errors.New("terminal cell size must be positive"))
	}
	for name, col := range map[string][]int{
		"agent.color":       c.Agent.Color,
		"circle.color":      c.Circle.Color,
		"render.background": c.Render.Background,
	} {
		if err := checkColor(col); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func checkColor(rgb []int) error {
	if len(rgb) != 3 && len(rgb) != 4 {
		return fmt.Errorf("want 3 or 4 channels, got %d", len(rgb))
	}
	for _, ch := range rgb {
		if ch < 0 || ch > 255 {
			return fmt.Errorf("channel %d out of range 0-255", ch)
		}
	}
	return nil
}

func toColor(rgb []int) mesh.Color {
	c := mesh.RGB(uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]))
	if len(rgb) == 4 {
		c.A = uint8(rgb[3])
	}
	return c
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.MaxSpeed32 = float32(c.Flock.MaxSpeed)
	c.Derived.MaxForce32 = float32(c.Flock.MaxForce)
	c.Derived.AgentColor = toColor(c.Agent.Color)
	c.Derived.CircleColor = toColor(c.Circle.Color)
	c.Derived.Background = toColor(c.Render.Background)

	ticks := int(c.Telemetry.StatsWindow * float64(c.Screen.TargetFPS))
	if ticks < 1 {
		ticks = 1
	}
	c.Derived.StatsWindowTicks = ticks
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
