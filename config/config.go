// Package config reads the optional voxport.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"voxport/sim"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Display DisplaySpec `yaml:"display"`
	Physics PhysicsSpec `yaml:"physics"`
	Camera  CameraSpec  `yaml:"camera"`
	Scene   SceneSpec   `yaml:"scene"`
}

type DisplaySpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
	TPS    int `yaml:"tps"`
}

// PhysicsSpec mirrors sim.Params.
type PhysicsSpec struct {
	Gravity  float64 `yaml:"gravity"`
	Floor    float64 `yaml:"floor"`
	Bounce   float64 `yaml:"bounce"`
	Friction float64 `yaml:"friction"`

	BurstHorizontal float64 `yaml:"burst_horizontal"`
	BurstLift       float64 `yaml:"burst_lift"`
	BurstBase       float64 `yaml:"burst_base"`
	Spin            float64 `yaml:"spin"`

	SpeedBase   float64 `yaml:"speed_base"`
	SpeedJitter float64 `yaml:"speed_jitter"`
	Epsilon     float64 `yaml:"epsilon"`
	MaxDelayMs  int     `yaml:"max_delay_ms"`
}

type CameraSpec struct {
	AutoRotate      bool    `yaml:"auto_rotate"`
	AutoRotateSpeed float32 `yaml:"auto_rotate_speed"`
	FOVDeg          float32 `yaml:"fov_deg"`
	Distance        float32 `yaml:"distance"`
}

type SceneSpec struct {
	InitialModel string `yaml:"initial_model"`
	ShapesDir    string `yaml:"shapes_dir"`
	Background   string `yaml:"background"` // "#rrggbb"
	Atmosphere   int    `yaml:"atmosphere"` // point count, 0 disables
	Seed         int64  `yaml:"seed"`       // 0 seeds from the clock
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("voxport.yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("voxport.yaml: %w", err)
	}
	return cfg, nil
}

func Defaults() Config {
	p := sim.DefaultParams()
	return Config{
		Display: DisplaySpec{Width: 640, Height: 400, Scale: 2, TPS: 60},
		Physics: PhysicsSpec{
			Gravity:         p.Gravity,
			Floor:           p.Floor,
			Bounce:          p.Bounce,
			Friction:        p.Friction,
			BurstHorizontal: p.BurstHorizontal,
			BurstLift:       p.BurstLift,
			BurstBase:       p.BurstBase,
			Spin:            p.Spin,
			SpeedBase:       p.SpeedBase,
			SpeedJitter:     p.SpeedJitter,
			Epsilon:         p.Epsilon,
			MaxDelayMs:      int(p.MaxDelay / time.Millisecond),
		},
		Camera: CameraSpec{
			AutoRotate:      true,
			AutoRotateSpeed: 0.5,
			FOVDeg:          45,
		},
		Scene: SceneSpec{
			InitialModel: "Avatar",
			Background:   "#f8fafc",
			Atmosphere:   300,
		},
	}
}

// Normalize fills fields a document left at zero where zero is meaningless.
func (c *Config) Normalize() {
	d := Defaults()
	if c.Display.Scale == 0 {
		c.Display.Scale = d.Display.Scale
	}
	if c.Display.TPS == 0 {
		c.Display.TPS = d.Display.TPS
	}
	if c.Camera.FOVDeg == 0 {
		c.Camera.FOVDeg = d.Camera.FOVDeg
	}
	c.Scene.InitialModel = strings.TrimSpace(c.Scene.InitialModel)
	if c.Scene.InitialModel == "" {
		c.Scene.InitialModel = d.Scene.InitialModel
	}
	c.Scene.Background = strings.ToLower(strings.TrimSpace(c.Scene.Background))
	if c.Scene.Background == "" {
		c.Scene.Background = d.Scene.Background
	}
}

func (c Config) Validate() error {
	check := []struct {
		ok    bool
		field string
	}{
		{c.Display.Width > 0 && c.Display.Width <= 4096, "display.width"},
		{c.Display.Height > 0 && c.Display.Height <= 4096, "display.height"},
		{c.Display.Scale > 0 && c.Display.Scale <= 8, "display.scale"},
		{c.Display.TPS > 0 && c.Display.TPS <= 240, "display.tps"},
		{c.Physics.Gravity >= 0, "physics.gravity"},
		{c.Physics.Bounce >= 0 && c.Physics.Bounce <= 1, "physics.bounce"},
		{c.Physics.Friction >= 0 && c.Physics.Friction <= 1, "physics.friction"},
		{c.Physics.BurstHorizontal >= 0, "physics.burst_horizontal"},
		{c.Physics.BurstLift >= 0, "physics.burst_lift"},
		{c.Physics.Spin >= 0, "physics.spin"},
		{c.Physics.SpeedBase > 0 && c.Physics.SpeedBase+c.Physics.SpeedJitter <= 1, "physics.speed_base"},
		{c.Physics.SpeedJitter >= 0, "physics.speed_jitter"},
		{c.Physics.Epsilon > 0, "physics.epsilon"},
		{c.Physics.MaxDelayMs >= 0, "physics.max_delay_ms"},
		{c.Camera.FOVDeg > 0 && c.Camera.FOVDeg < 180, "camera.fov_deg"},
		{c.Camera.Distance >= 0, "camera.distance"},
		{c.Scene.Atmosphere >= 0 && c.Scene.Atmosphere <= 10000, "scene.atmosphere"},
	}
	for _, ch := range check {
		if !ch.ok {
			return fmt.Errorf("%w: %s out of range", ErrInvalid, ch.field)
		}
	}
	if _, err := c.Scene.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// Params converts the physics section.
func (c Config) Params() sim.Params {
	p := c.Physics
	return sim.Params{
		Gravity:         p.Gravity,
		Floor:           p.Floor,
		Bounce:          p.Bounce,
		Friction:        p.Friction,
		BurstHorizontal: p.BurstHorizontal,
		BurstLift:       p.BurstLift,
		BurstBase:       p.BurstBase,
		Spin:            p.Spin,
		SpeedBase:       p.SpeedBase,
		SpeedJitter:     p.SpeedJitter,
		Epsilon:         p.Epsilon,
		MaxDelay:        time.Duration(p.MaxDelayMs) * time.Millisecond,
	}
}

// BackgroundColor parses the "#rrggbb" background.
func (s SceneSpec) BackgroundColor() (uint32, error) {
	if len(s.Background) != 7 || s.Background[0] != '#' {
		return 0, fmt.Errorf("%w: scene.background %q", ErrInvalid, s.Background)
	}
	v, err := strconv.ParseUint(s.Background[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: scene.background %q", ErrInvalid, s.Background)
	}
	return uint32(v), nil
}
