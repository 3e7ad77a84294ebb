package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/faraday/internal/control"
	"github.com/san-kum/faraday/internal/induction"
	"github.com/san-kum/faraday/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFile      = "faraday.yaml"
	DefaultFPS       = 60
	DefaultTheme     = "lab"
	DefaultModel     = "gemini-2.5-flash"
	DefaultKeyEnv    = "GEMINI_API_KEY"
	DefaultTimeout   = 20 * time.Second
	DefaultAddr      = "127.0.0.1:8765"
	DefaultLogLevel  = "info"
	DefaultChartRows = 6
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Controls ControlsConfig `yaml:"controls"`
	Display  DisplayConfig  `yaml:"display"`
	Tutor    TutorConfig    `yaml:"tutor"`
	Stream   StreamConfig   `yaml:"stream"`
	Log      LogConfig      `yaml:"log"`
}

type PhysicsConfig struct {
	FluxScale         float64 `yaml:"flux_scale"`
	FluxWidth         float64 `yaml:"flux_width"`
	VelocitySmoothing float64 `yaml:"velocity_smoothing"`
	EMFSmoothing      float64 `yaml:"emf_smoothing"`
	SampleEvery       int     `yaml:"sample_every"`
	HistoryCapacity   int     `yaml:"history_capacity"`
}

type ControlsConfig struct {
	Turns       int     `yaml:"turns"`
	Speed       float64 `yaml:"speed"`
	Amplitude   float64 `yaml:"amplitude"`
	Viewport    float64 `yaml:"viewport"`
	MagnetWidth float64 `yaml:"magnet_width"`
	FPS         int     `yaml:"fps"`
	Playing     bool    `yaml:"playing"`
}

type DisplayConfig struct {
	Theme     string `yaml:"theme"`
	ChartRows int    `yaml:"chart_rows"`
}

type TutorConfig struct {
	Model   string        `yaml:"model"`
	KeyEnv  string        `yaml:"key_env"`
	Timeout time.Duration `yaml:"timeout"`
}

type StreamConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func DefaultConfig() *Config {
	p := induction.DefaultParams()
	return &Config{
		Physics: PhysicsConfig{
			FluxScale:         p.FluxScale,
			FluxWidth:         p.FluxWidth,
			VelocitySmoothing: p.VelocitySmoothing,
			EMFSmoothing:      p.EMFSmoothing,
			SampleEvery:       p.SampleEvery,
			HistoryCapacity:   p.HistoryCapacity,
		},
		Controls: ControlsConfig{
			Turns:       induction.DefaultTurns,
			Speed:       control.DefaultSpeed,
			Amplitude:   control.DefaultAmplitude,
			Viewport:    control.ViewportWidth,
			MagnetWidth: control.MagnetWidth,
			FPS:         DefaultFPS,
		},
		Display: DisplayConfig{Theme: DefaultTheme, ChartRows: DefaultChartRows},
		Tutor:   TutorConfig{Model: DefaultModel, KeyEnv: DefaultKeyEnv, Timeout: DefaultTimeout},
		Stream:  StreamConfig{Addr: DefaultAddr},
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads a YAML file over the defaults, so a partial file only
// overrides the keys it names.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over base, which is modified in place.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() induction.Params {
	return induction.Params{
		FluxScale:         c.Physics.FluxScale,
		FluxWidth:         c.Physics.FluxWidth,
		VelocitySmoothing: c.Physics.VelocitySmoothing,
		EMFSmoothing:      c.Physics.EMFSmoothing,
		SampleEvery:       c.Physics.SampleEvery,
		HistoryCapacity:   c.Physics.HistoryCapacity,
	}
}

func (c *Config) Travel() control.Travel {
	return control.Travel{Viewport: c.Controls.Viewport, MagnetWidth: c.Controls.MagnetWidth}
}

// APIKey looks up the tutor credential in the environment. The key itself
// is never stored in the file.
func (c *Config) APIKey() string {
	if c.Tutor.KeyEnv == "" {
		return ""
	}
	return os.Getenv(c.Tutor.KeyEnv)
}

func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := induction.ValidTurns(c.Controls.Turns); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	ctl := c.Controls
	switch {
	case ctl.Speed < control.MinSpeed || ctl.Speed > control.MaxSpeed:
		return fmt.Errorf("%w: speed %.2f not in [%.1f, %.1f]", ErrInvalid, ctl.Speed, control.MinSpeed, control.MaxSpeed)
	case ctl.Viewport <= 0 || ctl.MagnetWidth <= 0 || ctl.MagnetWidth >= ctl.Viewport:
		return fmt.Errorf("%w: magnet width %.0f does not fit viewport %.0f", ErrInvalid, ctl.MagnetWidth, ctl.Viewport)
	case ctl.Amplitude < 0:
		return fmt.Errorf("%w: negative amplitude %.1f", ErrInvalid, ctl.Amplitude)
	case ctl.FPS <= 0 || ctl.FPS > 240:
		return fmt.Errorf("%w: fps %d not in (0, 240]", ErrInvalid, ctl.FPS)
	case c.Display.ChartRows < 2:
		return fmt.Errorf("%w: chart rows must be >= 2, got %d", ErrInvalid, c.Display.ChartRows)
	case c.Tutor.Timeout < 0:
		return fmt.Errorf("%w: negative tutor timeout", ErrInvalid)
	}
	return nil
}

// NewSession builds a lab session with the configured physics and
// starting controls.
func (c *Config) NewSession() *sim.Session {
	s := sim.NewSession(c.Params(), control.NewMagnet(c.Travel(), c.Controls.Amplitude))
	s.SetTurns(c.Controls.Turns)
	s.SetSpeed(c.Controls.Speed)
	s.SetPlaying(c.Controls.Playing)
	return s
}

// NewRunner builds a headless runner with the configured physics.
func (c *Config) NewRunner() *sim.Runner {
	return sim.NewRunner(c.Params(), c.Travel(), c.Controls.Amplitude)
}
