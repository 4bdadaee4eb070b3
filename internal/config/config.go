package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/springsim/spring"
)

const (
	DefaultDt       = 0.01
	DefaultTime     = 2.0
	DefaultDuration = 0.5
	DefaultTarget   = 1.0
	DefaultEpsilon  = 0.001
	DefaultFPS      = 30
)

// Parameterization names accepted in config files and on the CLI.
const (
	ParamDurationBounce = "duration_bounce"
	ParamPhysical       = "physical"
	ParamResponse       = "response"
	ParamSettling       = "settling"
)

type Config struct {
	Parameterization string       `yaml:"parameterization"`
	Spring           SpringConfig `yaml:"spring"`
	Track            TrackConfig  `yaml:"track"`
	Sampling         SampleConfig `yaml:"sampling"`
}

// SpringConfig carries the knobs for every parameterization; only the
// group selected by Parameterization is read.
type SpringConfig struct {
	Duration float64 `yaml:"duration"`
	Bounce   float64 `yaml:"bounce"`

	Mass             float64 `yaml:"mass"`
	Stiffness        float64 `yaml:"stiffness"`
	Damping          float64 `yaml:"damping"`
	AllowOverdamping bool    `yaml:"allow_overdamping"`

	Response     float64 `yaml:"response"`
	DampingRatio float64 `yaml:"damping_ratio"`

	SettlingDuration float64 `yaml:"settling_duration"`
	Epsilon          float64 `yaml:"epsilon"`
}

// TrackConfig is the caller-owned motion state the sampler starts from.
type TrackConfig struct {
	Value    float64 `yaml:"value"`
	Velocity float64 `yaml:"velocity"`
	Target   float64 `yaml:"target"`
}

type SampleConfig struct {
	Dt   float64 `yaml:"dt"`
	Time float64 `yaml:"time"`
	FPS  int     `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Parameterization: ParamDurationBounce,
		Spring: SpringConfig{
			Duration:     DefaultDuration,
			Mass:         1,
			Stiffness:    100,
			Damping:      10,
			Response:     DefaultDuration,
			DampingRatio: 1,

			SettlingDuration: DefaultDuration,
			Epsilon:          DefaultEpsilon,
		},
		Track: TrackConfig{
			Target: DefaultTarget,
		},
		Sampling: SampleConfig{
			Dt:   DefaultDt,
			Time: DefaultTime,
			FPS:  DefaultFPS,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

// Build materializes the spring described by the selected
// parameterization.
func (c *Config) Build() (spring.Spring, error) {
	s := c.Spring
	switch c.Parameterization {
	case ParamDurationBounce, "":
		return spring.WithDurationBounce(s.Duration, s.Bounce), nil
	case ParamPhysical:
		return spring.WithMassStiffnessDamping(s.Mass, s.Stiffness, s.Damping, s.AllowOverdamping), nil
	case ParamResponse:
		return spring.WithResponseDampingRatio(s.Response, s.DampingRatio), nil
	case ParamSettling:
		epsilon := s.Epsilon
		if epsilon == 0 {
			epsilon = DefaultEpsilon
		}
		return spring.WithSettlingDurationDampingRatio(s.SettlingDuration, s.DampingRatio, epsilon), nil
	default:
		return spring.Spring{}, fmt.Errorf("unknown parameterization: %s", c.Parameterization)
	}
}
